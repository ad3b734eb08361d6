package rename

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func midExecutionQueue(t *testing.T, fsys afero.Fs) *Queue {
	t.Helper()
	writeFiles(t, fsys, map[string]string{
		"/work/a": "alpha",
		"/work/b": "beta",
		"/work/c": "gamma",
		"/work/z": "occupied",
	})
	q, err := NewQueue(fsys, []Mapping{
		{Src: "/work/a", Dst: "/work/x"},
		{Src: "/work/b", Dst: "/work/y"},
		{Src: "/work/c", Dst: "/work/z"},
	}, Policy{})
	require.NoError(t, err)
	require.ErrorAs(t, q.Rename(), new(*ExistsError))
	require.Len(t, q.Renamed(), 2)
	return q
}

func TestState_SaveLoadResume(t *testing.T) {
	fsys := afero.NewMemMapFs()
	q := midExecutionQueue(t, fsys)

	require.NoError(t, SaveState(fsys, "/work/.batchmv.json", q))
	loaded, err := LoadState(fsys, "/work/.batchmv.json", Policy{})
	require.NoError(t, err)
	require.Equal(t, q.Renamed(), loaded.Renamed())
	require.Equal(t, q.Pending(), loaded.Pending())

	// Clear the obstruction and finish from the loaded queue.
	require.NoError(t, fsys.Remove("/work/z"))
	require.NoError(t, loaded.Rename())
	require.Equal(t, "gamma", readFile(t, fsys, "/work/z"))
	require.Empty(t, loaded.Pending())
}

func TestState_LoadedQueueReverts(t *testing.T) {
	fsys := afero.NewMemMapFs()
	q := midExecutionQueue(t, fsys)
	require.NoError(t, SaveState(fsys, "/work/.batchmv.json", q))

	loaded, err := LoadState(fsys, "/work/.batchmv.json", Policy{})
	require.NoError(t, err)
	require.NoError(t, loaded.Revert())
	require.Equal(t, "alpha", readFile(t, fsys, "/work/a"))
	require.Equal(t, "beta", readFile(t, fsys, "/work/b"))
}

func TestState_UnknownFieldRejected(t *testing.T) {
	var s State
	err := json.Unmarshal([]byte(`{"renamed": [], "pending": [], "extra": 1}`), &s)
	require.ErrorContains(t, err, `unknown field "extra"`)
}

func TestState_MissingFieldRejected(t *testing.T) {
	var s State
	err := json.Unmarshal([]byte(`{"renamed": []}`), &s)
	require.ErrorContains(t, err, `missing field "pending"`)
}

func TestState_MappingUnknownFieldRejected(t *testing.T) {
	var s State
	err := json.Unmarshal([]byte(`{"renamed": [{"src": "/a", "dst": "/b", "mode": 1}], "pending": []}`), &s)
	require.ErrorContains(t, err, `unknown field "mode"`)
}

func TestState_MappingMissingFieldRejected(t *testing.T) {
	var s State
	err := json.Unmarshal([]byte(`{"renamed": [], "pending": [{"src": "/a"}]}`), &s)
	require.ErrorContains(t, err, `missing field "dst"`)
}

func TestState_LoadMissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_, err := LoadState(fsys, "/work/absent.json", Policy{})
	require.Error(t, err)
}
