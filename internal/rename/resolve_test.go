package rename

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestResolve_ChainOrder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	q, err := NewQueue(fsys, []Mapping{
		{Src: "/work/a", Dst: "/work/b"},
		{Src: "/work/b", Dst: "/work/c"},
		{Src: "/work/c", Dst: "/work/d"},
	}, Policy{})
	require.NoError(t, err)
	require.Equal(t, []Mapping{
		{Src: "/work/c", Dst: "/work/d"},
		{Src: "/work/b", Dst: "/work/c"},
		{Src: "/work/a", Dst: "/work/b"},
	}, q.Pending())
}

func TestResolve_TwoCycle(t *testing.T) {
	fsys := afero.NewMemMapFs()
	q, err := NewQueue(fsys, []Mapping{
		{Src: "/work/a", Dst: "/work/b"},
		{Src: "/work/b", Dst: "/work/a"},
	}, Policy{})
	require.NoError(t, err)
	require.Equal(t, []Mapping{
		{Src: "/work/b", Dst: "/work/b.temp_0"},
		{Src: "/work/a", Dst: "/work/b"},
		{Src: "/work/b.temp_0", Dst: "/work/a"},
	}, q.Pending())
}

func TestResolve_ThreeCycle(t *testing.T) {
	fsys := afero.NewMemMapFs()
	q, err := NewQueue(fsys, []Mapping{
		{Src: "/work/a", Dst: "/work/b"},
		{Src: "/work/b", Dst: "/work/c"},
		{Src: "/work/c", Dst: "/work/a"},
	}, Policy{})
	require.NoError(t, err)
	require.Equal(t, []Mapping{
		{Src: "/work/c", Dst: "/work/c.temp_0"},
		{Src: "/work/b", Dst: "/work/c"},
		{Src: "/work/a", Dst: "/work/b"},
		{Src: "/work/c.temp_0", Dst: "/work/a"},
	}, q.Pending())
}

func TestResolve_TempProbesPastExisting(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/work/b.temp_0", nil, 0o644))
	q, err := NewQueue(fsys, []Mapping{
		{Src: "/work/a", Dst: "/work/b"},
		{Src: "/work/b", Dst: "/work/a"},
	}, Policy{})
	require.NoError(t, err)
	require.Equal(t, Mapping{Src: "/work/b", Dst: "/work/b.temp_1"}, q.Pending()[0])
}

func TestResolve_TempReplacesExtension(t *testing.T) {
	fsys := afero.NewMemMapFs()
	q, err := NewQueue(fsys, []Mapping{
		{Src: "/work/a.txt", Dst: "/work/b.txt"},
		{Src: "/work/b.txt", Dst: "/work/a.txt"},
	}, Policy{})
	require.NoError(t, err)
	require.Equal(t, Mapping{Src: "/work/b.txt", Dst: "/work/b.temp_0"}, q.Pending()[0])
}

func TestResolve_SelfLoopSkipped(t *testing.T) {
	fsys := afero.NewMemMapFs()
	q, err := NewQueue(fsys, []Mapping{{Src: "/work/a", Dst: "/work/a"}}, Policy{})
	require.NoError(t, err)
	require.Equal(t, 0, q.Len())
}

func TestResolve_MidChainEntry(t *testing.T) {
	// Sorted source iteration reaches "a" before "z", entering the chain
	// z -> a -> b in the middle. The head link must come after the tail
	// it depends on, not duplicate it.
	fsys := afero.NewMemMapFs()
	q, err := NewQueue(fsys, []Mapping{
		{Src: "/work/z", Dst: "/work/a"},
		{Src: "/work/a", Dst: "/work/b"},
	}, Policy{})
	require.NoError(t, err)
	require.Equal(t, []Mapping{
		{Src: "/work/a", Dst: "/work/b"},
		{Src: "/work/z", Dst: "/work/a"},
	}, q.Pending())
}

func TestResolve_IndependentComponents(t *testing.T) {
	fsys := afero.NewMemMapFs()
	q, err := NewQueue(fsys, []Mapping{
		{Src: "/work/a", Dst: "/work/b"},
		{Src: "/work/x", Dst: "/work/y"},
	}, Policy{})
	require.NoError(t, err)
	require.Equal(t, 2, q.Len())
	require.ElementsMatch(t, []Mapping{
		{Src: "/work/a", Dst: "/work/b"},
		{Src: "/work/x", Dst: "/work/y"},
	}, q.Pending())
}
