package walkdir

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func testTree(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, path := range []string{
		"/root/a.txt",
		"/root/sub/b.txt",
		"/root/sub/deep/c.txt",
	} {
		require.NoError(t, afero.WriteFile(fsys, path, []byte("x"), 0o644))
	}
	return fsys
}

func paths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path()
	}
	return out
}

func TestCollect_Unlimited(t *testing.T) {
	entries, err := Collect(testTree(t), "/root", 0)
	require.NoError(t, err)
	require.Equal(t, []string{
		"/root/a.txt",
		"/root/sub",
		"/root/sub/b.txt",
		"/root/sub/deep",
		"/root/sub/deep/c.txt",
	}, paths(entries))
}

func TestCollect_TopLevelOnly(t *testing.T) {
	entries, err := Collect(testTree(t), "/root", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"/root/a.txt", "/root/sub"}, paths(entries))
}

func TestCollect_BoundedDepth(t *testing.T) {
	entries, err := Collect(testTree(t), "/root", 2)
	require.NoError(t, err)
	require.Equal(t, []string{
		"/root/a.txt",
		"/root/sub",
		"/root/sub/b.txt",
		"/root/sub/deep",
	}, paths(entries))
}

func TestWalker_LazyNext(t *testing.T) {
	w, err := New(testTree(t), "/root")
	require.NoError(t, err)

	e, err := w.Next()
	require.NoError(t, err)
	require.Equal(t, "/root/a.txt", e.Path())
	require.True(t, e.IsFile())

	e, err = w.Next()
	require.NoError(t, err)
	require.Equal(t, "/root/sub", e.Path())
	require.True(t, e.IsDir())

	for i := 0; i < 3; i++ {
		_, err = w.Next()
		require.NoError(t, err)
	}
	_, err = w.Next()
	require.Equal(t, io.EOF, err)
}

func TestNew_MissingRoot(t *testing.T) {
	_, err := New(afero.NewMemMapFs(), "/absent")
	require.Error(t, err)
}

func TestCollect_EntryMetadataCached(t *testing.T) {
	fsys := testTree(t)
	entries, err := Collect(fsys, "/root", 1)
	require.NoError(t, err)

	// Metadata was captured during the walk; deleting the file afterwards
	// does not affect it.
	require.NoError(t, fsys.Remove("/root/a.txt"))
	require.Equal(t, "a.txt", entries[0].Info().Name())
	require.True(t, entries[0].IsFile())
	require.False(t, entries[0].IsSymlink())
}
