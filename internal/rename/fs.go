package rename

import (
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// lstat stats name without following a symlink at name itself, when the
// backing filesystem can do that. Memory-backed filesystems fall back to
// plain Stat.
func lstat(fsys afero.Fs, name string) (os.FileInfo, error) {
	if lr, ok := fsys.(afero.Lstater); ok {
		info, _, err := lr.LstatIfPossible(name)
		return info, err
	}
	return fsys.Stat(name)
}

// pathExists reports whether anything exists at name, including a dangling
// symlink.
func pathExists(fsys afero.Fs, name string) bool {
	_, err := lstat(fsys, name)
	return err == nil
}

// isFileOrSymlink reports whether info describes a regular file or a symlink.
func isFileOrSymlink(info os.FileInfo) bool {
	return info.Mode().IsRegular() || info.Mode()&fs.ModeSymlink != 0
}
