// Package walkdir provides lazy, depth-bounded directory traversal for
// generating rename candidates.
package walkdir

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Entry is a traversed path with metadata cached at read time. The
// metadata comes from the directory read and does not follow symlinks;
// under concurrent file access it may go stale.
type Entry struct {
	path string
	info os.FileInfo
}

// Path returns the entry's path.
func (e Entry) Path() string { return e.path }

// Info returns the cached metadata.
func (e Entry) Info() os.FileInfo { return e.info }

// IsDir reports whether the cached metadata is for a directory. Symlinks
// to directories report false.
func (e Entry) IsDir() bool { return e.info.IsDir() }

// IsFile reports whether the cached metadata is for a regular file.
func (e Entry) IsFile() bool { return e.info.Mode().IsRegular() }

// IsSymlink reports whether the cached metadata is for a symlink.
func (e Entry) IsSymlink() bool { return e.info.Mode()&fs.ModeSymlink != 0 }

type stackItem struct {
	depth int
	entry Entry
}

// Walker traverses a directory tree depth-first, producing entries on
// demand. Subdirectories are read only when the walk reaches them.
type Walker struct {
	fsys     afero.Fs
	stack    []stackItem
	maxDepth int
}

// New creates a Walker over root. It fails if root does not exist, is not
// a directory, or cannot be read.
func New(fsys afero.Fs, root string) (*Walker, error) {
	w := &Walker{fsys: fsys}
	if err := w.push(root, 1); err != nil {
		return nil, err
	}
	return w, nil
}

// MaxDepth bounds the traversal depth: 0 means unlimited, 1 means only
// top-level entries.
func (w *Walker) MaxDepth(depth int) *Walker {
	w.maxDepth = depth
	return w
}

// Next returns the next entry, or io.EOF when the traversal is exhausted.
// Errors reading a subdirectory are returned in place of an entry; the
// walk can continue past them.
func (w *Walker) Next() (Entry, error) {
	if len(w.stack) == 0 {
		return Entry{}, io.EOF
	}
	item := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	if item.entry.IsDir() && (w.maxDepth == 0 || item.depth < w.maxDepth) {
		if err := w.push(item.entry.path, item.depth+1); err != nil {
			return item.entry, err
		}
	}
	return item.entry, nil
}

func (w *Walker) push(dir string, depth int) error {
	infos, err := afero.ReadDir(w.fsys, dir)
	if err != nil {
		return err
	}
	// Pushed in reverse so the stack pops in directory order.
	for i := len(infos) - 1; i >= 0; i-- {
		w.stack = append(w.stack, stackItem{
			depth: depth,
			entry: Entry{path: filepath.Join(dir, infos[i].Name()), info: infos[i]},
		})
	}
	return nil
}

// Collect traverses root up to maxDepth and returns all entries, skipping
// unreadable subtrees.
func Collect(fsys afero.Fs, root string, maxDepth int) ([]Entry, error) {
	w, err := New(fsys, root)
	if err != nil {
		return nil, err
	}
	w.MaxDepth(maxDepth)
	var entries []Entry
	for {
		e, err := w.Next()
		if err == io.EOF {
			return entries, nil
		}
		// A read error for a subdirectory still yields the directory
		// entry itself; only its children are skipped.
		if e.info != nil {
			entries = append(entries, e)
		}
	}
}
