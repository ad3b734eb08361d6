package rename

import "fmt"

// OneToManyError reports a source that maps to two different destinations.
type OneToManyError struct {
	Src  string
	Dst1 string
	Dst2 string
}

func (e *OneToManyError) Error() string {
	return fmt.Sprintf("multiple destinations for source %s: %s, %s", e.Src, e.Dst1, e.Dst2)
}

// ManyToOneError reports two sources that map to the same destination.
type ManyToOneError struct {
	Src1 string
	Src2 string
	Dst  string
}

func (e *ManyToOneError) Error() string {
	return fmt.Sprintf("destination collision at %s: sources %s, %s", e.Dst, e.Src1, e.Src2)
}

// NonLeafError reports two paths in the batch where one is an ancestor of
// the other. Renaming the ancestor would invalidate the descendant's path,
// so the two mappings cannot both be meaningful.
type NonLeafError struct {
	Node       string
	Descendant string
}

func (e *NonLeafError) Error() string {
	return fmt.Sprintf("non-leaf node %s has descendant %s in the same batch", e.Node, e.Descendant)
}

// ExistsError reports a rename whose destination already exists on disk.
type ExistsError struct {
	Src string
	Dst string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("destination %s already exists (renaming from %s)", e.Dst, e.Src)
}

// NotFileError reports a rename source that is neither a regular file nor a
// symlink, rejected under the files-only policy.
type NotFileError struct {
	Path string
}

func (e *NotFileError) Error() string {
	return fmt.Sprintf("source %s is not a regular file or symlink", e.Path)
}

// AtomicError reports an action whose automatic rollback also failed. Both
// failures are kept; either may itself be an AtomicError.
type AtomicError struct {
	Attempt  error
	Rollback error
}

func (e *AtomicError) Error() string {
	return fmt.Sprintf("atomic action failed: during attempt: %v; during rollback: %v", e.Attempt, e.Rollback)
}

func (e *AtomicError) Unwrap() []error {
	return []error{e.Attempt, e.Rollback}
}
