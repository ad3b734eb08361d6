package rename

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Policy adjusts executor behavior.
type Policy struct {
	// FilesOnly rejects rename sources that are not regular files or
	// symlinks. Directory renames are structurally safe once validation
	// passes, but refusing them closes the hazard of a directory move
	// invalidating sibling steps mid-run.
	FilesOnly bool
}

// Observer is notified after each successfully executed step. The journal
// uses it to checkpoint progress; the CLI uses it for logging. An observer
// error stops the run with the cursor already advanced past the step.
type Observer interface {
	Applied(index int, m Mapping) error
	Reverted(index int, m Mapping) error
}

// Queue is an ordered rename sequence with a cursor separating applied
// steps from pending ones. Steps before the cursor have been performed on
// the filesystem; steps at and after it have not. The order is fixed at
// resolution time and is load-bearing: each destination is free only
// because a specific earlier step vacated it.
//
// A Queue is single-owner state; it must not be shared across goroutines.
type Queue struct {
	fsys     afero.Fs
	steps    []Mapping
	renamed  int
	policy   Policy
	observer Observer
}

// NewQueue validates pairs and resolves them into an executable queue.
//
// Validation rejects a source with two differing destinations, two sources
// sharing a destination, and any two paths in an ancestor-descendant
// relationship. Exact duplicate pairs are ignored; self-mapped pairs are
// valid but never produce a step.
//
// Paths differing only by letter case are distinct to the validator. On a
// case-insensitive filesystem such a collision is not detected here; it
// surfaces during execution as an ExistsError, and the applied prefix
// remains revertible.
func NewQueue(fsys afero.Fs, pairs []Mapping, policy Policy) (*Queue, error) {
	m, err := buildMapping(pairs)
	if err != nil {
		return nil, err
	}
	if err := checkCollisions(m); err != nil {
		return nil, err
	}
	q := &Queue{fsys: fsys, policy: policy}
	if err := q.resolve(m); err != nil {
		return nil, err
	}
	return q, nil
}

// SetObserver installs an observer for subsequent Rename/Revert calls.
func (q *Queue) SetObserver(o Observer) {
	q.observer = o
}

// Len returns the total number of steps.
func (q *Queue) Len() int {
	return len(q.steps)
}

// Renamed returns the already-applied steps, in execution order.
func (q *Queue) Renamed() []Mapping {
	return q.steps[:q.renamed]
}

// Pending returns the not-yet-applied steps, in execution order.
func (q *Queue) Pending() []Mapping {
	return q.steps[q.renamed:]
}

// Rename applies the pending steps in order, stopping at the first
// failure. On return the cursor sits after the last step that succeeded,
// so a failed run can be resumed or reverted.
func (q *Queue) Rename() error {
	for q.renamed < len(q.steps) {
		m := q.steps[q.renamed]
		if err := q.execute(m); err != nil {
			return err
		}
		q.renamed++
		if q.observer != nil {
			if err := q.observer.Applied(q.renamed-1, m); err != nil {
				return fmt.Errorf("checkpoint after %s: %w", m.Dst, err)
			}
		}
	}
	return nil
}

// Revert undoes the applied steps in reverse order with inverted mappings,
// stopping at the first failure.
func (q *Queue) Revert() error {
	for q.renamed > 0 {
		m := q.steps[q.renamed-1].invert()
		if err := q.execute(m); err != nil {
			return err
		}
		q.renamed--
		if q.observer != nil {
			if err := q.observer.Reverted(q.renamed, m); err != nil {
				return fmt.Errorf("checkpoint after %s: %w", m.Dst, err)
			}
		}
	}
	return nil
}

// RenameAtomic applies the pending steps and, on failure, reverts whatever
// the attempt completed. If the rollback also fails, both errors are
// returned together as an AtomicError; otherwise the original failure is
// returned and the filesystem is back in its pre-call state.
func (q *Queue) RenameAtomic() error {
	renameErr := q.Rename()
	if renameErr == nil {
		return nil
	}
	if revertErr := q.Revert(); revertErr != nil {
		return &AtomicError{Attempt: renameErr, Rollback: revertErr}
	}
	return renameErr
}

// RevertAtomic is the mirror of RenameAtomic: it reverts, and on failure
// re-applies to restore forward progress.
func (q *Queue) RevertAtomic() error {
	revertErr := q.Revert()
	if revertErr == nil {
		return nil
	}
	if renameErr := q.Rename(); renameErr != nil {
		return &AtomicError{Attempt: revertErr, Rollback: renameErr}
	}
	return revertErr
}

// execute performs one primitive rename. The destination-exists check runs
// immediately before the rename to shrink, not eliminate, the window for
// races with concurrent processes; a check-then-act race still surfaces as
// a filesystem error rather than silent data loss.
func (q *Queue) execute(m Mapping) error {
	if q.policy.FilesOnly {
		info, err := lstat(q.fsys, m.Src)
		if err != nil {
			return fmt.Errorf("stat %s: %w", m.Src, err)
		}
		if !isFileOrSymlink(info) {
			return &NotFileError{Path: m.Src}
		}
	}
	if pathExists(q.fsys, m.Dst) {
		return &ExistsError{Src: m.Src, Dst: m.Dst}
	}
	if dir := filepath.Dir(m.Dst); dir != "" {
		if err := q.fsys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := q.fsys.Rename(m.Src, m.Dst); err != nil {
		return fmt.Errorf("rename %s to %s: %w", m.Src, m.Dst, err)
	}
	return nil
}
