package rename

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// State is the serializable snapshot of a queue: the applied and pending
// step lists, each in execution order.
//
// The order is not re-derivable from the filesystem. If a saved snapshot is
// edited or reordered, or the files underneath have moved since it was
// written, loading it still succeeds but reverting from it is no longer
// guaranteed to reproduce the original layout; that responsibility stays
// with whoever holds the file.
type State struct {
	Renamed []Mapping `json:"renamed"`
	Pending []Mapping `json:"pending"`
}

// UnmarshalJSON decodes a snapshot strictly: exactly the two list fields,
// both required.
func (s *State) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if key != "renamed" && key != "pending" {
			return fmt.Errorf("state: unknown field %q", key)
		}
	}
	renamedRaw, ok := raw["renamed"]
	if !ok {
		return fmt.Errorf("state: missing field %q", "renamed")
	}
	pendingRaw, ok := raw["pending"]
	if !ok {
		return fmt.Errorf("state: missing field %q", "pending")
	}
	if err := json.Unmarshal(renamedRaw, &s.Renamed); err != nil {
		return fmt.Errorf("state: field %q: %w", "renamed", err)
	}
	if err := json.Unmarshal(pendingRaw, &s.Pending); err != nil {
		return fmt.Errorf("state: field %q: %w", "pending", err)
	}
	return nil
}

// State returns the queue's current snapshot.
func (q *Queue) State() State {
	return State{Renamed: q.Renamed(), Pending: q.Pending()}
}

// FromState reconstructs a queue from a snapshot. The step sequence is the
// concatenation of the renamed and pending lists, with the cursor after the
// renamed prefix. No re-validation or re-resolution happens; the snapshot
// is trusted as-is.
func FromState(fsys afero.Fs, s State, policy Policy) *Queue {
	steps := make([]Mapping, 0, len(s.Renamed)+len(s.Pending))
	steps = append(steps, s.Renamed...)
	steps = append(steps, s.Pending...)
	return &Queue{
		fsys:    fsys,
		steps:   steps,
		renamed: len(s.Renamed),
		policy:  policy,
	}
}

// SaveState writes the queue's snapshot to path as indented JSON.
func SaveState(fsys afero.Fs, path string, q *Queue) error {
	data, err := json.MarshalIndent(q.State(), "", "  ")
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write state %s: %w", path, err)
	}
	return nil
}

// LoadState reads a snapshot written by SaveState and reconstructs its
// queue.
func LoadState(fsys afero.Fs, path string, policy Policy) (*Queue, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read state %s: %w", path, err)
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("state %s: %w", path, err)
	}
	return FromState(fsys, s, policy), nil
}
