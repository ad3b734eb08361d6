package rename

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// resolve orders a validated mapping table into an executable step
// sequence.
//
// The table is a functional graph: every path has at most one outgoing and
// one incoming mapping, so each connected component is a simple chain or a
// simple cycle. A chain is emitted in reverse discovery order — the link
// nearest the unmapped terminal runs first, because its destination is
// known free, which in turn frees the destination of the link before it. A
// cycle is broken by renaming the last node before closure to a synthetic
// temporary path, then handled like a chain, with the temporary moved onto
// the original source as the final step.
//
// Walks stop when they reach a node already claimed by an earlier walk, so
// entering a chain mid-way only emits the missing head links, ahead of
// nothing they depend on (the earlier tail already sits before them in the
// queue).
func (q *Queue) resolve(m map[string]string) error {
	srcs := make([]string, 0, len(m))
	for src := range m {
		srcs = append(srcs, src)
	}
	sort.Strings(srcs)

	visited := make(map[string]bool, len(m))
	for _, src := range srcs {
		if m[src] == src || visited[src] {
			continue
		}
		visited[src] = true
		links := []Mapping{{Src: src, Dst: m[src]}}

		next := m[src]
		closed := false
		for {
			dst, ok := m[next]
			if !ok || visited[next] {
				break
			}
			visited[next] = true
			if dst == src {
				// The component is a cycle. Park the closing node at a
				// temporary path; the final step moves it onto the freed
				// original source.
				temp, err := q.tempPath(next)
				if err != nil {
					return err
				}
				links = append(links, Mapping{Src: next, Dst: temp})
				reverseSteps(links)
				links = append(links, Mapping{Src: temp, Dst: src})
				closed = true
				break
			}
			links = append(links, Mapping{Src: next, Dst: dst})
			next = dst
		}
		if !closed {
			reverseSteps(links)
		}
		q.steps = append(q.steps, links...)
	}
	return nil
}

// tempPath derives an unused sibling path from base by replacing its
// extension with ".temp_0", ".temp_1", and so on. Probing checks the
// filesystem but cannot exclude a concurrent process grabbing the same
// name between the probe and the rename.
func (q *Queue) tempPath(base string) (string, error) {
	stem := base
	if ext := filepath.Ext(base); ext != "" && ext != filepath.Base(base) {
		stem = strings.TrimSuffix(base, ext)
	}
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s.temp_%d", stem, i)
		if !pathExists(q.fsys, candidate) {
			return candidate, nil
		}
	}
}

func reverseSteps(steps []Mapping) {
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
}
