package rename

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// buildMapping turns raw pairs into a source-to-destination table of
// absolute paths. An exact duplicate pair is redundant intent and is
// dropped silently; the same source with a different destination is a
// conflict.
func buildMapping(pairs []Mapping) (map[string]string, error) {
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if p.Src == "" || p.Dst == "" {
			return nil, fmt.Errorf("empty path in pair (%q, %q)", p.Src, p.Dst)
		}
		src, err := filepath.Abs(p.Src)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p.Src, err)
		}
		dst, err := filepath.Abs(p.Dst)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p.Dst, err)
		}
		if have, ok := m[src]; ok {
			if have == dst {
				continue
			}
			return nil, &OneToManyError{Src: src, Dst1: have, Dst2: dst}
		}
		m[src] = dst
	}
	return m, nil
}

// checkCollisions verifies that the table is a functional graph (in-degree
// at most one per destination) and that no path in the batch is an ancestor
// of another. Self-mapped paths are no-ops for execution but still take
// part in the ancestry check.
func checkCollisions(m map[string]string) error {
	rev := make(map[string]string, len(m))
	paths := make([]string, 0, 2*len(m))
	for src, dst := range m {
		if prev, ok := rev[dst]; ok {
			return &ManyToOneError{Src1: prev, Src2: src, Dst: dst}
		}
		rev[dst] = src
		paths = append(paths, src)
		if dst != src {
			paths = append(paths, dst)
		}
	}

	// Component order puts an ancestor directly before its first
	// descendant, so checking adjacent entries suffices. This assumes
	// normalized absolute paths; ".." segments or symlinked ancestors can
	// defeat it, which callers must avoid.
	sort.Slice(paths, func(i, j int) bool {
		return pathLess(paths[i], paths[j])
	})
	for i := 1; i < len(paths); i++ {
		if isAncestor(paths[i-1], paths[i]) {
			return &NonLeafError{Node: paths[i-1], Descendant: paths[i]}
		}
	}
	return nil
}

// pathLess orders paths by components. Byte order is not enough for the
// adjacency scan above: ASCII characters below '/' would slot a sibling
// such as "/work/a!x" between "/work/a" and "/work/a/b".
func pathLess(a, b string) bool {
	sep := string(filepath.Separator)
	as := strings.Split(a, sep)
	bs := strings.Split(b, sep)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}

// isAncestor reports whether path is strictly below ancestor. The
// comparison is component-wise: "/a/b" is not an ancestor of "/a/bc".
func isAncestor(ancestor, path string) bool {
	if ancestor == path {
		return false
	}
	sep := string(filepath.Separator)
	if !strings.HasSuffix(ancestor, sep) {
		ancestor += sep
	}
	return strings.HasPrefix(path, ancestor)
}
