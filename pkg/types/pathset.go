package types

import (
	"sort"
)

// PathSet is a set of normalized, slash-separated relative paths.
// Operations return new sets and never mutate their receiver.
type PathSet map[string]struct{}

// NewPathSet builds a set from the given paths
func NewPathSet(paths ...string) PathSet {
	s := make(PathSet, len(paths))
	for _, p := range paths {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is a member
func (s PathSet) Has(p string) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of members
func (s PathSet) Len() int {
	return len(s)
}

// Difference returns the members of s that are not in other
func (s PathSet) Difference(other PathSet) PathSet {
	out := make(PathSet)
	for p := range s {
		if !other.Has(p) {
			out[p] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in lexicographic order
func (s PathSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
