package plan

import "github.com/arthur-debert/treeprune/pkg/types"

// Filter drops every candidate present in retain, keeping the original
// order. Retention always wins over removal.
func Filter(retain types.PathSet, candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !retain.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
