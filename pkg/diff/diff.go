// Package diff compares the paths a spec declares with the paths found on disk.
package diff

import (
	"github.com/arthur-debert/treeprune/pkg/paths"
	"github.com/arthur-debert/treeprune/pkg/types"
)

// Result holds both directions of the comparison.
type Result struct {
	// OnlyInFS are items on disk that no spec line describes.
	OnlyInFS types.PathSet
	// OnlyInSpec are spec paths with nothing on disk.
	OnlyInSpec types.PathSet
}

// SpecPaths returns the normalized path set of the given entries.
func SpecPaths(entries []types.SpecEntry) types.PathSet {
	set := make(types.PathSet, len(entries))
	for _, e := range entries {
		set[paths.Normalize(e.Path)] = struct{}{}
	}
	return set
}

// Compare diffs the spec against the scanned filesystem. fsPaths must
// already be in canonical form.
func Compare(entries []types.SpecEntry, fsPaths types.PathSet) Result {
	specPaths := SpecPaths(entries)
	return Result{
		OnlyInFS:   fsPaths.Difference(specPaths),
		OnlyInSpec: specPaths.Difference(fsPaths),
	}
}

// Complete reports whether every item on disk is covered by the spec.
func (r Result) Complete() bool {
	return r.OnlyInFS.Len() == 0
}
