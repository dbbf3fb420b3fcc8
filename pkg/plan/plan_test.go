package plan

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/treeprune/pkg/paths"
	"github.com/arthur-debert/treeprune/pkg/spec"
	"github.com/arthur-debert/treeprune/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allowAll struct{}

func (allowAll) Check(types.SpecEntry) error { return nil }

type rejectPath struct {
	path    string
	checked []string
}

func (r *rejectPath) Check(e types.SpecEntry) error {
	r.checked = append(r.checked, e.Path)
	if e.Path == r.path {
		return stderrors.New("escape")
	}
	return nil
}

func mustParse(t *testing.T, text string) []types.SpecEntry {
	t.Helper()
	entries, err := spec.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return entries
}

func TestBuild_AncestorsAreRetained(t *testing.T) {
	entries := mustParse(t, "keep a/b/c\ndrop a/b/d\nkeep a\ndrop a/b\n")

	p, err := Build(entries, types.NewPathSet(), allowAll{}, Options{Class: "keep"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "a/b", "a/b/c"}, p.Retain.Sorted())
	assert.Equal(t, []string{"a/b/d", "a/b"}, p.Candidates)
	assert.Equal(t, []string{"a/b/d"}, p.Removals(), "a/b is an ancestor of a kept item")
}

func TestBuild_RetainedPathsNeverRemoved(t *testing.T) {
	entries := mustParse(t, ". .\nx a\ny a/b\nx a/b/c\ny a/b/c/d\nx e\ny e/f\n")

	for _, class := range []types.Class{".", "x", "y", "none"} {
		t.Run(string(class), func(t *testing.T) {
			p, err := Build(entries, types.NewPathSet(), allowAll{}, Options{Class: class})
			require.NoError(t, err)

			for _, removal := range p.Removals() {
				assert.False(t, p.Retain.Has(removal), "%s is both retained and removed", removal)
			}
			for _, e := range entries {
				if e.Class != class {
					continue
				}
				for _, prefix := range paths.Prefixes(e.Path) {
					assert.True(t, p.Retain.Has(prefix))
				}
			}
		})
	}
}

func TestBuild_NormalizesPaths(t *testing.T) {
	entries := mustParse(t, "keep ./a//b/\ndrop a/./b\ndrop ./c\n")

	p, err := Build(entries, types.NewPathSet(), allowAll{}, Options{Class: "keep"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "a/b"}, p.Retain.Sorted())
	assert.Equal(t, []string{"c"}, p.Removals())
}

func TestBuild_DuplicateCandidatesCollapse(t *testing.T) {
	entries := mustParse(t, "drop x\ndrop ./x\n")

	p, err := Build(entries, types.NewPathSet(), allowAll{}, Options{Class: "keep"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, p.Candidates)
}

func TestBuild_Missing(t *testing.T) {
	entries := mustParse(t, "drop x\nkeep gone/y\nother z\nkeep a\n")

	p, err := Build(entries, types.NewPathSet("x", "gone/y", "z"), allowAll{}, Options{
		Class:         "keep",
		IgnoreMissing: []types.Class{"drop"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, p.IgnoredMissing())
	assert.Equal(t, []string{"gone/y", "z"}, p.FatalMissing())
	assert.Equal(t, []string{"a"}, p.Retain.Sorted(), "missing keep entries add nothing")
	assert.Empty(t, p.Candidates)
}

func TestBuild_CheckerAbortsBeforeLaterEntries(t *testing.T) {
	entries := mustParse(t, "keep a\nevil ../../etc/passwd\nkeep b\n")
	checker := &rejectPath{path: "../../etc/passwd"}

	p, err := Build(entries, types.NewPathSet(), checker, Options{Class: "keep"})
	require.Error(t, err)
	assert.Nil(t, p)
	assert.Equal(t, []string{"a", "../../etc/passwd"}, checker.checked)
}

func TestFilter(t *testing.T) {
	retain := types.NewPathSet("a", "a/b")
	candidates := []string{"z", "a/b", "y", "a"}

	assert.Equal(t, []string{"z", "y"}, Filter(retain, candidates))
	assert.Equal(t, []string{"z", "a/b", "y", "a"}, candidates, "input is left untouched")
	assert.Empty(t, Filter(retain, nil))
}
