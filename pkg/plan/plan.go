// Package plan decides, per spec entry, whether an item is missing, must
// stay or is a removal candidate, and resolves retain/remove conflicts.
package plan

import (
	"github.com/arthur-debert/treeprune/pkg/logging"
	"github.com/arthur-debert/treeprune/pkg/paths"
	"github.com/arthur-debert/treeprune/pkg/types"
)

// Checker validates a single spec entry before it takes part in planning.
type Checker interface {
	Check(entry types.SpecEntry) error
}

// Options selects what the planner keeps.
type Options struct {
	// Class is the class whose items (and their ancestors) are retained.
	Class types.Class
	// IgnoreMissing lists classes whose missing entries are not fatal.
	IgnoreMissing []types.Class
}

// Plan is the outcome of walking the spec.
type Plan struct {
	Missing []types.MissingEntry
	// Retain holds every ancestor-or-self prefix of every kept entry.
	Retain types.PathSet
	// Candidates are existing, differently classed paths in spec order,
	// before retention is applied.
	Candidates []string
}

// Build walks entries in file order. Every entry is validated with checker
// first; the first failure aborts planning and is returned as is.
// onlyInSpec is the set of normalized spec paths absent from disk.
func Build(entries []types.SpecEntry, onlyInSpec types.PathSet, checker Checker, opts Options) (*Plan, error) {
	logger := logging.GetLogger("plan")

	ignored := make(map[types.Class]bool, len(opts.IgnoreMissing))
	for _, c := range opts.IgnoreMissing {
		ignored[c] = true
	}

	p := &Plan{Retain: make(types.PathSet)}
	seen := make(map[string]bool)

	for _, entry := range entries {
		if err := checker.Check(entry); err != nil {
			return nil, err
		}

		normalized := paths.Normalize(entry.Path)

		if onlyInSpec.Has(normalized) {
			p.Missing = append(p.Missing, types.MissingEntry{
				Entry:   entry,
				Ignored: ignored[entry.Class],
			})
			continue
		}

		if entry.Class == opts.Class {
			for _, prefix := range paths.Prefixes(normalized) {
				p.Retain[prefix] = struct{}{}
			}
			continue
		}

		if !seen[normalized] {
			seen[normalized] = true
			p.Candidates = append(p.Candidates, normalized)
		}
	}

	logger.Debug().
		Int("retain", p.Retain.Len()).
		Int("candidates", len(p.Candidates)).
		Int("missing", len(p.Missing)).
		Msg("Plan built")
	return p, nil
}

// Removals returns the final removal list: candidates minus the retain set.
func (p *Plan) Removals() []string {
	return Filter(p.Retain, p.Candidates)
}

// IgnoredMissing returns the paths of missing entries whose class is
// pre-approved.
func (p *Plan) IgnoredMissing() []string {
	return p.missingPaths(true)
}

// FatalMissing returns the paths of missing entries that abort the run.
func (p *Plan) FatalMissing() []string {
	return p.missingPaths(false)
}

func (p *Plan) missingPaths(ignored bool) []string {
	var out []string
	for _, m := range p.Missing {
		if m.Ignored == ignored {
			out = append(out, m.Entry.Path)
		}
	}
	return out
}
