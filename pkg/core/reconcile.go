package core

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/treeprune/pkg/diff"
	"github.com/arthur-debert/treeprune/pkg/errors"
	"github.com/arthur-debert/treeprune/pkg/executor"
	"github.com/arthur-debert/treeprune/pkg/filesystem"
	"github.com/arthur-debert/treeprune/pkg/logging"
	"github.com/arthur-debert/treeprune/pkg/plan"
	"github.com/arthur-debert/treeprune/pkg/safety"
	"github.com/arthur-debert/treeprune/pkg/scanner"
	"github.com/arthur-debert/treeprune/pkg/spec"
	"github.com/arthur-debert/treeprune/pkg/types"
)

// Options contains everything a reconciliation run needs
type Options struct {
	SpecFile      string
	RootDir       string
	Class         types.Class
	IgnoreMissing []types.Class
	DryRun        bool
	// Filesystem operations interface for testing
	FS types.FS
}

// Result describes a run. On failure it holds whatever was known when the
// run stopped.
type Result struct {
	Root   string      `json:"root"`
	Class  types.Class `json:"class"`
	DryRun bool        `json:"dry_run"`
	// Retained is the full retain set, sorted
	Retained []string `json:"retained"`
	// ToRemove is the final removal list in spec order
	ToRemove []string `json:"to_remove"`
	// Removed were deleted (or would be, in a dry run)
	Removed []string `json:"removed"`
	// Skipped resolved to the root directory itself
	Skipped []string `json:"skipped,omitempty"`
	// IgnoredMissing are missing entries whose class was pre-approved
	IgnoredMissing []string `json:"ignored_missing,omitempty"`
}

// Reconcile makes the tree under RootDir match the spec for Class.
func Reconcile(opts Options) (*Result, error) {
	logger := logging.GetLogger("core.reconcile")
	defer logging.LogOperationStart(logger, "reconcile")()

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	result := &Result{Root: scanner.SanitizeRoot(opts.RootDir), Class: opts.Class, DryRun: opts.DryRun}

	logger.Info().
		Str("spec", opts.SpecFile).
		Str("root", result.Root).
		Str("class", string(opts.Class)).
		Bool("dry_run", opts.DryRun).
		Msg("Starting reconciliation")

	entries, err := spec.Load(fs, opts.SpecFile)
	if err != nil {
		return result, err
	}
	if len(entries) == 0 {
		logger.Warn().Str("spec", opts.SpecFile).Msg("Spec has no items")
	}

	// Scanning, validation and removal all work from one physical root, so
	// ".." after a symlink in the root spelling cannot point them apart.
	root, err := resolveRoot(fs, opts.RootDir)
	if err != nil {
		return result, err
	}
	result.Root = root

	fsPaths, err := scanner.Scan(fs, root)
	if err != nil {
		return result, err
	}

	comparison := diff.Compare(entries, fsPaths)

	validator, err := safety.NewValidator(fs, root)
	if err != nil {
		return result, err
	}

	// Planning is pure, so path escapes are reported ahead of any other
	// inconsistency in the spec.
	p, err := plan.Build(entries, comparison.OnlyInSpec, validator, plan.Options{
		Class:         opts.Class,
		IgnoreMissing: opts.IgnoreMissing,
	})
	if err != nil {
		return result, err
	}

	if !comparison.Complete() {
		extra := comparison.OnlyInFS.Sorted()
		return result, errors.Newf(errors.ErrSpecFSMismatch,
			"additional %d item(s) not present in spec", len(extra)).WithPaths(extra)
	}

	result.IgnoredMissing = sortedCopy(p.IgnoredMissing())
	if len(result.IgnoredMissing) > 0 {
		logger.Warn().
			Int("count", len(result.IgnoredMissing)).
			Strs("paths", result.IgnoredMissing).
			Msg("Ignoring items already missing")
	}

	if missing := p.FatalMissing(); len(missing) > 0 {
		return result, errors.Newf(errors.ErrMissingItem,
			"already missing: %d", len(missing)).WithPaths(missing)
	}

	result.Retained = p.Retain.Sorted()
	result.ToRemove = p.Removals()
	logger.Info().Int("count", len(result.ToRemove)).Msg("Removal list ready")

	execResult, err := executor.New(executor.Options{
		Root:   root,
		DryRun: opts.DryRun,
		FS:     fs,
	}).Execute(result.ToRemove)
	result.Removed = execResult.Removed
	result.Skipped = execResult.Skipped
	if err != nil {
		return result, err
	}

	return result, nil
}

// resolveRoot returns the absolute, symlink-free location of dir.
func resolveRoot(fs types.FS, dir string) (string, error) {
	dir = scanner.SanitizeRoot(dir)
	resolved, err := fs.EvalSymlinks(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrScan, "cannot access root directory %s", dir).
			WithDetail(errors.DetailPath, dir)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrScan, "cannot resolve root directory %s", dir).
			WithDetail(errors.DetailPath, dir)
	}
	return abs, nil
}

func sortedCopy(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
