package executor

import (
	stderrors "errors"
	"path/filepath"

	"github.com/arthur-debert/treeprune/pkg/errors"
	"github.com/arthur-debert/treeprune/pkg/filesystem"
	"github.com/arthur-debert/treeprune/pkg/logging"
	"github.com/arthur-debert/treeprune/pkg/paths"
	"github.com/arthur-debert/treeprune/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	// Root is the directory removal paths are relative to
	Root   string
	DryRun bool
	// Filesystem operations interface for testing
	FS types.FS
}

// Executor removes planned paths below a root
type Executor struct {
	root   string
	dryRun bool
	logger zerolog.Logger
	fs     types.FS
}

// Result lists what the executor did, in the order it did it
type Result struct {
	Removed []string `json:"removed"`
	// Skipped are paths that resolved to the root itself
	Skipped []string `json:"skipped,omitempty"`
}

// New creates a new executor instance
func New(opts Options) *Executor {
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &Executor{
		root:   opts.Root,
		dryRun: opts.DryRun,
		logger: logging.GetLogger("executor"),
		fs:     fs,
	}
}

// Execute removes every path in order and stops at the first failure.
// The returned Result covers the work done before any error.
func (e *Executor) Execute(removals []string) (Result, error) {
	var result Result

	for _, rel := range removals {
		target := filepath.Join(e.root, paths.ToNative(rel))

		// "<root>/." is rejected by rmdir with EINVAL and is never a target anyway
		if same, err := filesystem.SameFile(e.fs, e.root, target); err == nil && same {
			e.logger.Debug().Str("path", rel).Msg("Skipping root directory")
			result.Skipped = append(result.Skipped, rel)
			continue
		}

		if e.dryRun {
			e.logger.Info().Str("path", rel).Msg("Would remove")
			result.Removed = append(result.Removed, rel)
			continue
		}

		if err := e.remove(target); err != nil {
			return result, errors.Wrapf(err, errors.ErrRemoval, "failed to remove %s", rel).
				WithDetail(errors.DetailPath, rel).
				WithDetail("removed", len(result.Removed))
		}
		e.logger.Info().Str("path", rel).Msg("Removed")
		result.Removed = append(result.Removed, rel)
	}

	return result, nil
}

func (e *Executor) remove(target string) error {
	err := e.fs.RemoveDir(target)
	if err == nil {
		return nil
	}
	if !stderrors.Is(err, types.ErrNotDirectory) {
		return err
	}
	return e.fs.RemoveFile(target)
}
