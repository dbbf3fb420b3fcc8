// Package safety rejects spec paths that would resolve outside the root.
package safety

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/treeprune/pkg/errors"
	"github.com/arthur-debert/treeprune/pkg/filesystem"
	"github.com/arthur-debert/treeprune/pkg/paths"
	"github.com/arthur-debert/treeprune/pkg/types"
)

// Validator checks spec entries against a fixed root directory.
type Validator struct {
	fs   types.FS
	root string
}

// NewValidator anchors a validator at root, made absolute so that joins
// with upward segments cannot lose their common ancestor.
func NewValidator(fs types.FS, root string) (*Validator, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve root %s", root)
	}
	return &Validator{fs: fs, root: abs}, nil
}

// Root returns the absolute root the validator compares against.
func (v *Validator) Root() string {
	return v.root
}

// Check returns a PATH_ESCAPE error when entry's path climbs above the
// root, is absolute, or joins to a location whose common ancestor with
// the root is not the root itself.
func (v *Validator) Check(entry types.SpecEntry) error {
	if v.escapes(entry.Path) {
		return errors.Newf(errors.ErrPathEscape, "Path outside root: '%s'", entry.Path).
			WithDetail(errors.DetailPath, entry.Path).
			WithDetail("line", entry.Line)
	}
	return nil
}

func (v *Validator) escapes(p string) bool {
	if paths.EscapesUpward(p) {
		return true
	}
	native := paths.ToNative(p)
	if filepath.IsAbs(native) || strings.HasPrefix(filepath.ToSlash(p), "/") || filepath.VolumeName(native) != "" {
		return true
	}

	dest := filepath.Join(v.root, native)
	common := paths.CommonPrefix(v.root, dest)
	if common == "" {
		return true
	}
	// Identity, not spelling: the common ancestor must be the root itself.
	same, err := filesystem.SameFile(v.fs, v.root, common)
	return err != nil || !same
}
