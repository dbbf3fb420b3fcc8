// Package scanner enumerates a live directory tree as a set of canonical
// relative paths.
package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/treeprune/pkg/errors"
	"github.com/arthur-debert/treeprune/pkg/logging"
	"github.com/arthur-debert/treeprune/pkg/types"
)

// RootToken is the relative path recorded for the root directory itself.
const RootToken = "."

// Scan walks root and returns every item below it: regular files, other
// non-directory entries, plain directories and symlinks. Symlinks are
// recorded as leaves and never traversed, whatever they point to. The root
// itself is recorded as ".".
//
// Any I/O error aborts the scan; there is no partial result.
func Scan(filesystem types.FS, root string) (types.PathSet, error) {
	logger := logging.GetLogger("scanner")
	defer logging.LogOperationStart(logger, "scan")()

	root = SanitizeRoot(root)
	info, err := filesystem.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScan, "cannot access root directory %s", root).
			WithDetail(errors.DetailPath, root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrScan, "root %s is not a directory", root).
			WithDetail(errors.DetailPath, root)
	}

	found := []string{RootToken}
	if err := walk(filesystem, root, RootToken, &found); err != nil {
		return nil, err
	}

	logger.Debug().Str("root", root).Int("count", len(found)).Msg("Scan finished")
	return types.NewPathSet(found...), nil
}

// SanitizeRoot strips trailing separators so relative paths are computed
// against a stable prefix. The filesystem root keeps its single separator.
func SanitizeRoot(root string) string {
	trimmed := strings.TrimRight(root, string(os.PathSeparator)+"/")
	if trimmed == "" && root != "" {
		return string(os.PathSeparator)
	}
	return trimmed
}

func walk(filesystem types.FS, dir, rel string, found *[]string) error {
	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrScan, "failed to read directory %s", dir).
			WithDetail(errors.DetailPath, dir)
	}

	for _, entry := range entries {
		child := entry.Name()
		if rel != RootToken {
			child = rel + "/" + entry.Name()
		}
		*found = append(*found, child)

		if entry.Type()&os.ModeSymlink != 0 || !entry.IsDir() {
			continue
		}
		if err := walk(filesystem, filepath.Join(dir, entry.Name()), child, found); err != nil {
			return err
		}
	}
	return nil
}
