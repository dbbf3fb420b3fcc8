package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// Tree is a fixture directory. Root is the directory being pruned; specs
// are written to Base, outside Root.
type Tree struct {
	Base string
	Root string
}

// NewTree creates a fresh root holding items. An item ending in "/" is a
// directory, anything else a file whose content is its own path. Base is
// symlink-free so it compares equal to a resolved root.
func NewTree(t *testing.T, items ...string) *Tree {
	t.Helper()
	base, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	tree := &Tree{Base: base, Root: filepath.Join(base, "root")}
	CreateDir(t, base, "root")
	tree.Add(t, items...)
	return tree
}

// Add creates more items below the root
func (tr *Tree) Add(t *testing.T, items ...string) {
	t.Helper()
	for _, item := range items {
		if strings.HasSuffix(item, "/") {
			CreateDir(t, tr.Root, filepath.FromSlash(strings.TrimSuffix(item, "/")))
			continue
		}
		CreateFile(t, tr.Root, filepath.FromSlash(item), item)
	}
}

// Symlink creates rel below the root pointing at target
func (tr *Tree) Symlink(t *testing.T, target, rel string) {
	t.Helper()
	CreateSymlink(t, target, tr.Path(rel))
}

// Path returns the native path of a slash-separated item
func (tr *Tree) Path(rel string) string {
	return filepath.Join(tr.Root, filepath.FromSlash(rel))
}

// Exists reports whether rel exists, without following symlinks
func (tr *Tree) Exists(rel string) bool {
	_, err := os.Lstat(tr.Path(rel))
	return err == nil
}

// WriteSpec writes lines to a spec file outside the root and returns its path
func (tr *Tree) WriteSpec(t *testing.T, lines ...string) string {
	t.Helper()
	return CreateFile(t, tr.Base, "tree.spec", strings.Join(lines, "\n")+"\n")
}

// Listing returns every item below the root, "." included, sorted
func (tr *Tree) Listing(t *testing.T) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(tr.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(tr.Root, p)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to list %s: %v", tr.Root, err)
	}
	sort.Strings(out)
	return out
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateDir creates a directory in the specified parent directory.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// CreateSymlink creates a symbolic link pointing to target.
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatalf("Failed to create parent directory for symlink %s: %v", link, err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink %s -> %s: %v", link, target, err)
	}
}

// Chmod changes permissions and restores 0755 when the test ends so the
// temporary directory can be cleaned up.
func Chmod(t *testing.T, path string, mode os.FileMode) {
	t.Helper()
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("Failed to chmod %s: %v", path, err)
	}
	t.Cleanup(func() { _ = os.Chmod(path, 0755) })
}

// SkipIfRoot skips tests that rely on permission errors
func SkipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
}
