package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/treeprune/pkg/errors"
	"github.com/arthur-debert/treeprune/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b", "c"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "top file"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0755))
	return root
}

func TestScan(t *testing.T) {
	root := buildTree(t)

	got, err := Scan(filesystem.NewOS(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{".", "a", "a/b", "a/b/c", "empty", "top file"}, got.Sorted())
}

func TestScan_TrailingSeparator(t *testing.T) {
	root := buildTree(t)

	got, err := Scan(filesystem.NewOS(), root+string(os.PathSeparator)+string(os.PathSeparator))
	require.NoError(t, err)
	assert.True(t, got.Has("a/b/c"))
	assert.True(t, got.Has("."))
}

func TestScan_SymlinksAreLeaves(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := buildTree(t)
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret"), nil, 0644))

	require.NoError(t, os.Symlink(outside, filepath.Join(root, "dirlink")))
	require.NoError(t, os.Symlink(filepath.Join(root, "top file"), filepath.Join(root, "filelink")))
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), filepath.Join(root, "dangling")))

	got, err := Scan(filesystem.NewOS(), root)
	require.NoError(t, err)
	assert.True(t, got.Has("dirlink"))
	assert.False(t, got.Has("dirlink/secret"), "symlinked directories must not be traversed")
	assert.True(t, got.Has("filelink"))
	assert.True(t, got.Has("dangling"))
}

func TestScan_Errors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := Scan(filesystem.NewOS(), filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrScan))
	})

	t.Run("root is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "f")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		_, err := Scan(filesystem.NewOS(), file)
		assert.True(t, errors.IsErrorCode(err, errors.ErrScan))
	})

	t.Run("unreadable subdirectory aborts", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permission bits are not enforced")
		}
		root := buildTree(t)
		locked := filepath.Join(root, "locked")
		require.NoError(t, os.Mkdir(locked, 0000))
		t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

		_, err := Scan(filesystem.NewOS(), root)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrScan))
	})
}

func TestSanitizeRoot(t *testing.T) {
	sep := string(os.PathSeparator)
	assert.Equal(t, "x", SanitizeRoot("x"+sep+sep))
	assert.Equal(t, sep, SanitizeRoot(sep))
	assert.Equal(t, "", SanitizeRoot(""))
}
