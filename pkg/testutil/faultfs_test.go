package testutil

import (
	"syscall"
	"testing"

	"github.com/arthur-debert/treeprune/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaultFS(t *testing.T) {
	tree := NewTree(t, "a", "b")
	faulty := NewFaultFS(filesystem.NewOS()).Fail(OpRemoveFile, tree.Path("b")+"/", syscall.EPERM)

	require.NoError(t, faulty.RemoveFile(tree.Path("a")))
	err := faulty.RemoveFile(tree.Path("b"))
	assert.ErrorIs(t, err, syscall.EPERM)

	assert.Equal(t, []string{tree.Path("a"), tree.Path("b")}, faulty.Removes())
	assert.False(t, tree.Exists("a"))
	assert.True(t, tree.Exists("b"))

	_, err = faulty.Stat(tree.Path("b"))
	assert.NoError(t, err)
}

func TestTree(t *testing.T) {
	tree := NewTree(t, "dir/", "sub/file.txt")
	tree.Symlink(t, "sub", "link")

	assert.Equal(t, []string{".", "dir", "link", "sub", "sub/file.txt"}, tree.Listing(t))

	spec := tree.WriteSpec(t, "keep .", "keep dir")
	assert.NotContains(t, spec, tree.Root)
}
