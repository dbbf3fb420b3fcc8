package types

import (
	"io/fs"
	"syscall"
)

// FS is the filesystem interface required for treeprune operations
type FS interface {
	// Inspection
	Stat(name string) (fs.FileInfo, error)
	// EvalSymlinks returns name with every symlink and ".." resolved
	// against the physical tree.
	EvalSymlinks(name string) (string, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)

	// RemoveDir deletes an empty directory. It must fail with an error
	// matching ErrNotDirectory when name is not a directory.
	RemoveDir(name string) error

	// RemoveFile deletes a non-directory entry (file, symlink, socket...).
	RemoveFile(name string) error
}

// ErrNotDirectory is matched (errors.Is) by RemoveDir failures on non-directories.
var ErrNotDirectory error = syscall.ENOTDIR
