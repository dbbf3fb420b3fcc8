package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/treeprune/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) EvalSymlinks(name string) (string, error) {
	return filepath.EvalSymlinks(name)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (o *osFS) RemoveDir(name string) error {
	return removeDir(name)
}

func (o *osFS) RemoveFile(name string) error {
	return removeFile(name)
}

// SameFile reports whether a and b resolve to the same underlying
// filesystem object. Symlinks are followed, as for Stat.
func SameFile(filesystem types.FS, a, b string) (bool, error) {
	ai, err := filesystem.Stat(a)
	if err != nil {
		return false, err
	}
	bi, err := filesystem.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(ai, bi), nil
}
