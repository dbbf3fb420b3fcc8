//go:build unix

package filesystem

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// removeDir is rmdir(2): empty directories only, ENOTDIR for anything else.
func removeDir(name string) error {
	if err := unix.Rmdir(name); err != nil {
		return &fs.PathError{Op: "rmdir", Path: name, Err: err}
	}
	return nil
}

func removeFile(name string) error {
	if err := unix.Unlink(name); err != nil {
		return &fs.PathError{Op: "unlink", Path: name, Err: err}
	}
	return nil
}
