//go:build !unix

package filesystem

import (
	"io/fs"
	"os"
	"syscall"
)

func removeDir(name string) error {
	info, err := os.Lstat(name)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "rmdir", Path: name, Err: syscall.ENOTDIR}
	}
	return os.Remove(name)
}

func removeFile(name string) error {
	return os.Remove(name)
}
