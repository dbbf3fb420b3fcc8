package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/treeprune/pkg/types"
)

// Op names a filesystem operation FaultFS can fail
type Op string

const (
	OpStat       Op = "stat"
	OpEvalLinks  Op = "evalsymlinks"
	OpReadDir    Op = "readdir"
	OpReadFile   Op = "readfile"
	OpRemoveDir  Op = "rmdir"
	OpRemoveFile Op = "unlink"
)

type fault struct {
	op   Op
	path string
}

// FaultFS delegates to another types.FS, failing configured operations and
// recording every removal call.
type FaultFS struct {
	types.FS

	mu      sync.Mutex
	faults  map[fault]error
	removes []string
}

// NewFaultFS wraps base
func NewFaultFS(base types.FS) *FaultFS {
	return &FaultFS{FS: base, faults: make(map[fault]error)}
}

// Fail makes op on path return err. Paths are compared after filepath.Clean.
func (f *FaultFS) Fail(op Op, path string, err error) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[fault{op: op, path: filepath.Clean(path)}] = err
	return f
}

// Removes lists the paths passed to RemoveDir or RemoveFile, in call order
func (f *FaultFS) Removes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.removes...)
}

func (f *FaultFS) check(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if op == OpRemoveDir || op == OpRemoveFile {
		f.removes = append(f.removes, path)
	}
	if err, ok := f.faults[fault{op: op, path: filepath.Clean(path)}]; ok {
		return &fs.PathError{Op: string(op), Path: path, Err: err}
	}
	return nil
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultFS) EvalSymlinks(name string) (string, error) {
	if err := f.check(OpEvalLinks, name); err != nil {
		return "", err
	}
	return f.FS.EvalSymlinks(name)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultFS) ReadFile(name string) ([]byte, error) {
	if err := f.check(OpReadFile, name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultFS) RemoveDir(name string) error {
	if err := f.check(OpRemoveDir, name); err != nil {
		return err
	}
	return f.FS.RemoveDir(name)
}

func (f *FaultFS) RemoveFile(name string) error {
	if err := f.check(OpRemoveFile, name); err != nil {
		return err
	}
	return f.FS.RemoveFile(name)
}
