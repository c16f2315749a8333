package testutil

import (
	"errors"
	"os"

	"github.com/spf13/afero"
)

// ErrNoSpace is returned by RenameFailFs
var ErrNoSpace = errors.New("rename: no space left on device")

// ErrIO is returned by WriteFailFs at its failure point
var ErrIO = errors.New("input/output error")

// RenameFailFs fails every rename, as a full or read-only directory would
type RenameFailFs struct{ afero.Fs }

// Rename always fails
func (RenameFailFs) Rename(string, string) error { return ErrNoSpace }

// CrashFs dies between the temporary write and the rename
type CrashFs struct{ afero.Fs }

// Rename panics to simulate the process being killed
func (CrashFs) Rename(string, string) error { panic("process killed") }

// WriteFault selects where WriteFailFs fails
type WriteFault int

const (
	FailWrite WriteFault = iota
	FailSync
	FailClose
	FailChmod
)

func (f WriteFault) String() string {
	switch f {
	case FailWrite:
		return "write"
	case FailSync:
		return "sync"
	case FailClose:
		return "close"
	case FailChmod:
		return "chmod"
	}
	return "unknown"
}

// WriteFailFs fails newly created files at one point of the
// write, sync, close, chmod sequence. Existing files are unaffected.
type WriteFailFs struct {
	afero.Fs
	Fail WriteFault
}

// OpenFile wraps files opened for creation
func (f WriteFailFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil || flag&os.O_CREATE == 0 {
		return file, err
	}
	return &faultFile{File: file, fail: f.Fail}, nil
}

// Chmod fails when Fail is FailChmod
func (f WriteFailFs) Chmod(name string, mode os.FileMode) error {
	if f.Fail == FailChmod {
		return ErrIO
	}
	return f.Fs.Chmod(name, mode)
}

type faultFile struct {
	afero.File
	fail WriteFault
}

func (f *faultFile) Write(p []byte) (int, error) {
	if f.fail == FailWrite {
		return 0, ErrIO
	}
	return f.File.Write(p)
}

func (f *faultFile) Sync() error {
	if f.fail == FailSync {
		return ErrIO
	}
	return f.File.Sync()
}

func (f *faultFile) Close() error {
	err := f.File.Close()
	if f.fail == FailClose {
		return ErrIO
	}
	return err
}
