package io

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileLock represents an exclusive file lock that prevents multiple processes
// from accessing the same resource. If another process tries to acquire the
// lock, it will fail and should crash.
type FileLock struct {
	lockFile *flock.Flock
	path     string
}

// NewFileLock creates a new file lock inside the given directory. The
// directory does not need to exist yet; it is created when the lock is
// acquired.
func NewFileLock(dir string) *FileLock {
	lockPath := filepath.Join(dir, ".lock")

	return &FileLock{
		lockFile: flock.New(lockPath),
		path:     lockPath,
	}
}

// Lock acquires the exclusive lock. It fails without blocking when another
// process already holds the lock on the same directory.
func (fl *FileLock) Lock() error {
	dir := filepath.Dir(fl.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for lock file %s: %w", fl.path, err)
	}

	locked, err := fl.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire file lock at %s: %w", fl.path, err)
	}
	if !locked {
		return fmt.Errorf("cannot acquire exclusive lock on %s: another process is already using this resource", fl.path)
	}
	return nil
}

// Unlock releases the file lock.
func (fl *FileLock) Unlock() error {
	if err := fl.lockFile.Unlock(); err != nil {
		return fmt.Errorf("failed to release file lock at %s: %w", fl.path, err)
	}
	return nil
}
