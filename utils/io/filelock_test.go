package io

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileLockExclusive(t *testing.T) {
	dir, err := os.MkdirTemp("", "filelock-test-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	first := NewFileLock(dir)
	require.NoError(t, first.Lock())

	second := NewFileLock(dir)
	require.Error(t, second.Lock())

	require.NoError(t, first.Unlock())
	require.NoError(t, second.Lock())
	require.NoError(t, second.Unlock())
}

func TestFileLockCreatesDirectory(t *testing.T) {
	dir, err := os.MkdirTemp("", "filelock-test-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	lock := NewFileLock(dir + "/nested/deeper")
	require.NoError(t, lock.Lock())
	require.NoError(t, lock.Unlock())
}
