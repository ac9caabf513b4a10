package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/swirldnet/swirld-go/model/snapshot"
	"github.com/swirldnet/swirld-go/state/snapshot"
	"github.com/swirldnet/swirld-go/utils/unittest"
)

func TestSignedStateDirectoryLayout(t *testing.T) {
	path := snapshot.NewFilePath(unittest.Logger(), "base")

	assert.Equal(t, "base", path.SignedStatesBaseDirectory())
	assert.Equal(t,
		filepath.Join("base", "com.example.App", "3", "mainnet", "42"),
		path.SignedStateDirectory("com.example.App", 3, "mainnet", 42),
	)
	assert.Equal(t,
		filepath.Join("base", "iss", "node3_round42"),
		path.DumpDirectory(model.ReasonISS, 3, 42),
	)
}

func TestSavedStateFiles(t *testing.T) {
	unittest.RunWithTempDir(t, func(dir string) {
		path := snapshot.NewFilePath(unittest.Logger(), dir)

		// write rounds out of order
		for _, round := range []uint64{3, 1, 2} {
			state := unittest.CompleteSignedStateFixture(t, round)
			target := path.SignedStateDirectory("app", 0, "mainnet", round)
			require.NoError(t, snapshot.WriteSignedStateToDisk(unittest.Logger(), target, state, model.ReasonUnknown))
		}

		// junk that must be ignored: a non-round directory, a stray file and
		// a round directory without metadata
		rotation := filepath.Join(dir, "app", "0", "mainnet")
		require.NoError(t, os.MkdirAll(filepath.Join(rotation, "not-a-round"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(rotation, "stray.txt"), []byte("x"), 0644))
		require.NoError(t, os.MkdirAll(filepath.Join(rotation, "99"), 0755))

		savedStates, err := path.SavedStateFiles("app", 0, "mainnet")
		require.NoError(t, err)
		require.Len(t, savedStates, 3)

		// newest first
		assert.Equal(t, uint64(3), savedStates[0].Metadata.Round)
		assert.Equal(t, uint64(2), savedStates[1].Metadata.Round)
		assert.Equal(t, uint64(1), savedStates[2].Metadata.Round)
	})
}

func TestSavedStateFilesMissingDirectory(t *testing.T) {
	unittest.RunWithTempDir(t, func(dir string) {
		path := snapshot.NewFilePath(unittest.Logger(), dir)

		savedStates, err := path.SavedStateFiles("app", 0, "mainnet")
		require.NoError(t, err)
		assert.Empty(t, savedStates)
	})
}
