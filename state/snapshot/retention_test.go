package snapshot_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/swirldnet/swirld-go/model/snapshot"
	"github.com/swirldnet/swirld-go/state/snapshot"
	"github.com/swirldnet/swirld-go/utils/unittest"
)

// savedStatesFixture creates one directory per round and returns the list
// newest first, the ordering Purge expects. Minimum generation non-ancient
// is derived from the round for easy assertions.
func savedStatesFixture(t *testing.T, base string, newestFirst []uint64) []model.SavedStateInfo {
	savedStates := make([]model.SavedStateInfo, 0, len(newestFirst))
	for _, round := range newestFirst {
		dir := filepath.Join(base, strconv.FormatUint(round, 10))
		require.NoError(t, os.MkdirAll(dir, 0755))
		savedStates = append(savedStates, model.SavedStateInfo{
			Directory: dir,
			Metadata: model.SavedStateMetadata{
				Round:                       round,
				MinimumGenerationNonAncient: int64(round * 100),
			},
		})
	}
	return savedStates
}

func TestPurgeDeletesOldestExcess(t *testing.T) {
	unittest.RunWithTempDir(t, func(dir string) {
		savedStates := savedStatesFixture(t, dir, []uint64{50, 49, 48, 47})

		minGen := snapshot.Purge(unittest.Logger(), savedStates, 2)

		// rounds 48 and 47 are gone, 50 and 49 survive
		assert.NoDirExists(t, savedStates[2].Directory)
		assert.NoDirExists(t, savedStates[3].Directory)
		assert.DirExists(t, savedStates[0].Directory)
		assert.DirExists(t, savedStates[1].Directory)

		// the oldest survivor is round 49
		assert.Equal(t, int64(4900), minGen)
	})
}

func TestPurgeKeepsAllWhenUnderLimit(t *testing.T) {
	unittest.RunWithTempDir(t, func(dir string) {
		savedStates := savedStatesFixture(t, dir, []uint64{12, 11})

		minGen := snapshot.Purge(unittest.Logger(), savedStates, 5)

		for _, savedState := range savedStates {
			assert.DirExists(t, savedState.Directory)
		}
		assert.Equal(t, int64(1100), minGen)
	})
}

func TestPurgeEmptyList(t *testing.T) {
	minGen := snapshot.Purge(unittest.Logger(), nil, 3)
	assert.Equal(t, model.GenerationUndefined, minGen)
}

func TestPurgeRetainZeroDeletesEverything(t *testing.T) {
	unittest.RunWithTempDir(t, func(dir string) {
		savedStates := savedStatesFixture(t, dir, []uint64{5, 4, 3})

		minGen := snapshot.Purge(unittest.Logger(), savedStates, 0)

		for _, savedState := range savedStates {
			assert.NoDirExists(t, savedState.Directory)
		}
		assert.Equal(t, model.GenerationUndefined, minGen)
	})
}
