package snapshot

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	model "github.com/swirldnet/swirld-go/model/snapshot"
)

// Purge deletes saved states beyond the retained window. The list must be
// ordered newest to oldest; every entry at index >= retainCount is deleted,
// proceeding from the tail of the list so that the oldest states go first.
//
// Retention is best-effort: a directory that cannot be deleted is logged and
// skipped, and never aborts the rest of the pass. Returns the minimum
// generation non-ancient of the oldest state that was not deleted, or
// GenerationUndefined when no saved states remain.
func Purge(log zerolog.Logger, savedStates []model.SavedStateInfo, retainCount int) int64 {
	if retainCount < 0 {
		retainCount = 0
	}

	var failures *multierror.Error
	index := len(savedStates) - 1
	for ; index >= retainCount; index-- {
		savedState := savedStates[index]
		if err := os.RemoveAll(savedState.Directory); err != nil {
			failures = multierror.Append(failures, err)
			continue
		}
		log.Info().
			Uint64("round", savedState.Metadata.Round).
			Str("directory", savedState.Directory).
			Msg("deleted old saved state")
	}
	if err := failures.ErrorOrNil(); err != nil {
		log.Warn().Err(err).Msg("retention pass completed with failures")
	}

	if index < 0 {
		return model.GenerationUndefined
	}
	return savedStates[index].Metadata.MinimumGenerationNonAncient
}
