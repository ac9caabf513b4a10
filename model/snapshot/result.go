package snapshot

import "time"

// StateSavingResult is returned to the caller after a state was successfully
// written to disk. The minimum generation non-ancient of the oldest state
// still on disk lets the caller prune in-memory event history.
type StateSavingResult struct {
	Round              uint64
	FreezeState        bool
	ConsensusTimestamp time.Time

	// MinimumGenerationNonAncient of the oldest state that survived the
	// retention pass, or GenerationUndefined if no saved states remain.
	MinimumGenerationNonAncient int64
}
