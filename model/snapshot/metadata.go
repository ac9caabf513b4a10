package snapshot

import "time"

// GenerationUndefined is the sentinel for "no generation": returned by the
// retention pass when no saved state survives, and used for states that
// predate generation tracking.
const GenerationUndefined int64 = -1

// SavedStateMetadata describes one saved state on disk. It is persisted as
// metadata.json next to the serialized state, and is the only part of a
// saved state that directory enumeration needs to parse.
type SavedStateMetadata struct {
	Round                       uint64            `json:"round"`
	ConsensusTimestamp          time.Time         `json:"consensusTimestamp"`
	SigningWeight               uint64            `json:"signingWeight"`
	TotalWeight                 uint64            `json:"totalWeight"`
	Reason                      StateToDiskReason `json:"reason"`
	MinimumGenerationNonAncient int64             `json:"minimumGenerationNonAncient"`
}

// SavedStateInfo is a saved state directory together with its parsed
// metadata.
type SavedStateInfo struct {
	// Directory is the round directory holding the serialized state.
	Directory string
	Metadata  SavedStateMetadata
}
