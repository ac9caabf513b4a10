package module

import "time"

// SnapshotMetrics collects the performance and health metrics of the
// state snapshot pipeline.
type SnapshotMetrics interface {
	// StateToDiskDuration reports the total duration of one save operation,
	// from picking up the reservation to the retention pass finishing.
	StateToDiskDuration(duration time.Duration)

	// StateWriteDuration reports the duration of serializing and writing one
	// state to its target directory.
	StateWriteDuration(duration time.Duration)

	// UnsignedStateWritten counts states that were written to disk without a
	// supermajority of signatures.
	UnsignedStateWritten()
}
