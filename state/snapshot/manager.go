package snapshot

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/swirldnet/swirld-go/consensus/weight"
	model "github.com/swirldnet/swirld-go/model/snapshot"
	"github.com/swirldnet/swirld-go/model/swirld"
	"github.com/swirldnet/swirld-go/module"
	"github.com/swirldnet/swirld-go/state/signed"
	utilsio "github.com/swirldnet/swirld-go/utils/io"
)

// Manager is responsible for the state writing pipeline: it persists signed
// states to disk, checks signature-weight sufficiency before committing, and
// runs the retention pass over old saved states.
//
// A single save or dump operation is assumed in flight at a time per
// manager; the external task queue provides that serialization. Signing
// weight on the state may still grow concurrently while an operation runs.
type Manager struct {
	log     zerolog.Logger
	metrics module.SnapshotMetrics

	mainClassName string
	selfID        swirld.NodeID
	swirldName    string

	savedStateCount int
	path            FilePath
	lock            *utilsio.FileLock
}

// DumpRequest asks for an out-of-band, unconditional write of a state.
type DumpRequest struct {
	Reserved *signed.ReservedState

	// Finished is invoked exactly once after the write attempt, whether it
	// succeeded or not.
	Finished func()
}

// NewManager creates a snapshot manager rooted at the configured saved-state
// directory. The manager takes an exclusive lock on the base directory so
// that a second process managing the same directory fails fast; Close
// releases it.
func NewManager(
	log zerolog.Logger,
	metrics module.SnapshotMetrics,
	config Config,
	mainClassName string,
	selfID swirld.NodeID,
	swirldName string,
) (*Manager, error) {
	if mainClassName == "" {
		return nil, fmt.Errorf("snapshot manager requires a main class name")
	}
	if swirldName == "" {
		return nil, fmt.Errorf("snapshot manager requires a swirld name")
	}

	lock := utilsio.NewFileLock(config.SavedStateDirectory)
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("could not lock saved state directory: %w", err)
	}

	m := &Manager{
		log:             log.With().Str("component", "snapshot_manager").Logger(),
		metrics:         metrics,
		mainClassName:   mainClassName,
		selfID:          selfID,
		swirldName:      swirldName,
		savedStateCount: config.SavedStateCount,
		path:            NewFilePath(log, config.SavedStateDirectory),
		lock:            lock,
	}
	return m, nil
}

// Close releases the lock on the saved-state directory.
func (m *Manager) Close() error {
	return m.lock.Unlock()
}

// SaveSnapshot writes the reserved state into the regular rotation and runs
// the retention pass. The reservation is released on every path.
//
// Returns nil without error semantics in two cases: the round has already
// been saved (idempotent no-op), or the write failed (logged; the round is
// not marked saved, so a later attempt can retry). Callers must treat a nil
// result as "not yet durable".
func (m *Manager) SaveSnapshot(reserved *signed.ReservedState) *model.StateSavingResult {
	start := time.Now()
	defer reserved.Close()

	state := reserved.Get()
	if state.HasStateBeenSavedToDisk() {
		m.log.Info().
			Uint64("round", state.Round()).
			Msg("not saving signed state to disk because it has already been saved")
		return nil
	}

	m.checkSignatures(state)

	directory := m.path.SignedStateDirectory(m.mainClassName, m.selfID, m.swirldName, state.Round())
	if !m.writeState(state, directory) {
		return nil
	}
	state.StateSavedToDisk()

	minGen := m.deleteOldStates()
	result := &model.StateSavingResult{
		Round:                       state.Round(),
		FreezeState:                 state.IsFreezeState(),
		ConsensusTimestamp:          state.ConsensusTimestamp(),
		MinimumGenerationNonAncient: minGen,
	}

	m.metrics.StateToDiskDuration(time.Since(start))
	return result
}

// DumpSnapshot writes the reserved state out-of-band, ignoring the
// saved-to-disk latch. The write goes to a directory namespaced by the
// state-to-disk reason, outside the regular rotation, and triggers no
// retention. The completion callback runs exactly once, after the write
// attempt; a failed write is terminal and is not retried.
func (m *Manager) DumpSnapshot(request DumpRequest) {
	func() {
		defer request.Reserved.Close()
		state := request.Reserved.Get()
		directory := m.path.DumpDirectory(state.StateToDiskReason(), m.selfID, state.Round())
		m.writeState(state, directory)
	}()
	if request.Finished != nil {
		request.Finished()
	}
}

// writeState serializes the state into the given directory and reports
// whether it succeeded. Failures are logged with full context and otherwise
// swallowed at this layer.
func (m *Manager) writeState(state *signed.State, directory string) bool {
	start := time.Now()
	err := WriteSignedStateToDisk(m.log, directory, state, state.StateToDiskReason())
	if err != nil {
		m.log.Error().Err(err).
			Uint64("round", state.Round()).
			Str("directory", directory).
			Msg("unable to write signed state to disk")
		return false
	}
	m.metrics.StateWriteDuration(time.Since(start))
	return true
}

// checkSignatures verifies that the state carries a supermajority of signing
// weight before it goes to disk. An insufficiently signed state is counted
// and logged but still written: a snapshot without full signatures beats no
// snapshot at all.
//
// Weights are read a second time after the completeness check. Signing
// weight grows concurrently with this call, and the two reads make a
// late-arriving signature visible in the diagnostics; the verdict itself is
// based on the first read.
func (m *Manager) checkSignatures(state *signed.State) {
	signingWeight1 := state.SigningWeight()
	totalWeight1 := state.AddressBook().TotalWeight()
	if state.IsComplete() {
		// state is complete, nothing to do
		return
	}
	m.metrics.UnsignedStateWritten()

	signingWeight2 := state.SigningWeight()
	totalWeight2 := state.AddressBook().TotalWeight()

	// freeze states are expected to lack signatures, don't treat it as an error
	if state.IsFreezeState() {
		m.log.Info().
			Uint64("round", state.Round()).
			Uint64("signing_weight", signingWeight2).
			Uint64("total_weight", totalWeight2).
			Msg("freeze state written to disk without full signatures, this is expected")
		return
	}

	satisfied1, err1 := weight.IsSuperMajority(signingWeight1, totalWeight1)
	satisfied2, err2 := weight.IsSuperMajority(signingWeight2, totalWeight2)
	if err1 != nil || err2 != nil {
		// the address book guarantees positive total weight, so this cannot
		// happen for states produced by this node
		m.log.Error().
			AnErr("first_check", err1).
			AnErr("second_check", err2).
			Uint64("round", state.Round()).
			Msg("invalid total weight on state written to disk")
		return
	}
	m.log.Error().
		Uint64("round", state.Round()).
		Uint64("pre_check_signing_weight", signingWeight1).
		Uint64("pre_check_total_weight", totalWeight1).
		Bool("pre_check_threshold", satisfied1).
		Uint64("post_check_signing_weight", signingWeight2).
		Uint64("post_check_total_weight", totalWeight2).
		Bool("post_check_threshold", satisfied2).
		Msg("state written to disk did not have enough signatures")
}

// deleteOldStates purges old states in the regular rotation and returns the
// minimum generation non-ancient of the oldest surviving state.
func (m *Manager) deleteOldStates() int64 {
	savedStates, err := m.path.SavedStateFiles(m.mainClassName, m.selfID, m.swirldName)
	if err != nil {
		m.log.Warn().Err(err).Msg("could not enumerate saved states for retention")
		return model.GenerationUndefined
	}
	return Purge(m.log, savedStates, m.savedStateCount)
}
