package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog"

	model "github.com/swirldnet/swirld-go/model/snapshot"
	"github.com/swirldnet/swirld-go/state/signed"
	utilsio "github.com/swirldnet/swirld-go/utils/io"
)

const (
	stateFileName    = "state.cbor"
	metadataFileName = "metadata.json"
)

// StateFile is the serialized body of a saved state.
type StateFile struct {
	Round              uint64
	ConsensusTimestamp time.Time
	SigningWeight      uint64
	TotalWeight        uint64
	Reason             string
	Payload            []byte
}

// WriteSignedStateToDisk serializes the state into the target directory.
// The write is staged into a temporary sibling directory and renamed into
// place, so a crash mid-write never leaves a partial state behind under the
// target name. A target directory that already exists is an error: a
// persisted round is never overwritten.
func WriteSignedStateToDisk(
	log zerolog.Logger,
	targetDir string,
	state *signed.State,
	reason model.StateToDiskReason,
) error {
	if utilsio.DirExists(targetDir) {
		return fmt.Errorf("saved state directory %v already exists", targetDir)
	}

	parent := filepath.Dir(targetDir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("could not create saved state parent directory %v: %w", parent, err)
	}

	tmpDir, err := os.MkdirTemp(parent, fmt.Sprintf("writing-%d-*", state.Round()))
	if err != nil {
		return fmt.Errorf("could not create staging directory for round %d: %w", state.Round(), err)
	}
	// no-op once the staging directory has been renamed into place
	defer os.RemoveAll(tmpDir)

	if err := writeStateFile(tmpDir, state, reason); err != nil {
		return fmt.Errorf("could not write state file for round %d: %w", state.Round(), err)
	}
	if err := writeMetadataFile(tmpDir, state, reason); err != nil {
		return fmt.Errorf("could not write metadata for round %d: %w", state.Round(), err)
	}

	if err := os.Rename(tmpDir, targetDir); err != nil {
		return fmt.Errorf("could not move saved state for round %d into place: %w", state.Round(), err)
	}

	log.Info().
		Uint64("round", state.Round()).
		Str("directory", targetDir).
		Str("reason", reason.Description()).
		Msg("signed state written to disk")
	return nil
}

func writeStateFile(dir string, state *signed.State, reason model.StateToDiskReason) error {
	file, err := os.Create(filepath.Join(dir, stateFileName))
	if err != nil {
		return fmt.Errorf("cannot create state file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := cbor.NewEncoder(writer)
	err = encoder.Encode(StateFile{
		Round:              state.Round(),
		ConsensusTimestamp: state.ConsensusTimestamp(),
		SigningWeight:      state.SigningWeight(),
		TotalWeight:        state.AddressBook().TotalWeight(),
		Reason:             reason.Description(),
		Payload:            state.Payload(),
	})
	if err != nil {
		return fmt.Errorf("cannot encode state: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("cannot flush state file: %w", err)
	}
	return file.Sync()
}

func writeMetadataFile(dir string, state *signed.State, reason model.StateToDiskReason) error {
	metadata := model.SavedStateMetadata{
		Round:                       state.Round(),
		ConsensusTimestamp:          state.ConsensusTimestamp(),
		SigningWeight:               state.SigningWeight(),
		TotalWeight:                 state.AddressBook().TotalWeight(),
		Reason:                      reason,
		MinimumGenerationNonAncient: state.MinimumGenerationNonAncient(),
	}
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode metadata: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, metadataFileName), data, 0644)
}

// ReadStateFile reads back the serialized state body from a saved state
// directory.
func ReadStateFile(dir string) (*StateFile, error) {
	file, err := os.Open(filepath.Join(dir, stateFileName))
	if err != nil {
		return nil, fmt.Errorf("cannot open state file: %w", err)
	}
	defer file.Close()

	var stateFile StateFile
	if err := cbor.NewDecoder(bufio.NewReader(file)).Decode(&stateFile); err != nil {
		return nil, fmt.Errorf("cannot decode state file: %w", err)
	}
	return &stateFile, nil
}

// ReadMetadata reads the metadata of a saved state directory.
func ReadMetadata(dir string) (model.SavedStateMetadata, error) {
	var metadata model.SavedStateMetadata
	data, err := os.ReadFile(filepath.Join(dir, metadataFileName))
	if err != nil {
		return metadata, fmt.Errorf("cannot read metadata: %w", err)
	}
	if err := json.Unmarshal(data, &metadata); err != nil {
		return metadata, fmt.Errorf("cannot decode metadata: %w", err)
	}
	return metadata, nil
}
