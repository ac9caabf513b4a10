package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	model "github.com/swirldnet/swirld-go/model/snapshot"
	"github.com/swirldnet/swirld-go/model/swirld"
)

// FilePath computes the canonical on-disk layout of saved states and
// enumerates the states already present.
//
// Regular rotation: <base>/<mainClassName>/<nodeID>/<swirldName>/<round>
// Out-of-band dump: <base>/<reason>/node<id>_round<round>
type FilePath struct {
	log                 zerolog.Logger
	savedStateDirectory string
}

func NewFilePath(log zerolog.Logger, savedStateDirectory string) FilePath {
	return FilePath{
		log:                 log.With().Str("component", "state_file_path").Logger(),
		savedStateDirectory: savedStateDirectory,
	}
}

// SignedStatesBaseDirectory returns the base directory under which all saved
// states live.
func (p FilePath) SignedStatesBaseDirectory() string {
	return p.savedStateDirectory
}

// SignedStateDirectory returns the rotation directory for the signed state of
// a particular round. The directory might not exist.
func (p FilePath) SignedStateDirectory(mainClassName string, selfID swirld.NodeID, swirldName string, round uint64) string {
	return filepath.Join(
		p.savedStateDirectory,
		mainClassName,
		selfID.String(),
		swirldName,
		strconv.FormatUint(round, 10),
	)
}

// DumpDirectory returns the out-of-band dump directory for the given reason
// and round.
func (p FilePath) DumpDirectory(reason model.StateToDiskReason, selfID swirld.NodeID, round uint64) string {
	return filepath.Join(
		p.savedStateDirectory,
		reason.Description(),
		fmt.Sprintf("node%d_round%d", selfID, round),
	)
}

// SavedStateFiles enumerates the saved states in the regular rotation,
// ordered newest to oldest. Directories that do not parse as a round number
// or lack readable metadata are skipped. A missing rotation directory yields
// an empty list.
func (p FilePath) SavedStateFiles(mainClassName string, selfID swirld.NodeID, swirldName string) ([]model.SavedStateInfo, error) {
	dir := filepath.Join(p.savedStateDirectory, mainClassName, selfID.String(), swirldName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not list saved state directory %v: %w", dir, err)
	}

	savedStates := make([]model.SavedStateInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := strconv.ParseUint(entry.Name(), 10, 64); err != nil {
			// in-progress writes and other non-round directories
			continue
		}
		stateDir := filepath.Join(dir, entry.Name())
		metadata, err := ReadMetadata(stateDir)
		if err != nil {
			p.log.Warn().Err(err).
				Str("directory", stateDir).
				Msg("skipping saved state with unreadable metadata")
			continue
		}
		savedStates = append(savedStates, model.SavedStateInfo{
			Directory: stateDir,
			Metadata:  metadata,
		})
	}

	// newest first
	sort.Slice(savedStates, func(i, j int) bool {
		return savedStates[i].Metadata.Round > savedStates[j].Metadata.Round
	})
	return savedStates, nil
}
