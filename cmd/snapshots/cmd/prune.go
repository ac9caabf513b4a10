package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swirldnet/swirld-go/model/swirld"
	"github.com/swirldnet/swirld-go/state/snapshot"
)

var flagRetain int

// pruneCmd runs the retention pass out-of-band, deleting all but the newest
// saved states.
var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the newest saved states",
	Run:   prune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)

	pruneCmd.Flags().IntVar(&flagRetain, "retain", 3,
		"number of newest saved states to keep")
}

func prune(cmd *cobra.Command, args []string) {
	path := snapshot.NewFilePath(log, flagSavedStateDir)
	savedStates, err := path.SavedStateFiles(flagMainClassName, swirld.NodeID(flagNodeID), flagSwirldName)
	if err != nil {
		log.Fatal().Err(err).Msg("could not enumerate saved states")
	}
	minGen := snapshot.Purge(log, savedStates, flagRetain)
	fmt.Printf("retained %d state(s), minimum generation non-ancient %d\n",
		min(len(savedStates), flagRetain), minGen)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
