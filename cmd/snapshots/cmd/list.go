package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swirldnet/swirld-go/model/swirld"
	"github.com/swirldnet/swirld-go/state/snapshot"
)

// listCmd prints the saved states of the node, newest first.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the saved states on disk, newest first",
	Run:   list,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func list(cmd *cobra.Command, args []string) {
	path := snapshot.NewFilePath(log, flagSavedStateDir)
	savedStates, err := path.SavedStateFiles(flagMainClassName, swirld.NodeID(flagNodeID), flagSwirldName)
	if err != nil {
		log.Fatal().Err(err).Msg("could not enumerate saved states")
	}
	if len(savedStates) == 0 {
		fmt.Println("no saved states found")
		return
	}
	for _, savedState := range savedStates {
		meta := savedState.Metadata
		fmt.Printf("round %d\t%s\tsigned %d/%d\treason %s\tmin-gen %d\t%s\n",
			meta.Round,
			meta.ConsensusTimestamp.Format("2006-01-02T15:04:05Z07:00"),
			meta.SigningWeight,
			meta.TotalWeight,
			meta.Reason,
			meta.MinimumGenerationNonAncient,
			savedState.Directory,
		)
	}
}
