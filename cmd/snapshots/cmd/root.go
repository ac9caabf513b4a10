package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagSavedStateDir string
	flagMainClassName string
	flagNodeID        uint64
	flagSwirldName    string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Inspect and prune the saved signed states of a node",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagSavedStateDir, "dir", "d", "data/saved",
		"base directory holding the saved states")
	rootCmd.PersistentFlags().StringVar(&flagMainClassName, "app", "",
		"main class name of the application")
	rootCmd.PersistentFlags().Uint64Var(&flagNodeID, "node-id", 0,
		"ID of the node whose states to inspect")
	rootCmd.PersistentFlags().StringVar(&flagSwirldName, "swirld", "",
		"name of the swirld")
	_ = rootCmd.MarkPersistentFlagRequired("app")
	_ = rootCmd.MarkPersistentFlagRequired("swirld")

	log = zerolog.New(zerolog.NewConsoleWriter())

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetEnvPrefix("SWIRLD")
	viper.AutomaticEnv()
	if viper.IsSet("SAVED_STATE_DIR") && !rootCmd.PersistentFlags().Changed("dir") {
		flagSavedStateDir = viper.GetString("SAVED_STATE_DIR")
	}
}
