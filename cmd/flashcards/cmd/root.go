// Package cmd implements the flashcards subcommands.
package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "flashcards",
	Short: "Add vocabulary to flash card lessons",
	Long: `flashcards stores term/translation pairs in lessons.

Pairs can be given as a free-form request ("Add to Greetings: hello - hi"),
as positional arguments, or as a CSV file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(addWordsCmd)
	rootCmd.AddCommand(importCSVCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}
