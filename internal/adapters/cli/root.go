package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath    string
	commanderFlag string
	verbose       bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cmdrwatch",
		Short: "cmdrwatch - track a commander's state from the game journal",
		Long: `cmdrwatch follows the game's journal files and keeps the believed state
of a tracked commander: location, ship, game mode, wing and friends.

Examples:
  cmdrwatch replay ~/logs/Journal.2024-03-10T175358.01.log
  cmdrwatch watch
  cmdrwatch status --commander Jameson
  cmdrwatch bounty 1250000
  cmdrwatch config set-default Jameson`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs, /etc/cmdrwatch)")
	rootCmd.PersistentFlags().StringVar(&commanderFlag, "commander", "",
		"Commander name (falls back to the configured default)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewReplayCommand())
	rootCmd.AddCommand(NewWatchCommand())
	rootCmd.AddCommand(NewBountyCommand())
	rootCmd.AddCommand(NewSessionsCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
