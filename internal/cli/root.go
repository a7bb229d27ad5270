package cli

import (
	"github.com/spf13/cobra"
	"github.com/zeshan/pressbook/internal/app"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "pressbook",
	Short: "A receipt manager for a single printing press",
	Long: `Pressbook records print-shop orders as receipts, tracks advances and
outstanding balances, and prints job receipts for customers.

By default, running pressbook without arguments launches the interactive TUI.
Use subcommands for CLI operations.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: launch TUI
		launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(receiptsCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(tuiCmd)
}
