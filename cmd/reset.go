package cmd

import (
	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Stop the timer and return to a fresh work interval",
	Long: `Stop the timer, cancel any pending completion alert and return to an
idle work interval. Configured durations are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state := app.timer.Reset()

		printTransition(cmd.OutOrStdout(), "🔄", "ready", state)
		return nil
	},
}
