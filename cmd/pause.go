package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the running interval",
	Long:  `Pause the running interval, keeping its remaining time.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := app.timer.Pause()
		if err != nil {
			return fmt.Errorf("failed to pause timer: %w", err)
		}

		printTransition(cmd.OutOrStdout(), "⏸️ ", "paused", state)
		return nil
	},
}
