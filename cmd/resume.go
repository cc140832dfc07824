package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resumeCmd represents the resume command
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused interval",
	Long:  `Continue the current interval from where it was paused.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := app.timer.Resume()
		if err != nil {
			return fmt.Errorf("failed to resume timer: %w", err)
		}

		printTransition(cmd.OutOrStdout(), "▶️ ", "resumed", state)
		return nil
	},
}
