package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xvierd/tomato/internal/domain"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new interval",
	Long: `Start a fresh interval of the current mode at its full length.
Use "tomato resume" to continue a paused interval instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := app.timer.Start()
		if err != nil {
			return fmt.Errorf("failed to start timer: %w", err)
		}

		printTransition(cmd.OutOrStdout(), "🍅", "started", state)
		return nil
	},
}

// printTransition prints a one-line summary of the timer after a command.
func printTransition(w io.Writer, icon, verb string, state domain.TimerState) {
	fmt.Fprintf(w, "%s %s %s. Remaining: %s\n", icon, state.Mode.Label(), verb, domain.FormatClock(state.SecondsLeft))
}
