package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xvierd/tomato/internal/domain"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:       "set <work|break> <minutes>",
	Short:     "Set the length of work or break intervals",
	Long:      `Set the length in minutes of work or break intervals. A running interval keeps counting down with its original length.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{string(domain.ModeWork), string(domain.ModeBreak)},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := domain.ParseMode(args[0])
		if err != nil {
			return err
		}

		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: %q is not a whole number of minutes", domain.ErrInvalidDuration, args[1])
		}

		var state domain.TimerState
		if mode == domain.ModeWork {
			state, err = app.timer.SetWorkDuration(minutes)
		} else {
			state, err = app.timer.SetBreakDuration(minutes)
		}
		if err != nil {
			return fmt.Errorf("failed to set %s duration: %w", mode, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "⏱️  %s set to %d minutes. Work %dm, break %dm.\n",
			mode.Label(), minutes, state.WorkMinutes, state.BreakMinutes)
		return nil
	},
}
