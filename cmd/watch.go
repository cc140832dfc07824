package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/tomato/internal/adapters/lifecycle"
	"github.com/xvierd/tomato/internal/domain"
)

var watchStart bool

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the timer without the fullscreen screen",
	Long: `Run the timer headless, printing a line whenever an interval starts,
pauses or completes. Completion alerts and the chime work as in the timer
screen. Ctrl+Z suspends the watcher; the timer keeps its deadline and is
reconciled when the job is resumed.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{longRunning: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := setupSignalHandler()
		out := cmd.OutOrStdout()

		state := app.timer.Foreground()
		if watchStart && !state.Active {
			var err error
			if state.IsPaused() {
				state, err = app.timer.Resume()
			} else {
				state, err = app.timer.Start()
			}
			if err != nil && !errors.Is(err, domain.ErrTimerActive) {
				return fmt.Errorf("failed to start timer: %w", err)
			}
		}
		printWatchLine(out, state)

		events := lifecycle.New(app.log).Events(ctx)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		last := state
		for {
			select {
			case <-ctx.Done():
				app.timer.Background()
				return nil
			case ev, ok := <-events:
				if !ok {
					events = nil
					continue
				}
				state = app.timer.HandleLifecycle(ev)
			case <-ticker.C:
				state = app.timer.State()
			}

			if state.Mode != last.Mode || state.Active != last.Active {
				printWatchLine(out, state)
			}
			last = state
		}
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchStart, "start", false, "Start or resume the current interval if the timer is idle")
}

// printWatchLine prints a timestamped summary of state.
func printWatchLine(w io.Writer, state domain.TimerState) {
	fmt.Fprintf(w, "[%s] %s %s, %s left\n",
		time.Now().Format("15:04:05"), state.Mode.Label(), state.StatusLabel(), domain.FormatClock(state.SecondsLeft))
}
