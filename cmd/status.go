package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/xvierd/tomato/internal/adapters/tui"
	"github.com/xvierd/tomato/internal/config"
	"github.com/xvierd/tomato/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	statusFormat string
	statusBig    bool
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the timer",
	Long: `Display the current mode, remaining time and durations.
The timer is reconciled against the clock first, so an interval that ended
while nothing was running is reported as completed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state := app.timer.State()
		out := cmd.OutOrStdout()

		switch statusFormat {
		case "json":
			return outputStatusJSON(out, state)
		case "yaml":
			return outputStatusYAML(out, state)
		case "text", "":
			if statusBig {
				outputStatusBig(out, state, &app.config.Theme)
				return nil
			}
			outputStatusText(out, state)
			return nil
		default:
			return fmt.Errorf("unknown format %q: must be text, json or yaml", statusFormat)
		}
	},
}

func init() {
	statusCmd.Flags().StringVarP(&statusFormat, "format", "f", "text", "Output format: text, json or yaml")
	statusCmd.Flags().BoolVar(&statusBig, "big", false, "Render the remaining time in large digits")
}

// outputStatusJSON outputs the status in JSON format
func outputStatusJSON(w io.Writer, state domain.TimerState) error {
	jsonData, err := json.MarshalIndent(state.Status(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	fmt.Fprintln(w, string(jsonData))
	return nil
}

// outputStatusYAML outputs the status in YAML format
func outputStatusYAML(w io.Writer, state domain.TimerState) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(state.Status()); err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	return enc.Close()
}

func outputStatusText(w io.Writer, state domain.TimerState) {
	st := state.Status()

	icon := "🍅"
	if state.Mode == domain.ModeBreak {
		icon = "☕"
	}
	fmt.Fprintf(w, "%s %s (%s)\n", icon, st.Label, st.State)
	fmt.Fprintf(w, "   Remaining: %s  %s %3.0f%%\n", st.Remaining, progressBar(st.Progress, 20), st.Progress*100)
	if st.EndsAt != nil {
		fmt.Fprintf(w, "   Ends at:   %s\n", st.EndsAt.Local().Format("15:04:05"))
	}
	fmt.Fprintf(w, "   Durations: work %dm, break %dm\n", st.WorkMinutes, st.BreakMinutes)
}

func outputStatusBig(w io.Writer, state domain.TimerState, theme *config.ThemeConfig) {
	width := 80
	if tw, _, err := term.GetSize(os.Stdout.Fd()); err == nil && tw > 0 {
		width = tw
	}

	color := theme.ColorWork
	switch {
	case state.IsPaused():
		color = theme.ColorPaused
	case state.Mode == domain.ModeBreak:
		color = theme.ColorBreak
	}

	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(state.Mode.Label()))
	fmt.Fprintln(w, tui.RenderBigTime(state.SecondsLeft, lipgloss.Color(color), width, state.IsPaused()))
}

// progressBar renders fraction p as a fixed-width bar.
func progressBar(p float64, width int) string {
	filled := int(p * float64(width))
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
