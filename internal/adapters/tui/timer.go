package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/tomato/internal/config"
)

// Run shows the timer screen and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, ctl Controller, theme *config.ThemeConfig) error {
	program := tea.NewProgram(
		NewModel(ctl, theme),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
