package ports

import (
	"context"

	"github.com/xvierd/tomato/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}

// TimerController exposes the timer to remote callers such as the MCP server.
// This is a driven port (implemented by services layer).
type TimerController interface {
	// State returns the timer reconciled against the current time.
	State() domain.TimerState

	Start() (domain.TimerState, error)
	Pause() (domain.TimerState, error)
	Resume() (domain.TimerState, error)
	Reset() domain.TimerState
	SetWorkDuration(minutes int) (domain.TimerState, error)
	SetBreakDuration(minutes int) (domain.TimerState, error)
}
