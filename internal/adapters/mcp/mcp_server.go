// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/tomato/internal/domain"
	"github.com/xvierd/tomato/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server *server.MCPServer
	timer  ports.TimerController
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(timer ports.TimerController, version string) *Server {
	s := &Server{
		timer: timer,
	}

	s.server = server.NewMCPServer(
		"tomato",
		version,
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_timer_state",
			mcp.WithDescription("Get the timer's mode, run state and remaining time"),
		),
		s.handleGetTimerState,
	)

	s.server.AddTool(
		mcp.NewTool(
			"start_timer",
			mcp.WithDescription("Start a full interval of the current mode"),
		),
		s.handleStartTimer,
	)

	s.server.AddTool(
		mcp.NewTool(
			"pause_timer",
			mcp.WithDescription("Pause the running interval, keeping the remaining time"),
		),
		s.handlePauseTimer,
	)

	s.server.AddTool(
		mcp.NewTool(
			"resume_timer",
			mcp.WithDescription("Resume a paused interval, or start a new one if none is paused"),
		),
		s.handleResumeTimer,
	)

	s.server.AddTool(
		mcp.NewTool(
			"reset_timer",
			mcp.WithDescription("Stop the timer and return to an idle work interval"),
		),
		s.handleResetTimer,
	)

	setDurationsTool := mcp.NewTool(
		"set_durations",
		mcp.WithDescription("Set the work and/or break interval length in minutes"),
		mcp.WithNumber(
			"work_minutes",
			mcp.Description("Work interval length in minutes"),
		),
		mcp.WithNumber(
			"break_minutes",
			mcp.Description("Break interval length in minutes"),
		),
	)
	s.server.AddTool(setDurationsTool, s.handleSetDurations)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

func (s *Server) handleGetTimerState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return stateResult(s.timer.State())
}

func (s *Server) handleStartTimer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.timer.Start()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to start timer: %v", err)), nil
	}
	return stateResult(state)
}

func (s *Server) handlePauseTimer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.timer.Pause()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to pause timer: %v", err)), nil
	}
	return stateResult(state)
}

func (s *Server) handleResumeTimer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.timer.Resume()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to resume timer: %v", err)), nil
	}
	return stateResult(state)
}

func (s *Server) handleResetTimer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return stateResult(s.timer.Reset())
}

// handleSetDurations handles the set_durations tool. At least one of the
// two lengths must be given.
func (s *Server) handleSetDurations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	_, hasWork := args["work_minutes"]
	_, hasBreak := args["break_minutes"]
	if !hasWork && !hasBreak {
		return mcp.NewToolResultError("work_minutes or break_minutes is required"), nil
	}

	// Both values are checked before either is applied.
	var work, brk int
	var err error
	if hasWork {
		if work, err = minutesArg(request, "work_minutes"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	if hasBreak {
		if brk, err = minutesArg(request, "break_minutes"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	var state domain.TimerState
	if hasWork {
		state, err = s.timer.SetWorkDuration(work)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to set work duration: %v", err)), nil
		}
	}
	if hasBreak {
		state, err = s.timer.SetBreakDuration(brk)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to set break duration: %v", err)), nil
		}
	}
	return stateResult(state)
}

// minutesArg reads a whole number of minutes from the named argument.
func minutesArg(request mcp.CallToolRequest, name string) (int, error) {
	f := request.GetFloat(name, math.NaN())
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s: %w: must be a whole number of minutes", name, domain.ErrInvalidDuration)
	}
	if f < 0 || f > domain.MaxDurationMinutes {
		return 0, fmt.Errorf("%s: %w: %g minutes, must be between 0 and %d", name, domain.ErrInvalidDuration, f, domain.MaxDurationMinutes)
	}
	return int(f), nil
}

func stateResult(state domain.TimerState) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(state.Status(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
