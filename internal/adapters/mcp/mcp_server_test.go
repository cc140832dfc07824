package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/xvierd/tomato/internal/domain"
)

// mockTimer is a mock implementation of ports.TimerController for testing.
type mockTimer struct {
	state    domain.TimerState
	startErr error
	calls    []string
}

func (m *mockTimer) State() domain.TimerState { return m.state }

func (m *mockTimer) Start() (domain.TimerState, error) {
	m.calls = append(m.calls, "start")
	if m.startErr != nil {
		return m.state, m.startErr
	}
	m.state.Active = true
	return m.state, nil
}

func (m *mockTimer) Pause() (domain.TimerState, error) {
	m.calls = append(m.calls, "pause")
	if !m.state.Active {
		return m.state, domain.ErrTimerNotActive
	}
	m.state.Active = false
	return m.state, nil
}

func (m *mockTimer) Resume() (domain.TimerState, error) {
	m.calls = append(m.calls, "resume")
	m.state.Active = true
	return m.state, nil
}

func (m *mockTimer) Reset() domain.TimerState {
	m.calls = append(m.calls, "reset")
	m.state = domain.NewTimerState(m.state.WorkMinutes, m.state.BreakMinutes)
	return m.state
}

func (m *mockTimer) SetWorkDuration(minutes int) (domain.TimerState, error) {
	m.calls = append(m.calls, "work")
	if err := domain.ValidateDurationMinutes(minutes); err != nil {
		return m.state, err
	}
	m.state.WorkMinutes = minutes
	return m.state, nil
}

func (m *mockTimer) SetBreakDuration(minutes int) (domain.TimerState, error) {
	m.calls = append(m.calls, "break")
	if err := domain.ValidateDurationMinutes(minutes); err != nil {
		return m.state, err
	}
	m.state.BreakMinutes = minutes
	return m.state, nil
}

func request(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func decodeStatus(t *testing.T, result *mcp.CallToolResult) domain.Status {
	t.Helper()
	if result == nil {
		t.Fatal("nil result")
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result.Content)
	}
	if len(result.Content) == 0 {
		t.Fatal("empty content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", result.Content[0])
	}
	var st domain.Status
	if err := json.Unmarshal([]byte(text.Text), &st); err != nil {
		t.Fatalf("invalid JSON %q: %v", text.Text, err)
	}
	return st
}

func TestNewServer(t *testing.T) {
	mock := &mockTimer{state: domain.DefaultTimerState()}
	server := NewServer(mock, "test")

	if server == nil {
		t.Fatal("NewServer() returned nil")
	}
	if server.timer != mock {
		t.Error("NewServer() did not set timer correctly")
	}
	if server.server == nil {
		t.Error("NewServer() did not create MCP server")
	}
}

func TestServer_IsRunning(t *testing.T) {
	server := NewServer(&mockTimer{}, "test")

	if server.IsRunning() {
		t.Error("IsRunning() should return false before Start()")
	}
}

func TestServer_handleGetTimerState(t *testing.T) {
	mock := &mockTimer{state: domain.DefaultTimerState()}
	server := NewServer(mock, "test")

	result, err := server.handleGetTimerState(context.Background(), request(nil))
	if err != nil {
		t.Fatalf("handleGetTimerState() error = %v", err)
	}

	st := decodeStatus(t, result)
	if st.Mode != domain.ModeWork || st.Remaining != "25:00" || st.State != "Idle" {
		t.Errorf("status = %+v", st)
	}
}

func TestServer_StartPauseResumeReset(t *testing.T) {
	mock := &mockTimer{state: domain.DefaultTimerState()}
	server := NewServer(mock, "test")
	ctx := context.Background()

	if _, err := server.handleStartTimer(ctx, request(nil)); err != nil {
		t.Fatalf("handleStartTimer() error = %v", err)
	}
	if _, err := server.handlePauseTimer(ctx, request(nil)); err != nil {
		t.Fatalf("handlePauseTimer() error = %v", err)
	}
	if _, err := server.handleResumeTimer(ctx, request(nil)); err != nil {
		t.Fatalf("handleResumeTimer() error = %v", err)
	}
	if _, err := server.handleResetTimer(ctx, request(nil)); err != nil {
		t.Fatalf("handleResetTimer() error = %v", err)
	}

	want := []string{"start", "pause", "resume", "reset"}
	if len(mock.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", mock.calls, want)
	}
	for i := range want {
		if mock.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, mock.calls[i], want[i])
		}
	}
}

func TestServer_handlePauseTimer_NotRunning(t *testing.T) {
	server := NewServer(&mockTimer{state: domain.DefaultTimerState()}, "test")

	result, err := server.handlePauseTimer(context.Background(), request(nil))
	if err != nil {
		t.Fatalf("handlePauseTimer() error = %v", err)
	}
	if !result.IsError {
		t.Error("pausing an idle timer should be a tool error")
	}
}

func TestServer_handleStartTimer_AlreadyRunning(t *testing.T) {
	server := NewServer(&mockTimer{state: domain.DefaultTimerState(), startErr: domain.ErrTimerActive}, "test")

	result, err := server.handleStartTimer(context.Background(), request(nil))
	if err != nil {
		t.Fatalf("handleStartTimer() error = %v", err)
	}
	if !result.IsError {
		t.Error("starting a running timer should be a tool error")
	}
}

func TestServer_handleSetDurations(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]interface{}
		wantError bool
		wantWork  int
		wantBreak int
	}{
		{
			name:      "both",
			args:      map[string]interface{}{"work_minutes": float64(50), "break_minutes": float64(10)},
			wantWork:  50,
			wantBreak: 10,
		},
		{
			name:      "work only",
			args:      map[string]interface{}{"work_minutes": float64(30)},
			wantWork:  30,
			wantBreak: 5,
		},
		{
			name:      "none",
			args:      map[string]interface{}{},
			wantError: true,
		},
		{
			name:      "negative",
			args:      map[string]interface{}{"break_minutes": float64(-2)},
			wantError: true,
		},
		{
			name:      "fractional",
			args:      map[string]interface{}{"work_minutes": 2.7},
			wantError: true,
		},
		{
			name:      "longer than a day",
			args:      map[string]interface{}{"work_minutes": float64(200000000)},
			wantError: true,
		},
		{
			name:      "overflowing",
			args:      map[string]interface{}{"break_minutes": float64(1 << 58)},
			wantError: true,
		},
		{
			name:      "not a number",
			args:      map[string]interface{}{"work_minutes": "soon"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(&mockTimer{state: domain.DefaultTimerState()}, "test")

			result, err := server.handleSetDurations(context.Background(), request(tt.args))
			if err != nil {
				t.Fatalf("handleSetDurations() error = %v", err)
			}
			if tt.wantError {
				if !result.IsError {
					t.Error("expected a tool error")
				}
				return
			}

			st := decodeStatus(t, result)
			if st.WorkMinutes != tt.wantWork || st.BreakMinutes != tt.wantBreak {
				t.Errorf("durations = %d/%d, want %d/%d", st.WorkMinutes, st.BreakMinutes, tt.wantWork, tt.wantBreak)
			}
		})
	}
}

func TestServer_handleSetDurations_InvalidAppliesNothing(t *testing.T) {
	timer := &mockTimer{state: domain.DefaultTimerState()}
	server := NewServer(timer, "test")

	result, err := server.handleSetDurations(context.Background(), request(map[string]interface{}{
		"work_minutes":  float64(30),
		"break_minutes": 2.5,
	}))
	if err != nil {
		t.Fatalf("handleSetDurations() error = %v", err)
	}
	if !result.IsError {
		t.Fatal("expected a tool error")
	}
	if len(timer.calls) != 0 {
		t.Errorf("timer calls = %v, want none", timer.calls)
	}
	if timer.state.WorkMinutes != 25 {
		t.Errorf("WorkMinutes = %d, want unchanged 25", timer.state.WorkMinutes)
	}
}
