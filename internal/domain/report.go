package domain

import (
	"fmt"
	"time"
)

// Status is the externally visible view of a timer, used by the CLI
// output formats and the MCP tools.
type Status struct {
	Mode         Mode       `json:"mode" yaml:"mode"`
	Label        string     `json:"label" yaml:"label"`
	State        string     `json:"state" yaml:"state"`
	Remaining    string     `json:"remaining" yaml:"remaining"`
	SecondsLeft  int        `json:"seconds_left" yaml:"seconds_left"`
	TotalSeconds int        `json:"total_seconds" yaml:"total_seconds"`
	Progress     float64    `json:"progress" yaml:"progress"`
	WorkMinutes  int        `json:"work_minutes" yaml:"work_minutes"`
	BreakMinutes int        `json:"break_minutes" yaml:"break_minutes"`
	StartedAt    *time.Time `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	EndsAt       *time.Time `json:"ends_at,omitempty" yaml:"ends_at,omitempty"`
}

// Status builds the external view of s.
func (s TimerState) Status() Status {
	st := Status{
		Mode:         s.Mode,
		Label:        s.Mode.Label(),
		State:        s.StatusLabel(),
		Remaining:    FormatClock(s.SecondsLeft),
		SecondsLeft:  s.SecondsLeft,
		TotalSeconds: s.TotalSeconds,
		Progress:     s.Progress(),
		WorkMinutes:  s.WorkMinutes,
		BreakMinutes: s.BreakMinutes,
	}
	if s.IsRunning() {
		started := *s.StartTime
		ends := started.Add(time.Duration(s.TotalSeconds) * time.Second)
		st.StartedAt = &started
		st.EndsAt = &ends
	}
	return st
}

// FormatClock renders seconds as MM:SS. Minutes are not wrapped into
// hours, so a 90 minute interval shows 90:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
