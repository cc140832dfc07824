package domain

import (
	"time"
)

// TimerState is the single timer owned by the application.
//
// While Active, StartTime is set and SecondsLeft is derived from it; while
// idle, StartTime is nil and SecondsLeft is the value shown to the user.
type TimerState struct {
	Mode         Mode
	WorkMinutes  int
	BreakMinutes int
	Active       bool
	StartTime    *time.Time
	TotalSeconds int
	SecondsLeft  int

	// IntervalID identifies the running interval; empty while idle.
	IntervalID string
	// SignalDelivered reports that the scheduled OS signal for the running
	// interval has already alerted the user.
	SignalDelivered bool
}

// NewTimerState returns an idle work timer with the given durations.
func NewTimerState(workMinutes, breakMinutes int) TimerState {
	s := TimerState{
		Mode:         ModeWork,
		WorkMinutes:  workMinutes,
		BreakMinutes: breakMinutes,
	}
	s.TotalSeconds = s.DurationFor(ModeWork)
	s.SecondsLeft = s.TotalSeconds
	return s
}

// DefaultTimerState returns an idle work timer with 25/5 minute intervals.
func DefaultTimerState() TimerState {
	return NewTimerState(DefaultWorkMinutes, DefaultBreakMinutes)
}

// DurationFor returns the configured length of mode m in seconds.
func (s TimerState) DurationFor(m Mode) int {
	if m == ModeWork {
		return s.WorkMinutes * 60
	}
	return s.BreakMinutes * 60
}

// IsRunning returns true if the timer is counting down.
func (s TimerState) IsRunning() bool {
	return s.Active && s.StartTime != nil
}

// IsPaused returns true if the timer is idle part way through an interval.
func (s TimerState) IsPaused() bool {
	return !s.Active && s.SecondsLeft > 0 && s.SecondsLeft < s.DurationFor(s.Mode)
}

// CanStart returns true if a new interval can be started.
func (s TimerState) CanStart() bool {
	return !s.Active
}

// Remaining returns SecondsLeft as a duration.
func (s TimerState) Remaining() time.Duration {
	return time.Duration(s.SecondsLeft) * time.Second
}

// Progress returns the completion fraction (0.0 to 1.0) of the current
// interval.
func (s TimerState) Progress() float64 {
	total := s.TotalSeconds
	if !s.Active {
		total = s.DurationFor(s.Mode)
	}
	if total <= 0 {
		return 0
	}
	p := float64(total-s.SecondsLeft) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// StatusLabel returns a human-readable label for the run state.
func (s TimerState) StatusLabel() string {
	switch {
	case s.IsRunning():
		return "Running"
	case s.IsPaused():
		return "Paused"
	default:
		return "Idle"
	}
}

// Snapshot captures the persisted fields of the state.
func (s TimerState) Snapshot() Snapshot {
	snap := Snapshot{
		Active:          s.Active,
		Mode:            s.Mode,
		TotalSeconds:    s.TotalSeconds,
		WorkMinutes:     s.WorkMinutes,
		BreakMinutes:    s.BreakMinutes,
		IntervalID:      s.IntervalID,
		SignalDelivered: s.SignalDelivered,
	}
	if s.StartTime != nil {
		t := *s.StartTime
		snap.StartTime = &t
	}
	// A running timer's remaining time is derived from StartTime.
	if !s.Active {
		snap.SecondsLeft = s.SecondsLeft
	}
	return snap
}
