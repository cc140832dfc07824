package domain

import (
	"time"
)

// Snapshot is the persisted form of a TimerState.
type Snapshot struct {
	Active          bool       `json:"is_active" yaml:"is_active"`
	Mode            Mode       `json:"mode" yaml:"mode"`
	StartTime       *time.Time `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	TotalSeconds    int        `json:"total_duration_seconds" yaml:"total_duration_seconds"`
	WorkMinutes     int        `json:"work_duration_minutes" yaml:"work_duration_minutes"`
	BreakMinutes    int        `json:"break_duration_minutes" yaml:"break_duration_minutes"`
	SecondsLeft     int        `json:"seconds_left,omitempty" yaml:"seconds_left,omitempty"`
	IntervalID      string     `json:"interval_id,omitempty" yaml:"interval_id,omitempty"`
	SignalDelivered bool       `json:"signal_delivered,omitempty" yaml:"signal_delivered,omitempty"`
}

// Validate reports whether the snapshot can be restored.
func (s Snapshot) Validate() error {
	if _, err := ParseMode(string(s.Mode)); err != nil {
		return ErrCorruptSnapshot
	}
	if s.WorkMinutes < 0 || s.BreakMinutes < 0 || s.TotalSeconds < 0 || s.SecondsLeft < 0 {
		return ErrCorruptSnapshot
	}
	if s.WorkMinutes > MaxDurationMinutes || s.BreakMinutes > MaxDurationMinutes ||
		s.TotalSeconds > MaxDurationMinutes*60 || s.SecondsLeft > MaxDurationMinutes*60 {
		return ErrCorruptSnapshot
	}
	if s.Active != (s.StartTime != nil) {
		return ErrCorruptSnapshot
	}
	return nil
}

// Equal compares two snapshots field by field.
func (s Snapshot) Equal(o Snapshot) bool {
	if (s.StartTime == nil) != (o.StartTime == nil) {
		return false
	}
	if s.StartTime != nil && !s.StartTime.Equal(*o.StartTime) {
		return false
	}
	return s.Active == o.Active &&
		s.Mode == o.Mode &&
		s.TotalSeconds == o.TotalSeconds &&
		s.WorkMinutes == o.WorkMinutes &&
		s.BreakMinutes == o.BreakMinutes &&
		s.SecondsLeft == o.SecondsLeft &&
		s.IntervalID == o.IntervalID &&
		s.SignalDelivered == o.SignalDelivered
}
