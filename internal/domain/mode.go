// Package domain contains the core entities of the tomato timer: the
// interval mode, the timer state, its persisted snapshot and the events and
// effects exchanged with the engine. Nothing here touches the terminal,
// the clock or the disk.
package domain

import "fmt"

// Mode is the kind of interval currently counted down.
type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

// Default interval lengths in minutes.
const (
	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5

	// MaxDurationMinutes bounds both interval lengths to one day.
	MaxDurationMinutes = 24 * 60
)

// ParseMode checks if a string is a valid mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeWork, ModeBreak:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid mode %q: must be work or break", s)
}

// Next returns the mode that follows m when an interval completes.
func (m Mode) Next() Mode {
	if m == ModeWork {
		return ModeBreak
	}
	return ModeWork
}

// Label returns a human-readable label.
func (m Mode) Label() string {
	switch m {
	case ModeWork:
		return "Work Time"
	case ModeBreak:
		return "Break Time"
	default:
		return "Unknown"
	}
}

// CompletionTitle is the headline of the alert shown when an interval of
// mode m finishes.
func (m Mode) CompletionTitle() string {
	if m == ModeWork {
		return "🍅 Work interval complete"
	}
	return "☕ Break over"
}

// CompletionMessage is the body of the alert shown when an interval of
// mode m finishes.
func (m Mode) CompletionMessage() string {
	if m == ModeWork {
		return "Time for a break!"
	}
	return "Break is over. Back to work!"
}
