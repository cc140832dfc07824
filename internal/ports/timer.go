package ports

import (
	"context"
	"time"
)

// Clock provides the current wall-clock time.
// This is a driven port (implemented by adapters).
type Clock interface {
	Now() time.Time
}

// SoundPlayer plays the completion chime.
// This is a driven port (implemented by adapters).
type SoundPlayer interface {
	// Play plays the chime once. Calling it while a previous chime is
	// still playing is allowed.
	Play(ctx context.Context) error
}

// Scheduler delivers a completion signal through the operating system
// after a delay, even if the timer screen is not being looked at.
// This is a driven port (implemented by adapters).
type Scheduler interface {
	// Schedule replaces any pending signal with a new one firing after delay.
	Schedule(delay time.Duration, title, body, intervalID string) error

	// CancelAll drops any pending signal.
	CancelAll() error
}

// SignalHandler is called by a Scheduler when a signal is due, before it
// is shown. It returns false when intervalID is no longer running or its
// completion was already announced; the signal is then dropped.
type SignalHandler func(intervalID string) bool

// Notifier alerts the user while the app is in the foreground.
// This is a driven port (implemented by adapters).
type Notifier interface {
	Notify(title, message string) error
}

// LifecycleEvent is a visibility transition of the host application.
type LifecycleEvent string

const (
	// LifecycleForeground means the app became visible again.
	LifecycleForeground LifecycleEvent = "foreground"

	// LifecycleBackground means the app was hidden or suspended.
	LifecycleBackground LifecycleEvent = "background"
)

// Lifecycle reports foreground/background transitions.
// This is a driving port (it calls into the application).
type Lifecycle interface {
	// Events returns a channel of transitions. It is closed when ctx is done.
	Events(ctx context.Context) <-chan LifecycleEvent
}
