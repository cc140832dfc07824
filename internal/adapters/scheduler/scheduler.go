// Package scheduler delivers completion signals after a delay, even when
// nothing is polling the timer.
package scheduler

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/xvierd/tomato/internal/ports"
)

// Local schedules a desktop notification on an in-process timer. It only
// works while the process is alive, which is the case for the TUI and the
// watch command. At most one signal is pending; scheduling replaces it.
type Local struct {
	notifier ports.Notifier
	log      zerolog.Logger

	mu      sync.Mutex
	pending *time.Timer
	handler ports.SignalHandler
}

// Ensure Local implements ports.Scheduler.
var _ ports.Scheduler = (*Local)(nil)

// NewLocal creates a scheduler that delivers signals through notifier.
func NewLocal(notifier ports.Notifier, log zerolog.Logger) *Local {
	return &Local{notifier: notifier, log: log}
}

// OnDue sets the callback that decides, when a signal is due, whether it
// is still wanted. Without one every due signal is shown.
func (l *Local) OnDue(h ports.SignalHandler) {
	l.mu.Lock()
	l.handler = h
	l.mu.Unlock()
}

// Schedule arranges for title and body to be shown after delay.
func (l *Local) Schedule(delay time.Duration, title, body, intervalID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.pending != nil {
		l.pending.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(delay, func() { l.fire(t, title, body, intervalID) })
	l.pending = t

	l.log.Debug().Dur("delay", delay).Str("interval", intervalID).Msg("completion signal scheduled")
	return nil
}

func (l *Local) fire(t *time.Timer, title, body, intervalID string) {
	l.mu.Lock()
	if l.pending != t {
		// Replaced or cancelled after the timer fired.
		l.mu.Unlock()
		return
	}
	l.pending = nil
	handler := l.handler
	l.mu.Unlock()

	if handler != nil && !handler(intervalID) {
		l.log.Debug().Str("interval", intervalID).Msg("completion signal no longer wanted")
		return
	}
	if err := l.notifier.Notify(title, body); err != nil {
		l.log.Warn().Err(err).Msg("deliver completion signal")
	}
}

// CancelAll drops the pending signal, if any.
func (l *Local) CancelAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.pending != nil {
		l.pending.Stop()
		l.pending = nil
	}
	return nil
}

// Noop is a Scheduler for short-lived commands that exit before any
// signal could fire.
type Noop struct{}

// Schedule does nothing.
func (Noop) Schedule(time.Duration, string, string, string) error { return nil }

// CancelAll does nothing.
func (Noop) CancelAll() error { return nil }
