package domain

import "time"

// Event is an input to the timer engine: a user action, a clock tick, an
// app lifecycle transition or a callback from a collaborator.
type Event interface {
	isEvent()
}

// StartEvent begins a fresh interval of the current mode.
type StartEvent struct {
	Now        time.Time
	IntervalID string
}

// PauseEvent freezes the running countdown.
type PauseEvent struct {
	Now time.Time
}

// ResumeEvent continues a paused countdown, or starts a fresh interval
// when nothing is paused.
type ResumeEvent struct {
	Now        time.Time
	IntervalID string
}

// ResetEvent returns the timer to an idle work interval.
type ResetEvent struct{}

// TickEvent asks the engine to reconcile against the wall clock.
type TickEvent struct {
	Now time.Time
}

// ForegroundEvent is emitted when the app becomes visible again.
type ForegroundEvent struct {
	Now time.Time
}

// BackgroundEvent is emitted when the app is hidden or suspended.
type BackgroundEvent struct {
	Now time.Time
}

// SetWorkDurationEvent changes the configured work length.
type SetWorkDurationEvent struct {
	Minutes int
}

// SetBreakDurationEvent changes the configured break length.
type SetBreakDurationEvent struct {
	Minutes int
}

// SignalDeliveredEvent reports that the OS delivered the completion signal
// scheduled for IntervalID.
type SignalDeliveredEvent struct {
	IntervalID string
}

// RestoreEvent rebuilds the state from a persisted snapshot at launch.
// Snapshot is nil when nothing was saved.
type RestoreEvent struct {
	Snapshot *Snapshot
	Now      time.Time
}

func (StartEvent) isEvent()            {}
func (PauseEvent) isEvent()            {}
func (ResumeEvent) isEvent()           {}
func (ResetEvent) isEvent()            {}
func (TickEvent) isEvent()             {}
func (ForegroundEvent) isEvent()       {}
func (BackgroundEvent) isEvent()       {}
func (SetWorkDurationEvent) isEvent()  {}
func (SetBreakDurationEvent) isEvent() {}
func (SignalDeliveredEvent) isEvent()  {}
func (RestoreEvent) isEvent()          {}
