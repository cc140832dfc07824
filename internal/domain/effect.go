package domain

import "time"

// Effect describes a side effect requested by the engine. Effects are
// executed by the host, never by the engine itself.
type Effect interface {
	isEffect()
}

// PlaySoundEffect plays the completion chime.
type PlaySoundEffect struct{}

// ScheduleSignalEffect asks the OS to deliver a completion signal after
// Delay. It replaces any previously scheduled signal.
type ScheduleSignalEffect struct {
	Delay      time.Duration
	Title      string
	Body       string
	IntervalID string
}

// CancelSignalEffect drops any pending scheduled signal.
type CancelSignalEffect struct{}

// NotifyEffect shows a foreground alert to the user.
type NotifyEffect struct {
	Title   string
	Message string
}

// PersistEffect writes the snapshot through to the store.
type PersistEffect struct {
	Snapshot Snapshot
}

func (PlaySoundEffect) isEffect()      {}
func (ScheduleSignalEffect) isEffect() {}
func (CancelSignalEffect) isEffect()   {}
func (NotifyEffect) isEffect()         {}
func (PersistEffect) isEffect()        {}
