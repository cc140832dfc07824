package domain

import "errors"

// Common domain errors.
var (
	ErrTimerActive      = errors.New("timer already running")
	ErrTimerNotActive   = errors.New("timer is not running")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrSnapshotNotFound = errors.New("no saved timer state")
	ErrCorruptSnapshot  = errors.New("saved timer state is corrupt")
)
