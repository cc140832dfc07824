package domain

import "github.com/google/uuid"

// NewIntervalID creates a new unique identifier for a running interval.
func NewIntervalID() string {
	return uuid.New().String()
}
