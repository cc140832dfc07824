// Package clock provides the wall clock.
package clock

import (
	"time"

	"github.com/xvierd/tomato/internal/ports"
)

// System reads the host's wall clock.
type System struct{}

// Ensure System implements ports.Clock.
var _ ports.Clock = System{}

// Now returns the current local time.
func (System) Now() time.Time { return time.Now() }
