//go:build !unix

package lifecycle

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a JobControl that never reports a transition; the platform
// has no job control.
func New(log zerolog.Logger) *JobControl {
	return &JobControl{
		log:         log,
		subscribe:   func(chan<- os.Signal) {},
		unsubscribe: func(chan<- os.Signal) {},
		suspend:     func() error { return nil },
	}
}

func isSuspend(os.Signal) bool { return false }

func isResume(os.Signal) bool { return false }
