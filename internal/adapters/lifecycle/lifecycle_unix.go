//go:build unix

package lifecycle

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

// New returns a JobControl bound to SIGTSTP and SIGCONT.
func New(log zerolog.Logger) *JobControl {
	return &JobControl{
		log: log,
		subscribe: func(c chan<- os.Signal) {
			signal.Notify(c, syscall.SIGTSTP, syscall.SIGCONT)
		},
		unsubscribe: func(c chan<- os.Signal) { signal.Stop(c) },
		suspend: func() error {
			return syscall.Kill(syscall.Getpid(), syscall.SIGSTOP)
		},
	}
}

func isSuspend(sig os.Signal) bool { return sig == syscall.SIGTSTP }

func isResume(sig os.Signal) bool { return sig == syscall.SIGCONT }
