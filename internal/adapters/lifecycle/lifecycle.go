// Package lifecycle turns terminal job control into foreground and
// background transitions for headless runs.
package lifecycle

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/xvierd/tomato/internal/ports"
)

// JobControl reports ctrl+z as a background transition and fg/bg as a
// foreground one.
type JobControl struct {
	log         zerolog.Logger
	subscribe   func(chan<- os.Signal)
	unsubscribe func(chan<- os.Signal)
	suspend     func() error
}

// Ensure JobControl implements ports.Lifecycle.
var _ ports.Lifecycle = (*JobControl)(nil)

// Events returns the transitions until ctx is done. After a background
// event has been sent the process stops itself, as the shell expects.
func (j *JobControl) Events(ctx context.Context) <-chan ports.LifecycleEvent {
	sigs := make(chan os.Signal, 2)
	out := make(chan ports.LifecycleEvent, 2)
	j.subscribe(sigs)

	go func() {
		defer close(out)
		defer j.unsubscribe(sigs)

		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigs:
				switch {
				case isSuspend(sig):
					if !send(ctx, out, ports.LifecycleBackground) {
						return
					}
					if err := j.suspend(); err != nil {
						j.log.Warn().Err(err).Msg("suspend process")
					}
				case isResume(sig):
					if !send(ctx, out, ports.LifecycleForeground) {
						return
					}
				}
			}
		}
	}()

	return out
}

func send(ctx context.Context, out chan<- ports.LifecycleEvent, ev ports.LifecycleEvent) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
