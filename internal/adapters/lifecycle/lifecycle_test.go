//go:build unix

package lifecycle

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/xvierd/tomato/internal/ports"
)

func newFake() (*JobControl, chan chan<- os.Signal, *atomic.Int32) {
	subscribed := make(chan chan<- os.Signal, 1)
	var suspends atomic.Int32
	j := &JobControl{
		log:         zerolog.Nop(),
		subscribe:   func(c chan<- os.Signal) { subscribed <- c },
		unsubscribe: func(chan<- os.Signal) {},
		suspend: func() error {
			suspends.Add(1)
			return nil
		},
	}
	return j, subscribed, &suspends
}

func next(t *testing.T, events <-chan ports.LifecycleEvent) ports.LifecycleEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no lifecycle event")
		return ""
	}
}

func TestJobControl_Events(t *testing.T) {
	j, subscribed, suspends := newFake()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := j.Events(ctx)
	sigs := <-subscribed

	sigs <- syscall.SIGTSTP
	if ev := next(t, events); ev != ports.LifecycleBackground {
		t.Errorf("event = %q, want background", ev)
	}

	sigs <- syscall.SIGCONT
	if ev := next(t, events); ev != ports.LifecycleForeground {
		t.Errorf("event = %q, want foreground", ev)
	}

	if n := suspends.Load(); n != 1 {
		t.Errorf("suspended %d times, want 1", n)
	}
}

func TestJobControl_ClosesOnCancel(t *testing.T) {
	j, subscribed, _ := newFake()
	ctx, cancel := context.WithCancel(context.Background())

	events := j.Events(ctx)
	<-subscribed
	cancel()

	select {
	case _, ok := <-events:
		if ok {
			t.Error("unexpected event after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed")
	}
}
