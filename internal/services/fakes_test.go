package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/xvierd/tomato/internal/domain"
)

var errBoom = errors.New("boom")

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fakeSound struct {
	mu    sync.Mutex
	plays int
	err   error
}

func (f *fakeSound) Play(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plays++
	return f.err
}

func (f *fakeSound) Plays() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plays
}

type scheduled struct {
	delay      time.Duration
	intervalID string
}

type fakeScheduler struct {
	mu        sync.Mutex
	scheduled []scheduled
	cancels   int
	err       error
}

func (f *fakeScheduler) Schedule(delay time.Duration, title, body, intervalID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, scheduled{delay: delay, intervalID: intervalID})
	return f.err
}

func (f *fakeScheduler) CancelAll() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
	return f.err
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
	err      error
	// delay simulates a slow notification daemon.
	delay time.Duration
}

func (f *fakeNotifier) Notify(title, message string) error {
	time.Sleep(f.delay)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
	return f.err
}

func (f *fakeNotifier) Messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.messages...)
}

type fakeStore struct {
	mu      sync.Mutex
	snap    *domain.Snapshot
	saves   int
	loadErr error
	saveErr error
}

func (f *fakeStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.snap == nil {
		return nil, domain.ErrSnapshotNotFound
	}
	s := *f.snap
	return &s, nil
}

func (f *fakeStore) Save(ctx context.Context, snap domain.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.snap = &snap
	return nil
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) Saved() *domain.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

func syncDispatch(f func()) { f() }
