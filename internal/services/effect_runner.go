package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/xvierd/tomato/internal/domain"
	"github.com/xvierd/tomato/internal/ports"
)

// saveTimeout bounds a single snapshot write.
const saveTimeout = 5 * time.Second

// EffectRunner executes the effects produced by the timer engine.
// Every collaborator is optional and every failure is logged and dropped:
// a broken speaker or notification daemon never stops the countdown.
type EffectRunner struct {
	sound     ports.SoundPlayer
	scheduler ports.Scheduler
	notifier  ports.Notifier
	store     ports.SnapshotStore
	log       zerolog.Logger
	dispatch  func(func())

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	pending *domain.Snapshot
	wake    chan struct{}
	done    chan struct{}
	closed  bool
}

// RunnerOption configures an EffectRunner.
type RunnerOption func(*EffectRunner)

// WithSound sets the chime player.
func WithSound(p ports.SoundPlayer) RunnerOption {
	return func(r *EffectRunner) { r.sound = p }
}

// WithScheduler sets the OS signal scheduler.
func WithScheduler(s ports.Scheduler) RunnerOption {
	return func(r *EffectRunner) { r.scheduler = s }
}

// WithNotifier sets the foreground notifier.
func WithNotifier(n ports.Notifier) RunnerOption {
	return func(r *EffectRunner) { r.notifier = n }
}

// WithStore sets the snapshot store used for write-through persistence.
func WithStore(s ports.SnapshotStore) RunnerOption {
	return func(r *EffectRunner) { r.store = s }
}

// WithDispatch overrides how fire-and-forget calls are launched.
// The default runs each call on its own goroutine.
func WithDispatch(fn func(func())) RunnerOption {
	return func(r *EffectRunner) { r.dispatch = fn }
}

// NewEffectRunner creates a runner and starts its persistence writer.
func NewEffectRunner(log zerolog.Logger, opts ...RunnerOption) *EffectRunner {
	ctx, cancel := context.WithCancel(context.Background())
	r := &EffectRunner{
		log:      log,
		dispatch: func(f func()) { go f() },
		ctx:      ctx,
		cancel:   cancel,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	go r.writeLoop()
	return r
}

// Run executes effects in order without waiting for sound, notifications
// or disk writes to finish.
func (r *EffectRunner) Run(effects []domain.Effect) {
	for _, effect := range effects {
		switch e := effect.(type) {
		case domain.PlaySoundEffect:
			r.playSound()
		case domain.NotifyEffect:
			r.notify(e.Title, e.Message)
		case domain.ScheduleSignalEffect:
			if r.scheduler == nil {
				continue
			}
			if err := r.scheduler.Schedule(e.Delay, e.Title, e.Body, e.IntervalID); err != nil {
				r.log.Warn().Err(err).Dur("delay", e.Delay).Msg("schedule completion signal")
			}
		case domain.CancelSignalEffect:
			if r.scheduler == nil {
				continue
			}
			if err := r.scheduler.CancelAll(); err != nil {
				r.log.Warn().Err(err).Msg("cancel completion signal")
			}
		case domain.PersistEffect:
			r.enqueue(e.Snapshot)
		default:
			r.log.Error().Msgf("unknown effect %T", effect)
		}
	}
}

func (r *EffectRunner) playSound() {
	if r.sound == nil {
		return
	}
	r.dispatch(func() {
		if err := r.sound.Play(r.ctx); err != nil {
			r.log.Warn().Err(err).Msg("play chime")
		}
	})
}

func (r *EffectRunner) notify(title, message string) {
	if r.notifier == nil {
		return
	}
	r.dispatch(func() {
		if err := r.notifier.Notify(title, message); err != nil {
			r.log.Warn().Err(err).Str("title", title).Msg("show notification")
		}
	})
}

// enqueue hands a snapshot to the writer. Only the newest unsaved
// snapshot is kept, so writes never reorder and never pile up.
func (r *EffectRunner) enqueue(snap domain.Snapshot) {
	if r.store == nil {
		return
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		r.log.Warn().Msg("snapshot dropped after shutdown")
		return
	}
	r.pending = &snap
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

func (r *EffectRunner) writeLoop() {
	defer close(r.done)
	for {
		select {
		case <-r.wake:
			r.flush()
		case <-r.ctx.Done():
			r.flush()
			return
		}
	}
}

func (r *EffectRunner) flush() {
	r.mu.Lock()
	snap := r.pending
	r.pending = nil
	r.mu.Unlock()

	if snap == nil || r.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := r.store.Save(ctx, *snap); err != nil {
		r.log.Error().Err(err).Msg("persist timer state")
		return
	}
	r.log.Debug().Str("mode", string(snap.Mode)).Bool("active", snap.Active).Msg("timer state saved")
}

// Close writes any pending snapshot and stops the writer.
func (r *EffectRunner) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	r.cancel()
	<-r.done
}
