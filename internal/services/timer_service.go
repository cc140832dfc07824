package services

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"github.com/xvierd/tomato/internal/domain"
	"github.com/xvierd/tomato/internal/engine"
	"github.com/xvierd/tomato/internal/ports"
)

// EffectExecutor runs engine effects. Implemented by EffectRunner.
type EffectExecutor interface {
	Run(effects []domain.Effect)
}

// TimerService owns the application's single timer. Every mutation goes
// through engine.Reduce under one mutex, so user actions, ticks, lifecycle
// events and scheduler callbacks are applied strictly one at a time.
// Effects run after the lock is released.
type TimerService struct {
	mu        sync.Mutex
	state     domain.TimerState
	clock     ports.Clock
	effects   EffectExecutor
	newID     func() string
	log       zerolog.Logger
	listeners []func(domain.TimerState)
}

// ServiceOption configures a TimerService.
type ServiceOption func(*TimerService)

// WithIDGenerator overrides how interval ids are created.
func WithIDGenerator(fn func() string) ServiceOption {
	return func(s *TimerService) { s.newID = fn }
}

// NewTimerService creates a timer service starting from initial.
func NewTimerService(initial domain.TimerState, clock ports.Clock, effects EffectExecutor, log zerolog.Logger, opts ...ServiceOption) *TimerService {
	s := &TimerService{
		state:   initial,
		clock:   clock,
		effects: effects,
		newID:   domain.NewIntervalID,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load restores the timer from store, reconciling it against the current
// time. A missing or unreadable snapshot leaves the initial state in place.
func (s *TimerService) Load(ctx context.Context, store ports.SnapshotStore) domain.TimerState {
	snap, err := store.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound):
		s.log.Debug().Msg("no saved timer state, using defaults")
		snap = nil
	case err != nil:
		s.log.Warn().Err(err).Msg("load timer state, using defaults")
		snap = nil
	case snap != nil:
		if verr := snap.Validate(); verr != nil {
			s.log.Warn().Err(verr).Msg("discarding saved timer state")
			snap = nil
		}
	}

	state, _ := s.apply(func(domain.TimerState) domain.Event {
		return domain.RestoreEvent{Snapshot: snap, Now: s.clock.Now()}
	})
	return state
}

// OnChange registers fn to be called after every applied event.
func (s *TimerService) OnChange(fn func(domain.TimerState)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// apply reduces the event built by next against the current state.
func (s *TimerService) apply(next func(domain.TimerState) domain.Event) (domain.TimerState, error) {
	s.mu.Lock()
	ev := next(s.state)
	state, effects, err := engine.Reduce(s.state, ev)
	if err != nil {
		current := s.state
		s.mu.Unlock()
		return current, err
	}
	s.state = state
	listeners := append([]func(domain.TimerState){}, s.listeners...)
	s.mu.Unlock()

	if len(effects) > 0 {
		s.log.Debug().Str("event", eventName(ev)).Int("effects", len(effects)).Msg("timer transition")
	}
	s.effects.Run(effects)
	for _, fn := range listeners {
		fn(state)
	}
	return state, nil
}

func (s *TimerService) event(ev domain.Event) (domain.TimerState, error) {
	return s.apply(func(domain.TimerState) domain.Event { return ev })
}

// State returns the timer reconciled against the current time.
func (s *TimerService) State() domain.TimerState {
	state, _ := s.Tick()
	return state
}

// Snapshot returns the last computed state without reconciling.
func (s *TimerService) Snapshot() domain.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start begins a fresh interval of the current mode.
func (s *TimerService) Start() (domain.TimerState, error) {
	return s.event(domain.StartEvent{Now: s.clock.Now(), IntervalID: s.newID()})
}

// Pause freezes the running countdown.
func (s *TimerService) Pause() (domain.TimerState, error) {
	return s.event(domain.PauseEvent{Now: s.clock.Now()})
}

// Resume continues a paused countdown or starts a fresh interval.
func (s *TimerService) Resume() (domain.TimerState, error) {
	return s.event(domain.ResumeEvent{Now: s.clock.Now(), IntervalID: s.newID()})
}

// Toggle pauses a running timer and resumes an idle one.
func (s *TimerService) Toggle() (domain.TimerState, error) {
	now := s.clock.Now()
	id := s.newID()
	return s.apply(func(cur domain.TimerState) domain.Event {
		if cur.Active {
			return domain.PauseEvent{Now: now}
		}
		return domain.ResumeEvent{Now: now, IntervalID: id}
	})
}

// Reset returns the timer to an idle work interval.
func (s *TimerService) Reset() domain.TimerState {
	state, _ := s.event(domain.ResetEvent{})
	return state
}

// Tick reconciles the timer against the current time.
func (s *TimerService) Tick() (domain.TimerState, error) {
	return s.event(domain.TickEvent{Now: s.clock.Now()})
}

// Foreground must be called when the app becomes visible again.
func (s *TimerService) Foreground() domain.TimerState {
	state, _ := s.event(domain.ForegroundEvent{Now: s.clock.Now()})
	return state
}

// Background must be called when the app is hidden or suspended.
func (s *TimerService) Background() domain.TimerState {
	state, _ := s.event(domain.BackgroundEvent{Now: s.clock.Now()})
	return state
}

// HandleLifecycle routes a lifecycle transition to Foreground or Background.
func (s *TimerService) HandleLifecycle(ev ports.LifecycleEvent) domain.TimerState {
	if ev == ports.LifecycleBackground {
		return s.Background()
	}
	return s.Foreground()
}

// SetWorkDuration sets the work interval length in minutes.
func (s *TimerService) SetWorkDuration(minutes int) (domain.TimerState, error) {
	return s.event(domain.SetWorkDurationEvent{Minutes: minutes})
}

// SetBreakDuration sets the break interval length in minutes.
func (s *TimerService) SetBreakDuration(minutes int) (domain.TimerState, error) {
	return s.event(domain.SetBreakDurationEvent{Minutes: minutes})
}

// EditDuration applies the in-progress text of a duration field for mode m.
// Text that is not a valid edit leaves the duration unchanged.
func (s *TimerService) EditDuration(m domain.Mode, text string) domain.TimerState {
	minutes, ok := domain.ParseDurationEdit(text)
	if !ok {
		return s.Snapshot()
	}
	state, _ := s.setDuration(m, minutes)
	return state
}

// CommitDuration applies the final text of a duration field for mode m
// once editing ends; a blank field falls back to the default length.
func (s *TimerService) CommitDuration(m domain.Mode, text string) domain.TimerState {
	state, _ := s.apply(func(cur domain.TimerState) domain.Event {
		current := cur.WorkMinutes
		if m == domain.ModeBreak {
			current = cur.BreakMinutes
		}
		return durationEvent(m, domain.CommitDurationEdit(text, current))
	})
	return state
}

func (s *TimerService) setDuration(m domain.Mode, minutes int) (domain.TimerState, error) {
	return s.event(durationEvent(m, minutes))
}

// ClaimSignal records that the OS completion signal for intervalID is
// about to be shown and reports whether the caller may show it. Only the
// first claim for the running interval succeeds; once the interval has
// completed, been paused or reset, the claim fails. Deciding under the
// service lock leaves exactly one notification per completion. It is safe
// to call from any goroutine.
func (s *TimerService) ClaimSignal(intervalID string) bool {
	claimed := false
	_, _ = s.apply(func(cur domain.TimerState) domain.Event {
		claimed = cur.Active && intervalID != "" &&
			cur.IntervalID == intervalID && !cur.SignalDelivered
		return domain.SignalDeliveredEvent{IntervalID: intervalID}
	})
	return claimed
}

func durationEvent(m domain.Mode, minutes int) domain.Event {
	if m == domain.ModeBreak {
		return domain.SetBreakDurationEvent{Minutes: minutes}
	}
	return domain.SetWorkDurationEvent{Minutes: minutes}
}

func eventName(ev domain.Event) string {
	switch ev.(type) {
	case domain.StartEvent:
		return "start"
	case domain.PauseEvent:
		return "pause"
	case domain.ResumeEvent:
		return "resume"
	case domain.ResetEvent:
		return "reset"
	case domain.TickEvent:
		return "tick"
	case domain.ForegroundEvent:
		return "foreground"
	case domain.BackgroundEvent:
		return "background"
	case domain.SetWorkDurationEvent:
		return "set_work_duration"
	case domain.SetBreakDurationEvent:
		return "set_break_duration"
	case domain.SignalDeliveredEvent:
		return "signal_delivered"
	case domain.RestoreEvent:
		return "restore"
	default:
		return "unknown"
	}
}

// Ensure TimerService implements ports.TimerController.
var _ ports.TimerController = (*TimerService)(nil)
