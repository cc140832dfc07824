// Package engine implements the timer state machine as a pure reducer.
//
// Reduce never reads the clock, plays sounds or touches storage: the
// current time arrives inside events, and every side effect is returned as
// a domain.Effect for the host to execute. Remaining time is always
// recomputed from the interval's absolute start time and its fixed total
// length, so the result is the same however long the process was
// suspended between two calls.
package engine

import (
	"fmt"
	"time"

	"github.com/xvierd/tomato/internal/domain"
)

// Reduce applies ev to s and returns the next state together with the
// effects to run, in order. When an error is returned the state is
// unchanged and no effect is produced.
func Reduce(s domain.TimerState, ev domain.Event) (domain.TimerState, []domain.Effect, error) {
	before := s.Snapshot()
	var effects []domain.Effect

	switch e := ev.(type) {
	case domain.StartEvent:
		if s.Active {
			return s, nil, domain.ErrTimerActive
		}
		s, effects = start(s, e.Now, e.IntervalID, s.DurationFor(s.Mode))

	case domain.ResumeEvent:
		if s.Active {
			return s, nil, domain.ErrTimerActive
		}
		total := s.DurationFor(s.Mode)
		if s.IsPaused() {
			total = s.SecondsLeft
		}
		s, effects = start(s, e.Now, e.IntervalID, total)

	case domain.PauseEvent:
		if !s.Active {
			return s, nil, domain.ErrTimerNotActive
		}
		s, effects = reconcile(s, e.Now)
		if s.Active {
			s = pause(s)
			effects = append(effects, domain.CancelSignalEffect{})
		}

	case domain.ResetEvent:
		s = reset(s)
		effects = []domain.Effect{domain.CancelSignalEffect{}}

	case domain.TickEvent:
		s, effects = reconcile(s, e.Now)

	case domain.ForegroundEvent:
		s, effects = reconcile(s, e.Now)

	case domain.BackgroundEvent:
		// The scheduled signal covers completion while hidden.

	case domain.SetWorkDurationEvent:
		if err := domain.ValidateDurationMinutes(e.Minutes); err != nil {
			return s, nil, err
		}
		s = setDuration(s, domain.ModeWork, e.Minutes)

	case domain.SetBreakDurationEvent:
		if err := domain.ValidateDurationMinutes(e.Minutes); err != nil {
			return s, nil, err
		}
		s = setDuration(s, domain.ModeBreak, e.Minutes)

	case domain.SignalDeliveredEvent:
		if s.Active && e.IntervalID != "" && e.IntervalID == s.IntervalID {
			s.SignalDelivered = true
		}

	case domain.RestoreEvent:
		if e.Snapshot == nil || e.Snapshot.Validate() != nil {
			return s, nil, nil
		}
		before = *e.Snapshot
		s, effects = restore(*e.Snapshot, e.Now)

	default:
		return s, nil, fmt.Errorf("unknown event %T", ev)
	}

	if after := s.Snapshot(); !after.Equal(before) {
		effects = append(effects, domain.PersistEffect{Snapshot: after})
	}
	return s, effects, nil
}

// Reconcile recomputes the remaining time of a running interval at now.
// It is Reduce with a TickEvent, exposed for callers that only need the
// derived value.
func Reconcile(s domain.TimerState, now time.Time) domain.TimerState {
	s, _ = reconcile(s, now)
	return s
}

func start(s domain.TimerState, now time.Time, intervalID string, total int) (domain.TimerState, []domain.Effect) {
	t := now
	s.StartTime = &t
	s.TotalSeconds = total
	s.SecondsLeft = total
	s.Active = true
	s.IntervalID = intervalID
	s.SignalDelivered = false

	return s, []domain.Effect{signalFor(s, total)}
}

func pause(s domain.TimerState) domain.TimerState {
	s.Active = false
	s.StartTime = nil
	s.IntervalID = ""
	s.SignalDelivered = false
	return s
}

func reset(s domain.TimerState) domain.TimerState {
	s.Mode = domain.ModeWork
	s.Active = false
	s.StartTime = nil
	s.TotalSeconds = s.DurationFor(domain.ModeWork)
	s.SecondsLeft = s.TotalSeconds
	s.IntervalID = ""
	s.SignalDelivered = false
	return s
}

func reconcile(s domain.TimerState, now time.Time) (domain.TimerState, []domain.Effect) {
	if !s.Active || s.StartTime == nil {
		return s, nil
	}

	elapsed := int(now.Sub(*s.StartTime) / time.Second)
	if elapsed < 0 {
		// Wall clock stepped backwards.
		elapsed = 0
	}
	remaining := s.TotalSeconds - elapsed
	if remaining < 0 {
		remaining = 0
	}
	s.SecondsLeft = remaining

	if remaining == 0 {
		return complete(s)
	}
	return s, nil
}

// complete ends the running interval and flips the mode. The new interval
// is left idle.
func complete(s domain.TimerState) (domain.TimerState, []domain.Effect) {
	finished := s.Mode
	effects := []domain.Effect{domain.PlaySoundEffect{}}
	if !s.SignalDelivered {
		effects = append(effects, domain.NotifyEffect{
			Title:   finished.CompletionTitle(),
			Message: finished.CompletionMessage(),
		})
	}

	s.Mode = finished.Next()
	s.TotalSeconds = s.DurationFor(s.Mode)
	s.SecondsLeft = s.TotalSeconds
	s.Active = false
	s.StartTime = nil
	s.IntervalID = ""
	s.SignalDelivered = false

	return s, append(effects, domain.CancelSignalEffect{})
}

func setDuration(s domain.TimerState, m domain.Mode, minutes int) domain.TimerState {
	if m == domain.ModeWork {
		s.WorkMinutes = minutes
	} else {
		s.BreakMinutes = minutes
	}

	// An idle timer always shows the full length of its mode.
	if !s.Active && s.Mode == m {
		s.TotalSeconds = minutes * 60
		s.SecondsLeft = s.TotalSeconds
	}
	return s
}

func restore(snap domain.Snapshot, now time.Time) (domain.TimerState, []domain.Effect) {
	s := domain.TimerState{
		Mode:            snap.Mode,
		WorkMinutes:     snap.WorkMinutes,
		BreakMinutes:    snap.BreakMinutes,
		Active:          snap.Active,
		TotalSeconds:    snap.TotalSeconds,
		IntervalID:      snap.IntervalID,
		SignalDelivered: snap.SignalDelivered,
	}

	if !s.Active {
		s.SecondsLeft = snap.SecondsLeft
		if !s.IsPaused() {
			s.TotalSeconds = s.DurationFor(s.Mode)
			s.SecondsLeft = s.TotalSeconds
		}
		return s, nil
	}

	t := *snap.StartTime
	s.StartTime = &t
	s.SecondsLeft = s.TotalSeconds

	s, effects := reconcile(s, now)
	if s.Active {
		// Any signal scheduled by a previous process is gone.
		effects = append(effects, signalFor(s, s.SecondsLeft))
	}
	return s, effects
}

func signalFor(s domain.TimerState, seconds int) domain.ScheduleSignalEffect {
	return domain.ScheduleSignalEffect{
		Delay:      time.Duration(seconds) * time.Second,
		Title:      s.Mode.CompletionTitle(),
		Body:       s.Mode.CompletionMessage(),
		IntervalID: s.IntervalID,
	}
}
