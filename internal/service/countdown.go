package service

import (
	"context"
	"math"
	"sync"
	"time"

	"seasonal_calc/internal/models"

	"github.com/google/uuid"
)

// DefaultCountdownTick is the nominal countdown period.
const DefaultCountdownTick = time.Second

type CountdownOption func(*CountdownSession)

// WithClock replaces time.Now. Tests use it to step through a window.
func WithClock(now func() time.Time) CountdownOption {
	return func(s *CountdownSession) {
		if now != nil {
			s.now = now
		}
	}
}

// WithOnChange registers an observer called outside the lock whenever the state changes.
func WithOnChange(fn func(models.CountdownState)) CountdownOption {
	return func(s *CountdownSession) {
		s.onChange = fn
	}
}

// CountdownSession ticks a single thaw window. At most one window is armed at a time.
type CountdownSession struct {
	// lifecycle serializes Start and Cancel so only one goroutine is ever live.
	lifecycle sync.Mutex

	mu       sync.Mutex
	tick     time.Duration
	now      func() time.Time
	onChange func(models.CountdownState)

	id     string
	window models.ThawWindow
	state  models.CountdownState
	cancel context.CancelFunc
	done   chan struct{}
}

func NewCountdownSession(tick time.Duration, opts ...CountdownOption) *CountdownSession {
	if tick <= 0 {
		tick = DefaultCountdownTick
	}
	s := &CountdownSession{
		tick:  tick,
		now:   time.Now,
		state: idleState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start cancels any running countdown and arms w. It returns the new session id.
// A window that is already over, or degenerate, starts Completed and never ticks.
func (s *CountdownSession) Start(w models.ThawWindow) string {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.stop()

	id := uuid.NewString()
	st := evaluateCountdown(s.now(), w)
	st.SessionID = id

	s.mu.Lock()
	s.id = id
	s.window = w
	s.state = st
	if st.Phase != models.PhaseCompleted {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		s.cancel = cancel
		s.done = done
		go s.run(ctx, id, done)
	}
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(st)
	}
	return id
}

// Cancel stops the running countdown, waits for its goroutine, and returns to Idle.
func (s *CountdownSession) Cancel() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.stop()

	s.mu.Lock()
	changed := s.state.Phase != models.PhaseIdle
	s.id = ""
	s.window = models.ThawWindow{}
	s.state = idleState()
	st := s.state
	onChange := s.onChange
	s.mu.Unlock()

	if changed && onChange != nil {
		onChange(st)
	}
}

// CurrentState returns the state as of the last tick.
func (s *CountdownSession) CurrentState() models.CountdownState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// stop cancels the goroutine and joins it. Caller holds lifecycle.
func (s *CountdownSession) stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.id = ""
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// run ticks until ctx is canceled or the window completes.
func (s *CountdownSession) run(ctx context.Context, id string, done chan struct{}) {
	defer close(done)

	t := time.NewTicker(s.tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if s.advance(id, s.now()) {
				return
			}
		}
	}
}

// advance recomputes the state for id at now. It reports whether ticking must stop.
func (s *CountdownSession) advance(id string, now time.Time) bool {
	s.mu.Lock()
	if id != s.id || s.state.Phase == models.PhaseCompleted {
		s.mu.Unlock()
		return true
	}

	prev := s.state
	next := evaluateCountdown(now, s.window)
	next.SessionID = id

	// no regressions if the clock steps backwards
	if next.Phase.Before(prev.Phase) {
		next = prev
	} else if next.Phase == prev.Phase && next.FractionElapsed < prev.FractionElapsed {
		next.FractionElapsed = prev.FractionElapsed
	}

	s.state = next
	onChange := s.onChange
	s.mu.Unlock()

	if next != prev && onChange != nil {
		onChange(next)
	}
	return next.Phase == models.PhaseCompleted
}

// evaluateCountdown derives the state of w at now.
func evaluateCountdown(now time.Time, w models.ThawWindow) models.CountdownState {
	total := w.End.Sub(w.Start)
	remaining := w.End.Sub(now)

	var st models.CountdownState
	switch {
	case total <= 0 || remaining <= 0:
		st.Phase = models.PhaseCompleted
		st.FractionElapsed = 1
		remaining = 0
	case now.Before(w.Start):
		st.Phase = models.PhaseNotStarted
	default:
		st.Phase = models.PhaseInProgress
		st.FractionElapsed = clamp01(1 - float64(remaining)/float64(total))
	}

	st.RemainingSeconds = int64(math.Ceil(remaining.Seconds()))
	st.RemainingText = FormatDuration(remaining.Hours())
	st.Message = countdownMessage(st.Phase, st.RemainingText)
	return st
}

func idleState() models.CountdownState {
	return models.CountdownState{Phase: models.PhaseIdle}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
