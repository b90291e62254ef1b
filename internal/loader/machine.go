// Package loader drives the loading screen transition: a counter filling
// from 0 to 100, followed by timed breaking and zooming phases and a single
// completion signal.
package loader

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/yildizm/landing/internal/clock"
)

var (
	// ErrAlreadyStarted is returned by Start on a machine that has run.
	ErrAlreadyStarted = errors.New("loader already started")
	// ErrCancelled is returned by Start on a cancelled machine.
	ErrCancelled = errors.New("loader cancelled")
	// ErrInvalidTimings is returned by Start when the timings would skip
	// or stall a phase.
	ErrInvalidTimings = errors.New("invalid loader timings")
)

// Phase is one stage of the transition
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCounting
	PhaseBreaking
	PhaseZooming
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCounting:
		return "counting"
	case PhaseBreaking:
		return "breaking"
	case PhaseZooming:
		return "zooming"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// MaxProgress is the counter ceiling.
const MaxProgress = 100

// State is a snapshot of the machine
type State struct {
	Progress int
	Phase    Phase
}

// Timings configures the transition. ZoomDelay and CompleteDelay are both
// measured from entry into PhaseBreaking.
type Timings struct {
	Tick          time.Duration
	Step          int
	BreakDelay    time.Duration
	ZoomDelay     time.Duration
	CompleteDelay time.Duration
}

// DefaultTimings returns the landing page transition timings.
func DefaultTimings() Timings {
	return Timings{
		Tick:          25 * time.Millisecond,
		Step:          2,
		BreakDelay:    400 * time.Millisecond,
		ZoomDelay:     800 * time.Millisecond,
		CompleteDelay: 2500 * time.Millisecond,
	}
}

// Validate checks that every phase is reachable. Zooming must begin
// before completion since both are measured from breaking entry.
func (t Timings) Validate() error {
	switch {
	case t.Tick <= 0:
		return fmt.Errorf("%w: tick must be greater than 0", ErrInvalidTimings)
	case t.Step < 1:
		return fmt.Errorf("%w: step must be at least 1", ErrInvalidTimings)
	case t.BreakDelay < 0 || t.ZoomDelay < 0 || t.CompleteDelay < 0:
		return fmt.Errorf("%w: delays must be non-negative", ErrInvalidTimings)
	case t.ZoomDelay >= t.CompleteDelay:
		return fmt.Errorf("%w: zoom delay %v must be less than complete delay %v",
			ErrInvalidTimings, t.ZoomDelay, t.CompleteDelay)
	}
	return nil
}

// Option configures a Machine
type Option func(*Machine)

// WithTimings overrides the default timings.
func WithTimings(t Timings) Option {
	return func(m *Machine) {
		m.timings = t
	}
}

// WithObserver registers a function called after every progress or phase
// change.
func WithObserver(fn func(State)) Option {
	return func(m *Machine) {
		m.observer = fn
	}
}

// Machine is the phased transition state machine. It is safe for use from
// multiple goroutines; timer callbacks from a real clock run concurrently
// with Cancel.
type Machine struct {
	clock      clock.Clock
	timings    Timings
	onComplete func()
	observer   func(State)

	mu        sync.Mutex
	state     State
	started   bool
	cancelled bool
	pending   map[int]clock.Timer
	nextID    int
}

// New creates a machine that calls onComplete once the transition ends.
func New(clk clock.Clock, onComplete func(), opts ...Option) *Machine {
	m := &Machine{
		clock:      clk,
		timings:    DefaultTimings(),
		onComplete: onComplete,
		pending:    make(map[int]clock.Timer),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current snapshot.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start enters the counting phase and schedules the first tick.
func (m *Machine) Start() error {
	m.mu.Lock()
	switch {
	case m.cancelled:
		m.mu.Unlock()
		return ErrCancelled
	case m.started:
		m.mu.Unlock()
		return ErrAlreadyStarted
	}
	if err := m.timings.Validate(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.started = true
	m.state.Phase = PhaseCounting
	m.scheduleLocked(m.timings.Tick, m.tick)
	snapshot := m.state
	m.mu.Unlock()

	m.notify(snapshot)
	return nil
}

// Cancel stops every pending timer. On a clock that fires callbacks
// synchronously, nothing fires after Cancel returns; with the real clock a
// callback already executing on another goroutine may still deliver its
// final notification.
func (m *Machine) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancelled {
		return
	}
	m.cancelled = true
	for id, t := range m.pending {
		t.Stop()
		delete(m.pending, id)
	}
}

// Cancelled reports whether Cancel has been called.
func (m *Machine) Cancelled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancelled
}

func (m *Machine) tick() {
	m.mu.Lock()
	if m.cancelled || m.state.Phase != PhaseCounting {
		m.mu.Unlock()
		return
	}

	m.state.Progress += m.timings.Step
	if m.state.Progress >= MaxProgress {
		m.state.Progress = MaxProgress
		m.scheduleLocked(m.timings.BreakDelay, m.enterBreaking)
	} else {
		m.scheduleLocked(m.timings.Tick, m.tick)
	}
	snapshot := m.state
	m.mu.Unlock()

	m.notify(snapshot)
}

func (m *Machine) enterBreaking() {
	m.mu.Lock()
	if m.cancelled || m.state.Phase != PhaseCounting {
		m.mu.Unlock()
		return
	}
	m.state.Phase = PhaseBreaking
	m.scheduleLocked(m.timings.ZoomDelay, m.enterZooming)
	m.scheduleLocked(m.timings.CompleteDelay, m.complete)
	snapshot := m.state
	m.mu.Unlock()

	m.notify(snapshot)
}

func (m *Machine) enterZooming() {
	m.mu.Lock()
	if m.cancelled || m.state.Phase != PhaseBreaking {
		m.mu.Unlock()
		return
	}
	m.state.Phase = PhaseZooming
	snapshot := m.state
	m.mu.Unlock()

	m.notify(snapshot)
}

func (m *Machine) complete() {
	m.mu.Lock()
	if m.cancelled || m.state.Phase < PhaseBreaking || m.state.Phase == PhaseDone {
		m.mu.Unlock()
		return
	}
	m.state.Phase = PhaseDone
	snapshot := m.state
	m.mu.Unlock()

	m.notify(snapshot)
	if m.onComplete != nil {
		m.onComplete()
	}
}

// scheduleLocked registers a timer that removes itself from the pending set
// when it fires. Callers hold m.mu.
func (m *Machine) scheduleLocked(d time.Duration, fn func()) {
	m.nextID++
	id := m.nextID
	m.pending[id] = m.clock.AfterFunc(d, func() {
		m.mu.Lock()
		delete(m.pending, id)
		m.mu.Unlock()
		fn()
	})
}

func (m *Machine) notify(s State) {
	if m.observer != nil {
		m.observer(s)
	}
}
