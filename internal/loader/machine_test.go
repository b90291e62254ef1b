package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yildizm/landing/internal/clock"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type recorder struct {
	states      []State
	completions int
	// progressAtCompletion is the progress observed when onComplete ran.
	progressAtCompletion int
	phaseAtCompletion    Phase
}

func newRecordedMachine(t *testing.T) (*Machine, *clock.Fake, *recorder) {
	t.Helper()
	clk := clock.NewFake(epoch)
	rec := &recorder{}
	var m *Machine
	m = New(clk, func() {
		rec.completions++
		s := m.State()
		rec.progressAtCompletion = s.Progress
		rec.phaseAtCompletion = s.Phase
	}, WithObserver(func(s State) {
		rec.states = append(rec.states, s)
	}))
	return m, clk, rec
}

// ticksToFull is the number of ticks needed to reach 100 at the default step.
const ticksToFull = MaxProgress / 2

func TestFullRunCompletesOnce(t *testing.T) {
	m, clk, rec := newRecordedMachine(t)
	require.NoError(t, m.Start())

	clk.Advance(10 * time.Second)

	assert.Equal(t, 1, rec.completions)
	assert.Equal(t, MaxProgress, rec.progressAtCompletion)
	assert.Equal(t, PhaseDone, rec.phaseAtCompletion)
	assert.Equal(t, State{Progress: MaxProgress, Phase: PhaseDone}, m.State())
	assert.Zero(t, clk.Pending(), "no timers should remain after completion")

	clk.Advance(time.Minute)
	assert.Equal(t, 1, rec.completions)
}

func TestProgressMonotonicAndBounded(t *testing.T) {
	m, clk, rec := newRecordedMachine(t)
	require.NoError(t, m.Start())

	last := 0
	for i := 0; i < 400; i++ {
		clk.Advance(10 * time.Millisecond)
		s := m.State()
		require.GreaterOrEqual(t, s.Progress, last)
		require.LessOrEqual(t, s.Progress, MaxProgress)
		last = s.Progress
	}

	for _, s := range rec.states {
		assert.LessOrEqual(t, s.Progress, MaxProgress)
	}
}

func TestPhaseOrdering(t *testing.T) {
	m, clk, rec := newRecordedMachine(t)
	require.NoError(t, m.Start())
	clk.Advance(10 * time.Second)

	var phases []Phase
	for _, s := range rec.states {
		if len(phases) == 0 || phases[len(phases)-1] != s.Phase {
			phases = append(phases, s.Phase)
		}
	}
	assert.Equal(t, []Phase{PhaseCounting, PhaseBreaking, PhaseZooming, PhaseDone}, phases)
}

func TestTimeline(t *testing.T) {
	m, clk, rec := newRecordedMachine(t)
	timings := DefaultTimings()
	require.NoError(t, m.Start())

	full := time.Duration(ticksToFull) * timings.Tick

	clk.Advance(full - timings.Tick)
	assert.Equal(t, State{Progress: MaxProgress - timings.Step, Phase: PhaseCounting}, m.State())

	clk.Advance(timings.Tick)
	assert.Equal(t, State{Progress: MaxProgress, Phase: PhaseCounting}, m.State())

	// Ticking stops at the ceiling: only the break timer is pending.
	assert.Equal(t, 1, clk.Pending())

	clk.Advance(timings.BreakDelay - time.Millisecond)
	assert.Equal(t, PhaseCounting, m.State().Phase)
	clk.Advance(time.Millisecond)
	assert.Equal(t, PhaseBreaking, m.State().Phase)

	clk.Advance(timings.ZoomDelay - time.Millisecond)
	assert.Equal(t, PhaseBreaking, m.State().Phase)
	clk.Advance(time.Millisecond)
	assert.Equal(t, PhaseZooming, m.State().Phase)

	// Completion is measured from breaking entry, not zooming entry.
	remaining := timings.CompleteDelay - timings.ZoomDelay
	clk.Advance(remaining - time.Millisecond)
	assert.Equal(t, 0, rec.completions)
	clk.Advance(time.Millisecond)
	assert.Equal(t, 1, rec.completions)
	assert.Equal(t, PhaseDone, m.State().Phase)
}

func TestCancelBeforeCompletion(t *testing.T) {
	points := []struct {
		name    string
		advance time.Duration
	}{
		{"not yet ticked", 0},
		{"mid counting", 500 * time.Millisecond},
		{"before breaking", 1300 * time.Millisecond},
		{"breaking", 1700 * time.Millisecond},
		{"zooming", 3000 * time.Millisecond},
	}

	for _, p := range points {
		t.Run(p.name, func(t *testing.T) {
			m, clk, rec := newRecordedMachine(t)
			require.NoError(t, m.Start())
			clk.Advance(p.advance)

			m.Cancel()
			before := m.State()
			observed := len(rec.states)

			clk.Advance(time.Minute)
			assert.Equal(t, 0, rec.completions)
			assert.Equal(t, before, m.State())
			assert.Len(t, rec.states, observed, "observer fired after cancel")
			assert.Zero(t, clk.Pending())
			assert.True(t, m.Cancelled())
		})
	}
}

func TestDoubleStart(t *testing.T) {
	m, clk, rec := newRecordedMachine(t)
	require.NoError(t, m.Start())
	assert.ErrorIs(t, m.Start(), ErrAlreadyStarted)

	clk.Advance(10 * time.Second)
	assert.ErrorIs(t, m.Start(), ErrAlreadyStarted)
	assert.Equal(t, 1, rec.completions)
}

func TestStartAfterCancel(t *testing.T) {
	m, clk, rec := newRecordedMachine(t)
	m.Cancel()
	m.Cancel()
	assert.ErrorIs(t, m.Start(), ErrCancelled)

	clk.Advance(10 * time.Second)
	assert.Equal(t, PhaseIdle, m.State().Phase)
	assert.Equal(t, 0, rec.completions)
}

func TestCustomTimings(t *testing.T) {
	clk := clock.NewFake(epoch)
	done := 0
	m := New(clk, func() { done++ }, WithTimings(Timings{
		Tick:          time.Millisecond,
		Step:          30,
		BreakDelay:    time.Millisecond,
		ZoomDelay:     time.Millisecond,
		CompleteDelay: 2 * time.Millisecond,
	}))
	require.NoError(t, m.Start())

	// 30, 60, 90, 100 (clamped)
	clk.Advance(4 * time.Millisecond)
	assert.Equal(t, State{Progress: MaxProgress, Phase: PhaseCounting}, m.State())

	clk.Advance(3 * time.Millisecond)
	assert.Equal(t, 1, done)
}

func TestInvalidTimings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Timings)
	}{
		{"zoom after complete", func(tm *Timings) { tm.ZoomDelay = 3 * time.Second }},
		{"zoom equals complete", func(tm *Timings) { tm.ZoomDelay = tm.CompleteDelay }},
		{"zero tick", func(tm *Timings) { tm.Tick = 0 }},
		{"zero step", func(tm *Timings) { tm.Step = 0 }},
		{"negative break delay", func(tm *Timings) { tm.BreakDelay = -time.Millisecond }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timings := DefaultTimings()
			tt.mutate(&timings)
			assert.ErrorIs(t, timings.Validate(), ErrInvalidTimings)

			clk := clock.NewFake(epoch)
			done := 0
			m := New(clk, func() { done++ }, WithTimings(timings))
			assert.ErrorIs(t, m.Start(), ErrInvalidTimings)

			clk.Advance(10 * time.Second)
			assert.Equal(t, PhaseIdle, m.State().Phase)
			assert.Zero(t, done)
			assert.Zero(t, clk.Pending())
		})
	}
}

func TestDefaultTimingsVisitEveryPhase(t *testing.T) {
	require.NoError(t, DefaultTimings().Validate())

	m, clk, rec := newRecordedMachine(t)
	require.NoError(t, m.Start())
	clk.Advance(10 * time.Second)

	var phases []Phase
	for _, s := range rec.states {
		if len(phases) == 0 || phases[len(phases)-1] != s.Phase {
			phases = append(phases, s.Phase)
		}
	}
	assert.Equal(t, []Phase{PhaseCounting, PhaseBreaking, PhaseZooming, PhaseDone}, phases)
}

func TestNilCallbacks(t *testing.T) {
	clk := clock.NewFake(epoch)
	m := New(clk, nil)
	require.NoError(t, m.Start())
	clk.Advance(10 * time.Second)
	assert.Equal(t, PhaseDone, m.State().Phase)
}

func TestRealClockCompletes(t *testing.T) {
	done := make(chan struct{})
	m := New(clock.Real(), func() { close(done) }, WithTimings(Timings{
		Tick:          time.Millisecond,
		Step:          50,
		BreakDelay:    time.Millisecond,
		ZoomDelay:     time.Millisecond,
		CompleteDelay: 2 * time.Millisecond,
	}))
	require.NoError(t, m.Start())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loader did not complete")
	}
	assert.Equal(t, PhaseDone, m.State().Phase)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "counting", PhaseCounting.String())
	assert.Equal(t, "zooming", PhaseZooming.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
