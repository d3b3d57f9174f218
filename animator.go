package choreo

import (
	"log/slog"
	"math/rand/v2"
)

// Status is the lifecycle state of an Animator's current sequence.
type Status uint8

const (
	StatusIdle      Status = iota // nothing played yet
	StatusRunning                 // a step is executing
	StatusCompleted               // every step finished
)

var statusNames = [...]string{"idle", "running", "completed"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Animator plays step sequences against the visual state of one attached
// view. It owns the State, a Timeline, and the run state of the sequence.
// Create one per view and call Update(dt) each frame.
//
// An Animator is single-threaded: all steps, callbacks and state writes happen
// inside Play and Update on the caller's goroutine. Use a Player to drive one
// from its own goroutine.
type Animator struct {
	state    State
	target   Target
	timeline Timeline

	steps      []Step
	status     Status
	index      int
	iteration  int
	generation uint64
	loops      map[loopKey]*loopProgress

	restartGap float64
	rng        *rand.Rand
	sink       EventSink
	logger     *slog.Logger
	debug      bool
	detached   bool

	// OnComplete, when set, runs once each time a sequence reaches its end.
	OnComplete func()
}

// Option configures an Animator.
type Option func(*Animator)

// WithRestartGap sets the pause between a loop's state reset and the next
// iteration. Non-positive values keep DefaultRestartGap.
func WithRestartGap(seconds float64) Option {
	return func(a *Animator) {
		if seconds > 0 {
			a.restartGap = seconds
		}
	}
}

// WithRand sets the random source used by shake steps.
func WithRand(r *rand.Rand) Option {
	return func(a *Animator) {
		if r != nil {
			a.rng = r
		}
	}
}

// WithEventSink forwards lifecycle events to sink.
func WithEventSink(sink EventSink) Option {
	return func(a *Animator) { a.sink = sink }
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *slog.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithDebug enables debug mode from construction.
func WithDebug(enabled bool) Option {
	return func(a *Animator) { a.debug = enabled }
}

// NewAnimator attaches a fresh rest State to target. target may be nil when
// the caller reads State() itself.
func NewAnimator(target Target, opts ...Option) *Animator {
	a := &Animator{
		state:      RestState(),
		target:     target,
		loops:      make(map[loopKey]*loopProgress),
		restartGap: DefaultRestartGap,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if a.logger == nil {
		a.logger = defaultLogger()
	}
	return a
}

// State returns the current visual state.
func (a *Animator) State() State {
	return a.state
}

// Status returns where the current sequence is in its lifecycle.
func (a *Animator) Status() Status {
	return a.status
}

// Index returns the index of the step most recently started.
func (a *Animator) Index() int {
	return a.index
}

// Iteration returns how many loop restarts the current sequence has made.
func (a *Animator) Iteration() int {
	return a.iteration
}

// Now returns the time on the animator's timeline in seconds.
func (a *Animator) Now() float64 {
	return a.timeline.Now()
}

// Timeline exposes the clock steps are scheduled on.
func (a *Animator) Timeline() *Timeline {
	return &a.timeline
}

// SetEventSink sets the sink lifecycle events are forwarded to. nil disables
// forwarding.
func (a *Animator) SetEventSink(sink EventSink) {
	a.sink = sink
}

// Play starts seq from its first step, replacing whatever was playing. The
// state is not reset; the sequence starts from the current values.
// Zero-duration leading steps take effect before Play returns.
func (a *Animator) Play(seq Sequence) {
	if a.detached {
		if a.debug {
			panic("choreo debug: Play on detached animator")
		}
		return
	}
	if a.debug {
		if err := seq.Validate(); err != nil {
			a.logger.Warn("sequence failed validation", "error", err)
		}
	}
	a.timeline.Clear()
	a.generation++
	a.steps = seq.Steps()
	a.iteration = 0
	a.index = 0
	clear(a.loops)
	a.status = StatusRunning
	a.runFrom(0)
	a.push()
}

// Update advances the timeline by dt seconds, running every step boundary that
// falls inside the window, then delivers the state to the target.
func (a *Animator) Update(dt float64) {
	if a.detached {
		return
	}
	a.timeline.Advance(dt)
	a.push()
}

// Detach discards the state and every pending step. The animator cannot be
// used afterwards.
func (a *Animator) Detach() {
	if a.detached {
		return
	}
	a.detached = true
	a.generation++
	a.timeline.Clear()
	a.steps = nil
	a.loops = nil
	a.target = nil
	a.sink = nil
	a.OnComplete = nil
}

// IsDetached reports whether Detach has been called.
func (a *Animator) IsDetached() bool {
	return a.detached
}

// runFrom executes the step at index i and chains to the next one when it
// completes. Reaching the end marks the sequence completed.
func (a *Animator) runFrom(i int) {
	if i >= len(a.steps) {
		a.finish()
		return
	}
	a.index = i
	step := a.steps[i]
	a.emit(EventStepStarted, i, step.Kind)
	if a.debug {
		a.logger.Debug("step start", "index", i, "step", step.String(), "time", a.timeline.Now())
	}
	gen := a.generation
	done := false
	a.execute(i, step, func() {
		if gen != a.generation {
			return
		}
		if done {
			panic("choreo: step completed twice")
		}
		done = true
		a.emit(EventStepCompleted, i, step.Kind)
		a.runFrom(i + 1)
	})
}

func (a *Animator) finish() {
	a.status = StatusCompleted
	a.emit(EventSequenceCompleted, len(a.steps), 0)
	if a.debug {
		a.logger.Debug("sequence complete", "steps", len(a.steps), "iterations", a.iteration, "time", a.timeline.Now())
	}
	if a.OnComplete != nil {
		a.OnComplete()
	}
}

// push delivers the current state to the target.
func (a *Animator) push() {
	if a.target != nil {
		a.target.ApplyState(a.state)
	}
}

func (a *Animator) emit(typ EventType, index int, kind StepKind) {
	if a.sink == nil {
		return
	}
	a.sink.EmitEvent(Event{
		Type:      typ,
		Index:     index,
		Kind:      kind,
		Iteration: a.iteration,
		Time:      a.timeline.Now(),
	})
}
