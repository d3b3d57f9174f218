package choreo

import "fmt"

// LoopKind selects a repeat policy.
type LoopKind uint8

const (
	LoopKindOnce     LoopKind = iota // continue past the loop step
	LoopKindForever                  // restart without end
	LoopKindTimes                    // restart a fixed number of times
	LoopKindDuration                 // restart until a wall-clock budget is spent
	LoopKindUntil                    // restart until a predicate holds
)

// LoopMode is the repeat policy carried by a Loop step.
type LoopMode struct {
	Kind  LoopKind
	Count int     // LoopKindTimes
	For   float64 // LoopKindDuration, seconds
	Until func() bool
}

// LoopOnce plays the sequence a single time.
func LoopOnce() LoopMode { return LoopMode{Kind: LoopKindOnce} }

// LoopForever restarts the sequence indefinitely. Control never passes the
// loop step, so it belongs at the end of its sequence.
func LoopForever() LoopMode { return LoopMode{Kind: LoopKindForever} }

// LoopTimes restarts the sequence n more times before continuing.
func LoopTimes(n int) LoopMode { return LoopMode{Kind: LoopKindTimes, Count: n} }

// LoopFor restarts the sequence while fewer than seconds have passed since
// the loop step was first reached.
func LoopFor(seconds float64) LoopMode { return LoopMode{Kind: LoopKindDuration, For: seconds} }

// LoopUntil restarts the sequence until pred returns true. pred is evaluated
// each time the loop step is reached. A nil pred is always satisfied.
func LoopUntil(pred func() bool) LoopMode { return LoopMode{Kind: LoopKindUntil, Until: pred} }

func (m LoopMode) String() string {
	switch m.Kind {
	case LoopKindOnce:
		return "once"
	case LoopKindForever:
		return "forever"
	case LoopKindTimes:
		return fmt.Sprintf("times %d", m.Count)
	case LoopKindDuration:
		return fmt.Sprintf("for %gs", m.For)
	case LoopKindUntil:
		return "until"
	default:
		return fmt.Sprintf("LoopKind(%d)", uint8(m.Kind))
	}
}

// loopKey identifies a Loop step: its slot in the sequence and, for a loop
// inside a group, its position among the members (-1 otherwise).
type loopKey struct {
	index, member int
}

// loopProgress is the state a Loop step keeps across the restarts it causes.
// It is keyed by the step's position, so it outlives each pass through the
// sequence but is cleared once the loop lets control continue.
type loopProgress struct {
	count   int
	start   float64
	started bool
}

// DefaultRestartGap is the pause, in seconds, between resetting the state for
// a new iteration and starting its first step, so the reset shows up as its
// own frame.
const DefaultRestartGap = 0.1

// runLoop applies the policy of the Loop step at key. It either calls
// onComplete, letting the sequence continue, or resets and restarts.
func (a *Animator) runLoop(key loopKey, mode LoopMode, onComplete func()) {
	switch mode.Kind {
	case LoopKindOnce:
		onComplete()
	case LoopKindForever:
		a.restart(key, mode)
	case LoopKindTimes:
		p := a.progress(key)
		if p.count < mode.Count {
			p.count++
			a.restart(key, mode)
			return
		}
		delete(a.loops, key)
		onComplete()
	case LoopKindDuration:
		p := a.progress(key)
		now := a.timeline.Now()
		if !p.started {
			p.started = true
			p.start = now
		}
		if now-p.start < mode.For {
			a.restart(key, mode)
			return
		}
		delete(a.loops, key)
		onComplete()
	case LoopKindUntil:
		if mode.Until == nil || mode.Until() {
			onComplete()
			return
		}
		a.restart(key, mode)
	default:
		panic(fmt.Sprintf("choreo: unknown loop kind %d", mode.Kind))
	}
}

func (a *Animator) progress(key loopKey) *loopProgress {
	if a.loops == nil {
		a.loops = make(map[loopKey]*loopProgress)
	}
	p, ok := a.loops[key]
	if !ok {
		p = &loopProgress{}
		a.loops[key] = p
	}
	return p
}

// restart resets the state to rest and schedules the sequence from index 0
// after the restart gap.
func (a *Animator) restart(key loopKey, mode LoopMode) {
	a.state.Reset()
	a.push()
	a.iteration++
	a.emit(EventLoopRestarted, key.index, KindLoop)
	if a.debug {
		a.logger.Debug("loop restart",
			"index", key.index, "mode", mode.String(), "iteration", a.iteration, "time", a.timeline.Now())
	}
	gen := a.generation
	a.timeline.After(a.restartGap, func() {
		if gen != a.generation {
			return
		}
		a.runFrom(0)
	})
}
