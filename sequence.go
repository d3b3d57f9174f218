package choreo

import (
	"github.com/pkg/errors"
)

// Sequence is an ordered list of steps under construction. It is a value:
// every method returns a new Sequence with its own copy of the steps, so
// intermediate values can be kept, branched and reused freely.
//
// Then and And set how the next appended step joins the previous slot. The
// mode is sticky until changed. In parallel mode the new step joins the last
// slot into a group; groups never nest.
//
//	seq := choreo.NewSequence().
//		FadeOut(0.3).And().ScaleTo(1.5, 0.3).
//		Then().FadeIn(0.3).And().ScaleTo(1, 0.3).
//		Then().Loop(choreo.LoopForever())
type Sequence struct {
	steps    []Step
	parallel bool
}

// NewSequence returns a sequential sequence holding steps in order.
func NewSequence(steps ...Step) Sequence {
	return Sequence{steps: cloneSteps(steps, 0)}
}

// Then switches to sequential joining.
func (s Sequence) Then() Sequence {
	s.parallel = false
	return s
}

// And switches to parallel joining.
func (s Sequence) And() Sequence {
	s.parallel = true
	return s
}

// Parallel reports whether the next append joins the previous slot.
func (s Sequence) Parallel() bool {
	return s.parallel
}

// Append adds step according to the current join mode.
func (s Sequence) Append(step Step) Sequence {
	n := len(s.steps)
	out := cloneSteps(s.steps, 1)
	if !s.parallel || n == 0 {
		s.steps = append(out, step)
		return s
	}
	last := out[n-1]
	var members []Step
	if last.Kind == KindGroup {
		members = cloneSteps(last.Members, 1)
	} else {
		members = []Step{last}
	}
	if step.Kind == KindGroup {
		members = append(members, step.Members...)
	} else {
		members = append(members, step)
	}
	out[n-1] = Step{Kind: KindGroup, Members: members}
	s.steps = out
	return s
}

// Concat appends every slot of other in order, each through the current join
// mode.
func (s Sequence) Concat(other Sequence) Sequence {
	for _, step := range other.steps {
		s = s.Append(step)
	}
	return s
}

// Steps returns a copy of the slots; groups count as one slot.
func (s Sequence) Steps() []Step {
	return cloneSteps(s.steps, 0)
}

// Len returns the number of slots.
func (s Sequence) Len() int {
	return len(s.steps)
}

// NominalDuration returns the time one pass takes, ignoring loops: the sum
// over slots, with each group counting its longest member.
func (s Sequence) NominalDuration() float64 {
	var total float64
	for _, step := range s.steps {
		total += step.passDuration()
	}
	return total
}

// cloneSteps copies steps into a fresh backing array with room for extra more.
func cloneSteps(steps []Step, extra int) []Step {
	out := make([]Step, len(steps), len(steps)+extra)
	copy(out, steps)
	return out
}

// --- Fluent helpers ---

// Delay appends a wait.
func (s Sequence) Delay(duration float64) Sequence { return s.Append(Delay(duration)) }

// Loop appends a repeat policy.
func (s Sequence) Loop(mode LoopMode) Sequence { return s.Append(Loop(mode)) }

// FadeIn appends a fade to full opacity.
func (s Sequence) FadeIn(duration float64) Sequence { return s.Append(Fade(1, duration)) }

// FadeOut appends a fade to transparent.
func (s Sequence) FadeOut(duration float64) Sequence { return s.Append(Fade(0, duration)) }

// FadeTo appends a fade to opacity.
func (s Sequence) FadeTo(opacity, duration float64) Sequence {
	return s.Append(Fade(opacity, duration))
}

// ScaleTo appends a uniform scale.
func (s Sequence) ScaleTo(factor, duration float64) Sequence {
	return s.Append(Scale(factor, duration))
}

// ScaleXYTo appends a per-axis scale.
func (s Sequence) ScaleXYTo(sx, sy, duration float64) Sequence {
	return s.Append(ScaleXY(sx, sy, duration))
}

// ScaleFromTo appends a scale that snaps to from first.
func (s Sequence) ScaleFromTo(from, to, duration float64) Sequence {
	return s.Append(ScaleFromTo(from, to, duration))
}

// MoveTo appends a move to an absolute offset.
func (s Sequence) MoveTo(x, y, duration float64) Sequence { return s.Append(MoveTo(x, y, duration)) }

// MoveBy appends a relative move.
func (s Sequence) MoveBy(dx, dy, duration float64) Sequence {
	return s.Append(MoveBy(dx, dy, duration))
}

// RotateTo appends a rotation to an angle in degrees.
func (s Sequence) RotateTo(degrees, duration float64) Sequence {
	return s.Append(Rotate(Degrees(degrees), duration))
}

// RotateBy appends a rotation by an angle in degrees.
func (s Sequence) RotateBy(degrees, duration float64) Sequence {
	return s.Append(RotateBy(Degrees(degrees), duration))
}

// Spin appends one full turn.
func (s Sequence) Spin(duration float64) Sequence { return s.Append(Spin(duration)) }

// SlideIn appends an entrance from dir.
func (s Sequence) SlideIn(dir Direction, distance, duration float64) Sequence {
	return s.Append(Slide(SlideIn, dir, distance, duration))
}

// SlideOut appends an exit toward dir.
func (s Sequence) SlideOut(dir Direction, distance, duration float64) Sequence {
	return s.Append(Slide(SlideOut, dir, distance, duration))
}

// Spring appends a spring overshoot.
func (s Sequence) Spring(curve SpringCurve, overshoot, duration float64) Sequence {
	return s.Append(Spring(curve, overshoot, duration))
}

// Shake appends a shake.
func (s Sequence) Shake(axis Axis, intensity, duration float64) Sequence {
	return s.Append(Shake(axis, intensity, duration))
}

// Pulse appends a pulse.
func (s Sequence) Pulse(factor, duration float64) Sequence { return s.Append(Pulse(factor, duration)) }

// Custom appends a synchronous transform.
func (s Sequence) Custom(fn func(*State)) Sequence { return s.Append(Custom(fn)) }

// --- Validation ---

var (
	// ErrForeverNotLast means steps follow a forever loop and can never run.
	ErrForeverNotLast = errors.New("forever loop is not the last step")
	// ErrFieldConflict means two members of one group write the same field,
	// so the settled value depends on scheduling order.
	ErrFieldConflict = errors.New("parallel steps write the same field")
)

// Validate reports structural problems that play without error but rarely
// mean what the author intended. It returns nil for a sound sequence.
func (s Sequence) Validate() error {
	for i, step := range s.steps {
		if isForever(step) && i < len(s.steps)-1 {
			return errors.Wrapf(ErrForeverNotLast, "slot %d of %d", i, len(s.steps))
		}
		if step.Kind != KindGroup {
			continue
		}
		var seen field
		for j, m := range step.Members {
			f := m.fields()
			if seen&f != 0 {
				return errors.Wrapf(ErrFieldConflict, "slot %d member %d (%s)", i, j, m)
			}
			seen |= f
		}
	}
	return nil
}

func isForever(step Step) bool {
	if step.Kind == KindLoop {
		return step.Loop.Kind == LoopKindForever
	}
	if step.Kind == KindGroup {
		for _, m := range step.Members {
			if isForever(m) {
				return true
			}
		}
	}
	return false
}
