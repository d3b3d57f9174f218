package choreo

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// StepKind identifies which animation a Step performs.
type StepKind uint8

const (
	KindFade   StepKind = iota // opacity to a target
	KindScale                  // scale to a target, optionally from a start
	KindMove                   // offset to a point, or by a delta
	KindRotate                 // rotation to, or by, an angle
	KindSpin                   // one linear turn, reset to zero
	KindSlide                  // offset in from, or out to, a direction
	KindSpring                 // scale overshoot on a spring curve
	KindShake                  // decaying random offset jitter
	KindPulse                  // scale out to a target and back
	KindDelay                  // wait without mutation
	KindLoop                   // repeat policy for the whole sequence
	KindCustom                 // synchronous user transform
	KindGroup                  // concurrent members; produced by Sequence.And
)

var kindNames = [...]string{
	"fade", "scale", "move", "rotate", "spin", "slide", "spring",
	"shake", "pulse", "delay", "loop", "custom", "group",
}

func (k StepKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("StepKind(%d)", uint8(k))
}

// Step describes a single animation operation. A single flat struct is used
// for every kind; each kind reads only the fields listed on its constructor.
// Construct steps with the typed constructors rather than by hand.
type Step struct {
	Kind     StepKind
	Duration float64 // seconds

	// Fade
	Opacity float64

	// Scale, Spring, Pulse
	Scale   Vec2
	From    Vec2
	FromSet bool

	// Move, Rotate
	Point    Vec2
	Angle    float64 // radians
	Relative bool

	// Slide
	Direction Direction
	Distance  float64
	Slide     SlideMode

	// Spring
	Spring SpringCurve

	// Shake
	Axis      Axis
	Intensity float64

	// Loop
	Loop LoopMode

	// Custom
	Transform func(*State)

	// Group
	Members []Step

	// Ease overrides the kind's default curve when non-nil.
	Ease ease.TweenFunc
}

// Fade animates opacity to the target.
func Fade(opacity, duration float64) Step {
	return Step{Kind: KindFade, Opacity: opacity, Duration: duration}
}

// Scale animates a uniform scale factor to the target.
func Scale(factor, duration float64) Step {
	return ScaleXY(factor, factor, duration)
}

// ScaleXY animates each scale axis to its own target.
func ScaleXY(sx, sy, duration float64) Step {
	return Step{Kind: KindScale, Scale: Vec2{sx, sy}, Duration: duration}
}

// ScaleFromTo snaps scale to from and animates it to to.
func ScaleFromTo(from, to, duration float64) Step {
	return Step{Kind: KindScale, From: Vec2{from, from}, FromSet: true, Scale: Vec2{to, to}, Duration: duration}
}

// MoveTo animates the offset to the absolute point (x, y).
func MoveTo(x, y, duration float64) Step {
	return Step{Kind: KindMove, Point: Vec2{x, y}, Duration: duration}
}

// MoveBy animates the offset by (dx, dy) from wherever it is when the step
// begins.
func MoveBy(dx, dy, duration float64) Step {
	return Step{Kind: KindMove, Point: Vec2{dx, dy}, Relative: true, Duration: duration}
}

// Rotate animates rotation to the angle in radians.
func Rotate(radians, duration float64) Step {
	return Step{Kind: KindRotate, Angle: radians, Duration: duration}
}

// RotateBy animates rotation by the angle in radians.
func RotateBy(radians, duration float64) Step {
	return Step{Kind: KindRotate, Angle: radians, Relative: true, Duration: duration}
}

// Spin turns once, linearly, and resets rotation to zero at the end.
func Spin(duration float64) Step {
	return Step{Kind: KindSpin, Duration: duration}
}

// Slide moves in from, or out toward, the given direction.
func Slide(mode SlideMode, dir Direction, distance, duration float64) Step {
	return Step{Kind: KindSlide, Slide: mode, Direction: dir, Distance: distance, Duration: duration}
}

// Spring overshoots scale to the given factor of its current value along the
// curve, then settles back.
func Spring(curve SpringCurve, overshoot, duration float64) Step {
	return Step{Kind: KindSpring, Spring: curve, Scale: Vec2{overshoot, overshoot}, Duration: duration}
}

// Shake jitters the offset along axis with decaying magnitude. The
// displacement length never exceeds intensity, on either axis or both.
func Shake(axis Axis, intensity, duration float64) Step {
	return Step{Kind: KindShake, Axis: axis, Intensity: intensity, Duration: duration}
}

// Pulse scales out to the target and back within duration.
func Pulse(factor, duration float64) Step {
	return Step{Kind: KindPulse, Scale: Vec2{factor, factor}, Duration: duration}
}

// Delay waits without touching the state.
func Delay(duration float64) Step {
	return Step{Kind: KindDelay, Duration: duration}
}

// Loop ends a pass through the sequence with the given repeat policy.
func Loop(mode LoopMode) Step {
	return Step{Kind: KindLoop, Loop: mode}
}

// Custom runs fn against the state and completes immediately. fn owns any
// timing of its own.
func Custom(fn func(*State)) Step {
	return Step{Kind: KindCustom, Transform: fn}
}

// WithEase returns a copy of s that uses fn instead of the kind's default
// curve.
func (s Step) WithEase(fn ease.TweenFunc) Step {
	s.Ease = fn
	return s
}

// NominalDuration returns the fixed wait the step commits to. Loop, Custom and
// Group steps report zero: their timing comes from their own logic. Negative
// durations count as zero.
func (s Step) NominalDuration() float64 {
	switch s.Kind {
	case KindLoop, KindCustom, KindGroup:
		return 0
	default:
		return max(s.Duration, 0)
	}
}

// passDuration is the time one pass through s takes: the longest member for a
// group, the nominal duration otherwise.
func (s Step) passDuration() float64 {
	if s.Kind != KindGroup {
		return s.NominalDuration()
	}
	var longest float64
	for _, m := range s.Members {
		longest = max(longest, m.passDuration())
	}
	return longest
}

// field is a bitmask of the State fields a step writes.
type field uint8

const (
	fieldOpacity field = 1 << iota
	fieldScale
	fieldOffset
	fieldRotation
)

// fields reports the State fields s writes. Custom steps may write anything
// and report none.
func (s Step) fields() field {
	switch s.Kind {
	case KindFade:
		return fieldOpacity
	case KindScale, KindSpring, KindPulse:
		return fieldScale
	case KindMove, KindSlide, KindShake:
		return fieldOffset
	case KindRotate, KindSpin:
		return fieldRotation
	case KindGroup:
		var f field
		for _, m := range s.Members {
			f |= m.fields()
		}
		return f
	default:
		return 0
	}
}

func (s Step) String() string {
	switch s.Kind {
	case KindGroup:
		return fmt.Sprintf("group(%d)", len(s.Members))
	case KindLoop:
		return "loop(" + s.Loop.String() + ")"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("%s(%gs)", s.Kind, s.Duration)
	}
}
