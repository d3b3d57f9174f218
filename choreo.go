package choreo

import "math"

// Vec2 is a 2D vector used for offsets, scale factors, pivots and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Mul returns v scaled by k.
func (v Vec2) Mul(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// State is the mutable visual record every step reads and writes: opacity,
// scale, offset from rest, and rotation in radians. Opacity is logically in
// [0, 1] but is not clamped while a transition is in flight.
type State struct {
	Opacity  float64
	Scale    Vec2
	Offset   Vec2
	Rotation float64
}

// RestState returns the state a view has when nothing is animating it.
func RestState() State {
	return State{Opacity: 1, Scale: Vec2{1, 1}}
}

// Reset restores the rest values in place.
func (s *State) Reset() {
	*s = RestState()
}

// IsRest reports whether every field holds its exact rest value.
func (s State) IsRest() bool {
	return s == RestState()
}

// ClampedOpacity returns Opacity limited to [0, 1], as a renderer applies it.
func (s State) ClampedOpacity() float64 {
	return math.Max(0, math.Min(1, s.Opacity))
}

// Target receives the visual state of an animated view. The core never needs
// the concrete element type, only somewhere to deliver the four values.
type Target interface {
	ApplyState(State)
}

// TargetFunc adapts a plain function to the Target interface.
type TargetFunc func(State)

// ApplyState calls f(s).
func (f TargetFunc) ApplyState(s State) { f(s) }

// Direction selects one of eight compass-style slide directions. Screen
// coordinates are used: Y grows downward.
type Direction uint8

const (
	DirectionUp        Direction = iota // toward negative Y
	DirectionDown                       // toward positive Y
	DirectionLeft                       // toward negative X
	DirectionRight                      // toward positive X
	DirectionUpLeft                     // both negative
	DirectionUpRight                    // X positive, Y negative
	DirectionDownLeft                   // X negative, Y positive
	DirectionDownRight                  // both positive
)

var directionNames = [...]string{"up", "down", "left", "right", "up-left", "up-right", "down-left", "down-right"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// Vector returns the offset of a slide of the given distance in direction d.
// Diagonals move the full distance on both axes.
func (d Direction) Vector(distance float64) Vec2 {
	switch d {
	case DirectionUp:
		return Vec2{0, -distance}
	case DirectionDown:
		return Vec2{0, distance}
	case DirectionLeft:
		return Vec2{-distance, 0}
	case DirectionRight:
		return Vec2{distance, 0}
	case DirectionUpLeft:
		return Vec2{-distance, -distance}
	case DirectionUpRight:
		return Vec2{distance, -distance}
	case DirectionDownLeft:
		return Vec2{-distance, distance}
	case DirectionDownRight:
		return Vec2{distance, distance}
	default:
		panic("choreo: unknown slide direction")
	}
}

// Axis selects which offset components a shake displaces.
type Axis uint8

const (
	AxisHorizontal Axis = iota // X only
	AxisVertical               // Y only
	AxisBoth                   // X and Y independently
)

var axisNames = [...]string{"horizontal", "vertical", "both"}

func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return "unknown"
}

// SlideMode says whether a slide enters (offset toward zero) or exits (zero
// toward offset).
type SlideMode uint8

const (
	SlideIn  SlideMode = iota // start displaced, end at rest
	SlideOut                  // start at rest, end displaced
)

// Degrees converts an angle in degrees to the radians State.Rotation uses.
func Degrees(deg float64) float64 {
	return deg * math.Pi / 180
}
