package choreo

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// shakeSubsteps is the number of random displacements a shake makes.
const shakeSubsteps = 8

// execute performs s against the animator's state and calls onComplete once,
// s's duration later. Steps with no duration complete before execute returns
// and schedule nothing.
func (a *Animator) execute(index int, s Step, onComplete func()) {
	st := &a.state
	d := s.NominalDuration()

	switch s.Kind {
	case KindFade:
		a.animate(&st.Opacity, s.Opacity, d, a.curve(s, ease.InOutQuad))
		a.wait(d, onComplete)

	case KindScale:
		if s.FromSet {
			st.Scale = s.From
		}
		fn := a.curve(s, ease.InOutQuad)
		a.animate(&st.Scale.X, s.Scale.X, d, fn)
		a.animate(&st.Scale.Y, s.Scale.Y, d, fn)
		a.wait(d, onComplete)

	case KindMove:
		to := s.Point
		if s.Relative {
			to = st.Offset.Add(s.Point)
		}
		fn := a.curve(s, ease.InOutQuad)
		a.animate(&st.Offset.X, to.X, d, fn)
		a.animate(&st.Offset.Y, to.Y, d, fn)
		a.wait(d, onComplete)

	case KindRotate:
		to := s.Angle
		if s.Relative {
			to = st.Rotation + s.Angle
		}
		a.animate(&st.Rotation, to, d, a.curve(s, ease.InOutQuad))
		a.wait(d, onComplete)

	case KindSpin:
		st.Rotation = 0
		if d > 0 {
			a.timeline.Animate(0, 2*math.Pi, 0, d, a.curve(s, ease.Linear), set(&st.Rotation))
		}
		a.wait(d, onComplete)

	case KindSlide:
		a.slide(s, d)
		a.wait(d, onComplete)

	case KindSpring:
		base := st.Scale
		if d > 0 {
			fn := s.Spring.Ease()
			if s.Ease != nil {
				fn = s.Ease
			}
			a.timeline.Animate(base.X, base.X*s.Scale.X, base.X, d, fn, set(&st.Scale.X))
			a.timeline.Animate(base.Y, base.Y*s.Scale.Y, base.Y, d, fn, set(&st.Scale.Y))
		}
		a.wait(d, onComplete)

	case KindPulse:
		base := st.Scale
		if d > 0 {
			fn := yoyo(a.curve(s, ease.InOutQuad))
			a.timeline.Animate(base.X, s.Scale.X, base.X, d, fn, set(&st.Scale.X))
			a.timeline.Animate(base.Y, s.Scale.Y, base.Y, d, fn, set(&st.Scale.Y))
		}
		a.wait(d, onComplete)

	case KindShake:
		a.shake(s, d, onComplete)

	case KindDelay:
		a.wait(d, onComplete)

	case KindCustom:
		if s.Transform != nil {
			s.Transform(st)
		}
		onComplete()

	case KindGroup:
		a.join(index, s.Members, onComplete)

	case KindLoop:
		a.runLoop(loopKey{index: index, member: -1}, s.Loop, onComplete)

	default:
		panic(fmt.Sprintf("choreo: no interpreter for step kind %s", s.Kind))
	}
}

// curve returns the step's easing override, or def.
func (a *Animator) curve(s Step, def ease.TweenFunc) ease.TweenFunc {
	if s.Ease != nil {
		return s.Ease
	}
	return def
}

// animate drives *field from its current value to `to` over d seconds. A
// non-positive d snaps immediately.
func (a *Animator) animate(field *float64, to, d float64, fn ease.TweenFunc) {
	if d <= 0 {
		*field = to
		return
	}
	a.timeline.Animate(*field, to, to, d, fn, set(field))
}

// wait calls onComplete d seconds from now, or right away when d is not
// positive.
func (a *Animator) wait(d float64, onComplete func()) {
	if d <= 0 {
		onComplete()
		return
	}
	a.timeline.After(d, onComplete)
}

func set(field *float64) func(float64) {
	return func(v float64) { *field = v }
}

// slide places the offset at the start of the slide and animates it to the
// end: from the direction vector to rest when entering, from rest to the
// vector when leaving.
func (a *Animator) slide(s Step, d float64) {
	st := &a.state
	vec := s.Direction.Vector(s.Distance)
	from, to, def := vec, Vec2{}, ease.TweenFunc(ease.OutQuad)
	if s.Slide == SlideOut {
		from, to, def = Vec2{}, vec, ease.InQuad
	}
	st.Offset = from
	fn := a.curve(s, def)
	a.animate(&st.Offset.X, to.X, d, fn)
	a.animate(&st.Offset.Y, to.Y, d, fn)
}

// shake moves the offset toward a fresh random point at each of
// shakeSubsteps equal intervals. The bound on each draw falls linearly from
// the intensity toward zero, and the offset is forced to exactly zero when
// the step completes.
func (a *Animator) shake(s Step, d float64, onComplete func()) {
	st := &a.state
	if d <= 0 {
		st.Offset = Vec2{}
		onComplete()
		return
	}
	sub := d / shakeSubsteps
	fn := a.curve(s, ease.Linear)
	gen := a.generation
	var stops []func()

	var kick func(i int)
	kick = func(i int) {
		if gen != a.generation {
			return
		}
		bound := math.Abs(s.Intensity) * (1 - float64(i)/shakeSubsteps)
		to := a.shakePoint(s.Axis, bound)
		stops = append(stops,
			a.timeline.Animate(st.Offset.X, to.X, to.X, sub, fn, set(&st.Offset.X)),
			a.timeline.Animate(st.Offset.Y, to.Y, to.Y, sub, fn, set(&st.Offset.Y)),
		)
		if i+1 < shakeSubsteps {
			a.timeline.After(sub, func() { kick(i + 1) })
		}
	}
	kick(0)

	a.timeline.After(d, func() {
		for _, stop := range stops {
			stop()
		}
		st.Offset = Vec2{}
		onComplete()
	})
}

// shakePoint draws a displacement of length at most bound on the enabled axes.
func (a *Animator) shakePoint(axis Axis, bound float64) Vec2 {
	draw := func() float64 { return (a.rng.Float64()*2 - 1) * bound }
	switch axis {
	case AxisHorizontal:
		return Vec2{draw(), 0}
	case AxisVertical:
		return Vec2{0, draw()}
	default:
		// Uniform in the disc of radius bound, so the displacement length
		// never exceeds it.
		r := bound * math.Sqrt(a.rng.Float64())
		sin, cos := math.Sincos(2 * math.Pi * a.rng.Float64())
		return Vec2{r * cos, r * sin}
	}
}

// join runs every member of a group at once and calls onComplete when all of
// them have completed. Loop members are terminal for the group: they are
// evaluated, in order, after the others finish.
func (a *Animator) join(index int, members []Step, onComplete func()) {
	var loops []int
	remaining := 0
	for i, m := range members {
		if m.Kind == KindLoop {
			loops = append(loops, i)
			continue
		}
		remaining++
	}

	gen := a.generation
	var after func(next int)
	after = func(next int) {
		if next >= len(loops) {
			onComplete()
			return
		}
		m := loops[next]
		a.runLoop(loopKey{index: index, member: m}, members[m].Loop, func() { after(next + 1) })
	}

	if remaining == 0 {
		after(0)
		return
	}
	memberDone := func() {
		if gen != a.generation {
			return
		}
		remaining--
		if remaining == 0 {
			after(0)
		}
	}
	for _, m := range members {
		if m.Kind == KindLoop {
			continue
		}
		a.execute(index, m, memberDone)
		// A member replaced or detached the sequence.
		if gen != a.generation {
			return
		}
	}
}
