package choreo

import (
	"math"

	"github.com/tanema/gween/ease"
)

// SpringCurve parameterizes a damped-oscillation easing curve. Response is the
// period of the undamped oscillation in seconds; Damping is the damping
// fraction, where 0 oscillates forever and values near 1 barely overshoot.
// Springs here are easing curves: they are sampled against a fixed authored
// duration, not integrated.
type SpringCurve struct {
	Name     string
	Response float64
	Damping  float64
}

// Named spring curves.
var (
	SpringSmooth = SpringCurve{Name: "smooth", Response: 0.5, Damping: 0.85}
	SpringSnappy = SpringCurve{Name: "snappy", Response: 0.3, Damping: 0.7}
	SpringBouncy = SpringCurve{Name: "bouncy", Response: 0.5, Damping: 0.5}
	SpringWobbly = SpringCurve{Name: "wobbly", Response: 0.6, Damping: 0.3}
)

// maxDamping keeps the curve underdamped so it still has a peak to normalize.
const maxDamping = 0.999

// SpringCustom builds a curve from a unit-mass tension/friction pair.
// Non-positive tension yields a curve that never moves.
func SpringCustom(tension, friction float64) SpringCurve {
	if tension <= 0 {
		return SpringCurve{Name: "custom"}
	}
	omega := math.Sqrt(tension)
	return SpringCurve{
		Name:     "custom",
		Response: 2 * math.Pi / omega,
		Damping:  friction / (2 * omega),
	}
}

// SpringByName returns the named curve and whether the name was known.
func SpringByName(name string) (SpringCurve, bool) {
	switch name {
	case "smooth":
		return SpringSmooth, true
	case "snappy":
		return SpringSnappy, true
	case "bouncy":
		return SpringBouncy, true
	case "wobbly":
		return SpringWobbly, true
	}
	return SpringCurve{}, false
}

// params returns the natural frequency, clamped damping fraction and damped
// frequency of the curve.
func (c SpringCurve) params() (omega, zeta, omegaD float64) {
	if c.Response <= 0 {
		return 0, 0, 0
	}
	omega = 2 * math.Pi / c.Response
	zeta = math.Max(0, math.Min(c.Damping, maxDamping))
	omegaD = omega * math.Sqrt(1-zeta*zeta)
	return omega, zeta, omegaD
}

// Sample returns the curve's displacement u seconds after the impulse. The
// curve starts at 0, peaks at exactly 1 (the overshoot) and oscillates back
// toward 0 (rest), decaying with the damping fraction.
func (c SpringCurve) Sample(u float64) float64 {
	omega, zeta, omegaD := c.params()
	if omegaD == 0 || u <= 0 {
		return 0
	}
	decay := zeta * omega
	peakT := math.Atan2(omegaD, decay) / omegaD
	peak := math.Exp(-decay*peakT) * math.Sin(omegaD*peakT)
	if peak == 0 {
		return 0
	}
	return math.Exp(-decay*u) * math.Sin(omegaD*u) / peak
}

// Ease returns the curve as a gween easing function: b is the rest value and
// b+c the overshoot.
func (c SpringCurve) Ease() ease.TweenFunc {
	return func(t, b, ch, d float32) float32 {
		return b + ch*float32(c.Sample(float64(t)))
	}
}

// yoyo turns an easing function into one that reaches b+c at the halfway
// point and comes back to b at d.
func yoyo(fn ease.TweenFunc) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		half := d / 2
		if half <= 0 {
			return b
		}
		if t <= half {
			return fn(t, b, c, half)
		}
		return fn(d-t, b, c, half)
	}
}
