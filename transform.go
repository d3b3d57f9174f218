package choreo

import "math"

// Transform computes the affine matrix a renderer should apply for s. pivot is
// the point of the element (in its own pixels) that scaling and rotation
// happen around; origin is where that pivot sits at rest. Returns
// [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-pivot) -> Scale -> Rotate -> Translate(origin + Offset)
func (s State) Transform(pivot, origin Vec2) [6]float64 {
	sx := s.Scale.X
	sy := s.Scale.Y

	sin, cos := math.Sincos(s.Rotation)

	// After Scale * Translate(-pivot):
	//   a=sx, b=0, c=0, d=sy, tx=-px*sx, ty=-py*sy
	preTx := -pivot.X * sx
	preTy := -pivot.Y * sy

	// After Rotate:
	ra := cos * sx
	rb := sin * sx
	rc := -sin * sy
	rd := cos * sy
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return [6]float64{ra, rb, rc, rd, rtx + origin.X + s.Offset.X, rty + origin.Y + s.Offset.Y}
}
