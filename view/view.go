package view

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/choreo"
)

// DrawOptions returns draw options that render an image with state s. pivot
// is the point of the image, in its own pixels, that scale and rotation are
// applied around; origin is the screen position of that pivot at rest.
func DrawOptions(s choreo.State, pivot, origin choreo.Vec2) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	SetGeoM(&op.GeoM, s.Transform(pivot, origin))
	op.ColorScale.ScaleAlpha(float32(s.ClampedOpacity()))
	op.Filter = ebiten.FilterLinear
	return op
}

// SetGeoM loads the affine matrix m ([a, b, c, d, tx, ty]) into g.
func SetGeoM(g *ebiten.GeoM, m [6]float64) {
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
}

// Sprite is an image drawn at a fixed rest position and animated by the
// state an Animator delivers to it.
type Sprite struct {
	Image *ebiten.Image

	// Origin is where the pivot sits on screen at rest.
	Origin choreo.Vec2

	// Pivot is the normalized point of the image scale and rotation happen
	// around: (0.5, 0.5) is the center.
	Pivot choreo.Vec2

	// Visible hides the sprite when false.
	Visible bool

	state choreo.State
}

// NewSprite creates a visible sprite centered on (x, y).
func NewSprite(img *ebiten.Image, x, y float64) *Sprite {
	return &Sprite{
		Image:   img,
		Origin:  choreo.Vec2{X: x, Y: y},
		Pivot:   choreo.Vec2{X: 0.5, Y: 0.5},
		Visible: true,
		state:   choreo.RestState(),
	}
}

// ApplyState stores the state to draw with. Implements choreo.Target.
func (s *Sprite) ApplyState(st choreo.State) {
	s.state = st
}

// State returns the most recently applied state.
func (s *Sprite) State() choreo.State {
	return s.state
}

// pivotPixels converts the normalized pivot into the image's pixel space.
func (s *Sprite) pivotPixels() choreo.Vec2 {
	if s.Image == nil {
		return choreo.Vec2{}
	}
	b := s.Image.Bounds()
	return choreo.Vec2{X: s.Pivot.X * float64(b.Dx()), Y: s.Pivot.Y * float64(b.Dy())}
}

// Options returns the draw options for the sprite's current state.
func (s *Sprite) Options() *ebiten.DrawImageOptions {
	return DrawOptions(s.state, s.pivotPixels(), s.Origin)
}

// Draw renders the sprite onto dst. Invisible, imageless and fully
// transparent sprites are skipped.
func (s *Sprite) Draw(dst *ebiten.Image) {
	if !s.Visible || s.Image == nil || s.state.ClampedOpacity() == 0 {
		return
	}
	dst.DrawImage(s.Image, s.Options())
}
