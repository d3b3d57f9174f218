package choreo

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// PresetCategory groups presets by what they are for.
type PresetCategory uint8

const (
	CategoryEntrance  PresetCategory = iota // bring a view on screen
	CategoryExit                            // take a view off screen
	CategoryAttention                       // draw the eye to a view in place
	CategoryFeedback                        // acknowledge user input
)

var categoryNames = [...]string{"entrance", "exit", "attention", "feedback"}

func (c PresetCategory) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

func categoryByName(name string) (PresetCategory, bool) {
	for i, n := range categoryNames {
		if n == name {
			return PresetCategory(i), true
		}
	}
	return 0, false
}

// Preset is a named, pre-authored step list. Treat Steps as read-only; use
// Sequence to get a copy to build on.
type Preset struct {
	Name     string
	Category PresetCategory
	Steps    []Step
}

// Sequence returns the preset as a sequence ready to extend or play.
func (p Preset) Sequence() Sequence {
	return NewSequence(p.Steps...)
}

// FromPreset starts a sequence from the named built-in preset. The second
// result is false, and the sequence empty, when no preset has that name.
func FromPreset(name string) (Sequence, bool) {
	p, ok := LookupPreset(name)
	if !ok {
		return Sequence{}, false
	}
	return p.Sequence(), true
}

// LookupPreset returns the named built-in preset.
func LookupPreset(name string) (Preset, bool) {
	p, ok := builtinPresets[name]
	return p, ok
}

// PresetNames returns the names of the built-in presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(builtinPresets))
	for name := range builtinPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetsIn returns the built-in presets of one category, sorted by name.
func PresetsIn(c PresetCategory) []Preset {
	var out []Preset
	for _, name := range PresetNames() {
		if p := builtinPresets[name]; p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

const slideDistance = 100

func slideInPreset(name string, dir Direction) Preset {
	seq := NewSequence(Fade(0, 0)).
		Append(Slide(SlideIn, dir, slideDistance, 0.4)).And().FadeIn(0.4)
	return Preset{Name: name, Category: CategoryEntrance, Steps: seq.steps}
}

func slideOutPreset(name string, dir Direction) Preset {
	seq := NewSequence(Slide(SlideOut, dir, slideDistance, 0.4)).And().FadeOut(0.4)
	return Preset{Name: name, Category: CategoryExit, Steps: seq.steps}
}

var builtinPresets = func() map[string]Preset {
	list := []Preset{
		// Entrance
		{Name: "fade-in", Category: CategoryEntrance, Steps: []Step{Fade(0, 0), Fade(1, 0.3)}},
		{Name: "pop-in", Category: CategoryEntrance, Steps: NewSequence(Fade(0, 0)).And().ScaleTo(0.5, 0).
			Then().FadeIn(0.2).And().ScaleTo(1, 0.2).
			Then().Spring(SpringBouncy, 1.1, 0.4).steps},
		{Name: "zoom-in", Category: CategoryEntrance, Steps: NewSequence(Fade(0, 0)).
			ScaleFromTo(0.2, 1, 0.35).And().FadeIn(0.35).steps},
		slideInPreset("slide-in-up", DirectionDown),
		slideInPreset("slide-in-down", DirectionUp),
		slideInPreset("slide-in-left", DirectionRight),
		slideInPreset("slide-in-right", DirectionLeft),

		// Exit
		{Name: "fade-out", Category: CategoryExit, Steps: []Step{Fade(0, 0.3)}},
		{Name: "pop-out", Category: CategoryExit, Steps: NewSequence(Scale(1.1, 0.1)).
			Then().ScaleTo(0.5, 0.2).And().FadeOut(0.2).steps},
		{Name: "zoom-out", Category: CategoryExit, Steps: NewSequence(Scale(0.2, 0.35)).And().FadeOut(0.35).steps},
		slideOutPreset("slide-out-up", DirectionUp),
		slideOutPreset("slide-out-down", DirectionDown),
		slideOutPreset("slide-out-left", DirectionLeft),
		slideOutPreset("slide-out-right", DirectionRight),

		// Attention
		{Name: "pulse", Category: CategoryAttention, Steps: []Step{Pulse(1.1, 0.6)}},
		{Name: "heartbeat", Category: CategoryAttention, Steps: []Step{
			Scale(1.2, 0.15), Scale(1, 0.15), Scale(1.2, 0.15), Scale(1, 0.15), Delay(0.6),
		}},
		{Name: "shake", Category: CategoryAttention, Steps: []Step{Shake(AxisHorizontal, 10, 0.5)}},
		{Name: "wobble", Category: CategoryAttention, Steps: []Step{
			RotateBy(Degrees(15), 0.1), RotateBy(Degrees(-30), 0.2),
			RotateBy(Degrees(25), 0.2), RotateBy(Degrees(-15), 0.15), Rotate(0, 0.1),
		}},
		{Name: "spin", Category: CategoryAttention, Steps: []Step{Spin(0.8)}},
		{Name: "bounce", Category: CategoryAttention, Steps: []Step{
			MoveBy(0, -20, 0.2).WithEase(ease.OutQuad), MoveBy(0, 20, 0.4).WithEase(ease.OutBounce),
		}},
		{Name: "breathe", Category: CategoryAttention, Steps: []Step{Scale(1.05, 1.2), Scale(1, 1.2)}},

		// Feedback
		{Name: "tap", Category: CategoryFeedback, Steps: []Step{Scale(0.95, 0.08), Scale(1, 0.12)}},
		{Name: "success", Category: CategoryFeedback, Steps: []Step{Spring(SpringBouncy, 1.15, 0.5)}},
		{Name: "error", Category: CategoryFeedback, Steps: []Step{Shake(AxisHorizontal, 8, 0.4)}},
	}
	m := make(map[string]Preset, len(list))
	for _, p := range list {
		m[p.Name] = p
	}
	return m
}()
