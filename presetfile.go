package choreo

import (
	"math"
	"os"
	"reflect"

	"github.com/pkg/errors"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// presetFile is the top-level YAML structure of a preset catalog.
type presetFile struct {
	Presets []presetDoc `yaml:"presets"`
}

type presetDoc struct {
	Name     string    `yaml:"name"`
	Category string    `yaml:"category,omitempty"`
	Steps    []stepDoc `yaml:"steps"`
}

// stepDoc is one step in a preset file. Which fields apply depends on Kind;
// Parallel joins the step with the previous one.
type stepDoc struct {
	Kind     string  `yaml:"kind"`
	Parallel bool    `yaml:"parallel,omitempty"`
	Duration float64 `yaml:"duration,omitempty"`
	Ease     string  `yaml:"ease,omitempty"`

	To   *float64 `yaml:"to,omitempty"`
	From *float64 `yaml:"from,omitempty"`

	X        float64 `yaml:"x,omitempty"`
	Y        float64 `yaml:"y,omitempty"`
	Relative bool    `yaml:"relative,omitempty"`
	Degrees  float64 `yaml:"degrees,omitempty"`

	Direction string  `yaml:"direction,omitempty"`
	Distance  float64 `yaml:"distance,omitempty"`
	Mode      string  `yaml:"mode,omitempty"`

	Curve    string  `yaml:"curve,omitempty"`
	Tension  float64 `yaml:"tension,omitempty"`
	Friction float64 `yaml:"friction,omitempty"`
	Scale    float64 `yaml:"scale,omitempty"`

	Axis      string  `yaml:"axis,omitempty"`
	Intensity float64 `yaml:"intensity,omitempty"`

	Loop    string  `yaml:"loop,omitempty"`
	Count   int     `yaml:"count,omitempty"`
	Seconds float64 `yaml:"seconds,omitempty"`
}

// easeNames lists the easing curves a preset file can name.
var easeNames = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-back":      ease.InBack,
	"out-back":     ease.OutBack,
	"out-bounce":   ease.OutBounce,
	"out-elastic":  ease.OutElastic,
}

// easeName finds the file name of a known easing function.
func easeName(fn ease.TweenFunc) (string, bool) {
	want := reflect.ValueOf(fn).Pointer()
	for name, known := range easeNames {
		if reflect.ValueOf(known).Pointer() == want {
			return name, true
		}
	}
	return "", false
}

// ParsePresets decodes a YAML preset catalog. Each preset's steps are joined
// through the Sequence builder, so parallel steps form flat groups exactly as
// And would.
func ParsePresets(data []byte) (map[string]Preset, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parse presets")
	}
	if len(file.Presets) == 0 {
		return nil, errors.New("parse presets: no presets")
	}
	out := make(map[string]Preset, len(file.Presets))
	for _, doc := range file.Presets {
		if doc.Name == "" {
			return nil, errors.New("parse presets: preset without a name")
		}
		if _, dup := out[doc.Name]; dup {
			return nil, errors.Errorf("parse presets: duplicate preset %q", doc.Name)
		}
		p, err := doc.preset()
		if err != nil {
			return nil, errors.Wrapf(err, "parse presets: preset %q", doc.Name)
		}
		out[p.Name] = p
	}
	return out, nil
}

// ReadPresets reads and decodes a YAML preset catalog from path.
func ReadPresets(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read presets")
	}
	return ParsePresets(data)
}

// MarshalPresets encodes presets as a YAML catalog. Custom steps, Until loops
// and unnamed easing curves cannot be written and produce an error.
func MarshalPresets(presets []Preset) ([]byte, error) {
	var file presetFile
	for _, p := range presets {
		doc := presetDoc{Name: p.Name, Category: p.Category.String()}
		for i, step := range p.Steps {
			docs, err := stepDocs(step)
			if err != nil {
				return nil, errors.Wrapf(err, "preset %q step %d", p.Name, i)
			}
			doc.Steps = append(doc.Steps, docs...)
		}
		file.Presets = append(file.Presets, doc)
	}
	data, err := yaml.Marshal(&file)
	if err != nil {
		return nil, errors.Wrap(err, "marshal presets")
	}
	return data, nil
}

// WritePresets encodes presets and writes them to path.
func WritePresets(path string, presets []Preset) error {
	data, err := MarshalPresets(presets)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "write presets")
}

func (doc presetDoc) preset() (Preset, error) {
	p := Preset{Name: doc.Name, Category: CategoryAttention}
	if doc.Category != "" {
		c, ok := categoryByName(doc.Category)
		if !ok {
			return Preset{}, errors.Errorf("unknown category %q", doc.Category)
		}
		p.Category = c
	}
	seq := NewSequence()
	for i, sd := range doc.Steps {
		step, err := sd.step()
		if err != nil {
			return Preset{}, errors.Wrapf(err, "step %d", i)
		}
		if sd.Parallel {
			seq = seq.And()
		} else {
			seq = seq.Then()
		}
		seq = seq.Append(step)
	}
	p.Steps = seq.steps
	return p, nil
}

func (sd stepDoc) step() (Step, error) {
	var step Step
	switch sd.Kind {
	case "fade":
		if sd.To == nil {
			return Step{}, errors.New("fade needs to")
		}
		step = Fade(*sd.To, sd.Duration)
	case "scale":
		if sd.To == nil {
			return Step{}, errors.New("scale needs to")
		}
		if sd.From != nil {
			step = ScaleFromTo(*sd.From, *sd.To, sd.Duration)
		} else {
			step = Scale(*sd.To, sd.Duration)
		}
	case "move":
		if sd.Relative {
			step = MoveBy(sd.X, sd.Y, sd.Duration)
		} else {
			step = MoveTo(sd.X, sd.Y, sd.Duration)
		}
	case "rotate":
		if sd.Relative {
			step = RotateBy(Degrees(sd.Degrees), sd.Duration)
		} else {
			step = Rotate(Degrees(sd.Degrees), sd.Duration)
		}
	case "spin":
		step = Spin(sd.Duration)
	case "slide":
		dir, ok := directionByName(sd.Direction)
		if !ok {
			return Step{}, errors.Errorf("unknown direction %q", sd.Direction)
		}
		mode := SlideIn
		switch sd.Mode {
		case "", "in":
		case "out":
			mode = SlideOut
		default:
			return Step{}, errors.Errorf("unknown slide mode %q", sd.Mode)
		}
		step = Slide(mode, dir, sd.Distance, sd.Duration)
	case "spring":
		curve, ok := SpringByName(sd.Curve)
		if sd.Curve == "custom" {
			curve, ok = SpringCustom(sd.Tension, sd.Friction), true
		}
		if !ok {
			return Step{}, errors.Errorf("unknown spring curve %q", sd.Curve)
		}
		step = Spring(curve, sd.Scale, sd.Duration)
	case "shake":
		axis, ok := axisByName(sd.Axis)
		if !ok {
			return Step{}, errors.Errorf("unknown axis %q", sd.Axis)
		}
		step = Shake(axis, sd.Intensity, sd.Duration)
	case "pulse":
		step = Pulse(sd.Scale, sd.Duration)
	case "delay":
		step = Delay(sd.Duration)
	case "loop":
		switch sd.Loop {
		case "once":
			step = Loop(LoopOnce())
		case "forever":
			step = Loop(LoopForever())
		case "times":
			step = Loop(LoopTimes(sd.Count))
		case "for":
			step = Loop(LoopFor(sd.Seconds))
		default:
			return Step{}, errors.Errorf("unknown loop policy %q", sd.Loop)
		}
	default:
		return Step{}, errors.Errorf("unknown step kind %q", sd.Kind)
	}
	if sd.Ease != "" {
		fn, ok := easeNames[sd.Ease]
		if !ok {
			return Step{}, errors.Errorf("unknown ease %q", sd.Ease)
		}
		step.Ease = fn
	}
	return step, nil
}

// stepDocs encodes one slot. A group becomes its members, every one after the
// first marked parallel.
func stepDocs(step Step) ([]stepDoc, error) {
	if step.Kind == KindGroup {
		var docs []stepDoc
		for i, m := range step.Members {
			d, err := stepDocOf(m)
			if err != nil {
				return nil, errors.Wrapf(err, "member %d", i)
			}
			d.Parallel = i > 0
			docs = append(docs, d)
		}
		return docs, nil
	}
	d, err := stepDocOf(step)
	if err != nil {
		return nil, err
	}
	return []stepDoc{d}, nil
}

func stepDocOf(step Step) (stepDoc, error) {
	d := stepDoc{Kind: step.Kind.String(), Duration: step.Duration}
	if step.Ease != nil {
		name, ok := easeName(step.Ease)
		if !ok {
			return stepDoc{}, errors.New("easing curve has no name")
		}
		d.Ease = name
	}
	switch step.Kind {
	case KindFade:
		d.To = ptr(step.Opacity)
	case KindScale:
		if step.Scale.X != step.Scale.Y || (step.FromSet && step.From.X != step.From.Y) {
			return stepDoc{}, errors.New("non-uniform scale cannot be written")
		}
		d.To = ptr(step.Scale.X)
		if step.FromSet {
			d.From = ptr(step.From.X)
		}
	case KindMove:
		d.X, d.Y, d.Relative = step.Point.X, step.Point.Y, step.Relative
	case KindRotate:
		d.Degrees, d.Relative = step.Angle*180/math.Pi, step.Relative
	case KindSpin, KindDelay:
	case KindSlide:
		d.Direction, d.Distance, d.Mode = step.Direction.String(), step.Distance, "in"
		if step.Slide == SlideOut {
			d.Mode = "out"
		}
	case KindSpring:
		d.Scale = step.Scale.X
		if _, named := SpringByName(step.Spring.Name); named {
			d.Curve = step.Spring.Name
		} else {
			d.Curve = "custom"
			d.Tension, d.Friction = step.Spring.tensionFriction()
		}
	case KindShake:
		d.Axis, d.Intensity = step.Axis.String(), step.Intensity
	case KindPulse:
		d.Scale = step.Scale.X
	case KindLoop:
		switch step.Loop.Kind {
		case LoopKindOnce:
			d.Loop = "once"
		case LoopKindForever:
			d.Loop = "forever"
		case LoopKindTimes:
			d.Loop, d.Count = "times", step.Loop.Count
		case LoopKindDuration:
			d.Loop, d.Seconds = "for", step.Loop.For
		default:
			return stepDoc{}, errors.Errorf("loop policy %s cannot be written", step.Loop)
		}
	default:
		return stepDoc{}, errors.Errorf("%s steps cannot be written", step.Kind)
	}
	return d, nil
}

func ptr(v float64) *float64 { return &v }

// tensionFriction inverts SpringCustom.
func (c SpringCurve) tensionFriction() (tension, friction float64) {
	if c.Response <= 0 {
		return 0, 0
	}
	omega := 2 * math.Pi / c.Response
	return omega * omega, c.Damping * 2 * omega
}

func directionByName(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return 0, false
}

func axisByName(name string) (Axis, bool) {
	if name == "" {
		return AxisBoth, true
	}
	for i, n := range axisNames {
		if n == name {
			return Axis(i), true
		}
	}
	return 0, false
}
