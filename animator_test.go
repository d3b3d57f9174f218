package choreo

import (
	"math"
	"math/rand/v2"
	"testing"
)

// frame is an exactly representable tick, so sums of frames land on step
// boundaries without rounding.
const frame = 1.0 / 64

func newTestAnimator(opts ...Option) *Animator {
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	return NewAnimator(nil, opts...)
}

// run advances a by seconds in whole frames.
func run(a *Animator, seconds float64) {
	for range int(math.Round(seconds / frame)) {
		a.Update(frame)
	}
}

// runUntilDone advances a frame by frame until its sequence completes, giving
// up after limit seconds.
func runUntilDone(t *testing.T, a *Animator, limit float64) {
	t.Helper()
	for a.Status() != StatusCompleted {
		if a.Now() > limit {
			t.Fatalf("sequence still %s after %vs", a.Status(), limit)
		}
		a.Update(frame)
	}
}

type recorder struct {
	events []Event
}

func (r *recorder) EmitEvent(e Event) { r.events = append(r.events, e) }

func (r *recorder) count(typ EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func (r *recorder) of(typ EventType) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestAnimatorStepsRunInOrder(t *testing.T) {
	rec := &recorder{}
	a := newTestAnimator(WithEventSink(rec))
	a.Play(NewSequence().FadeOut(0.25).Then().Delay(0.5).Then().ScaleTo(2, 0.125))
	runUntilDone(t, a, 5)

	starts := rec.of(EventStepStarted)
	if len(starts) != 3 {
		t.Fatalf("started %d steps, want 3", len(starts))
	}
	wantTimes := []float64{0, 0.25, 0.75}
	for i, e := range starts {
		if e.Index != i || e.Time != wantTimes[i] {
			t.Errorf("start %d = index %d at %v, want index %d at %v", i, e.Index, e.Time, i, wantTimes[i])
		}
	}
	done := rec.of(EventSequenceCompleted)
	if len(done) != 1 || done[0].Time != 0.875 {
		t.Errorf("sequence completed %v, want once at 0.875", done)
	}
}

func TestAnimatorCompletionTimeIsSum(t *testing.T) {
	a := newTestAnimator()
	var at float64
	seq := NewSequence().
		FadeOut(0.25).
		Then().MoveBy(10, 0, 0.5).
		Then().RotateBy(90, 0.125).
		Then().Custom(func(*State) { at = a.Now() })
	a.Play(seq)
	run(a, 1)
	if at != 0.875 {
		t.Errorf("last step ran at %v, want 0.875", at)
	}
	if a.Status() != StatusCompleted {
		t.Errorf("Status = %s, want completed", a.Status())
	}
}

func TestAnimatorGroupJoinsOnLongestMember(t *testing.T) {
	a := newTestAnimator()
	var at float64
	a.Play(NewSequence().
		FadeOut(0.25).And().ScaleTo(2, 0.5).And().Delay(0.125).
		Then().Custom(func(*State) { at = a.Now() }))

	run(a, 0.25)
	if a.Status() != StatusRunning || a.Index() != 0 {
		t.Fatalf("after 0.25s: status %s index %d, want running at 0", a.Status(), a.Index())
	}
	if a.State().Opacity != 0 {
		t.Errorf("opacity = %v, want 0 once its member ended", a.State().Opacity)
	}
	run(a, 0.25)
	if at != 0.5 {
		t.Errorf("next step ran at %v, want 0.5", at)
	}
	if a.State().Scale != (Vec2{2, 2}) {
		t.Errorf("scale = %v, want (2, 2)", a.State().Scale)
	}
}

func TestAnimatorZeroDurationCompletesInPlay(t *testing.T) {
	a := newTestAnimator()
	a.Play(NewSequence(Fade(0.5, 0), Scale(2, 0), MoveTo(3, 4, 0), Rotate(1, 0), Delay(0)))
	if a.Status() != StatusCompleted {
		t.Fatalf("Status = %s, want completed before any Update", a.Status())
	}
	want := State{Opacity: 0.5, Scale: Vec2{2, 2}, Offset: Vec2{3, 4}, Rotation: 1}
	if a.State() != want {
		t.Errorf("State = %+v, want %+v", a.State(), want)
	}
	if a.Timeline().Pending() != 0 || a.Timeline().Active() != 0 {
		t.Errorf("zero-duration steps scheduled work: pending %d active %d",
			a.Timeline().Pending(), a.Timeline().Active())
	}
}

func TestAnimatorEmptySequence(t *testing.T) {
	a := newTestAnimator()
	completed := 0
	a.OnComplete = func() { completed++ }
	a.Play(NewSequence())
	if a.Status() != StatusCompleted || completed != 1 {
		t.Errorf("status %s, OnComplete %d times", a.Status(), completed)
	}
}

func TestAnimatorTargetReceivesState(t *testing.T) {
	var got []State
	a := NewAnimator(TargetFunc(func(s State) { got = append(got, s) }))
	a.Play(NewSequence().FadeOut(0.5))
	if len(got) != 1 || got[0].Opacity != 1 {
		t.Fatalf("after Play target saw %v, want one rest state", got)
	}
	a.Update(0.25)
	a.Update(0.25)
	if len(got) != 3 {
		t.Fatalf("target saw %d states, want 3", len(got))
	}
	if got[2].Opacity != 0 {
		t.Errorf("final opacity = %v, want 0", got[2].Opacity)
	}
}

func TestAnimatorPlayReplaces(t *testing.T) {
	rec := &recorder{}
	a := newTestAnimator(WithEventSink(rec))
	a.Play(NewSequence().FadeOut(1))
	run(a, 0.5)
	mid := a.State().Opacity

	a.Play(NewSequence().ScaleTo(2, 0.25))
	run(a, 1)

	if a.State().Opacity != mid {
		t.Errorf("opacity = %v, want %v kept from the replaced fade", a.State().Opacity, mid)
	}
	if a.State().Scale != (Vec2{2, 2}) {
		t.Errorf("scale = %v, want (2, 2)", a.State().Scale)
	}
	if n := rec.count(EventStepCompleted); n != 1 {
		t.Errorf("%d steps completed, want 1 (the replaced fade never completes)", n)
	}
}

func TestAnimatorPlayFromCustomStep(t *testing.T) {
	a := newTestAnimator()
	second := NewSequence().ScaleTo(2, 0.25)
	a.Play(NewSequence().
		Custom(func(*State) { a.Play(second) }).
		Then().FadeOut(0.25))
	run(a, 1)
	if a.State().Opacity != 1 {
		t.Errorf("opacity = %v, the first sequence kept running", a.State().Opacity)
	}
	if a.State().Scale != (Vec2{2, 2}) {
		t.Errorf("scale = %v, want (2, 2)", a.State().Scale)
	}
}

func TestAnimatorOnComplete(t *testing.T) {
	a := newTestAnimator()
	n := 0
	a.OnComplete = func() { n++ }
	a.Play(NewSequence().Delay(0.25))
	run(a, 1)
	if n != 1 {
		t.Errorf("OnComplete ran %d times, want 1", n)
	}
}

func TestAnimatorDetach(t *testing.T) {
	rec := &recorder{}
	a := newTestAnimator(WithEventSink(rec))
	a.Play(NewSequence().FadeOut(0.5).Then().Loop(LoopForever()))
	run(a, 0.25)
	a.Detach()
	before := len(rec.events)

	run(a, 2)
	a.Play(NewSequence().FadeOut(1))

	if !a.IsDetached() {
		t.Fatal("IsDetached = false")
	}
	if len(rec.events) != before {
		t.Errorf("events after Detach: %v", rec.events[before:])
	}
	if a.Timeline().Pending() != 0 || a.Timeline().Active() != 0 {
		t.Error("timeline still holds work after Detach")
	}
}

func TestAnimatorDetachDebugPanics(t *testing.T) {
	a := newTestAnimator(WithDebug(true), WithLogger(discardLogger()))
	a.Detach()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on Play after Detach in debug mode")
		}
	}()
	a.Play(NewSequence().FadeOut(1))
}

func TestAnimatorEventKinds(t *testing.T) {
	rec := &recorder{}
	a := newTestAnimator(WithEventSink(rec))
	a.Play(NewSequence().FadeOut(0.25).And().Spin(0.25).Then().Delay(0.125))
	run(a, 1)

	want := []struct {
		typ   EventType
		index int
		kind  StepKind
	}{
		{EventStepStarted, 0, KindGroup},
		{EventStepCompleted, 0, KindGroup},
		{EventStepStarted, 1, KindDelay},
		{EventStepCompleted, 1, KindDelay},
		{EventSequenceCompleted, 2, 0},
	}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v", rec.events)
	}
	for i, w := range want {
		e := rec.events[i]
		if e.Type != w.typ || e.Index != w.index || e.Kind != w.kind {
			t.Errorf("event %d = %s/%d/%s, want %s/%d/%s", i, e.Type, e.Index, e.Kind, w.typ, w.index, w.kind)
		}
	}
}

func TestAnimatorSetEventSink(t *testing.T) {
	var n int
	a := newTestAnimator()
	a.SetEventSink(EventSinkFunc(func(Event) { n++ }))
	a.Play(NewSequence().Delay(0))
	if n != 3 {
		t.Errorf("sink saw %d events, want 3", n)
	}
	a.SetEventSink(nil)
	a.Play(NewSequence().Delay(0))
	if n != 3 {
		t.Errorf("sink saw events after being cleared")
	}
}

func TestStatusString(t *testing.T) {
	if StatusIdle.String() != "idle" || StatusCompleted.String() != "completed" || Status(9).String() != "unknown" {
		t.Error("unexpected status names")
	}
}
