package choreo

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTimelineAfterOrder(t *testing.T) {
	var tl Timeline
	var got []string
	tl.After(0.5, func() { got = append(got, "a") })
	tl.After(0.25, func() { got = append(got, "b") })
	tl.After(0.25, func() { got = append(got, "c") })
	tl.Advance(1)

	want := []string{"b", "c", "a"}
	if len(got) != len(want) {
		t.Fatalf("fired %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fired[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTimelineFiresAtDueTime(t *testing.T) {
	var tl Timeline
	var at []float64
	tl.After(0.3, func() { at = append(at, tl.Now()) })
	tl.After(0.7, func() { at = append(at, tl.Now()) })
	tl.Advance(1)

	if len(at) != 2 || at[0] != 0.3 || at[1] != 0.7 {
		t.Errorf("fired at %v, want [0.3 0.7]", at)
	}
	if tl.Now() != 1 {
		t.Errorf("Now = %v, want 1", tl.Now())
	}
}

func TestTimelineAfterZeroIsDeferred(t *testing.T) {
	var tl Timeline
	fired := false
	tl.After(0, func() { fired = true })
	if fired {
		t.Fatal("After(0) fired synchronously")
	}
	if tl.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", tl.Pending())
	}
	tl.Advance(0)
	if !fired {
		t.Error("After(0) did not fire on Advance(0)")
	}
}

func TestTimelineNestedTimerInWindow(t *testing.T) {
	var tl Timeline
	var at float64
	tl.After(0.25, func() {
		tl.After(0.25, func() { at = tl.Now() })
	})
	tl.Advance(1)
	if at != 0.5 {
		t.Errorf("nested timer fired at %v, want 0.5", at)
	}
	if tl.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", tl.Pending())
	}
}

func TestTimelineNotYetDue(t *testing.T) {
	var tl Timeline
	fired := false
	tl.After(0.5, func() { fired = true })
	tl.Advance(0.25)
	if fired {
		t.Fatal("timer fired early")
	}
	tl.Advance(0.25)
	if !fired {
		t.Error("timer did not fire at its due time")
	}
}

func TestTimelineAnimateInterpolates(t *testing.T) {
	var tl Timeline
	var v float64
	tl.Animate(0, 10, 10, 1, ease.Linear, func(x float64) { v = x })

	tl.Advance(0.5)
	if math.Abs(v-5) > 1e-4 {
		t.Errorf("v at 0.5 = %v, want ~5", v)
	}
	if tl.Active() != 1 {
		t.Errorf("Active = %d, want 1", tl.Active())
	}
	tl.Advance(0.5)
	if v != 10 {
		t.Errorf("v at end = %v, want exactly 10", v)
	}
	if tl.Active() != 0 {
		t.Errorf("Active = %d, want 0", tl.Active())
	}
}

func TestTimelineAnimateSettle(t *testing.T) {
	var tl Timeline
	var v float64
	tl.Animate(0, 5, 2, 0.5, ease.Linear, func(x float64) { v = x })
	tl.Advance(1)
	if v != 2 {
		t.Errorf("settled v = %v, want 2", v)
	}
}

func TestTimelineSettlesWhenFloat32ElapsedReachesDuration(t *testing.T) {
	var tl Timeline
	var v float64
	tl.Animate(0, 5, 2, 0.1, ease.Linear, func(x float64) { v = x })
	// Six 60 Hz ticks sum to just under 0.1 in float64, which is 0.1 in
	// float32.
	for range 6 {
		tl.Advance(1.0 / 60)
	}
	if tl.Now() >= 0.1 {
		t.Skipf("Now = %v reached the end in float64", tl.Now())
	}
	if v != 2 {
		t.Errorf("v = %v, want settle value 2", v)
	}
	if tl.Active() != 0 {
		t.Errorf("Active = %d, want 0", tl.Active())
	}
}

func TestTimelineAnimateStop(t *testing.T) {
	var tl Timeline
	v := -1.0
	stop := tl.Animate(0, 10, 10, 1, ease.Linear, func(x float64) { v = x })
	tl.Advance(0.25)
	sampled := v
	stop()
	tl.Advance(1)
	if v != sampled {
		t.Errorf("stopped track wrote %v after stop, last sample %v", v, sampled)
	}
	if tl.Active() != 0 {
		t.Errorf("Active = %d, want 0", tl.Active())
	}
}

func TestTimelineCallbackSeesSettledTrack(t *testing.T) {
	var tl Timeline
	var v, seen float64
	tl.Animate(0, 10, 10, 0.5, ease.Linear, func(x float64) { v = x })
	tl.After(0.5, func() { seen = v })
	tl.Advance(1)
	if seen != 10 {
		t.Errorf("callback saw %v, want settled 10", seen)
	}
}

func TestTimelineTrackStartedInCallbackBeginsOnBoundary(t *testing.T) {
	var tl Timeline
	var v float64
	tl.After(0.5, func() {
		tl.Animate(0, 1, 1, 1, ease.Linear, func(x float64) { v = x })
	})
	tl.Advance(1)
	// The track began at 0.5, so it is halfway through.
	if math.Abs(v-0.5) > 1e-4 {
		t.Errorf("v = %v, want ~0.5", v)
	}
}

func TestTimelineNegativeAdvance(t *testing.T) {
	var tl Timeline
	tl.Advance(0.5)
	tl.Advance(-1)
	if tl.Now() != 0.5 {
		t.Errorf("Now = %v, want 0.5", tl.Now())
	}
}

func TestTimelineClear(t *testing.T) {
	var tl Timeline
	fired := false
	tl.After(0.1, func() { fired = true })
	tl.Animate(0, 1, 1, 1, ease.Linear, func(float64) {})
	tl.Clear()
	if tl.Pending() != 0 || tl.Active() != 0 {
		t.Errorf("Pending = %d, Active = %d after Clear", tl.Pending(), tl.Active())
	}
	tl.Advance(1)
	if fired {
		t.Error("cleared timer fired")
	}
}

func TestTimelineAdvanceAllocs(t *testing.T) {
	var tl Timeline
	tl.Animate(0, 1, 1, 1e9, ease.Linear, func(float64) {})
	allocs := testing.AllocsPerRun(100, func() {
		tl.Advance(1.0 / 60)
	})
	if allocs > 0 {
		t.Errorf("Advance allocated %v times per run, want 0", allocs)
	}
}
