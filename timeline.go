package choreo

import (
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// timer is a callback due at an absolute timeline time.
type timer struct {
	due float64
	seq uint64
	fn  func()
}

// track animates one scalar with a gween tween. The tween is sampled at the
// absolute elapsed time rather than stepped, so sampling at arbitrary instants
// never accumulates drift. When the track ends, settle is written instead of
// the tween's float32 end value.
type track struct {
	start   float64
	end     float64
	tween   *gween.Tween
	apply   func(float64)
	settle  float64
	stopped bool
}

// Timeline is the clock an Animator runs steps against. It owns scheduled
// callbacks and in-flight tracks and only moves when Advance is called.
//
// There is no global clock: the owner decides how time flows, whether from a
// game loop, a Player, or a test.
type Timeline struct {
	now    float64
	seq    uint64
	timers []timer
	tracks []*track
}

// Now returns the seconds elapsed on this timeline.
func (tl *Timeline) Now() float64 {
	return tl.now
}

// After schedules fn to run delay seconds from now. Callbacks due at the same
// instant run in the order they were scheduled. A non-positive delay runs fn
// on the next Advance, never synchronously.
func (tl *Timeline) After(delay float64, fn func()) {
	tl.seq++
	t := timer{due: tl.now + max(delay, 0), seq: tl.seq, fn: fn}
	i := sort.Search(len(tl.timers), func(i int) bool {
		o := tl.timers[i]
		return o.due > t.due || (o.due == t.due && o.seq > t.seq)
	})
	tl.timers = append(tl.timers, timer{})
	copy(tl.timers[i+1:], tl.timers[i:])
	tl.timers[i] = t
}

// Animate starts a track that drives apply from `from` to `to` over duration
// seconds along fn, writing settle when it ends. Samples begin on the next
// Advance; the caller writes the start value itself if it must be visible
// immediately. The returned function stops the track without writing settle.
func (tl *Timeline) Animate(from, to, settle, duration float64, fn ease.TweenFunc, apply func(float64)) (stop func()) {
	tr := &track{
		start:  tl.now,
		end:    tl.now + duration,
		tween:  gween.New(float32(from), float32(to), float32(duration), fn),
		apply:  apply,
		settle: settle,
	}
	tl.tracks = append(tl.tracks, tr)
	return func() { tr.stopped = true }
}

// Advance moves the timeline forward by dt seconds. Every timer due within the
// window fires at its exact due time: tracks are sampled at that instant
// first, so a completion callback sees settled values and anything it starts
// begins precisely on the boundary. Timers scheduled by callbacks fire in the
// same call if they fall inside the window.
func (tl *Timeline) Advance(dt float64) {
	target := tl.now + max(dt, 0)
	for len(tl.timers) > 0 && tl.timers[0].due <= target {
		t := tl.timers[0]
		copy(tl.timers, tl.timers[1:])
		tl.timers[len(tl.timers)-1] = timer{}
		tl.timers = tl.timers[:len(tl.timers)-1]

		tl.now = max(tl.now, t.due)
		tl.sample()
		t.fn()
	}
	tl.now = target
	tl.sample()
}

// sample writes every track's value at the current time, in start order, and
// drops finished and stopped tracks. A track counts as finished once its
// tween does, so the settle value is written instead of the tween's end.
func (tl *Timeline) sample() {
	n := 0
	for _, tr := range tl.tracks {
		if tr.stopped {
			continue
		}
		if tl.now >= tr.end {
			tr.apply(tr.settle)
			continue
		}
		// Elapsed time just short of the end can round up to the duration
		// in float32, where gween reports the tween finished.
		v, finished := tr.tween.Set(float32(tl.now - tr.start))
		if finished {
			tr.apply(tr.settle)
			continue
		}
		tr.apply(float64(v))
		tl.tracks[n] = tr
		n++
	}
	for i := n; i < len(tl.tracks); i++ {
		tl.tracks[i] = nil
	}
	tl.tracks = tl.tracks[:n]
}

// Pending reports the number of scheduled callbacks that have not fired.
func (tl *Timeline) Pending() int {
	return len(tl.timers)
}

// Active reports the number of tracks still in flight.
func (tl *Timeline) Active() int {
	return len(tl.tracks)
}

// Clear drops every pending callback and track without running them.
func (tl *Timeline) Clear() {
	tl.timers = nil
	tl.tracks = nil
}
