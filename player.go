package choreo

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultTickInterval is the Player's tick period when none is given: 60 Hz.
const DefaultTickInterval = time.Second / 60

// Player drives an Animator in real time from its own goroutine. Each tick
// advances the animator by the wall-clock time elapsed since the previous
// tick, as measured by the Player's clock, so dropped ticks never lose time.
//
// Every access to the animator must go through Do or Snapshot while Run is
// active.
type Player struct {
	mu       sync.Mutex
	anim     *Animator
	clock    clock.Clock
	interval time.Duration
	last     time.Time
}

// NewPlayer returns a Player for anim. A nil clk uses the real clock; a
// non-positive interval uses DefaultTickInterval.
func NewPlayer(anim *Animator, clk clock.Clock, interval time.Duration) *Player {
	if clk == nil {
		clk = clock.New()
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Player{anim: anim, clock: clk, interval: interval}
}

// Run ticks the animator until ctx is done or the animator is detached, and
// returns ctx.Err() or nil respectively.
func (p *Player) Run(ctx context.Context) error {
	t := p.clock.Ticker(p.interval)
	defer t.Stop()

	p.mu.Lock()
	p.last = p.clock.Now()
	p.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if !p.tick(p.clock.Now()) {
				return nil
			}
		}
	}
}

// tick advances the animator to now. It reports false once the animator has
// been detached.
func (p *Player) tick(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.anim.IsDetached() {
		return false
	}
	dt := now.Sub(p.last)
	p.last = now
	if dt > 0 {
		p.anim.Update(dt.Seconds())
	}
	return true
}

// Do runs fn with exclusive access to the animator, for example to Play a new
// sequence while Run is active.
func (p *Player) Do(fn func(a *Animator)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p.anim)
}

// Snapshot returns the animator's current state.
func (p *Player) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.anim.State()
}
