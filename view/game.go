package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/choreo"
)

// RunConfig holds optional settings for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

type entry struct {
	sprite  *Sprite
	anim    *choreo.Animator
	removed bool
}

// Game is an ebiten.Game that owns sprites and the animators driving them.
// Each tick advances every animator by 1/TPS seconds.
type Game struct {
	Width, Height int
	ClearColor    color.Color
	ShowFPS       bool

	// OnUpdate, when set, runs after the animators each tick.
	OnUpdate func(dt float64) error

	entries []entry
	// ticking defers compaction of removed entries until the tick ends.
	ticking bool
}

// NewGame creates a game with a logical screen of w×h pixels.
func NewGame(w, h int) *Game {
	return &Game{Width: w, Height: h, ClearColor: color.RGBA{R: 26, G: 26, B: 38, A: 255}}
}

// Add registers s and returns a new Animator whose target is s. Sprites draw
// in the order they were added.
func (g *Game) Add(s *Sprite, opts ...choreo.Option) *choreo.Animator {
	anim := choreo.NewAnimator(s, opts...)
	g.entries = append(g.entries, entry{sprite: s, anim: anim})
	return anim
}

// Remove detaches s's animator and drops the sprite. It is safe to call from
// animator callbacks while the game is ticking.
func (g *Game) Remove(s *Sprite) {
	for i := range g.entries {
		e := &g.entries[i]
		if e.sprite == s && !e.removed {
			e.anim.Detach()
			e.removed = true
			if !g.ticking {
				g.compact()
			}
			return
		}
	}
}

// compact drops removed entries in place.
func (g *Game) compact() {
	n := 0
	for _, e := range g.entries {
		if !e.removed {
			g.entries[n] = e
			n++
		}
	}
	clear(g.entries[n:])
	g.entries = g.entries[:n]
}

// Len returns the number of sprites.
func (g *Game) Len() int {
	n := 0
	for _, e := range g.entries {
		if !e.removed {
			n++
		}
	}
	return n
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.tick(1.0 / float64(ebiten.TPS()))
}

func (g *Game) tick(dt float64) error {
	g.ticking = true
	// Entries added by callbacks start next tick.
	for i := range g.entries {
		if e := g.entries[i]; !e.removed {
			e.anim.Update(dt)
		}
	}
	g.ticking = false
	g.compact()
	if g.OnUpdate != nil {
		return g.OnUpdate(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.ClearColor != nil {
		screen.Fill(g.ClearColor)
	}
	for _, e := range g.entries {
		if !e.removed {
			e.sprite.Draw(screen)
		}
	}
	if g.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Width > 0 && g.Height > 0 {
		return g.Width, g.Height
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs game until it is closed or Update returns an
// error.
func Run(game *Game, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = 640, 480
	}
	if game.Width == 0 || game.Height == 0 {
		game.Width, game.Height = w, h
	}
	game.ShowFPS = game.ShowFPS || cfg.ShowFPS
	ebiten.SetWindowSize(w, h)
	return ebiten.RunGame(game)
}
