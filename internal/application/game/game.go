// Package game wraps a Scene in an ebiten.Game running at a fixed tick rate.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/nova/internal/application/scene"
)

// DefaultTickRate is used when New is given a non-positive tick rate.
const DefaultTickRate = 100

// Game implements ebiten.Game. It owns the active scene and swaps it when
// Update hands back a successor.
type Game struct {
	current  scene.Scene
	screenW  int
	screenH  int
	tickRate int
	dt       float64
	exited   bool
}

// New enters initial and returns a game ticking tickRate times per second.
func New(initial scene.Scene, screenW, screenH, tickRate int) *Game {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	g := &Game{
		current:  initial,
		screenW:  screenW,
		screenH:  screenH,
		tickRate: tickRate,
		dt:       1.0 / float64(tickRate),
	}
	initial.OnEnter()
	return g
}

// TickRate returns the number of updates per second.
func (g *Game) TickRate() int { return g.tickRate }

// Update runs one tick of the active scene.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, ebiten.Termination) {
		g.Close()
	}
	if err != nil {
		return err
	}
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps the logical resolution regardless of window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the active scene once. Later calls do nothing.
func (g *Game) Close() {
	if g.exited {
		return
	}
	g.exited = true
	g.current.OnExit()
}

// Run opens a window scale times the logical size and blocks until it
// closes. The active scene is exited on return.
func (g *Game) Run(title string, scale int) error {
	scale = max(scale, 1)
	ebiten.SetWindowSize(g.screenW*scale, g.screenH*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.tickRate)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// SetDT overrides the tick length passed to the scene.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
