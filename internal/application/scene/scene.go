// Package scene defines the screens the game loop can host.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen driven by game.Game.
type Scene interface {
	// Update runs one fixed tick of dt seconds. A non-nil next scene
	// replaces this one; an error stops the loop, with ebiten.Termination
	// meaning a clean quit.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes active.
	OnEnter()

	// OnExit runs when the scene is replaced or the game closes. It is the
	// place to flush recordings.
	OnExit()
}
