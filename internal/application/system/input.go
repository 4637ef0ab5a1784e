package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the input sampled for one tick.
// Left, Right and Jump are held keys; the rest fire on the press frame.
type InputState struct {
	Left    bool
	Right   bool
	Jump    bool
	Attack  bool
	Pause   bool
	Advance bool
	Restart bool
}

// Any reports whether anything is held or pressed.
func (s InputState) Any() bool {
	return s != InputState{}
}

// InputSystem polls the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Attack:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Advance: inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}
