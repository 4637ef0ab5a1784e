// Package state holds the session lifecycle states and the rules each one
// implies for simulation, timers, pause and restart.
package state

// GameState is the session lifecycle state.
type GameState int

const (
	StateLoading GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

var names = [...]string{
	StateLoading:  "Loading",
	StatePlaying:  "Playing",
	StatePaused:   "Paused",
	StateGameOver: "GameOver",
}

func (s GameState) String() string {
	if s < 0 || int(s) >= len(names) {
		return "Unknown"
	}
	return names[s]
}

// Simulating reports whether the level advances in this state.
func (s GameState) Simulating() bool {
	return s == StatePlaying
}

// Timed reports whether scheduled timers advance in this state.
func (s GameState) Timed() bool {
	return s != StatePaused
}

// Pausable reports whether a pause request moves this state to StatePaused.
func (s GameState) Pausable() bool {
	return s == StatePlaying || s == StateLoading
}

// Restartable reports whether a restart request is honored.
func (s GameState) Restartable() bool {
	return s == StateGameOver
}
