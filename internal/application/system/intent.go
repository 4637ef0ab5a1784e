package system

// Intent represents an action requested by the input layer
type Intent interface {
	isIntent()
}

// MoveIntent starts or stops horizontal movement in one direction
type MoveIntent struct {
	Left   bool // false means right
	Active bool
}

func (MoveIntent) isIntent() {}

// JumpIntent holds or releases jump
type JumpIntent struct {
	Active bool
}

func (JumpIntent) isIntent() {}

// AttackIntent triggers one player attack
type AttackIntent struct{}

func (AttackIntent) isIntent() {}

// PauseIntent toggles pause
type PauseIntent struct{}

func (PauseIntent) isIntent() {}

// AdvanceIntent asks to go through the door
type AdvanceIntent struct{}

func (AdvanceIntent) isIntent() {}

// RestartIntent asks to restart the current level
type RestartIntent struct{}

func (RestartIntent) isIntent() {}

// IntentTracker turns successive input states into intents.
// Held keys produce an intent only when they change.
type IntentTracker struct {
	prev InputState
}

// Intents returns the intents implied by moving from the previous state to cur.
func (t *IntentTracker) Intents(cur InputState) []Intent {
	var out []Intent
	if cur.Left != t.prev.Left {
		out = append(out, MoveIntent{Left: true, Active: cur.Left})
	}
	if cur.Right != t.prev.Right {
		out = append(out, MoveIntent{Left: false, Active: cur.Right})
	}
	if cur.Jump != t.prev.Jump {
		out = append(out, JumpIntent{Active: cur.Jump})
	}
	if cur.Attack {
		out = append(out, AttackIntent{})
	}
	if cur.Pause {
		out = append(out, PauseIntent{})
	}
	if cur.Advance {
		out = append(out, AdvanceIntent{})
	}
	if cur.Restart {
		out = append(out, RestartIntent{})
	}
	t.prev = cur
	return out
}

// Reset forgets held keys, so the next state is compared against nothing held.
func (t *IntentTracker) Reset() {
	t.prev = InputState{}
}
