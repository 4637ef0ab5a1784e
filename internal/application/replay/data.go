package replay

import "github.com/younwookim/nova/internal/application/system"

// FormatVersion is written into every recording.
const FormatVersion = "2"

// FrameInput records input state for a single tick
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump held
	A  bool `json:"a,omitempty"`  // Attack pressed
	P  bool `json:"p,omitempty"`  // Pause pressed
	D  bool `json:"d,omitempty"`  // Advance pressed
	RS bool `json:"rs,omitempty"` // Restart pressed
}

// ReplayData contains all data needed to replay a session: the
// generator seed, the starting level and every tick's input.
type ReplayData struct {
	Version    string       `json:"version"`
	Seed       int64        `json:"seed"`
	StartLevel int          `json:"startLevel"`
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}

func frameOf(n int, in system.InputState) FrameInput {
	return FrameInput{
		F:  n,
		L:  in.Left,
		R:  in.Right,
		J:  in.Jump,
		A:  in.Attack,
		P:  in.Pause,
		D:  in.Advance,
		RS: in.Restart,
	}
}

// Input converts the recorded frame back to the polled state it came from.
func (f FrameInput) Input() system.InputState {
	return system.InputState{
		Left:    f.L,
		Right:   f.R,
		Jump:    f.J,
		Attack:  f.A,
		Pause:   f.P,
		Advance: f.D,
		Restart: f.RS,
	}
}
