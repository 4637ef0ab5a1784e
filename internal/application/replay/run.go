package replay

import (
	"github.com/younwookim/nova/internal/application/event"
	"github.com/younwookim/nova/internal/application/session"
	"github.com/younwookim/nova/internal/application/state"
	"github.com/younwookim/nova/internal/application/system"
)

// Result summarizes a headless playback.
type Result struct {
	Frames     int
	Ticks      uint64
	Level      int
	State      state.GameState
	HP         int
	Pieces     int
	Flashbacks int
	Events     map[event.Kind]int
}

// Run plays data back against a fresh session built from opts. The
// recording's seed and starting level replace the ones in opts.
func Run(data ReplayData, opts session.Options) Result {
	opts.Seed = data.Seed
	opts.StartLevel = data.StartLevel
	s := session.New(opts)

	res := Result{Events: make(map[event.Kind]int)}
	s.Bus().Subscribe(func(e event.Event) {
		res.Events[e.Kind]++
	})

	var tracker system.IntentTracker
	r := NewReplayer(data)
	for !r.Done() {
		input, _ := r.GetInput()
		s.Update(tracker.Intents(input))
	}

	p := s.Level().Player
	res.Frames = r.CurrentFrame()
	res.Ticks = s.Ticks()
	res.Level = s.Level().Number
	res.State = s.State()
	res.HP = p.VisibleHP()
	res.Pieces = p.Pieces
	res.Flashbacks = p.Flashbacks
	return res
}
