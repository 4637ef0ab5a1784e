// Package audio plays synthesized cues for game events through the speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/nova/internal/application/event"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Player routes bus events to cues
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	log    *log.Logger
	muted  bool
	played int

	// out receives cue streamers; nil until Init succeeds
	out func(beep.Streamer)
}

// NewPlayer creates a cue player. A muted player never touches the speaker.
func NewPlayer(logger *log.Logger, muted bool) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer: &beep.Mixer{},
		log:   logger,
		muted: muted,
	}
}

// Init sets up the speaker. On failure the player stays silent and the
// error is returned for the caller to log.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.out != nil {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.out = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	return nil
}

// Attach subscribes the player to bus.
func (p *Player) Attach(bus *event.Bus) {
	bus.Subscribe(p.OnEvent)
}

// OnEvent plays the cue mapped to e, if any.
func (p *Player) OnEvent(e event.Event) {
	c, ok := CueFor(e.Kind)
	if !ok {
		return
	}
	p.Play(c)
}

// Play queues c on the mixer.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.out == nil {
		return
	}
	p.out(c.Streamer(sampleRate))
	p.played++
	p.log.Debug("cue", "name", c.Name)
}

// Played returns how many cues were queued.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close silences the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.out == nil {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.out = nil
}
