package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/younwookim/nova/internal/application/event"
)

// Cue is a short melody played for a game event
type Cue struct {
	Name  string
	Wave  Wave
	Gain  float64
	Notes []Note
}

var cues = map[event.Kind]Cue{
	event.FlashbackCollected: {Name: "memory", Wave: WaveSine, Gain: 0.25, Notes: []Note{
		{Freq: 660, Duration: 90 * time.Millisecond},
		{Freq: 880, Duration: 90 * time.Millisecond},
		{Freq: 1320, Duration: 180 * time.Millisecond},
	}},
	event.DoorReached: {Name: "door", Wave: WaveSine, Gain: 0.2, Notes: []Note{
		{Freq: 440, Duration: 120 * time.Millisecond},
		{Freq: 550, Duration: 160 * time.Millisecond},
	}},
	event.BossDefeated: {Name: "boss", Wave: WaveSquare, Gain: 0.12, Notes: []Note{
		{Freq: 392, Duration: 120 * time.Millisecond},
		{Freq: 523, Duration: 120 * time.Millisecond},
		{Freq: 784, Duration: 300 * time.Millisecond},
	}},
	event.FinalBossDefeated: {Name: "finale", Wave: WaveSquare, Gain: 0.12, Notes: []Note{
		{Freq: 523, Duration: 150 * time.Millisecond},
		{Freq: 659, Duration: 150 * time.Millisecond},
		{Freq: 784, Duration: 150 * time.Millisecond},
		{Freq: 1046, Duration: 400 * time.Millisecond},
	}},
	event.GameOver: {Name: "gameover", Wave: WaveSquare, Gain: 0.15, Notes: []Note{
		{Freq: 330, Duration: 200 * time.Millisecond},
		{Freq: 247, Duration: 200 * time.Millisecond},
		{Freq: 165, Duration: 450 * time.Millisecond},
	}},
}

// CueFor returns the cue played for kind, if any.
func CueFor(kind event.Kind) (Cue, bool) {
	c, ok := cues[kind]
	return c, ok
}

// Duration is the total length of the cue
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range c.Notes {
		d += n.Duration
	}
	return d
}

// Streamer renders the cue at sample rate sr
func (c Cue) Streamer(sr beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(c.Notes))
	for _, n := range c.Notes {
		parts = append(parts, NewTone(sr, n, c.Wave, c.Gain))
	}
	return beep.Seq(parts...)
}
