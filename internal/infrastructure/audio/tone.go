package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// Note is one step of a cue
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Tone generates a single note with a short attack and a linear release
type Tone struct {
	sr      beep.SampleRate
	freq    float64
	wave    Wave
	gain    float64
	pos     int
	samples int
}

// NewTone creates a tone generator
func NewTone(sr beep.SampleRate, n Note, wave Wave, gain float64) *Tone {
	return &Tone{
		sr:      sr,
		freq:    n.Freq,
		wave:    wave,
		gain:    gain,
		samples: sr.N(n.Duration),
	}
}

func (g *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	attack := g.sr.N(5 * time.Millisecond)
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		s := math.Sin(2 * math.Pi * g.freq * t)
		if g.wave == WaveSquare {
			if s >= 0 {
				s = 1
			} else {
				s = -1
			}
		}

		env := 1.0
		if attack > 0 && g.pos < attack {
			env = float64(g.pos) / float64(attack)
		}
		env *= 1 - float64(g.pos)/float64(g.samples)

		v := s * env * g.gain
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *Tone) Err() error {
	return nil
}
