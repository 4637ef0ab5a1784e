package audio

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/nova/internal/application/event"
)

func TestCueFor(t *testing.T) {
	for _, k := range []event.Kind{
		event.FlashbackCollected,
		event.DoorReached,
		event.BossDefeated,
		event.FinalBossDefeated,
		event.GameOver,
	} {
		c, ok := CueFor(k)
		require.True(t, ok, k.String())
		assert.NotEmpty(t, c.Notes, k.String())
		assert.Positive(t, c.Duration(), k.String())
	}

	_, ok := CueFor(event.LevelLoaded)
	assert.False(t, ok)
}

func TestTone_StaysInRangeAndEnds(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := NewTone(rate, Note{Freq: 440, Duration: 10 * time.Millisecond}, WaveSquare, 0.5)

	samples := make([][2]float64, 1000)
	n, ok := tone.Stream(samples)
	require.True(t, ok)
	assert.Equal(t, rate.N(10*time.Millisecond), n)
	for i := 0; i < n; i++ {
		assert.LessOrEqual(t, samples[i][0], 0.5)
		assert.GreaterOrEqual(t, samples[i][0], -0.5)
		assert.Equal(t, samples[i][0], samples[i][1])
	}

	_, ok = tone.Stream(samples)
	assert.False(t, ok)
	assert.NoError(t, tone.Err())
}

func TestCue_StreamerLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	c, _ := CueFor(event.DoorReached)

	total := 0
	buf := make([][2]float64, 256)
	s := c.Streamer(rate)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	assert.Equal(t, rate.N(120*time.Millisecond)+rate.N(160*time.Millisecond), total)
}

func TestPlayer_RoutesEvents(t *testing.T) {
	p := NewPlayer(log.New(io.Discard), false)
	var queued []beep.Streamer
	p.out = func(s beep.Streamer) { queued = append(queued, s) }

	bus := event.NewBus()
	p.Attach(bus)
	bus.Emit(event.Event{Kind: event.LevelLoaded})
	bus.Emit(event.Event{Kind: event.FlashbackCollected})
	bus.Emit(event.Event{Kind: event.GameOver})
	bus.Flush()

	assert.Len(t, queued, 2)
	assert.Equal(t, 2, p.Played())
}

func TestPlayer_SilentWithoutSpeaker(t *testing.T) {
	p := NewPlayer(log.New(io.Discard), false)

	p.OnEvent(event.Event{Kind: event.GameOver})
	p.Close()

	assert.Equal(t, 0, p.Played())
}

func TestPlayer_Muted(t *testing.T) {
	p := NewPlayer(log.New(io.Discard), true)

	require.NoError(t, p.Init())
	p.OnEvent(event.Event{Kind: event.GameOver})

	assert.Equal(t, 0, p.Played())
}
