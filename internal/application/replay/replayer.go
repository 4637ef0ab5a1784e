package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/nova/internal/application/system"
)

// ErrNoFrames is returned when saving or loading an empty recording.
var ErrNoFrames = errors.New("replay has no frames")

// Replayer feeds recorded frames back one tick at a time.
type Replayer struct {
	data ReplayData
	next int
}

func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay reads a recording written by Recorder.Save.
func LoadReplay(filename string) (*ReplayData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode reads a recording from r. A recording without frames is rejected
// with ErrNoFrames.
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, ErrNoFrames
	}
	return &data, nil
}

// GetInput returns the next frame's input. ok is false once every frame
// has been consumed.
func (r *Replayer) GetInput() (input system.InputState, ok bool) {
	if r.Done() {
		return system.InputState{}, false
	}
	input = r.data.Frames[r.next].Input()
	r.next++
	return input, true
}

// Done reports whether playback has consumed every frame.
func (r *Replayer) Done() bool { return r.next >= len(r.data.Frames) }

// CurrentFrame returns how many frames have been played.
func (r *Replayer) CurrentFrame() int { return r.next }

func (r *Replayer) TotalFrames() int { return len(r.data.Frames) }

func (r *Replayer) Seed() int64 { return r.data.Seed }

func (r *Replayer) StartLevel() int { return r.data.StartLevel }

// Reset rewinds to the first frame.
func (r *Replayer) Reset() { r.next = 0 }

// CreateTestReplayData builds a recording of frames ticks with right held
// throughout.
func CreateTestReplayData(frames, startLevel int) ReplayData {
	data := ReplayData{
		Version:    FormatVersion,
		Seed:       12345,
		StartLevel: startLevel,
		StartTime:  time.Now().Format(time.RFC3339),
		Frames:     make([]FrameInput, frames),
	}
	for i := range data.Frames {
		data.Frames[i] = frameOf(i, system.InputState{Right: true})
	}
	return data
}
