package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/younwookim/nova/internal/application/system"
)

// framesPerMinute sizes the initial frame buffer at the stock tick rate.
const framesPerMinute = 60 * 100

// Recorder captures the polled input of every tick together with what is
// needed to reproduce the session: the seed and the starting level.
type Recorder struct {
	data    ReplayData
	stopped bool
}

func NewRecorder(seed int64, startLevel int) *Recorder {
	return &Recorder{data: ReplayData{
		Version:    FormatVersion,
		Seed:       seed,
		StartLevel: startLevel,
		StartTime:  time.Now().Format(time.RFC3339),
		Frames:     make([]FrameInput, 0, framesPerMinute),
	}}
}

// RecordFrame appends one tick. Frames after Stop are dropped.
func (r *Recorder) RecordFrame(input system.InputState) {
	if r.stopped {
		return
	}
	r.data.Frames = append(r.data.Frames, frameOf(len(r.data.Frames), input))
}

// Save writes the recording to filename through a temporary file in the
// same directory, so a crash never leaves a truncated recording behind.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".replay-*.json")
	if err != nil {
		return fmt.Errorf("failed to create replay file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := r.Encode(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write replay file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to move replay into place: %w", err)
	}
	return nil
}

// Encode writes the recording to w as indented JSON.
func (r *Recorder) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

func (r *Recorder) Stop() { r.stopped = true }

func (r *Recorder) IsRecording() bool { return !r.stopped }

func (r *Recorder) FrameCount() int { return len(r.data.Frames) }

// GetData returns the recording so far.
func (r *Recorder) GetData() ReplayData { return r.data }

// GenerateFilename returns a timestamped recording name.
func GenerateFilename() string {
	return "replay_" + time.Now().Format("20060102_150405") + ".json"
}
