package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/skyjump/internal/application/replay"
	"github.com/younwookim/skyjump/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int

	pendingW int
	pendingH int
}

// NewRecorder creates a new recorder for a session started with seed on a
// width×height viewport.
func NewRecorder(seed int64, width, height int, autoplay bool) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.FormatVersion,
			Seed:      seed,
			Width:     width,
			Height:    height,
			Autoplay:  autoplay,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordResize notes a viewport change; it is stored with the next frame.
func (r *Recorder) RecordResize(width, height int) {
	if !r.recording {
		return
	}
	r.pendingW, r.pendingH = width, height
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F: r.frame,
		P: input.PointerDown,
		T: input.TogglePause,
		W: r.pendingW,
		H: r.pendingH,
	})
	r.pendingW, r.pendingH = 0, 0
	r.frame++
}

// SetFinalScore stores the score the session ended with.
func (r *Recorder) SetFinalScore(score int) {
	r.data.FinalScore = score
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}
	return replay.SaveReplay(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
