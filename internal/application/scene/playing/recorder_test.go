package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyjump/internal/application/replay"
	"github.com/younwookim/skyjump/internal/application/system"
)

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(42, 480, 800, false)

	r.RecordFrame(system.InputState{})
	r.RecordResize(640, 960)
	r.RecordFrame(system.InputState{PointerDown: true})
	r.RecordFrame(system.InputState{TogglePause: true, Restart: true})

	data := r.GetData()
	assert.Equal(t, replay.FormatVersion, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, 480, data.Width)
	assert.Equal(t, 800, data.Height)
	assert.Equal(t, []replay.FrameInput{
		{F: 0},
		{F: 1, P: true, W: 640, H: 960},
		{F: 2, T: true},
	}, data.Frames)
}

func TestRecorder_Stop(t *testing.T) {
	r := NewRecorder(1, 480, 800, true)
	r.RecordFrame(system.InputState{})
	r.Stop()

	r.RecordFrame(system.InputState{PointerDown: true})
	r.RecordResize(10, 10)

	assert.False(t, r.IsRecording())
	assert.Equal(t, 1, r.FrameCount())
	assert.True(t, r.GetData().Autoplay)
}

func TestRecorder_Save(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty recording", func(t *testing.T) {
		r := NewRecorder(1, 480, 800, false)
		assert.ErrorContains(t, r.Save(filepath.Join(dir, "empty.json")), "no frames")
	})

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(dir, "run.json")
		r := NewRecorder(7, 480, 800, false)
		r.RecordFrame(system.InputState{PointerDown: true})
		r.SetFinalScore(3)
		require.NoError(t, r.Save(path))

		data, err := replay.LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, r.GetData(), *data)
	})
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}
