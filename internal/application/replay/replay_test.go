package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0},
			{F: 1, P: true},
			{F: 2, T: true, W: 640, H: 960},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.PointerDown)
	assert.False(t, input.TogglePause)
	assert.Zero(t, input.Width)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.PointerDown)
	assert.False(t, input.TogglePause)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.PointerDown)
	assert.True(t, input.TogglePause)
	assert.Equal(t, 640, input.Width)
	assert.Equal(t, 960, input.Height)
	assert.True(t, replayer.Done())

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	data := CreateTestReplayData(5)
	replayer := NewReplayer(data)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.False(t, replayer.Done())
}

func TestReplayer_TotalFrames(t *testing.T) {
	data := CreateTestReplayData(10)
	replayer := NewReplayer(data)

	assert.Equal(t, 10, replayer.TotalFrames())
}

func TestReplayer_Seed(t *testing.T) {
	data := ReplayData{
		Seed:   99999,
		Frames: []FrameInput{},
	}
	replayer := NewReplayer(data)

	assert.Equal(t, int64(99999), replayer.Seed())
	assert.True(t, replayer.Done())
}

func TestReplayer_Reset(t *testing.T) {
	data := CreateTestReplayData(3, 0)
	replayer := NewReplayer(data)

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	// Reset
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	// Should be able to read again
	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.PointerDown)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, 5, 30, 99)

	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, 480, data.Width)
	assert.Equal(t, 800, data.Height)
	assert.Equal(t, 60, len(data.Frames))

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.Equal(t, i == 5 || i == 30, frame.P, "press at frame %d", i)
	}
}

func TestSaveAndLoadReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	data := CreateTestReplayData(4, 2)
	data.Autoplay = true
	data.FinalScore = 7

	require.NoError(t, SaveReplay(path, data))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, data, *loaded)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "nope.json"))
		assert.ErrorContains(t, err, "failed to open file")
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := LoadReplay(path)
		assert.ErrorContains(t, err, "failed to decode replay")
	})

	t.Run("missing viewport", func(t *testing.T) {
		path := filepath.Join(dir, "noview.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"2.0","seed":1,"frames":[]}`), 0o644))
		_, err := LoadReplay(path)
		assert.ErrorContains(t, err, "invalid viewport")
	})
}

func TestSaveReplay_BadPath(t *testing.T) {
	err := SaveReplay(filepath.Join(t.TempDir(), "missing", "run.json"), CreateTestReplayData(1))
	assert.ErrorContains(t, err, "failed to create file")
}
