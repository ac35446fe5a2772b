package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyjump/internal/application/replay"
	"github.com/younwookim/skyjump/internal/application/scene/playing"
	"github.com/younwookim/skyjump/internal/application/system"
	"github.com/younwookim/skyjump/internal/infrastructure/config"
)

// pressEvery taps the pointer on a fixed cadence.
type pressEvery struct {
	start, every int
	n            int
}

func (p *pressEvery) GetInput() system.InputState {
	n := p.n
	p.n++
	return system.InputState{PointerDown: n >= p.start && (n-p.start)%p.every == 0}
}

// recordSession plays a scripted session and returns the saved replay path.
func recordSession(t *testing.T, seed int64, frames int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")

	p := playing.New(config.Default(), playing.Options{
		Seed:       seed,
		RecordPath: path,
		Input:      &pressEvery{start: 190, every: 37},
	})
	for i := 0; i < frames; i++ {
		_, err := p.Update(1.0 / 60)
		require.NoError(t, err)
	}
	p.Shutdown()
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Cleanup(func() { flagConfig = "" })

	t.Run("embedded defaults", func(t *testing.T) {
		flagConfig = ""
		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "override.yaml")
		require.NoError(t, os.WriteFile(path, []byte("display:\n  screenWidth: 720\n"), 0o644))
		flagConfig = path

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, 720, cfg.Display.ScreenWidth)
		assert.Equal(t, 800, cfg.Display.ScreenHeight)
	})

	t.Run("missing override", func(t *testing.T) {
		flagConfig = filepath.Join(t.TempDir(), "nope.yaml")
		_, err := loadConfig()
		assert.Error(t, err)
	})
}

func TestRunReplay_MatchesRecording(t *testing.T) {
	path := recordSession(t, 77, 1500)
	data, err := replay.LoadReplay(path)
	require.NoError(t, err)

	res := runReplay(config.Default(), data, log.New(io.Discard))

	assert.Equal(t, int64(77), res.Seed)
	assert.Equal(t, len(data.Frames), res.Frames)
	assert.Equal(t, data.FinalScore, res.Score)
	assert.Equal(t, res.Recorded, res.Score)
}

func TestReplayCommand(t *testing.T) {
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	t.Run("prints the result", func(t *testing.T) {
		path := recordSession(t, 5, 600)
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"replay", path})

		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "seed 5: score")
	})

	t.Run("reports divergence", func(t *testing.T) {
		path := recordSession(t, 6, 600)
		data, err := replay.LoadReplay(path)
		require.NoError(t, err)
		data.FinalScore += 3
		require.NoError(t, replay.SaveReplay(path, *data))

		rootCmd.SetOut(io.Discard)
		rootCmd.SetErr(io.Discard)
		rootCmd.SetArgs([]string{"replay", path})
		assert.ErrorContains(t, rootCmd.Execute(), "replay diverged")
	})

	t.Run("missing file", func(t *testing.T) {
		rootCmd.SetOut(io.Discard)
		rootCmd.SetErr(io.Discard)
		rootCmd.SetArgs([]string{"replay", filepath.Join(t.TempDir(), "none.json")})
		assert.ErrorContains(t, rootCmd.Execute(), "failed to open file")
	})
}
