package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/skyjump/internal/application/replay"
	"github.com/younwookim/skyjump/internal/application/scene/playing"
	"github.com/younwookim/skyjump/internal/application/state"
	"github.com/younwookim/skyjump/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded session",
	Long: `Run a recorded session without opening a window and print the result.

The command fails when the replayed score differs from the recorded one.

Examples:
  skyjump replay run.json
  skyjump replay run.json --config tuned.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := replay.LoadReplay(args[0])
		if err != nil {
			return err
		}

		res := runReplay(cfg, data, newLogger())
		fmt.Fprintf(cmd.OutOrStdout(), "seed %d: score %d after %d frames (%s)\n",
			res.Seed, res.Score, res.Frames, res.State)
		if res.Score != res.Recorded {
			return fmt.Errorf("replay diverged: recorded score %d, replayed %d", res.Recorded, res.Score)
		}
		return nil
	},
}

// ReplayResult summarises a headless replay.
type ReplayResult struct {
	Seed     int64
	Frames   int
	Score    int
	Recorded int
	State    state.GameState
}

// runReplay steps a fresh scene through every recorded frame at the
// configured frame rate.
func runReplay(cfg *config.GameConfig, data *replay.ReplayData, logger *log.Logger) ReplayResult {
	replayer := replay.NewReplayer(*data)
	p := playing.New(cfg, playing.Options{
		Replay: replayer,
		Logger: logger,
	})

	dt := 1.0 / float64(cfg.Display.Framerate)
	for !replayer.Done() {
		// A replay never restarts, so Update always stays on this scene.
		if _, err := p.Update(dt); err != nil {
			logger.Error("replay stopped", "frame", replayer.CurrentFrame(), "err", err)
			break
		}
	}

	return ReplayResult{
		Seed:     p.Seed(),
		Frames:   replayer.CurrentFrame(),
		Score:    p.Score(),
		Recorded: data.FinalScore,
		State:    p.State(),
	}
}
