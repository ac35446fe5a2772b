package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/skyjump/internal/application/game"
	"github.com/younwookim/skyjump/internal/application/scene/playing"
	"github.com/younwookim/skyjump/internal/application/system"
)

var (
	flagAutoplay bool
	flagRecord   string
)

// recordAuto is the --record value used when the flag is given without a path.
const recordAuto = "auto"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and start a new run.

Controls:
  Click/Tap/Space  - Jump
  P/Esc            - Pause
  R/Enter          - Restart (after game over)
  Tab (hold)       - Show the hitbox

Examples:
  skyjump play
  skyjump play --autoplay
  skyjump play --record            # replay_<timestamp>.json
  skyjump play --record run.json`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutoplay, "autoplay", false, "Let the autopilot play (no score events)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to a replay file")
	playCmd.Flags().Lookup("record").NoOptDefVal = recordAuto
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	record := flagRecord
	if record == recordAuto {
		record = playing.GenerateFilename()
	}

	feed := system.NewScoreFeed(64)
	done := make(chan int)
	go trackBest(feed, logger, done)

	scene := playing.New(cfg, playing.Options{
		Seed:       flagSeed,
		Autoplay:   flagAutoplay,
		RecordPath: record,
		Listener:   feed,
		Logger:     logger,
	})
	logger.Info("starting", "seed", scene.Seed(), "autoplay", flagAutoplay)

	display := cfg.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	g.SetResizable(display.Resizable)
	g.SetDT(1.0 / float64(display.Framerate))

	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)
	if display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	runErr := ebiten.RunGame(g)

	// The window may close mid-run; flush whatever the current scene recorded.
	if p, ok := g.Scene().(*playing.Playing); ok {
		p.Shutdown()
	}
	feed.Close()
	best := <-done
	if dropped := feed.Dropped(); dropped > 0 {
		logger.Warn("score events dropped", "count", dropped)
	}
	logger.Info("bye", "best", best)

	if runErr != nil {
		return fmt.Errorf("failed to run game: %w", runErr)
	}
	return nil
}

// trackBest consumes score events until the feed is closed and reports the
// best score seen across restarts.
func trackBest(feed *system.ScoreFeed, logger *log.Logger, done chan<- int) {
	best := 0
	for ev := range feed.Events() {
		if ev.Score > best {
			best = ev.Score
			logger.Debug("new best", "score", best)
		}
	}
	done <- best
}
