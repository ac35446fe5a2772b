// Package playing provides the main gameplay scene.
package playing

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/skyjump/internal/application/replay"
	"github.com/younwookim/skyjump/internal/application/scene"
	"github.com/younwookim/skyjump/internal/application/state"
	"github.com/younwookim/skyjump/internal/application/system"
	"github.com/younwookim/skyjump/internal/domain/entity"
	"github.com/younwookim/skyjump/internal/domain/tween"
	"github.com/younwookim/skyjump/internal/infrastructure/config"
)

// InputSource supplies one frame of input.
type InputSource interface {
	GetInput() system.InputState
}

// Options configure a Playing scene.
type Options struct {
	// Seed drives every random choice. 0 picks a time-based seed, or the
	// recorded one when replaying.
	Seed int64
	// Autoplay hands the jumps to the autopilot and mutes score events.
	Autoplay bool
	// RecordPath enables input recording; the file is written at game over.
	RecordPath string
	// Replay feeds recorded input instead of the keyboard and mouse.
	Replay *replay.Replayer
	// Input overrides the live input source.
	Input InputSource
	// Listener receives score events.
	Listener system.ScoreListener
	Logger   *log.Logger
}

// Playing is the main gameplay scene. It owns the world and wires the
// systems together: input → player → physics → tweens → camera.
type Playing struct {
	config *config.GameConfig
	opts   Options
	logger *log.Logger

	state       state.GameState
	resumeState state.GameState

	// Deterministic RNG
	rng  *rand.Rand
	seed int64

	tweens    *tween.Manager
	player    *entity.Jumper
	ground    *entity.BrickGroup
	physics   *system.PhysicsSystem
	camera    *system.CameraManager
	platforms *system.PlatformGenerator
	layout    *system.LayoutManager
	input     *system.InputSystem
	autopilot *system.Autopilot
	source    InputSource
	settle    *tween.Tween

	width  int
	height int
	frame  int

	view *view

	// Input recording
	recorder *Recorder
	saved    bool
}

// New creates a new Playing scene laid out for the configured screen size,
// or the recorded one when replaying.
func New(cfg *config.GameConfig, opts Options) *Playing {
	seed := opts.Seed
	width, height := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
	if opts.Replay != nil {
		data := opts.Replay.Data()
		if seed == 0 {
			seed = data.Seed
		}
		width, height = data.Width, data.Height
		opts.Autoplay = data.Autoplay
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Playing{
		config: cfg,
		opts:   opts,
		logger: logger.With("seed", seed),
		state:  state.StateSettling,
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
		width:  width,
		height: height,
	}
	p.create()
	return p
}

func (p *Playing) create() {
	p.tweens = tween.NewManager()
	p.ground = &entity.BrickGroup{}
	p.player = newJumper(p.config.Player)
	p.physics = system.NewPhysicsSystem(p.config.Physics, p.ground)
	p.camera = system.NewCameraManager(p.config.Camera, p.tweens)

	p.platforms = system.NewPlatformGenerator(p.rng, p.tweens, p.physics, p.camera, p.player)
	p.platforms.SetAutoplay(p.opts.Autoplay)
	p.platforms.SetScoreListener(system.ScoreListenerFunc(p.onScore))
	p.platforms.OnGameOver(p.onGameOver)
	p.player.SetLookLeft(p.platforms.LeftSide())

	p.layout = system.NewLayoutManager(p.config.World, p.ground, system.LayoutOptions{
		Camera:    p.camera,
		Physics:   p.physics,
		Platforms: p.platforms,
		Player:    p.player,
	})
	p.layout.Resize(float64(p.width), float64(p.height))

	// Start high up in the sky and settle down onto the player.
	p.camera.SetY(float64(p.height) * p.config.World.Levels)
	p.layout.StarsAlpha(p.camera.Y())

	p.input = system.NewInputSystem()
	p.input.OnPointerDown(p.player.Jump)
	switch {
	case p.opts.Replay != nil:
		p.source = replaySource{p: p, r: p.opts.Replay}
	case p.opts.Input != nil:
		p.source = p.opts.Input
	default:
		p.source = p.input
	}
	if p.opts.Autoplay {
		p.autopilot = system.NewAutopilot(p.config.Autopilot)
	}

	if p.opts.RecordPath != "" && p.opts.Replay == nil {
		p.recorder = NewRecorder(p.seed, p.width, p.height, p.opts.Autoplay)
		p.logger.Info("recording enabled", "path", p.opts.RecordPath)
	}

	p.view = newView(p.seed)
	p.settle = p.tweens.DelayedCall(p.config.World.SettleDelay, p.start)
}

// start scrolls down to the player, then hands the camera over to follow
// mode and sends the first run.
func (p *Playing) start() {
	target := p.config.World.SettleOffset - float64(p.height)/2
	p.camera.ScrollTo(target, func() {
		p.camera.Follow(p.player)
		p.platforms.SpawnNextRun(entity.BricksForScore(p.platforms.Score()))
		if p.state == state.StateSettling {
			p.state = state.StatePlaying
		}
		p.logger.Debug("camera settled")
	})
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	input := p.source.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	if input.TogglePause {
		if p.state == state.StatePaused {
			p.Resume()
		} else {
			p.Pause()
		}
	}
	if p.state == state.StatePaused {
		return nil, nil
	}

	if p.state == state.StateGameOver && input.Restart && p.opts.Replay == nil {
		return p.restart(), nil
	}

	if p.autopilot != nil && p.autopilot.ShouldJump(p.platforms.Target(), p.player, dt) {
		input.PointerDown = true
	}
	p.input.Dispatch(input)

	p.physics.Update(p.player, dt)
	p.tweens.Update(dt)
	p.camera.Update()
	p.layout.StarsAlpha(p.camera.Y())

	p.frame++
	return nil, nil // nil = stay on this scene
}

// Pause freezes input, physics and every tween. It has no effect once the
// game is over.
func (p *Playing) Pause() {
	if p.state == state.StatePaused || p.state == state.StateGameOver {
		return
	}
	p.resumeState = p.state
	p.state = state.StatePaused
	p.tweens.Pause()
	p.logger.Debug("paused", "frame", p.frame)
}

// Resume continues after Pause.
func (p *Playing) Resume() {
	if p.state != state.StatePaused {
		return
	}
	p.state = p.resumeState
	p.tweens.Resume()
	p.logger.Debug("resumed", "frame", p.frame)
}

// SetAutoplay switches demo mode on or off mid-game.
func (p *Playing) SetAutoplay(on bool) {
	p.opts.Autoplay = on
	p.platforms.SetAutoplay(on)
	if on && p.autopilot == nil {
		p.autopilot = system.NewAutopilot(p.config.Autopilot)
	} else if !on {
		p.autopilot = nil
	}
}

func (p *Playing) onScore(ev system.ScoreEvent) {
	p.logger.Debug("landed", "score", ev.Score, "frame", p.frame)
	if p.opts.Listener != nil {
		p.opts.Listener.OnScore(ev)
	}
}

func (p *Playing) onGameOver() {
	p.input.OffPointerDown()
	p.settle.Stop()
	p.state = state.StateGameOver
	p.logger.Info("game over", "score", p.platforms.Score(), "frame", p.frame, "autoplay", p.opts.Autoplay)
	p.saveRecording()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.saved {
		return
	}

	p.recorder.SetFinalScore(p.platforms.Score())
	if err := p.recorder.Save(p.opts.RecordPath); err != nil {
		p.logger.Error("failed to save recording", "err", err)
		return
	}
	p.saved = true
	p.recorder.Stop()
	p.logger.Info("recording saved", "path", p.opts.RecordPath, "frames", p.recorder.FrameCount())
}

func (p *Playing) restart() *Playing {
	opts := p.opts
	opts.Seed = 0
	p.logger.Info("restarting")
	return New(p.config, opts)
}

// Resize lays the world out for a new screen size (implements scene.Scene).
func (p *Playing) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == p.width && height == p.height) {
		return
	}
	if p.platforms.GameOver() {
		p.logger.Debug("resize ignored after game over", "width", width, "height", height)
		return
	}
	p.width, p.height = width, height
	p.layout.Resize(float64(width), float64(height))
	if p.recorder != nil {
		p.recorder.RecordResize(width, height)
	}
	p.logger.Debug("resized", "width", width, "height", height)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.Shutdown()
}

// Shutdown flushes an unsaved recording. Call it when the window closes.
func (p *Playing) Shutdown() {
	p.saveRecording()
}

// State returns the current game state.
func (p *Playing) State() state.GameState { return p.state }

// Score returns the number of successful landings.
func (p *Playing) Score() int { return p.platforms.Score() }

// Seed returns the seed the session was started with.
func (p *Playing) Seed() int64 { return p.seed }

// Frame returns the number of simulated frames.
func (p *Playing) Frame() int { return p.frame }

// Size returns the current screen size.
func (p *Playing) Size() (width, height int) { return p.width, p.height }

func newJumper(cfg config.PlayerConfig) *entity.Jumper {
	return entity.NewJumper(entity.JumperConfig{
		SpriteWidth:  cfg.Sprite.FrameWidth,
		SpriteHeight: cfg.Sprite.FrameHeight,
		Hitbox: entity.HitboxRect{
			OffsetX: cfg.Hitbox.OffsetX,
			OffsetY: cfg.Hitbox.OffsetY,
			Width:   cfg.Hitbox.Width,
			Height:  cfg.Hitbox.Height,
		},
		JumpForce: cfg.JumpForce,
		DeathSpin: cfg.DeathSpin,
	})
}

// replaySource feeds recorded frames and applies recorded resizes.
type replaySource struct {
	p *Playing
	r *replay.Replayer
}

func (s replaySource) GetInput() system.InputState {
	in, ok := s.r.GetInput()
	if !ok {
		return system.InputState{}
	}
	if in.Width > 0 && in.Height > 0 {
		s.p.Resize(in.Width, in.Height)
	}
	return system.InputState{
		PointerDown: in.PointerDown,
		TogglePause: in.TogglePause,
	}
}
