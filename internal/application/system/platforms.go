package system

import (
	"math/rand"
	"time"

	"github.com/younwookim/skyjump/internal/domain/entity"
	"github.com/younwookim/skyjump/internal/domain/mathx"
	"github.com/younwookim/skyjump/internal/domain/tween"
)

const (
	// spawnRise is the distance from the viewport bottom to the centre of
	// the first run; each point of score stacks one brick higher.
	spawnRise = 160.0
	// spawnMargin keeps a new run just outside the viewport edge.
	spawnMargin = 32.0
	// zoomOutPerScore converts the final score into ZoomOut intensity.
	zoomOutPerScore = 140.0
)

// PlatformGenerator spawns platform runs and runs the landing/miss state
// machine that drives score and difficulty.
//
// Every run is tagged with the score at spawn time. A contact counts as a
// landing only while the run's tag equals the current score, so older runs
// in the tower are inert.
type PlatformGenerator struct {
	rng        *rand.Rand
	animator   Animator
	collisions CollisionSource
	camera     CameraControl
	player     Player

	listener   ScoreListener
	onGameOver func()

	runs        []*entity.PlatformRun
	score       int
	leftSide    bool
	minDuration time.Duration
	gameOver    bool
	autoplay    bool

	width  float64
	height float64

	platformTween *tween.Tween
	deathTween    *tween.Tween
}

// NewPlatformGenerator creates a generator. The first spawn side is rolled
// from rng; RecordResize must run before the first spawn.
func NewPlatformGenerator(rng *rand.Rand, animator Animator, collisions CollisionSource, camera CameraControl, player Player) *PlatformGenerator {
	g := &PlatformGenerator{
		rng:         rng,
		animator:    animator,
		collisions:  collisions,
		camera:      camera,
		player:      player,
		minDuration: entity.InitialMinDuration,
	}
	g.leftSide = g.rollSide()
	return g
}

// SetScoreListener sets the receiver of score events. nil disables them.
func (g *PlatformGenerator) SetScoreListener(l ScoreListener) { g.listener = l }

// OnGameOver registers a hook that runs once when the game ends, before the
// death animation starts.
func (g *PlatformGenerator) OnGameOver(fn func()) { g.onGameOver = fn }

// SetAutoplay toggles demo mode. Score events are not emitted in demo mode.
func (g *PlatformGenerator) SetAutoplay(on bool) { g.autoplay = on }

// Autoplay reports whether demo mode is on.
func (g *PlatformGenerator) Autoplay() bool { return g.autoplay }

// Score returns the number of successful landings.
func (g *PlatformGenerator) Score() int { return g.score }

// GameOver reports whether a run has hit the player.
func (g *PlatformGenerator) GameOver() bool { return g.gameOver }

// Dying reports whether the death animation is still playing.
func (g *PlatformGenerator) Dying() bool { return g.deathTween.Active() }

// LeftSide reports which side the next run comes from.
func (g *PlatformGenerator) LeftSide() bool { return g.leftSide }

// MinDuration returns the current lower bound of a run's slide duration.
func (g *PlatformGenerator) MinDuration() time.Duration { return g.minDuration }

// Runs returns every spawned run, oldest first.
func (g *PlatformGenerator) Runs() []*entity.PlatformRun { return g.runs }

// Target returns the run the player has to land on next, or nil.
func (g *PlatformGenerator) Target() *entity.PlatformRun {
	for i := len(g.runs) - 1; i >= 0; i-- {
		if g.runs[i].Tag == g.score {
			return g.runs[i]
		}
	}
	return nil
}

// SpawnNextRun creates a run of bricks just off-screen on the current side
// at the current score's height and slides it across toward the centre.
func (g *PlatformGenerator) SpawnNextRun(bricks int) *entity.PlatformRun {
	width := float64(bricks) * entity.BrickSize
	y := g.height - spawnRise - float64(g.score)*entity.BrickSize

	x := g.width + spawnMargin
	if g.leftSide {
		x = spawnMargin - width
	}

	run := entity.NewPlatformRun(g.score, entity.SideFromLeft(g.leftSide), x, y, bricks)
	run.Duration = time.Duration(mathx.RandomInt(g.rng, int(g.minDuration/time.Millisecond), int(entity.MaxDuration/time.Millisecond))) * time.Millisecond
	run.Delay = time.Duration(mathx.RandomInt(g.rng, 0, int(entity.MaxDelay/time.Millisecond))) * time.Millisecond
	curve := tween.RandomEasing(g.rng)
	run.Easing = curve.Name

	g.runs = append(g.runs, run)
	g.collisions.Collide(run, g.OnPlatformCollision)

	displacement := g.width/2 + width/2
	if !g.leftSide {
		displacement = -displacement
	}
	run.State = entity.RunAnimating
	g.platformTween = g.animator.Add(tween.Config{
		From:     0,
		To:       displacement,
		Duration: run.Duration,
		Delay:    run.Delay,
		Ease:     curve.Fn,
		OnUpdate: func(v float64) {
			run.Slide(v)
			run.Refresh()
		},
	})
	return run
}

// OnPlatformCollision handles a contact between the player and a run.
func (g *PlatformGenerator) OnPlatformCollision(c Contact) {
	if g.gameOver || c.Run == nil {
		return
	}
	if c.Intersecting {
		g.recordMiss(c.Run)
		return
	}
	if !g.player.Jumping() {
		return
	}
	g.player.ClearJumping()
	if c.Run.Tag == g.score {
		g.recordLanding(c.Run)
	}
}

func (g *PlatformGenerator) recordLanding(run *entity.PlatformRun) {
	run.State = entity.RunLanded
	g.leftSide = g.rollSide()
	g.player.SetLookLeft(g.leftSide)

	g.score++
	if !g.autoplay && g.listener != nil {
		g.listener.OnScore(ScoreEvent{Score: g.score})
	}

	bricks := entity.BricksForScore(g.score)
	g.minDuration = entity.MinDurationForScore(g.score)

	g.camera.ZoomIn(g.score)
	g.platformTween.Stop()
	g.SpawnNextRun(bricks)
}

func (g *PlatformGenerator) recordMiss(run *entity.PlatformRun) {
	run.State = entity.RunMissed
	g.gameOver = true
	if g.onGameOver != nil {
		g.onGameOver()
	}
	g.camera.ZoomOut(float64(g.score) * zoomOutPerScore)
	g.deathTween = g.animator.Add(g.player.Die(g.leftSide))
}

// RecordResize moves every run so it keeps its place relative to the
// viewport centre horizontally and to the bottom edge vertically.
// Runs are frozen once the game is over.
func (g *PlatformGenerator) RecordResize(width, height float64) {
	if g.gameOver {
		return
	}
	if g.width > 0 || g.height > 0 {
		for _, run := range g.runs {
			first := run.First()
			if first == nil {
				continue
			}
			x := width/2 - g.width/2 + first.X
			y := height - g.height + first.Y
			run.OriginX += x - first.X
			run.SetXY(x, y, entity.BrickSize).Refresh()
		}
	}
	g.width, g.height = width, height
}

func (g *PlatformGenerator) rollSide() bool {
	return g.rng.Float64() < 0.5
}
