package system

import (
	"math/rand"
	"time"

	"github.com/younwookim/skyjump/internal/domain/entity"
	"github.com/younwookim/skyjump/internal/domain/tween"
	"github.com/younwookim/skyjump/internal/infrastructure/config"
)

type fakePlayer struct {
	lookLeft       []bool
	jumping        bool
	clearCalls     int
	jumps          int
	deaths         int
	diedFacingLeft bool
	resizes        [][2]float64
}

func (p *fakePlayer) SetLookLeft(left bool) { p.lookLeft = append(p.lookLeft, left) }
func (p *fakePlayer) Jumping() bool         { return p.jumping }
func (p *fakePlayer) ClearJumping() {
	p.clearCalls++
	p.jumping = false
}
func (p *fakePlayer) Jump() { p.jumps++ }
func (p *fakePlayer) Die(facingLeft bool) tween.Config {
	p.deaths++
	p.diedFacingLeft = facingLeft
	return tween.Config{From: 0, To: 1, Duration: 100 * time.Millisecond}
}
func (p *fakePlayer) Resize(width, height float64) {
	p.resizes = append(p.resizes, [2]float64{width, height})
}

func (p *fakePlayer) lastLookLeft() bool {
	return p.lookLeft[len(p.lookLeft)-1]
}

type fakeCamera struct {
	zoomIns  []int
	zoomOuts []float64
	resizes  int
}

func (c *fakeCamera) ZoomIn(score int)          { c.zoomIns = append(c.zoomIns, score) }
func (c *fakeCamera) ZoomOut(intensity float64) { c.zoomOuts = append(c.zoomOuts, intensity) }
func (c *fakeCamera) Resize(width, height float64) {
	c.resizes++
}

type fakeCollisions struct {
	runs     []*entity.PlatformRun
	handlers []CollisionHandler
}

func (c *fakeCollisions) Collide(run *entity.PlatformRun, handler CollisionHandler) {
	c.runs = append(c.runs, run)
	c.handlers = append(c.handlers, handler)
}

type fakeBounds struct {
	width, height float64
}

func (b *fakeBounds) SetBounds(width, height float64) { b.width, b.height = width, height }

// scriptedSource replays fixed Int63 values so side rolls can be chosen.
// 0 rolls left (and the minimum of any range), 3<<61 rolls right.
type scriptedSource struct {
	vals []int64
	i    int
}

func (s *scriptedSource) Int63() int64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func (s *scriptedSource) Seed(int64) {}

const rollRight = int64(3) << 61

type generatorFixture struct {
	gen        *PlatformGenerator
	player     *fakePlayer
	camera     *fakeCamera
	collisions *fakeCollisions
	tweens     *tween.Manager
	scores     []int
	gameOvers  int
}

func newGeneratorFixture(rng *rand.Rand) *generatorFixture {
	f := &generatorFixture{
		player:     &fakePlayer{},
		camera:     &fakeCamera{},
		collisions: &fakeCollisions{},
		tweens:     tween.NewManager(),
	}
	f.gen = NewPlatformGenerator(rng, f.tweens, f.collisions, f.camera, f.player)
	f.gen.SetScoreListener(ScoreListenerFunc(func(ev ScoreEvent) {
		f.scores = append(f.scores, ev.Score)
	}))
	f.gen.OnGameOver(func() { f.gameOvers++ })
	f.gen.RecordResize(480, 800)
	return f
}

// land delivers a resting contact on the current target while airborne.
func (f *generatorFixture) land() *entity.PlatformRun {
	target := f.gen.Target()
	f.player.jumping = true
	f.gen.OnPlatformCollision(Contact{Run: target})
	return target
}

func testJumper() *entity.Jumper {
	cfg := config.Default().Player
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
