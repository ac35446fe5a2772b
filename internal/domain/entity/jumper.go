package entity

import (
	"math"
	"time"

	"github.com/younwookim/skyjump/internal/domain/tween"
)

// JumperConfig sizes and tunes a Jumper.
type JumperConfig struct {
	SpriteWidth  int
	SpriteHeight int
	Hitbox       HitboxRect
	JumpForce    float64       // pixels per second, upward
	DeathSpin    time.Duration // length of the death rotation
}

// Jumper is the playable character: a body that only ever jumps straight up.
// It satisfies the player contract the gameplay systems consume.
type Jumper struct {
	Body
	Hitbox HitboxRect

	SpriteWidth  int
	SpriteHeight int
	Rotation     float64 // radians, driven by the death tween

	jumpForce float64
	deathSpin time.Duration

	lookLeft bool
	jumping  bool
	dead     bool

	boundsW float64
	boundsH float64
}

// NewJumper creates a jumper standing at the origin. Call Resize to place it.
func NewJumper(cfg JumperConfig) *Jumper {
	return &Jumper{
		Hitbox:       cfg.Hitbox,
		SpriteWidth:  cfg.SpriteWidth,
		SpriteHeight: cfg.SpriteHeight,
		jumpForce:    cfg.JumpForce,
		deathSpin:    cfg.DeathSpin,
	}
}

// SetLookLeft turns the jumper toward the side the next run comes from.
func (j *Jumper) SetLookLeft(left bool) { j.lookLeft = left }

// LookLeft reports the facing direction.
func (j *Jumper) LookLeft() bool { return j.lookLeft }

// Jumping reports whether the jumper left the ground since the last landing.
func (j *Jumper) Jumping() bool { return j.jumping }

// ClearJumping marks the jump as resolved.
func (j *Jumper) ClearJumping() { j.jumping = false }

// Dead reports whether Die was called.
func (j *Jumper) Dead() bool { return j.dead }

// Jump launches the jumper if it is standing on something.
func (j *Jumper) Jump() {
	if j.dead || !j.OnGround {
		return
	}
	j.VY = -j.jumpForce * PositionScale
	j.OnGround = false
	j.jumping = true
}

// Die starts the fall and returns the rotation animation to play.
// The jumper tips over away from the side it was facing.
func (j *Jumper) Die(facingLeft bool) tween.Config {
	j.dead = true
	j.OnGround = false

	target := math.Pi / 2
	if facingLeft {
		target = -target
	}
	return tween.Config{
		From:     j.Rotation,
		To:       target,
		Duration: j.deathSpin,
		Ease:     backOutEase(),
		OnUpdate: func(v float64) { j.Rotation = v },
	}
}

// Resize keeps the jumper horizontally centred and at the same distance
// from the bottom edge of the viewport.
func (j *Jumper) Resize(width, height float64) {
	y := j.PosY()
	if j.boundsH > 0 {
		y += height - j.boundsH
	} else {
		y = height - 2*BrickSize - float64(j.SpriteHeight)
		j.OnGround = true
	}
	j.SetPos(width/2-float64(j.SpriteWidth)/2, y)
	j.boundsW, j.boundsH = width, height
}

// HitRect returns the collision rect in world pixels.
func (j *Jumper) HitRect() Rect {
	return j.Hitbox.WorldRect(&j.Body)
}

// CenterY returns the sprite's vertical centre in world pixels.
func (j *Jumper) CenterY() float64 {
	return j.PosY() + float64(j.SpriteHeight)/2
}

// SpriteRect returns the drawn area in world pixels.
func (j *Jumper) SpriteRect() Rect {
	return Rect{X: j.PosX(), Y: j.PosY(), W: float64(j.SpriteWidth), H: float64(j.SpriteHeight)}
}

func backOutEase() tween.Easing {
	fn, _ := tween.ByName("Back.Out")
	return fn
}
