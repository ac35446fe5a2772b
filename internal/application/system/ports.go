package system

import (
	"time"

	"github.com/younwookim/skyjump/internal/domain/entity"
	"github.com/younwookim/skyjump/internal/domain/tween"
)

// Player is the character as seen by the gameplay systems.
// entity.Jumper is the in-tree implementation.
type Player interface {
	SetLookLeft(left bool)
	Jumping() bool
	ClearJumping()
	Jump()
	// Die marks the player dead and returns the death animation to play.
	Die(facingLeft bool) tween.Config
	Resize(width, height float64)
}

// Animator plays tweens and fire-once timers. tween.Manager implements it.
type Animator interface {
	Add(cfg tween.Config) *tween.Tween
	DelayedCall(d time.Duration, fn func()) *tween.Tween
}

// Contact is one collision report between the player and a platform run.
type Contact struct {
	Run *entity.PlatformRun
	// Intersecting is set when the player's body still overlaps the run
	// after separation, i.e. the run hit the player from the side.
	Intersecting bool
}

// CollisionHandler receives contacts for one run.
type CollisionHandler func(Contact)

// CollisionSource reports player contacts with registered runs.
type CollisionSource interface {
	Collide(run *entity.PlatformRun, handler CollisionHandler)
}

// CameraControl is the part of the camera the platform generator drives.
type CameraControl interface {
	ZoomIn(score int)
	ZoomOut(intensity float64)
}

// Resizer is anything that lays itself out for a new viewport size.
type Resizer interface {
	Resize(width, height float64)
}

// BoundsSetter receives new world bounds.
type BoundsSetter interface {
	SetBounds(width, height float64)
}

// PlatformLayout repositions live runs for a new viewport size.
type PlatformLayout interface {
	RecordResize(width, height float64)
}
