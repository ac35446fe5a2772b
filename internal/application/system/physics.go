package system

import (
	"math"

	"github.com/younwookim/skyjump/internal/domain/entity"
	"github.com/younwookim/skyjump/internal/infrastructure/config"
)

// restTolerance is how far (pixels) feet may be from a top edge and still
// count as standing on it.
const restTolerance = 0.5

type collider struct {
	run     *entity.PlatformRun
	handler CollisionHandler
}

// PhysicsSystem moves the jumper under gravity and resolves it against the
// ground and the platform runs. It only ever resolves downward movement:
// bricks are one-way platforms seen from above, and anything that reaches
// the jumper from the side is reported as an intersecting contact.
type PhysicsSystem struct {
	config    config.PhysicsSettings
	ground    *entity.BrickGroup
	colliders []collider

	width  float64
	height float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg config.PhysicsSettings, ground *entity.BrickGroup) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		ground: ground,
	}
}

// Collide registers a run as a solid and sends its contacts to handler.
func (s *PhysicsSystem) Collide(run *entity.PlatformRun, handler CollisionHandler) {
	s.colliders = append(s.colliders, collider{run: run, handler: handler})
}

// Colliders returns the number of registered runs.
func (s *PhysicsSystem) Colliders() int { return len(s.colliders) }

// SetBounds sets the world bounds. A dead jumper stops once it has fallen
// below them.
func (s *PhysicsSystem) SetBounds(width, height float64) {
	s.width, s.height = width, height
}

// Bounds returns the world bounds.
func (s *PhysicsSystem) Bounds() (width, height float64) {
	return s.width, s.height
}

// Update applies physics to the jumper and reports run contacts.
func (s *PhysicsSystem) Update(j *entity.Jumper, dt float64) {
	// Store previous ground state
	j.WasOnGround = j.OnGround

	if j.Dead() {
		s.fall(j, dt)
		return
	}

	s.applyGravity(j, dt)

	_, dy := j.ApplyVelocity(dt)
	s.moveY(j, dy)

	s.dispatchContacts(j)
}

// applyGravity applies gravity acceleration to the jumper
func (s *PhysicsSystem) applyGravity(j *entity.Jumper, dt float64) {
	j.VY += s.config.Gravity * entity.PositionScale * dt

	// Clamp to max fall speed
	maxFall := s.config.MaxFallSpeed * entity.PositionScale
	if maxFall > 0 && j.VY > maxFall {
		j.VY = maxFall
	}
}

// fall drops a dead jumper through everything until it leaves the world.
func (s *PhysicsSystem) fall(j *entity.Jumper, dt float64) {
	if s.height > 0 && j.HitRect().Top() > s.height {
		j.VY = 0
		return
	}
	s.applyGravity(j, dt)
	_, dy := j.ApplyVelocity(dt)
	j.Y += dy
}

// moveY moves the jumper vertically in substeps, stopping on the first top
// edge crossed while falling.
func (s *PhysicsSystem) moveY(j *entity.Jumper, dy int) {
	if dy < 0 {
		j.OnGround = false
		j.Y += dy
		return
	}
	if dy == 0 {
		return
	}

	steps := s.config.Substeps
	if steps < 1 {
		steps = 1
	}

	j.OnGround = false
	remaining := dy
	for i := 0; i < steps && remaining > 0; i++ {
		chunk := remaining / (steps - i)
		if chunk == 0 {
			chunk = remaining
		}

		hit := j.HitRect()
		if top, ok := s.landingTop(hit, float64(chunk)/entity.PositionScale); ok {
			j.Y += int(math.Round((top - hit.Bottom()) * entity.PositionScale))
			j.VY = 0
			j.OnGround = true
			return
		}

		j.Y += chunk
		remaining -= chunk
	}
}

// landingTop finds the highest top edge the hitbox crosses moving down by dist.
func (s *PhysicsSystem) landingTop(hit entity.Rect, dist float64) (float64, bool) {
	best, found := 0.0, false
	consider := func(body entity.Rect) {
		if !hit.OverlapsX(body) {
			return
		}
		if hit.Bottom() > body.Top()+restTolerance || hit.Bottom()+dist < body.Top() {
			return
		}
		if !found || body.Top() < best {
			best, found = body.Top(), true
		}
	}

	if s.ground != nil {
		for _, b := range s.ground.Bricks {
			consider(b.Body())
		}
	}
	for _, c := range s.colliders {
		for _, b := range c.run.Bricks {
			consider(b.Body())
		}
	}
	return best, found
}

// dispatchContacts reports every run the jumper overlaps or stands on.
// Handlers may register new runs; those are checked from the next frame.
func (s *PhysicsSystem) dispatchContacts(j *entity.Jumper) {
	hit := j.HitRect()
	n := len(s.colliders)
	for i := 0; i < n; i++ {
		c := s.colliders[i]
		intersecting, resting := false, false
		for _, b := range c.run.Bricks {
			body := b.Body()
			if hit.Intersects(body) {
				intersecting = true
				break
			}
			if j.OnGround && hit.RestsOn(body, restTolerance) {
				resting = true
			}
		}
		if intersecting || resting {
			c.handler(Contact{Run: c.run, Intersecting: intersecting})
		}
	}
}
