package system

import (
	"github.com/younwookim/skyjump/internal/domain/entity"
	"github.com/younwookim/skyjump/internal/infrastructure/config"
)

// Autopilot plays the game in demo mode. It jumps once the leading edge
// of the target run is within reach of the jumper's hitbox, where reach
// grows with the speed the run is closing in at.
type Autopilot struct {
	distance float64
	lead     float64

	run      *entity.PlatformRun
	lastGap  float64
	triggers int
}

// NewAutopilot creates an autopilot from config.
func NewAutopilot(cfg config.AutopilotConfig) *Autopilot {
	return &Autopilot{
		distance: cfg.TriggerDistance,
		lead:     cfg.LeadTime.Seconds(),
	}
}

// Triggers returns how many times the autopilot has asked for a jump.
func (a *Autopilot) Triggers() int { return a.triggers }

// ShouldJump reports whether the jumper should jump this frame to clear
// the incoming run. It is meant to be called once per frame; dt is the
// frame time used to estimate the run's speed.
func (a *Autopilot) ShouldJump(target *entity.PlatformRun, j *entity.Jumper, dt float64) bool {
	if target == nil || j == nil || len(target.Bricks) == 0 {
		a.run = nil
		return false
	}

	hit := j.HitRect()
	run := target.Bounds()
	if !hit.OverlapsY(run) {
		a.run = nil
		return false
	}

	var gap float64
	if target.Side.Left() {
		gap = hit.Left() - run.Right()
	} else {
		gap = run.Left() - hit.Right()
	}

	closing := 0.0
	if a.run == target && dt > 0 {
		closing = (a.lastGap - gap) / dt
	}
	a.run, a.lastGap = target, gap

	if j.Dead() || !j.OnGround || target.State != entity.RunAnimating {
		return false
	}

	reach := a.distance
	if r := closing * a.lead; r > reach {
		reach = r
	}
	if gap < 0 || gap > reach {
		return false
	}
	a.triggers++
	return true
}
