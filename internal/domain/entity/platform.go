package entity

import "time"

// Side is the screen edge a run slides in from.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

// SideFromLeft converts the left/right flag used by the player proxy.
func SideFromLeft(left bool) Side {
	if left {
		return SideLeft
	}
	return SideRight
}

// Left reports whether the side is the left edge.
func (s Side) Left() bool { return s == SideLeft }

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// RunState is the lifecycle of a platform run.
type RunState int

const (
	RunSpawning RunState = iota
	RunAnimating
	RunLanded
	RunMissed
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case RunSpawning:
		return "Spawning"
	case RunAnimating:
		return "Animating"
	case RunLanded:
		return "Landed"
	case RunMissed:
		return "Missed"
	default:
		return "Unknown"
	}
}

// PlatformRun is a row of bricks spawned together and moved as one.
// Tag is the score at spawn time; a contact scores only while Tag equals
// the current score.
type PlatformRun struct {
	Tag    int
	Side   Side
	Bricks []*Brick
	State  RunState

	// OriginX is the first brick's x before any slide offset, Offset the
	// current slide displacement. Resize rebases OriginX so an in-flight
	// slide continues from the repositioned run.
	OriginX float64
	Offset  float64

	Duration time.Duration
	Delay    time.Duration
	Easing   string
}

// NewPlatformRun lays out count bricks starting at (x, y), BrickSize apart.
func NewPlatformRun(tag int, side Side, x, y float64, count int) *PlatformRun {
	r := &PlatformRun{
		Tag:     tag,
		Side:    side,
		OriginX: x,
		Bricks:  make([]*Brick, count),
	}
	for i := range r.Bricks {
		r.Bricks[i] = NewBrick(x+float64(i)*BrickSize, y)
	}
	return r
}

// Width returns the run's total width.
func (r *PlatformRun) Width() float64 {
	return float64(len(r.Bricks)) * BrickSize
}

// First returns the first brick or nil for an empty run.
func (r *PlatformRun) First() *Brick {
	if len(r.Bricks) == 0 {
		return nil
	}
	return r.Bricks[0]
}

// SetXY lays the bricks out from (x, y) stepping stepX, without refreshing bodies.
func (r *PlatformRun) SetXY(x, y, stepX float64) *PlatformRun {
	for i, b := range r.Bricks {
		b.SetPosition(x+float64(i)*stepX, y)
	}
	return r
}

// Slide sets the slide displacement and moves the bricks accordingly.
func (r *PlatformRun) Slide(offset float64) {
	r.Offset = offset
	first := r.First()
	if first == nil {
		return
	}
	r.SetXY(r.OriginX+offset, first.Y, BrickSize)
}

// Refresh re-synchronises every brick body.
func (r *PlatformRun) Refresh() {
	for _, b := range r.Bricks {
		b.RefreshBody()
	}
}

// Bounds returns the union of the brick bodies.
func (r *PlatformRun) Bounds() Rect {
	if len(r.Bricks) == 0 {
		return Rect{}
	}
	first := r.Bricks[0].Body()
	last := r.Bricks[len(r.Bricks)-1].Body()
	return Rect{X: first.X, Y: first.Y, W: last.Right() - first.X, H: first.H}
}
