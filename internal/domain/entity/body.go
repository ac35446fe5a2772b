package entity

import "math"

// PositionScale is the internal position scale factor.
// 1 pixel = 100 internal units. This provides 0.01 pixel precision.
const PositionScale = 100

// Body represents the physical body of a moving entity.
// Position is stored at 100x scale for sub-pixel precision without floats.
// Velocity is stored as float in 100x scale units per second.
type Body struct {
	X, Y   int     // 100x scaled top-left position
	VX, VY float64 // 100x scaled velocity (units per second)

	OnGround    bool
	WasOnGround bool
}

// PixelX returns the pixel X position (internal X / PositionScale)
func (b *Body) PixelX() int {
	return b.X / PositionScale
}

// PixelY returns the pixel Y position (internal Y / PositionScale)
func (b *Body) PixelY() int {
	return b.Y / PositionScale
}

// PosX returns the X position in fractional pixels.
func (b *Body) PosX() float64 {
	return float64(b.X) / PositionScale
}

// PosY returns the Y position in fractional pixels.
func (b *Body) PosY() float64 {
	return float64(b.Y) / PositionScale
}

// SetPixelPos sets the position from pixel coordinates (converts to 100x scale)
func (b *Body) SetPixelPos(x, y int) {
	b.X = x * PositionScale
	b.Y = y * PositionScale
}

// SetPos sets the position from fractional pixels, rounding to the internal grid.
func (b *Body) SetPos(x, y float64) {
	b.X = int(math.Round(x * PositionScale))
	b.Y = int(math.Round(y * PositionScale))
}

// ApplyVelocity returns the integer units to move this step.
// With 100x scale, no remainder accumulation is needed as precision is built-in.
func (b *Body) ApplyVelocity(dt float64) (dx, dy int) {
	dx = int(b.VX * dt)
	dy = int(b.VY * dt)
	return dx, dy
}

// HitboxRect is a collision rectangle relative to a body's top-left corner.
type HitboxRect struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// WorldRect returns the hitbox in world pixels for the given body.
func (hr HitboxRect) WorldRect(b *Body) Rect {
	return Rect{
		X: b.PosX() + float64(hr.OffsetX),
		Y: b.PosY() + float64(hr.OffsetY),
		W: float64(hr.Width),
		H: float64(hr.Height),
	}
}
