package entity

// contactEpsilon absorbs rounding between fixed-point bodies and float bricks.
const contactEpsilon = 0.01

// Rect is an axis-aligned rectangle in world pixels, anchored top-left.
type Rect struct {
	X, Y, W, H float64
}

// RectFromCenter builds a rect of size w×h centred on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the rect's centre point.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// OverlapsX reports a strictly positive horizontal overlap.
func (r Rect) OverlapsX(o Rect) bool {
	return r.Left() < o.Right()-contactEpsilon && o.Left() < r.Right()-contactEpsilon
}

// OverlapsY reports a strictly positive vertical overlap.
func (r Rect) OverlapsY(o Rect) bool {
	return r.Top() < o.Bottom()-contactEpsilon && o.Top() < r.Bottom()-contactEpsilon
}

// Intersects reports whether the two rects share a positive area.
// Rects that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.OverlapsX(o) && r.OverlapsY(o)
}

// RestsOn reports whether r sits on top of o: bottom edge on o's top edge
// within tolerance, with horizontal overlap.
func (r Rect) RestsOn(o Rect, tolerance float64) bool {
	d := r.Bottom() - o.Top()
	return d >= -tolerance && d <= tolerance && r.OverlapsX(o)
}
