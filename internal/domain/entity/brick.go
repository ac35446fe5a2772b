package entity

// BrickSize is the edge length of a square brick in world pixels.
const BrickSize = 64.0

// Brick is a static square collider. Its body does not follow position
// changes until RefreshBody is called, like a static physics body.
type Brick struct {
	X, Y float64 // centre
	body Rect
}

// NewBrick creates a brick centred on (x, y) with a refreshed body.
func NewBrick(x, y float64) *Brick {
	b := &Brick{X: x, Y: y}
	b.RefreshBody()
	return b
}

// SetPosition moves the brick without touching its body.
func (b *Brick) SetPosition(x, y float64) {
	b.X, b.Y = x, y
}

// RefreshBody re-synchronises the collision body with the position.
func (b *Brick) RefreshBody() {
	b.body = RectFromCenter(b.X, b.Y, BrickSize, BrickSize)
}

// Body returns the collision rect as of the last refresh.
func (b *Brick) Body() Rect {
	return b.body
}

// BrickGroup is an unordered set of static bricks such as the ground.
type BrickGroup struct {
	Bricks []*Brick
}

// Create adds a brick centred on (x, y).
func (g *BrickGroup) Create(x, y float64) *Brick {
	b := NewBrick(x, y)
	g.Bricks = append(g.Bricks, b)
	return b
}

// Clear removes every brick.
func (g *BrickGroup) Clear() {
	g.Bricks = g.Bricks[:0]
}

// Len returns the number of bricks.
func (g *BrickGroup) Len() int {
	return len(g.Bricks)
}
