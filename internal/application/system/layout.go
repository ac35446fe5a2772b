package system

import (
	"math"

	"github.com/younwookim/skyjump/internal/domain/entity"
	"github.com/younwookim/skyjump/internal/domain/mathx"
	"github.com/younwookim/skyjump/internal/infrastructure/config"
)

const (
	// skyLevels is the sky's height in viewport heights.
	skyLevels = 6.0
	// starsFadeStart is the camera altitude, in viewport heights, where
	// stars begin to show.
	starsFadeStart = 3.75
	// wideViewport switches clouds to the sparser wide-screen layout.
	wideViewport = 992.0
	cloudAspect  = 1.406
	groundRows   = 2
)

// Sprite is a centre-anchored rectangle placed by the layout. ScrollFactor
// is its vertical parallax: 1 moves with the world, 0 stays on screen.
type Sprite struct {
	X, Y         float64
	W, H         float64
	ScrollFactor float64
	Alpha        float64
}

// Rect returns the sprite's area in its own coordinate space.
func (s Sprite) Rect() entity.Rect {
	return entity.RectFromCenter(s.X, s.Y, s.W, s.H)
}

// LayoutOptions are the collaborators a resize is forwarded to.
// Any of them may be nil.
type LayoutOptions struct {
	Camera    Resizer
	Physics   BoundsSetter
	Platforms PlatformLayout
	Player    Resizer
}

// LayoutManager recomputes the whole scene geometry for a viewport size.
type LayoutManager struct {
	config config.WorldConfig
	opts   LayoutOptions
	ground *entity.BrickGroup

	Sky    Sprite
	Stars  Sprite
	Clouds []Sprite

	width        float64
	height       float64
	visibleStars float64
}

// NewLayoutManager creates a layout for the configured clouds. ground may
// be nil when the scene has none yet.
func NewLayoutManager(cfg config.WorldConfig, ground *entity.BrickGroup, opts LayoutOptions) *LayoutManager {
	l := &LayoutManager{
		config: cfg,
		opts:   opts,
		ground: ground,
		Sky:    Sprite{ScrollFactor: 1, Alpha: 1},
		Stars:  Sprite{ScrollFactor: 0},
		Clouds: make([]Sprite, len(cfg.Clouds)),
	}
	for i, c := range cfg.Clouds {
		l.Clouds[i] = Sprite{ScrollFactor: c.Scroll(), Alpha: 1}
	}
	return l
}

// Size returns the last laid out viewport size.
func (l *LayoutManager) Size() (width, height float64) { return l.width, l.height }

// Ground returns the ground bricks, possibly nil.
func (l *LayoutManager) Ground() *entity.BrickGroup { return l.ground }

// Resize lays everything out for a width×height viewport. Calling it again
// with the same size changes nothing.
func (l *LayoutManager) Resize(width, height float64) {
	l.visibleStars = height * starsFadeStart

	if l.opts.Camera != nil {
		l.opts.Camera.Resize(width, height)
	}
	if l.opts.Platforms != nil {
		l.opts.Platforms.RecordResize(width, height)
	}

	l.width, l.height = width, height
	if l.opts.Physics != nil {
		l.opts.Physics.SetBounds(width, height)
	}

	l.setSky()
	l.setClouds()
	l.setGround()

	if l.opts.Player != nil {
		l.opts.Player.Resize(width, height)
	}
}

// StarsAlpha fades the stars in as the camera climbs from 3.75 viewport
// heights to the top of the sky. The result is also stored on Stars.
func (l *LayoutManager) StarsAlpha(cameraY float64) float64 {
	area := l.Sky.H - l.visibleStars
	if area <= 0 {
		l.Stars.Alpha = 0
		return 0
	}
	y := mathx.Clamp(cameraY, l.visibleStars, l.Sky.H)
	l.Stars.Alpha = (y - l.visibleStars) / area
	return l.Stars.Alpha
}

func (l *LayoutManager) setSky() {
	cx := l.width / 2

	l.Sky.W = l.width
	l.Sky.H = l.height * skyLevels
	l.Sky.X = cx
	if levels := l.config.Levels; levels > 0 {
		l.Sky.Y = l.Sky.H / -(levels / 2)
	} else {
		l.Sky.Y = l.Sky.H / -2
	}

	l.Stars.W = l.height / 9 * 16
	l.Stars.H = l.height
	l.Stars.X = cx
	l.Stars.Y = l.height / 2
}

func (l *LayoutManager) setClouds() {
	cx, cy := l.width/2, l.height/2

	div, density := 5.0, 1.0
	if l.width >= wideViewport {
		div, density = 7.5, 2.5
	}
	w := l.width / div
	h := w / cloudAspect

	for i, c := range l.config.Clouds {
		if i >= len(l.Clouds) {
			break
		}
		l.Clouds[i].W = w
		l.Clouds[i].H = h
		l.Clouds[i].X = cx + cx*c.X()
		l.Clouds[i].Y = cy + cy*c.Y()*density
	}
}

func (l *LayoutManager) setGround() {
	if l.ground == nil {
		return
	}
	l.ground.Clear()

	half := entity.BrickSize / 2
	cols := int(math.Ceil(l.width / entity.BrickSize))
	for r := 0; r < groundRows; r++ {
		for c := 0; c < cols; c++ {
			l.ground.Create(float64(c)*entity.BrickSize+half, l.height-(float64(r)*entity.BrickSize+half))
		}
	}
}
