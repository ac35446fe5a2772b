package system

import (
	"math"
	"time"

	"github.com/setanarut/kamera/v2"

	"github.com/younwookim/skyjump/internal/domain/tween"
	"github.com/younwookim/skyjump/internal/infrastructure/config"
)

// FollowTarget is something the camera can keep centred.
type FollowTarget interface {
	CenterY() float64
}

// CameraManager drives a kamera camera through altitude and zoom.
//
// Y is an altitude: it grows as the camera moves up the tower, and the
// viewport's vertical scroll offset is -Y. The kamera camera looks at
// (width/2, height/2-Y). Zoom is applied around the viewport centre.
type CameraManager struct {
	config   config.CameraConfig
	animator Animator
	cam      *kamera.Camera

	width  float64
	height float64

	target FollowTarget

	scrollTween *tween.Tween
	zoomTween   *tween.Tween
}

// NewCameraManager creates a camera at altitude 0 with zoom 1.
func NewCameraManager(cfg config.CameraConfig, animator Animator) *CameraManager {
	cam := kamera.NewCamera(0, 0, 0, 0)
	cam.SmoothType = kamera.None
	cam.ZoomFactor = 1
	return &CameraManager{
		config:   cfg,
		animator: animator,
		cam:      cam,
	}
}

// Y returns the camera altitude.
func (c *CameraManager) Y() float64 {
	_, cy := c.cam.Center()
	return c.height/2 - cy
}

// SetY places the camera directly. Only used while building the scene;
// afterwards the camera moves through ScrollTo and Follow.
func (c *CameraManager) SetY(y float64) { c.place(y) }

// place jumps to altitude y without smoothing.
func (c *CameraManager) place(y float64) {
	c.cam.SmoothType = kamera.None
	c.cam.LookAt(c.width/2, c.height/2-y)
}

// Zoom returns the current zoom factor.
func (c *CameraManager) Zoom() float64 { return c.cam.ZoomFactor }

// ScrollY returns the viewport's vertical scroll offset.
func (c *CameraManager) ScrollY() float64 { return -c.Y() }

// Size returns the viewport size.
func (c *CameraManager) Size() (width, height float64) { return c.width, c.height }

// Following reports whether a follow target is set.
func (c *CameraManager) Following() bool { return c.target != nil }

// Resize updates the viewport size and keeps the altitude.
func (c *CameraManager) Resize(width, height float64) {
	y := c.Y()
	c.width, c.height = width, height
	c.cam.SetSize(width, height)
	c.place(y)
}

// ScrollTo tweens the altitude to targetY, replacing any scroll in flight.
// onComplete runs once when the scroll finishes; it does not run if the
// scroll is replaced first.
func (c *CameraManager) ScrollTo(targetY float64, onComplete func()) {
	c.scrollTween.Stop()
	c.scrollTween = c.animator.Add(tween.Config{
		From:       c.Y(),
		To:         targetY,
		Duration:   c.config.ScrollDuration,
		Ease:       easeOrLinear("Sine.InOut"),
		OnUpdate:   c.place,
		OnComplete: onComplete,
	})
}

// Follow keeps target vertically centred from the next Update on.
func (c *CameraManager) Follow(target FollowTarget) {
	c.scrollTween.Stop()
	c.target = target
}

// StopFollow releases the follow target; the camera stays where it is.
func (c *CameraManager) StopFollow() {
	c.target = nil
}

// FocusAltitude returns the altitude that centres world y in the viewport.
func (c *CameraManager) FocusAltitude(worldY float64) float64 {
	return c.height/2 - worldY
}

// Update moves the camera toward its follow target with kamera's lerp smoothing.
func (c *CameraManager) Update() {
	if c.target == nil {
		return
	}
	lerp := c.config.FollowLerp
	if lerp <= 0 || lerp > 1 {
		lerp = 1
	}
	c.cam.SmoothType = kamera.Lerp
	c.cam.SmoothOptions.LerpSpeedX = lerp
	c.cam.SmoothOptions.LerpSpeedY = lerp
	c.cam.LookAt(c.width/2, c.target.CenterY())
}

// ZoomIn tweens the zoom in proportion to score, capped at ZoomScoreCap.
func (c *CameraManager) ZoomIn(score int) {
	s := score
	if c.config.ZoomScoreCap > 0 && s > c.config.ZoomScoreCap {
		s = c.config.ZoomScoreCap
	}
	c.zoomTo(1+float64(s)*c.config.ZoomPerScore, c.config.ZoomDuration, "Quad.Out")
}

// ZoomOut pulls the camera back so a tall tower fits on screen. Higher
// intensity zooms further out, never below MinZoom. The follow target is
// released so the fall plays out below a still camera.
func (c *CameraManager) ZoomOut(intensity float64) {
	c.StopFollow()
	target := 1.0
	if c.config.ZoomOutScale > 0 {
		target = 1 / (1 + math.Max(intensity, 0)/c.config.ZoomOutScale)
	}
	target = math.Max(target, c.config.MinZoom)
	c.zoomTo(target, c.config.ZoomOutDuration, "Cubic.Out")
}

func (c *CameraManager) zoomTo(target float64, d time.Duration, ease string) {
	c.zoomTween.Stop()
	c.zoomTween = c.animator.Add(tween.Config{
		From:     c.cam.ZoomFactor,
		To:       target,
		Duration: d,
		Ease:     easeOrLinear(ease),
		OnUpdate: func(v float64) { c.cam.ZoomFactor = v },
	})
}

// WorldToScreen converts world coordinates to screen coordinates for an
// object with the given vertical scroll factor (1 scrolls with the world,
// 0 is pinned to the viewport).
func (c *CameraManager) WorldToScreen(x, y, scrollFactor float64) (sx, sy float64) {
	lookX, lookY := c.cam.Center()
	z := c.cam.ZoomFactor
	hw, hh := c.width/2, c.height/2
	sx = (x-lookX)*z + hw
	sy = (y-(lookY-hh)*scrollFactor-hh)*z + hh
	return sx, sy
}

func easeOrLinear(name string) tween.Easing {
	if fn, ok := tween.ByName(name); ok {
		return fn
	}
	return tween.Linear
}
