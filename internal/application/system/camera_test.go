package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyjump/internal/domain/tween"
	"github.com/younwookim/skyjump/internal/infrastructure/config"
)

type fixedTarget float64

func (t fixedTarget) CenterY() float64 { return float64(t) }

func createTestCamera() (*CameraManager, *tween.Manager) {
	mgr := tween.NewManager()
	cam := NewCameraManager(config.Default().Camera, mgr)
	cam.Resize(480, 800)
	return cam, mgr
}

func TestNewCameraManager(t *testing.T) {
	cam, _ := createTestCamera()
	assert.Equal(t, 0.0, cam.Y())
	assert.Equal(t, 1.0, cam.Zoom())
	assert.False(t, cam.Following())

	w, h := cam.Size()
	assert.Equal(t, 480.0, w)
	assert.Equal(t, 800.0, h)
}

func TestCameraManager_ScrollTo(t *testing.T) {
	t.Run("reaches target and completes once", func(t *testing.T) {
		cam, mgr := createTestCamera()
		cam.SetY(4000)
		done := 0
		cam.ScrollTo(-218, func() { done++ })

		mgr.Update(1)
		assert.Less(t, cam.Y(), 4000.0)
		assert.Greater(t, cam.Y(), -218.0)
		assert.Equal(t, 0, done)

		mgr.Update(2)
		assert.Equal(t, -218.0, cam.Y())
		assert.Equal(t, 218.0, cam.ScrollY())
		assert.Equal(t, 1, done)

		mgr.Update(1)
		assert.Equal(t, 1, done)
	})

	t.Run("replaced scroll never completes", func(t *testing.T) {
		cam, mgr := createTestCamera()
		first, second := 0, 0
		cam.ScrollTo(100, func() { first++ })
		mgr.Update(0.5)
		cam.ScrollTo(200, func() { second++ })
		mgr.Update(5)

		assert.Equal(t, 0, first)
		assert.Equal(t, 1, second)
		assert.Equal(t, 200.0, cam.Y())
	})
}

func TestCameraManager_Follow(t *testing.T) {
	cam, mgr := createTestCamera()
	cam.SetY(1000)
	cam.ScrollTo(5000, nil)
	mgr.Update(0.1)
	scrolled := cam.Y()

	cam.Follow(fixedTarget(618))
	require.True(t, cam.Following())
	assert.Equal(t, -218.0, cam.FocusAltitude(618))

	mgr.Update(1)
	assert.Equal(t, scrolled, cam.Y(), "follow cancels the scroll")

	cam.Update()
	stepped := cam.Y()
	assert.Less(t, stepped, scrolled, "follow eases toward the target")
	assert.Greater(t, stepped, -218.0, "follow does not snap")

	for i := 0; i < 500; i++ {
		cam.Update()
	}
	assert.InDelta(t, -218.0, cam.Y(), 1e-6)
}

func TestCameraManager_Zoom(t *testing.T) {
	tests := []struct {
		name  string
		apply func(c *CameraManager)
		want  float64
	}{
		{"zoom in by score", func(c *CameraManager) { c.ZoomIn(10) }, 1.04},
		{"zoom in is capped", func(c *CameraManager) { c.ZoomIn(500) }, 1.2},
		{"zoom out at score zero", func(c *CameraManager) { c.ZoomOut(0) }, 1},
		{"zoom out by intensity", func(c *CameraManager) { c.ZoomOut(1400) }, 1 / 2.4},
		{"zoom out floor", func(c *CameraManager) { c.ZoomOut(1e6) }, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam, mgr := createTestCamera()
			tt.apply(cam)
			mgr.Update(2)
			assert.InDelta(t, tt.want, cam.Zoom(), 1e-9)
			x, _ := cam.WorldToScreen(0, 400, 1)
			assert.InDelta(t, 240-240*tt.want, x, 1e-9)
		})
	}
}

func TestCameraManager_ZoomOutReplacesZoomIn(t *testing.T) {
	cam, mgr := createTestCamera()
	cam.Follow(fixedTarget(0))

	cam.ZoomIn(10)
	mgr.Update(0.1)
	cam.ZoomOut(1000)
	mgr.Update(2)

	assert.InDelta(t, 0.5, cam.Zoom(), 1e-9)
	assert.False(t, cam.Following())
}

func TestCameraManager_WorldToScreen(t *testing.T) {
	cam, mgr := createTestCamera()

	x, y := cam.WorldToScreen(100, 300, 1)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 300.0, y)

	cam.SetY(100)
	_, y = cam.WorldToScreen(100, 300, 1)
	assert.Equal(t, 400.0, y)
	_, y = cam.WorldToScreen(100, 300, 0)
	assert.Equal(t, 300.0, y, "pinned objects ignore scroll")

	cam.SetY(0)
	cam.ZoomOut(1000)
	mgr.Update(2)
	x, y = cam.WorldToScreen(240, 400, 1)
	assert.Equal(t, 240.0, x, "centre is fixed under zoom")
	assert.Equal(t, 400.0, y)
	x, _ = cam.WorldToScreen(0, 400, 1)
	assert.InDelta(t, 120.0, x, 1e-9)
}

func TestCameraManager_ResizeKeepsAltitude(t *testing.T) {
	cam, _ := createTestCamera()
	cam.SetY(350)

	cam.Resize(720, 1000)
	assert.InDelta(t, 350.0, cam.Y(), 1e-9)
	assert.InDelta(t, -150.0, cam.FocusAltitude(650), 1e-9)

	x, y := cam.WorldToScreen(360, 150, 1)
	assert.InDelta(t, 360.0, x, 1e-9)
	assert.InDelta(t, 500.0, y, 1e-9)
}
