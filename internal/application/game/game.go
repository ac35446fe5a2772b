// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/skyjump/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current   scene.Scene
	screenW   int
	screenH   int
	resizable bool
	dt        float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		g.current.Resize(g.screenW, g.screenH)
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// A resizable game follows the window and forwards size changes to the
// current scene; otherwise the screen size is fixed.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.resizable || outsideWidth <= 0 || outsideHeight <= 0 {
		return g.screenW, g.screenH
	}
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		g.current.Resize(g.screenW, g.screenH)
	}
	return g.screenW, g.screenH
}

// SetResizable makes Layout follow the window size.
func (g *Game) SetResizable(resizable bool) {
	g.resizable = resizable
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Scene returns the current scene.
func (g *Game) Scene() scene.Scene {
	return g.current
}
