package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds one frame of input.
type InputState struct {
	// PointerDown is a fresh press of the mouse, a touch or space.
	PointerDown bool
	// TogglePause flips between paused and running (ESC or P).
	TogglePause bool
	// Restart asks for a new game once the current one is over (R or Enter).
	Restart bool
}

// InputSystem reads the keyboard, mouse and touch screen and dispatches
// pointer presses to a single handler.
type InputSystem struct {
	onPointerDown func()
	touches       []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	return InputState{
		PointerDown: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			len(s.touches) > 0,
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}

// OnPointerDown binds the pointer handler, replacing any previous one.
func (s *InputSystem) OnPointerDown(fn func()) { s.onPointerDown = fn }

// OffPointerDown unbinds the pointer handler.
func (s *InputSystem) OffPointerDown() { s.onPointerDown = nil }

// Bound reports whether a pointer handler is bound.
func (s *InputSystem) Bound() bool { return s.onPointerDown != nil }

// Dispatch delivers a frame of input to the bound handler.
func (s *InputSystem) Dispatch(input InputState) {
	if input.PointerDown && s.onPointerDown != nil {
		s.onPointerDown()
	}
}
