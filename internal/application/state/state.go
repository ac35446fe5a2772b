package state

// GameState represents the current state of the game
type GameState int

const (
	// StateSettling is the opening camera move before the first run spawns.
	StateSettling GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateSettling:
		return "Settling"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Running reports whether gameplay advances in this state.
func (s GameState) Running() bool {
	return s == StateSettling || s == StatePlaying
}
