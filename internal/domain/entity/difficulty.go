package entity

import "time"

// Platform timing bounds.
const (
	InitialMinDuration = 1500 * time.Millisecond
	MaxDuration        = 2500 * time.Millisecond
	MaxDelay           = 1000 * time.Millisecond
)

// BricksForScore returns how many bricks the next run has at score s.
// Runs shrink as the score climbs: 3 up to 9, 2 up to 24, then 1.
func BricksForScore(s int) int {
	switch {
	case s > 24:
		return 1
	case s > 9:
		return 2
	default:
		return 3
	}
}

// MinDurationForScore returns the shortest slide duration allowed at score s.
func MinDurationForScore(s int) time.Duration {
	switch {
	case s > 29:
		return 1000 * time.Millisecond
	case s > 14:
		return 1500 * time.Millisecond
	default:
		return 2000 * time.Millisecond
	}
}
