package tween

import "time"

// Manager owns active tweens and advances them from the frame loop.
// It is not safe for concurrent use; everything runs on the update goroutine.
type Manager struct {
	tweens []*Tween
	paused bool
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add starts a new tween.
func (m *Manager) Add(cfg Config) *Tween {
	t := New(cfg)
	m.tweens = append(m.tweens, t)
	return t
}

// DelayedCall schedules fn to run once after d. Stop the returned tween to cancel.
func (m *Manager) DelayedCall(d time.Duration, fn func()) *Tween {
	return m.Add(Config{Delay: d, OnComplete: fn})
}

// Update advances every active tween by dt seconds.
// Tweens added during the update start advancing on the next frame.
func (m *Manager) Update(dt float64) {
	if m.paused {
		return
	}

	step := time.Duration(dt * float64(time.Second))
	n := len(m.tweens)
	for i := 0; i < n; i++ {
		m.tweens[i].Advance(step)
	}

	live := m.tweens[:0]
	for _, t := range m.tweens {
		if t.Active() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.tweens); i++ {
		m.tweens[i] = nil
	}
	m.tweens = live
}

// Pause freezes all tweens, including pending delayed calls.
func (m *Manager) Pause() { m.paused = true }

// Resume continues after Pause.
func (m *Manager) Resume() { m.paused = false }

// Paused reports whether the manager is paused.
func (m *Manager) Paused() bool { return m.paused }

// Len returns the number of active tweens.
func (m *Manager) Len() int { return len(m.tweens) }

// StopAll stops every active tween. They are dropped on the next Update.
func (m *Manager) StopAll() {
	for _, t := range m.tweens {
		t.Stop()
	}
}
