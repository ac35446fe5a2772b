package tween

import (
	"time"

	"github.com/tanema/gween"
)

// State is the lifecycle of a tween.
type State int

const (
	StateDelayed State = iota
	StateRunning
	StateDone
	StateStopped
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateDelayed:
		return "Delayed"
	case StateRunning:
		return "Running"
	case StateDone:
		return "Done"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Config describes a tween.
type Config struct {
	From, To float64
	Duration time.Duration
	Delay    time.Duration
	Ease     Easing // nil means Linear

	// OnUpdate receives the eased value on every tick after the delay.
	OnUpdate func(value float64)
	// OnComplete runs exactly once when the tween reaches its end.
	// It does not run for stopped tweens.
	OnComplete func()
}

// Tween animates one value according to its Config.
// The eased progress comes from a gween tween running 0 to 1 over Duration.
type Tween struct {
	cfg    Config
	delay  time.Duration
	motion *gween.Tween
	state  State
	value  float64
}

// New creates a tween in the delayed state. Most callers use Manager.Add.
func New(cfg Config) *Tween {
	if cfg.Ease == nil {
		cfg.Ease = Linear
	}
	return &Tween{
		cfg:    cfg,
		delay:  cfg.Delay,
		motion: gween.New(0, 1, float32(cfg.Duration.Seconds()), cfg.Ease),
		value:  cfg.From,
	}
}

// Advance moves the tween forward by dt and returns whether it is still active.
func (t *Tween) Advance(dt time.Duration) bool {
	if !t.Active() {
		return false
	}

	if t.delay > 0 {
		if dt < t.delay {
			t.delay -= dt
			return true
		}
		dt -= t.delay
		t.delay = 0
	}
	t.state = StateRunning

	done := t.cfg.Duration <= 0
	if done {
		t.value = t.cfg.To
	} else {
		var progress float32
		progress, done = t.motion.Update(float32(dt.Seconds()))
		t.value = t.cfg.From + (t.cfg.To-t.cfg.From)*float64(progress)
		if done {
			t.value = t.cfg.To
		}
	}
	if t.cfg.OnUpdate != nil {
		t.cfg.OnUpdate(t.value)
	}

	if done {
		t.state = StateDone
		if t.cfg.OnComplete != nil {
			t.cfg.OnComplete()
		}
		return false
	}
	return true
}

// Stop halts the tween where it is. OnComplete will not run.
// Stopping a nil or finished tween is a no-op.
func (t *Tween) Stop() {
	if t == nil || !t.Active() {
		return
	}
	t.state = StateStopped
}

// Active reports whether the tween is delayed or running.
func (t *Tween) Active() bool {
	return t != nil && (t.state == StateDelayed || t.state == StateRunning)
}

// State returns the lifecycle state.
func (t *Tween) State() State { return t.state }

// Value returns the last eased value.
func (t *Tween) Value() float64 { return t.value }

// Config returns the configuration the tween was created with.
func (t *Tween) Config() Config { return t.cfg }
