// Package tween provides named easing curves and time-bound value animations.
//
// A Tween interpolates a single float between two values over a duration,
// optionally after a start delay. A Manager owns the active tweens and
// advances them once per frame; it is the game's Animator.
package tween

import (
	"math/rand"

	"github.com/tanema/gween/ease"
)

// Easing is a gween easing function: t elapsed, b begin, c change, d duration.
type Easing = ease.TweenFunc

// Curve is a named easing function.
type Curve struct {
	Name string
	Fn   Easing
}

// Linear is the identity curve.
var Linear Easing = ease.Linear

// curves is the fixed set platform motion picks from.
var curves = []Curve{
	{"Linear", ease.Linear},
	{"Quad.In", ease.InQuad},
	{"Quad.Out", ease.OutQuad},
	{"Quad.InOut", ease.InOutQuad},
	{"Cubic.Out", ease.OutCubic},
	{"Quart.InOut", ease.InOutQuart},
	{"Sine.InOut", ease.InOutSine},
	{"Expo.Out", ease.OutExpo},
	{"Circ.Out", ease.OutCirc},
	{"Back.Out", ease.OutBack},
	{"Bounce.Out", ease.OutBounce},
}

// Curves returns a copy of the built-in curve set.
func Curves() []Curve {
	out := make([]Curve, len(curves))
	copy(out, curves)
	return out
}

// ByName returns the curve registered under name.
func ByName(name string) (Easing, bool) {
	for _, c := range curves {
		if c.Name == name {
			return c.Fn, true
		}
	}
	return nil, false
}

// RandomEasing picks a curve uniformly from the built-in set.
func RandomEasing(rng *rand.Rand) Curve {
	return curves[rng.Intn(len(curves))]
}

// Progress evaluates fn at linear progress p in [0,1].
func Progress(fn Easing, p float64) float64 {
	return float64(fn(float32(p), 0, 1, 1))
}
