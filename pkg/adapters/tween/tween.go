// Package tween provides a timed interpolation engine for ports.Animator.
package tween

import (
	"time"

	"github.com/user/pinchview/pkg/ports"
)

// Easing maps linear progress in [0, 1] to eased progress in [0, 1].
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// QuadInOut accelerates through the first half and decelerates through the second.
// It is the default easing for timed transitions.
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// CubicOut starts fast and settles gently.
func CubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// ParseEasing returns the easing with the given name, defaulting to QuadInOut.
func ParseEasing(name string) Easing {
	switch name {
	case "linear":
		return Linear
	case "cubic-out":
		return CubicOut
	default:
		return QuadInOut
	}
}

// Animator implements ports.Animator with a fixed easing curve.
type Animator struct {
	easing Easing
}

// New creates an Animator. A nil easing selects QuadInOut.
func New(easing Easing) *Animator {
	if easing == nil {
		easing = QuadInOut
	}
	return &Animator{easing: easing}
}

// Timing starts a transition from `from` to `to` lasting duration.
func (a *Animator) Timing(from, to float64, duration time.Duration) ports.Transition {
	return &Transition{
		from:     from,
		to:       to,
		duration: duration,
		easing:   a.easing,
	}
}

// Ensure Animator implements ports.Animator
var _ ports.Animator = (*Animator)(nil)

// Transition is a single eased value moving from one number to another.
type Transition struct {
	from, to float64
	duration time.Duration
	elapsed  time.Duration
	easing   Easing
}

// Advance moves the transition forward by dt.
func (t *Transition) Advance(dt time.Duration) (float64, bool) {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.to, true
	}
	p := t.easing(float64(t.elapsed) / float64(t.duration))
	return t.from + (t.to-t.from)*p, false
}

// Progress returns the linear progress in [0, 1].
func (t *Transition) Progress() float64 {
	if t.duration <= 0 || t.elapsed >= t.duration {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}

// Ensure Transition implements ports.Transition
var _ ports.Transition = (*Transition)(nil)
