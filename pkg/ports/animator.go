package ports

import "time"

// Animator starts timed transitions of a single value. It plays the role of the
// host's interpolation engine: callers only request a transition and then sample it.
type Animator interface {
	// Timing starts a transition from `from` to `to` lasting duration.
	// A zero duration yields a transition that is already complete.
	Timing(from, to float64, duration time.Duration) Transition
}

// Transition is an in-flight timed transition.
// Implementations are not safe for concurrent use; the owner serializes access.
type Transition interface {
	// Advance moves the transition forward by dt and returns the current value
	// and whether the target has been reached.
	Advance(dt time.Duration) (value float64, done bool)
}
