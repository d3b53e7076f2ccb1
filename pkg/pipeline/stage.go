// Package pipeline provides the stage infrastructure for gesture replays.
package pipeline

import (
	"context"
	"time"
)

// Stage is one step of a replay run: layout, replay, render or encode.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc lets a plain function serve as a Stage.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}

// Timed wraps s so that every Execute reports its wall time and outcome to
// observe, including failed and cancelled runs.
func Timed[In, Out any](s Stage[In, Out], observe func(elapsed time.Duration, err error)) Stage[In, Out] {
	return StageFunc[In, Out](func(ctx context.Context, input In) (Out, error) {
		start := time.Now()
		out, err := s.Execute(ctx, input)
		observe(time.Since(start), err)
		return out, err
	})
}
