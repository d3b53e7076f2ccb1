package tween

import (
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestEasings_Endpoints(t *testing.T) {
	tests := []struct {
		name   string
		easing Easing
	}{
		{"linear", Linear},
		{"quad-in-out", QuadInOut},
		{"cubic-out", CubicOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.easing(0); got != 0 {
				t.Errorf("easing(0): expected 0, got %f", got)
			}
			if got := tt.easing(1); got != 1 {
				t.Errorf("easing(1): expected 1, got %f", got)
			}
			prev := 0.0
			for i := 1; i <= 100; i++ {
				v := tt.easing(float64(i) / 100)
				if v < prev {
					t.Fatalf("easing not monotonic at %d: %f < %f", i, v, prev)
				}
				prev = v
			}
		})
	}
}

func TestQuadInOut_Midpoint(t *testing.T) {
	if got := QuadInOut(0.5); !scalar.EqualWithinAbs(got, 0.5, 1e-12) {
		t.Errorf("expected 0.5, got %f", got)
	}
	if got := QuadInOut(0.25); !scalar.EqualWithinAbs(got, 0.125, 1e-12) {
		t.Errorf("expected 0.125, got %f", got)
	}
}

func TestParseEasing(t *testing.T) {
	if got := ParseEasing("linear")(0.3); got != 0.3 {
		t.Errorf("linear: expected 0.3, got %f", got)
	}
	if got := ParseEasing("unknown")(0.25); !scalar.EqualWithinAbs(got, 0.125, 1e-12) {
		t.Errorf("default should be quad in-out, got %f", got)
	}
}

func TestTransition_Advance(t *testing.T) {
	a := New(Linear)
	tr := a.Timing(4, 1, 300*time.Millisecond)

	v, done := tr.Advance(100 * time.Millisecond)
	if done {
		t.Fatal("expected transition to be in flight")
	}
	if !scalar.EqualWithinAbs(v, 3, 1e-9) {
		t.Errorf("expected 3 after a third, got %f", v)
	}

	v, done = tr.Advance(100 * time.Millisecond)
	if done || !scalar.EqualWithinAbs(v, 2, 1e-9) {
		t.Errorf("expected 2 in flight, got %f done=%v", v, done)
	}

	v, done = tr.Advance(500 * time.Millisecond)
	if !done {
		t.Error("expected transition to be complete")
	}
	if v != 1 {
		t.Errorf("expected exact target 1, got %f", v)
	}
}

func TestTransition_ZeroDuration(t *testing.T) {
	tr := New(nil).Timing(10, 0, 0)
	v, done := tr.Advance(0)
	if !done || v != 0 {
		t.Errorf("expected immediate completion at 0, got %f done=%v", v, done)
	}
}

func TestTransition_Progress(t *testing.T) {
	tr := New(nil).Timing(0, 1, time.Second).(*Transition)
	if tr.Progress() != 0 {
		t.Errorf("expected 0 progress, got %f", tr.Progress())
	}
	tr.Advance(250 * time.Millisecond)
	if !scalar.EqualWithinAbs(tr.Progress(), 0.25, 1e-12) {
		t.Errorf("expected 0.25 progress, got %f", tr.Progress())
	}
	tr.Advance(-time.Second)
	if !scalar.EqualWithinAbs(tr.Progress(), 0.25, 1e-12) {
		t.Errorf("negative dt should be ignored, got %f", tr.Progress())
	}
}
