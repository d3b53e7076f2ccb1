package viewport

import "math"

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// ComputeBounds returns the largest translation magnitude allowed on each axis at
// scale s.
//
// When the scaled content overflows the viewport this is half the overflow. When it
// is smaller, the same formula yields half the gap, so a small image can be nudged
// around inside the viewport instead of being pinned to the centre.
func ComputeBounds(cfg Config, s float64) (boundX, boundY float64) {
	scaledW := cfg.ContentWidth * s
	scaledH := cfg.ContentHeight * s
	return math.Abs(scaledW-cfg.ViewportWidth) / 2, math.Abs(scaledH-cfg.ViewportHeight) / 2
}
