// Package viewport implements the transform controller behind a pinch-to-zoom image viewer.
//
// A Controller turns cumulative pinch and pan deltas into a bounded transform
// (scale, offsetX, offsetY). The transform is applied translate-then-scale about the
// content's natural centre, which coincides with the viewport centre.
package viewport

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a Config cannot describe a usable viewport.
var ErrInvalidConfig = errors.New("invalid viewport config")

// Config holds the fixed geometry and limits of a viewport.
type Config struct {
	ViewportWidth  float64 `json:"viewport_width"`  // Visible window width
	ViewportHeight float64 `json:"viewport_height"` // Visible window height
	ContentWidth   float64 `json:"content_width"`   // Natural content width at scale 1
	ContentHeight  float64 `json:"content_height"`  // Natural content height at scale 1

	MinScale float64 `json:"min_scale"` // Lower zoom limit (0 < MinScale <= 1)
	MaxScale float64 `json:"max_scale"` // Upper zoom limit (>= 1)

	// ResetDuration is how long the animated reset takes.
	ResetDuration time.Duration `json:"reset_duration"`
}

// Default limits.
const (
	DefaultMinScale      = 0.5
	DefaultMaxScale      = 4.0
	DefaultResetDuration = 300 * time.Millisecond

	// Fraction of the viewport occupied by the content box at scale 1.
	DefaultContentWidthRatio  = 0.8
	DefaultContentHeightRatio = 0.5
)

// DefaultConfig returns a Config for the given viewport with the content box sized
// to 80% of its width and 50% of its height.
func DefaultConfig(viewportWidth, viewportHeight float64) Config {
	return Config{
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		ContentWidth:   viewportWidth * DefaultContentWidthRatio,
		ContentHeight:  viewportHeight * DefaultContentHeightRatio,
		MinScale:       DefaultMinScale,
		MaxScale:       DefaultMaxScale,
		ResetDuration:  DefaultResetDuration,
	}
}

// Validate reports whether the config satisfies 0 < MinScale <= 1 <= MaxScale and has
// positive dimensions.
func (c Config) Validate() error {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("%w: viewport %gx%g", ErrInvalidConfig, c.ViewportWidth, c.ViewportHeight)
	}
	if c.ContentWidth <= 0 || c.ContentHeight <= 0 {
		return fmt.Errorf("%w: content %gx%g", ErrInvalidConfig, c.ContentWidth, c.ContentHeight)
	}
	if c.MinScale <= 0 || c.MinScale > 1 {
		return fmt.Errorf("%w: min scale %g not in (0, 1]", ErrInvalidConfig, c.MinScale)
	}
	if c.MaxScale < 1 {
		return fmt.Errorf("%w: max scale %g below 1", ErrInvalidConfig, c.MaxScale)
	}
	if c.ResetDuration < 0 {
		return fmt.Errorf("%w: negative reset duration %s", ErrInvalidConfig, c.ResetDuration)
	}
	return nil
}

// Center returns the viewport centre in viewport coordinates.
func (c Config) Center() (x, y float64) {
	return c.ViewportWidth / 2, c.ViewportHeight / 2
}
