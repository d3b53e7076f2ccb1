package pipeline

import (
	"image"
	"image/color"
	"math"

	"github.com/user/pinchview/pkg/script"
	"github.com/user/pinchview/pkg/viewport"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rectangle represents a rectangular area in viewport coordinates.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contain returns the largest rectangle with the aspect ratio of a w x h image
// that fits inside r, centred in it.
func (r Rectangle) Contain(w, h int) Rectangle {
	if w <= 0 || h <= 0 {
		return r
	}
	s := math.Min(r.Width/float64(w), r.Height/float64(h))
	cw := float64(w) * s
	ch := float64(h) * s
	return Rectangle{
		X:      r.X + (r.Width-cw)/2,
		Y:      r.Y + (r.Height-ch)/2,
		Width:  cw,
		Height: ch,
	}
}

// =============================================================================
// Layout Stage Types
// =============================================================================

// LayoutInput contains parameters for layout calculation.
type LayoutInput struct {
	ViewportWidth      int     // Viewer width in pixels (default: 400)
	ViewportHeight     int     // Viewer height in pixels (default: 800)
	ContentWidthRatio  float64 // Content box width as a fraction of the viewport (default: 0.8)
	ContentHeightRatio float64 // Content box height as a fraction of the viewport (default: 0.5)
	MinScale           float64 // Lower zoom limit (default: 0.5)
	MaxScale           float64 // Upper zoom limit (default: 4)
	ResetDurationMs    int     // Reset animation length (default: 300)
	HUDHeight          int     // Height of the status strip at the bottom (default: 24)
}

// DefaultLayoutInput returns LayoutInput with default values.
func DefaultLayoutInput() LayoutInput {
	return LayoutInput{
		ViewportWidth:      400,
		ViewportHeight:     800,
		ContentWidthRatio:  viewport.DefaultContentWidthRatio,
		ContentHeightRatio: viewport.DefaultContentHeightRatio,
		MinScale:           viewport.DefaultMinScale,
		MaxScale:           viewport.DefaultMaxScale,
		ResetDurationMs:    int(viewport.DefaultResetDuration.Milliseconds()),
		HUDHeight:          24,
	}
}

// LayoutResult contains the calculated viewer geometry.
type LayoutResult struct {
	// Viewport is the canvas size of every rendered frame.
	Viewport Dimension `json:"viewport"`

	// ContentBox is the natural-size content area at the identity transform.
	ContentBox Rectangle `json:"content_box"`

	// HUDArea is the status strip, zero height when disabled.
	HUDArea Rectangle `json:"hud_area"`

	// Controller is the configuration for the viewport controller.
	Controller viewport.Config `json:"controller"`
}

// =============================================================================
// Replay Stage Types
// =============================================================================

// ReplayInput contains the script to replay and the geometry to replay it in.
type ReplayInput struct {
	Script script.Script
	Layout LayoutResult
	FPS    float64 // Used when the script does not set its own
}

// ReplayResult contains the sampled viewer states.
type ReplayResult struct {
	Frames []FrameState
	Stats  ReplayStats
}

// FrameState is the viewer as it looked at one frame.
type FrameState struct {
	Index       int                `json:"index"`
	TimestampMs int                `json:"timestamp_ms"`
	Transform   viewport.Transform `json:"transform"`
	BoundX      float64            `json:"bound_x"`
	BoundY      float64            `json:"bound_y"`
	Animating   bool               `json:"animating"`
	Pinching    bool               `json:"pinching"`
	Panning     bool               `json:"panning"`
	FocalX      float64            `json:"focal_x,omitempty"` // Last pinch focal point while pinching
	FocalY      float64            `json:"focal_y,omitempty"`
	ContentURI  string             `json:"content_uri,omitempty"`
	Image       image.Image        `json:"-"`
}

// ReplayStats summarises a replay.
type ReplayStats struct {
	Steps          int                `json:"steps"`
	Frames         int                `json:"frames"`
	DurationMs     int                `json:"duration_ms"`
	Picks          int                `json:"picks"`
	CancelledPicks int                `json:"cancelled_picks"`
	Resets         int                `json:"resets"`
	PinchUpdates   int                `json:"pinch_updates"`
	PanUpdates     int                `json:"pan_updates"`
	Rejected       int                `json:"rejected"` // Gesture events dropped as out of order or without content
	ScaleClamps    int                `json:"scale_clamps"`
	OffsetClamps   int                `json:"offset_clamps"`
	Final          viewport.Transform `json:"final"`
}

// =============================================================================
// Render Stage Types
// =============================================================================

// RenderInput contains parameters for frame rendering.
type RenderInput struct {
	Frames     []FrameState
	Layout     LayoutResult
	Theme      RenderTheme
	ShowBounds bool // Outline the content box and mark the pinch focal point
	ShowHUD    bool // Print the transform in the status strip
}

// RenderTheme defines frame styling.
type RenderTheme struct {
	BackgroundColor  color.Color
	PlaceholderColor color.Color // Content box fill before anything is picked
	BoundsColor      color.Color
	FocalColor       color.Color
	HUDBackground    color.Color
	HUDText          color.Color
}

// DefaultRenderTheme returns a default render theme.
func DefaultRenderTheme() RenderTheme {
	return RenderTheme{
		BackgroundColor:  color.RGBA{R: 18, G: 18, B: 18, A: 255},
		PlaceholderColor: color.RGBA{R: 48, G: 48, B: 48, A: 255},
		BoundsColor:      color.RGBA{R: 100, G: 180, B: 255, A: 255},
		FocalColor:       color.RGBA{R: 255, G: 99, B: 71, A: 255},
		HUDBackground:    color.RGBA{R: 0, G: 0, B: 0, A: 160},
		HUDText:          color.White,
	}
}

// RenderResult contains the rendered frames.
type RenderResult struct {
	Frames []RenderedFrame
}

// RenderedFrame represents a fully drawn frame.
type RenderedFrame struct {
	TimestampMs int
	Image       image.Image
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains parameters for animation encoding.
type EncodeInput struct {
	Frames    []RenderedFrame
	OutroMs   int     // Duration to hold the last frame
	FPS       float64 // Frames per second
	Colors    int     // Palette size
	Dither    bool
	LoopCount int
}

// DefaultEncodeInput returns EncodeInput with default values.
func DefaultEncodeInput() EncodeInput {
	return EncodeInput{
		OutroMs: 1000,
		FPS:     30.0,
		Colors:  256,
	}
}

// EncodeResult contains the encoded animation.
type EncodeResult struct {
	Data       []byte
	DurationMs int
	FileSize   int64
}
