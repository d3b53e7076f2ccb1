// Package layout implements the layout calculation stage.
package layout

import (
	"context"
	"fmt"
	"time"

	"github.com/user/pinchview/pkg/pipeline"
	"github.com/user/pinchview/pkg/viewport"
)

// Stage calculates the viewer geometry.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new layout stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute calculates the layout based on the input parameters.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	return ComputeLayout(input)
}

// ComputeLayout performs the layout calculation.
// This is exposed as a standalone function for testing and reuse.
//
// The content box is centred in the viewport, so its natural centre and the
// viewport centre coincide, which the controller's pinch anchoring relies on.
func ComputeLayout(input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	vw := float64(input.ViewportWidth)
	vh := float64(input.ViewportHeight)
	cw := vw * input.ContentWidthRatio
	ch := vh * input.ContentHeightRatio

	cfg := viewport.Config{
		ViewportWidth:  vw,
		ViewportHeight: vh,
		ContentWidth:   cw,
		ContentHeight:  ch,
		MinScale:       input.MinScale,
		MaxScale:       input.MaxScale,
		ResetDuration:  time.Duration(input.ResetDurationMs) * time.Millisecond,
	}
	if err := cfg.Validate(); err != nil {
		return pipeline.LayoutResult{}, fmt.Errorf("layout: %w", err)
	}

	hud := pipeline.Rectangle{X: 0, Y: vh, Width: vw}
	if input.HUDHeight > 0 {
		h := float64(input.HUDHeight)
		hud = pipeline.Rectangle{X: 0, Y: vh - h, Width: vw, Height: h}
	}

	return pipeline.LayoutResult{
		Viewport: pipeline.Dimension{Width: input.ViewportWidth, Height: input.ViewportHeight},
		ContentBox: pipeline.Rectangle{
			X:      (vw - cw) / 2,
			Y:      (vh - ch) / 2,
			Width:  cw,
			Height: ch,
		},
		HUDArea:    hud,
		Controller: cfg,
	}, nil
}
