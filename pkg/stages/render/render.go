// Package render implements the frame rendering stage.
package render

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/image/math/f64"

	"github.com/user/pinchview/pkg/pipeline"
	"github.com/user/pinchview/pkg/ports"
)

const (
	focalRadius = 6
	hudPadding  = 8
	hudFontSize = 13
)

// Stage draws what the viewer shows for every replayed frame.
type Stage struct {
	renderer   ports.Renderer
	sink       ports.DebugSink
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new render stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		renderer:   renderer,
		sink:       sink,
		logger:     logger.WithComponent("render"),
		numWorkers: numWorkers,
	}
}

// Execute renders all frames.
func (s *Stage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	if len(input.Frames) == 0 {
		return pipeline.RenderResult{Frames: []pipeline.RenderedFrame{}}, nil
	}

	s.logger.Debug("Rendering %d frames with %d workers", len(input.Frames), s.numWorkers)

	result, err := s.executeParallel(ctx, input)
	if err != nil {
		return result, err
	}

	s.logger.Debug("Rendering completed")
	return result, nil
}

// indexedFrame holds a frame with its original index for sorting.
type indexedFrame struct {
	index int
	frame pipeline.RenderedFrame
}

// executeParallel renders frames using a worker pool.
func (s *Stage) executeParallel(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	numFrames := len(input.Frames)
	jobs := make(chan int, numFrames)
	results := make(chan indexedFrame, numFrames)
	errChan := make(chan error, s.numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < s.numWorkers; w++ {
		wg.Add(1)
		go s.worker(ctx, &wg, input, jobs, results, errChan)
	}

	for i := 0; i < numFrames; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
		close(errChan)
	}()

	frames := make([]indexedFrame, 0, numFrames)
	for result := range results {
		frames = append(frames, result)

		if s.sink.Enabled() {
			if err := s.sink.SaveFrame(result.index, result.frame.Image); err != nil {
				s.logger.Warn("Failed to save frame %d: %s", result.index, err)
			}
		}
	}

	if err := <-errChan; err != nil {
		return pipeline.RenderResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return pipeline.RenderResult{}, err
	}

	sort.Slice(frames, func(i, j int) bool {
		return frames[i].index < frames[j].index
	})

	rendered := make([]pipeline.RenderedFrame, len(frames))
	for i, f := range frames {
		rendered[i] = f.frame
	}

	return pipeline.RenderResult{Frames: rendered}, nil
}

// worker processes frames from the jobs channel.
func (s *Stage) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	input pipeline.RenderInput,
	jobs <-chan int,
	results chan<- indexedFrame,
	errChan chan<- error,
) {
	defer wg.Done()

	for idx := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frame, err := s.renderFrame(input, idx)
		if err != nil {
			select {
			case errChan <- fmt.Errorf("render frame %d: %w", idx, err):
			default:
			}
			return
		}

		results <- indexedFrame{index: idx, frame: frame}
	}
}

// renderFrame draws a single frame. Layers from bottom to top: background,
// content (or its placeholder), bounds overlay, HUD.
func (s *Stage) renderFrame(input pipeline.RenderInput, frameIndex int) (pipeline.RenderedFrame, error) {
	state := input.Frames[frameIndex]
	layout := input.Layout
	theme := input.Theme

	vp := layout.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return pipeline.RenderedFrame{}, fmt.Errorf("invalid viewport %dx%d", vp.Width, vp.Height)
	}
	canvas := s.renderer.CreateCanvas(vp.Width, vp.Height, theme.BackgroundColor)

	cx, cy := layout.Controller.Center()
	view := state.Transform.Affine(cx, cy)
	box := layout.ContentBox

	if state.Image != nil {
		b := state.Image.Bounds()
		canvas.DrawImageTransformed(state.Image, concat(view, placement(box.Contain(b.Dx(), b.Dy()), b.Min.X, b.Min.Y, b.Dx(), b.Dy())))
	} else {
		r := transformRect(view, box)
		canvas.DrawRect(round(r.X), round(r.Y), round(r.Width), round(r.Height), theme.PlaceholderColor)
	}

	if input.ShowBounds {
		drawBounds(canvas, view, box, cx, cy, state, theme)
	}

	if input.ShowHUD && layout.HUDArea.Height > 0 {
		drawHUD(canvas, layout.HUDArea, state, theme)
	}

	return pipeline.RenderedFrame{
		TimestampMs: state.TimestampMs,
		Image:       canvas.ToImage(),
	}, nil
}

// drawBounds outlines the transformed content box, the region the content centre
// may travel in, the viewport centre and, during a pinch, the focal point.
func drawBounds(canvas ports.Canvas, view f64.Aff3, box pipeline.Rectangle, cx, cy float64, state pipeline.FrameState, theme pipeline.RenderTheme) {
	r := transformRect(view, box)
	canvas.DrawRectStroke(round(r.X), round(r.Y), round(r.Width), round(r.Height), theme.BoundsColor, 1)

	canvas.DrawRectStroke(
		round(cx-state.BoundX), round(cy-state.BoundY),
		round(2*state.BoundX), round(2*state.BoundY),
		theme.BoundsColor, 1,
	)

	canvas.DrawLine(round(cx-5), round(cy), round(cx+5), round(cy), theme.BoundsColor, 1)
	canvas.DrawLine(round(cx), round(cy-5), round(cx), round(cy+5), theme.BoundsColor, 1)

	if state.Pinching {
		canvas.DrawCircle(state.FocalX, state.FocalY, focalRadius, theme.FocalColor)
	}
}

// drawHUD prints the transform on the left of the strip and the content name on
// the right when both fit.
func drawHUD(canvas ports.Canvas, area pipeline.Rectangle, state pipeline.FrameState, theme pipeline.RenderTheme) {
	canvas.DrawRoundedRect(round(area.X), round(area.Y), round(area.Width), round(area.Height), 4, theme.HUDBackground)

	style := ports.TextStyle{FontSize: hudFontSize, Color: theme.HUDText, Align: ports.AlignLeft}
	status := state.Transform.String()
	if state.Animating {
		status += " resetting"
	}
	y := round(area.Y + area.Height/2)
	canvas.DrawText(status, round(area.X)+hudPadding, y, style)

	if state.ContentURI == "" {
		return
	}
	statusW, _ := canvas.MeasureText(status, style)
	uriW, _ := canvas.MeasureText(state.ContentURI, style)
	if statusW+uriW+3*hudPadding > area.Width {
		return
	}
	style.Align = ports.AlignRight
	canvas.DrawText(state.ContentURI, round(area.X+area.Width)-hudPadding, y, style)
}

// placement maps source pixels of a w x h image with origin (minX, minY) onto dst.
func placement(dst pipeline.Rectangle, minX, minY, w, h int) f64.Aff3 {
	sx := dst.Width / float64(w)
	sy := dst.Height / float64(h)
	return f64.Aff3{
		sx, 0, dst.X - float64(minX)*sx,
		0, sy, dst.Y - float64(minY)*sy,
	}
}

// concat returns the affine transform applying b first, then a.
func concat(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3], a[0]*b[1] + a[1]*b[4], a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3], a[3]*b[1] + a[4]*b[4], a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// transformRect maps an axis-aligned rectangle through a scale-and-translate transform.
func transformRect(m f64.Aff3, r pipeline.Rectangle) pipeline.Rectangle {
	return pipeline.Rectangle{
		X:      m[0]*r.X + m[2],
		Y:      m[4]*r.Y + m[5],
		Width:  m[0] * r.Width,
		Height: m[4] * r.Height,
	}
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
