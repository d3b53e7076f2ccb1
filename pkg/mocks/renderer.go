package mocks

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/math/f64"

	"github.com/user/pinchview/pkg/ports"
)

// Renderer is a ports.Renderer whose codec calls can be overridden.
// Canvases it creates itself are kept for inspection.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image

	mu       sync.Mutex
	canvases []*Canvas
}

func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if r.CreateCanvasFunc != nil {
		return r.CreateCanvasFunc(width, height, bg)
	}
	c := NewCanvas(width, height)
	r.mu.Lock()
	r.canvases = append(r.canvases, c)
	r.mu.Unlock()
	return c
}

// Canvases returns the canvases created so far, in creation order.
func (r *Renderer) Canvases() []*Canvas {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Canvas(nil), r.canvases...)
}

// DecodeImage yields a 100x100 image unless overridden.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if r.DecodeImageFunc == nil {
		return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
	}
	return r.DecodeImageFunc(data, format)
}

func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if r.EncodeImageFunc == nil {
		return nil, nil
	}
	return r.EncodeImageFunc(img, format, quality)
}

func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if r.ResizeImageFunc == nil {
		return image.NewRGBA(image.Rect(0, 0, width, height))
	}
	return r.ResizeImageFunc(img, width, height)
}

// Canvas operation names recorded by Canvas.
const (
	OpImage       = "image"
	OpRect        = "rect"
	OpRoundedRect = "rounded-rect"
	OpStroke      = "stroke"
	OpCircle      = "circle"
	OpLine        = "line"
	OpText        = "text"
)

// Canvas is a ports.Canvas that draws nothing and logs each call.
type Canvas struct {
	mu     sync.Mutex
	bounds image.Rectangle
	ops    []string

	Transforms []f64.Aff3 // one per DrawImageTransformed
	Texts      []string
}

// NewCanvas creates a Canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{bounds: image.Rect(0, 0, width, height)}
}

func (c *Canvas) record(op string) {
	c.mu.Lock()
	c.ops = append(c.ops, op)
	c.mu.Unlock()
}

// Count reports how many times op was drawn.
func (c *Canvas) Count(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, o := range c.ops {
		if o == op {
			n++
		}
	}
	return n
}

// Ops returns the recorded operations in call order.
func (c *Canvas) Ops() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.ops...)
}

func (c *Canvas) DrawImageTransformed(img image.Image, m f64.Aff3) {
	c.record(OpImage)
	c.mu.Lock()
	c.Transforms = append(c.Transforms, m)
	c.mu.Unlock()
}

func (c *Canvas) DrawRect(x, y, w, h int, col color.Color)                { c.record(OpRect) }
func (c *Canvas) DrawRoundedRect(x, y, w, h, radius int, col color.Color) { c.record(OpRoundedRect) }
func (c *Canvas) DrawRectStroke(x, y, w, h int, col color.Color, sw float64) {
	c.record(OpStroke)
}
func (c *Canvas) DrawCircle(x, y, radius float64, col color.Color)        { c.record(OpCircle) }
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.Color, w float64) { c.record(OpLine) }

func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	c.record(OpText)
	c.mu.Lock()
	c.Texts = append(c.Texts, text)
	c.mu.Unlock()
}

// MeasureText assumes a 7x13 monospace face.
func (c *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	return float64(len(text)) * 7, 13
}

func (c *Canvas) ToImage() image.Image {
	return image.NewRGBA(c.bounds)
}

var (
	_ ports.Renderer = (*Renderer)(nil)
	_ ports.Canvas   = (*Canvas)(nil)
)
