// Package ggrenderer draws viewer frames with the gg 2D library.
package ggrenderer

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"

	"github.com/user/pinchview/pkg/ports"
)

// Renderer implements ports.Renderer. It is safe for concurrent use; each
// canvas belongs to one goroutine.
type Renderer struct {
	interp draw.Interpolator
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithInterpolator sets how content is resampled under the viewport transform.
func WithInterpolator(interp draw.Interpolator) Option {
	return func(r *Renderer) {
		if interp != nil {
			r.interp = interp
		}
	}
}

// New creates a Renderer sampling content bilinearly.
func New(opts ...Option) *Renderer {
	r := &Renderer{interp: draw.BiLinear}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ParseInterpolator maps "nearest", "bilinear" or "catmull-rom" to an
// interpolator. Nearest keeps single pixels crisp at high zoom.
func ParseInterpolator(name string) (draw.Interpolator, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return draw.NearestNeighbor, nil
	case "", "bilinear":
		return draw.BiLinear, nil
	case "catmull-rom", "catmullrom":
		return draw.CatmullRom, nil
	default:
		return nil, fmt.Errorf("unknown sampling %q (want nearest, bilinear or catmull-rom)", name)
	}
}

func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc, interp: r.interp}
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas on a gg.Context.
type Canvas struct {
	dc     *gg.Context
	interp draw.Interpolator
}

// DrawImageTransformed composites img over the frame through m. Only the
// destination pixels covered by the mapped source are touched.
func (c *Canvas) DrawImageTransformed(img image.Image, m f64.Aff3) {
	dst, ok := c.dc.Image().(draw.Image)
	if !ok {
		return
	}
	c.interp.Transform(dst, m, img, img.Bounds(), draw.Over, nil)
}

func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.fill(col)
}

func (c *Canvas) DrawRoundedRect(x, y, w, h, radius int, col color.Color) {
	c.dc.DrawRoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(radius))
	c.fill(col)
}

func (c *Canvas) DrawCircle(x, y, radius float64, col color.Color) {
	c.dc.DrawCircle(x, y, radius)
	c.fill(col)
}

func (c *Canvas) DrawRectStroke(x, y, w, h int, col color.Color, strokeWidth float64) {
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.stroke(col, strokeWidth)
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col color.Color, width float64) {
	c.dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
	c.stroke(col, width)
}

func (c *Canvas) fill(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *Canvas) stroke(col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

// DrawText centres text vertically on y.
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	c.setFont(style)
	c.dc.SetColor(style.Color)
	c.dc.DrawStringAnchored(text, float64(x), float64(y), anchorX(style.Align), 0.5)
}

func (c *Canvas) MeasureText(text string, style ports.TextStyle) (width, height float64) {
	c.setFont(style)
	return c.dc.MeasureString(text)
}

func anchorX(a ports.TextAlign) float64 {
	switch a {
	case ports.AlignCenter:
		return 0.5
	case ports.AlignRight:
		return 1
	default:
		return 0
	}
}

// setFont loads style.FontPath, falling back to the 7x13 bitmap face when it
// is empty or unreadable.
func (c *Canvas) setFont(style ports.TextStyle) {
	if style.FontPath != "" {
		if err := c.dc.LoadFontFace(style.FontPath, style.FontSize); err == nil {
			return
		}
	}
	c.dc.SetFontFace(basicfont.Face7x13)
}

func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

var _ ports.Canvas = (*Canvas)(nil)
