package ports

import (
	"image"
	"image/color"

	"golang.org/x/image/math/f64"
)

// ImageCodec converts picked content between bytes and pixels.
type ImageCodec interface {
	// DecodeImage decodes data. FormatAuto sniffs the format from the header.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes img. quality only applies to FormatJPEG.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resamples img to exactly width x height.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Renderer draws viewer frames.
type Renderer interface {
	ImageCodec

	// CreateCanvas returns a width x height canvas filled with bg.
	CreateCanvas(width, height int, bg color.Color) Canvas
}

// Canvas is one viewer frame under construction. Coordinates are viewport
// pixels with the origin at the top left.
type Canvas interface {
	// DrawImageTransformed draws img mapped by m, which takes source pixel
	// coordinates to canvas coordinates. Pixels outside the canvas are clipped.
	DrawImageTransformed(img image.Image, m f64.Aff3)

	// Overlay primitives for the content box, bounds and focal marker.
	DrawRect(x, y, w, h int, c color.Color)
	DrawRoundedRect(x, y, w, h, radius int, c color.Color)
	DrawRectStroke(x, y, w, h int, c color.Color, strokeWidth float64)
	DrawCircle(x, y, radius float64, c color.Color)
	DrawLine(x1, y1, x2, y2 int, c color.Color, width float64)

	// DrawText draws text with its baseline at y; x is interpreted per style.Align.
	DrawText(text string, x, y int, style TextStyle)
	MeasureText(text string, style TextStyle) (width, height float64)

	// ToImage returns the finished frame.
	ToImage() image.Image
}

// TextStyle configures HUD text. An empty FontPath selects the built-in
// bitmap face.
type TextStyle struct {
	FontSize float64
	FontPath string
	Color    color.Color
	Align    TextAlign
}

// TextAlign anchors text horizontally at the x passed to DrawText.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// ImageFormat identifies an image container.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
	FormatAuto
)
