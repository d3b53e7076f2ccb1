package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // picked content may be a GIF
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // and WebP

	"github.com/user/pinchview/pkg/ports"
)

const defaultJPEGQuality = 90

// DecodeImage decodes JPEG, PNG, GIF or WebP data. Only the first frame of an
// animated GIF is used.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	rd := bytes.NewReader(data)

	var img image.Image
	var err error
	switch format {
	case ports.FormatJPEG:
		img, err = jpeg.Decode(rd)
	case ports.FormatPNG:
		img, err = png.Decode(rd)
	default:
		img, _, err = image.Decode(rd)
	}
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// EncodeImage encodes img. A quality outside 1-100 selects the default JPEG
// quality. PNG output favours speed since it only serves debug frames.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	var err error
	switch format {
	case ports.FormatJPEG:
		if quality < 1 || quality > 100 {
			quality = defaultJPEGQuality
		}
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	case ports.FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestSpeed}
		err = enc.Encode(&buf, img)
	default:
		return nil, fmt.Errorf("encode image: unsupported format %d", format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// ResizeImage resamples with Catmull-Rom, which keeps edges sharp when large
// photos are shrunk to the content box.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
