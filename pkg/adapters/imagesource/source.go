// Package imagesource loads picked content from the file system.
package imagesource

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/user/pinchview/pkg/ports"
)

// Source implements ports.ContentSource over a ports.FileSystem.
type Source struct {
	fs      ports.FileSystem
	codec   ports.ImageCodec
	baseDir string
	maxDim  int
}

// New creates a Source. Relative URIs resolve against baseDir. Images whose
// longer side exceeds maxDim are downscaled on load; zero disables this.
func New(fs ports.FileSystem, codec ports.ImageCodec, baseDir string, maxDim int) *Source {
	return &Source{
		fs:      fs,
		codec:   codec,
		baseDir: baseDir,
		maxDim:  maxDim,
	}
}

// Load reads and decodes the image at uri.
func (s *Source) Load(ctx context.Context, uri string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.resolve(uri)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	img, err := s.codec.DecodeImage(data, formatFor(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return s.fit(img), nil
}

func (s *Source) resolve(uri string) string {
	path := strings.TrimPrefix(uri, "file://")
	if s.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, path)
	}
	return path
}

// fit downscales img so its longer side is at most maxDim, keeping the aspect ratio.
func (s *Source) fit(img image.Image) image.Image {
	b := img.Bounds()
	longer := b.Dx()
	if b.Dy() > longer {
		longer = b.Dy()
	}
	if s.maxDim <= 0 || longer <= s.maxDim {
		return img
	}
	w := b.Dx() * s.maxDim / longer
	h := b.Dy() * s.maxDim / longer
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return s.codec.ResizeImage(img, w, h)
}

func formatFor(path string) ports.ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return ports.FormatJPEG
	case ".png":
		return ports.FormatPNG
	default:
		return ports.FormatAuto
	}
}

// Ensure Source implements ports.ContentSource
var _ ports.ContentSource = (*Source)(nil)
