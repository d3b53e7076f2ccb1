// Package filesink writes replay debug artifacts to a directory.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/pinchview/pkg/ports"
)

const (
	layoutFile = "layout.json"
	traceFile  = "trace.json"
	framesDir  = "frames"
)

// Sink implements ports.DebugSink. A Sink without a base directory is
// disabled and discards everything.
type Sink struct {
	baseDir string
	stride  int
	fs      ports.FileSystem
	codec   ports.ImageCodec
}

// Option configures a Sink.
type Option func(*Sink)

// WithFrameStride keeps only every n-th frame. Values below 1 keep all frames.
func WithFrameStride(n int) Option {
	return func(s *Sink) {
		if n > 1 {
			s.stride = n
		}
	}
}

// New creates a Sink writing under baseDir. Frames are encoded as PNG by codec.
func New(baseDir string, fs ports.FileSystem, codec ports.ImageCodec, opts ...Option) *Sink {
	s := &Sink{
		baseDir: baseDir,
		stride:  1,
		fs:      fs,
		codec:   codec,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Disabled returns a Sink that discards all output.
func Disabled() *Sink {
	return &Sink{stride: 1}
}

func (s *Sink) Enabled() bool {
	return s.baseDir != ""
}

func (s *Sink) SaveLayoutJSON(data []byte) error {
	return s.write(filepath.Join(s.baseDir, layoutFile), data)
}

func (s *Sink) SaveTraceJSON(data []byte) error {
	return s.write(filepath.Join(s.baseDir, traceFile), data)
}

// SaveFrame writes frames/frame-NNNN.png for the kept frame indices.
func (s *Sink) SaveFrame(index int, img image.Image) error {
	if !s.Enabled() || index%s.stride != 0 {
		return nil
	}
	dir := filepath.Join(s.baseDir, framesDir)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.codec.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode frame %d: %w", index, err)
	}
	return s.fs.WriteFile(filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index)), data)
}

func (s *Sink) write(path string, data []byte) error {
	if !s.Enabled() {
		return nil
	}
	return s.fs.WriteFile(path, data)
}

var _ ports.DebugSink = (*Sink)(nil)
