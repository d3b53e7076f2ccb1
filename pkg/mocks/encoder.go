package mocks

import (
	"image"

	"github.com/user/pinchview/pkg/ports"
)

// AnimationEncoder records the frames it is given and returns a GIF header
// from End unless EndFunc says otherwise.
type AnimationEncoder struct {
	BeginFunc    func(width, height int, fps float64, opts ports.EncoderOptions) error
	AddFrameFunc func(img image.Image, timestampMs int) error
	EndFunc      func() ([]byte, error)

	BeginCalled   bool
	Width, Height int
	FPS           float64
	BeginOptions  ports.EncoderOptions
	AddFrameCalls []AddFrameCall
	EndCalled     bool
}

// AddFrameCall is one recorded AddFrame.
type AddFrameCall struct {
	TimestampMs int
	Bounds      image.Rectangle
}

func (m *AnimationEncoder) Begin(width, height int, fps float64, opts ports.EncoderOptions) error {
	m.BeginCalled = true
	m.Width, m.Height, m.FPS = width, height, fps
	m.BeginOptions = opts
	if m.BeginFunc != nil {
		return m.BeginFunc(width, height, fps, opts)
	}
	return nil
}

func (m *AnimationEncoder) AddFrame(img image.Image, timestampMs int) error {
	m.AddFrameCalls = append(m.AddFrameCalls, AddFrameCall{TimestampMs: timestampMs, Bounds: img.Bounds()})
	if m.AddFrameFunc != nil {
		return m.AddFrameFunc(img, timestampMs)
	}
	return nil
}

func (m *AnimationEncoder) End() ([]byte, error) {
	m.EndCalled = true
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	return []byte("GIF89a"), nil
}

var _ ports.AnimationEncoder = (*AnimationEncoder)(nil)
