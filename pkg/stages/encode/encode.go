// Package encode implements the animation encoding stage.
package encode

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/pinchview/pkg/pipeline"
	"github.com/user/pinchview/pkg/ports"
)

// ErrNoFrames is returned when there is nothing to encode.
var ErrNoFrames = errors.New("no frames to encode")

// Stage hands rendered frames to an AnimationEncoder.
type Stage struct {
	encoder ports.AnimationEncoder
	logger  ports.Logger
}

// NewStage creates an encode stage.
func NewStage(encoder ports.AnimationEncoder, logger ports.Logger) *Stage {
	return &Stage{encoder: encoder, logger: logger.WithComponent("encode")}
}

// Execute encodes input.Frames in order. With a positive OutroMs the last frame
// is added once more at its timestamp plus OutroMs, so the final view stays on
// screen before the animation loops.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	if len(input.Frames) == 0 {
		return pipeline.EncodeResult{}, ErrNoFrames
	}

	size := input.Frames[0].Image.Bounds().Size()
	s.logger.Debug("Encoding %d frames at %dx%d", len(input.Frames), size.X, size.Y)

	err := s.encoder.Begin(size.X, size.Y, input.FPS, ports.EncoderOptions{
		Colors:    input.Colors,
		Dither:    input.Dither,
		LoopCount: input.LoopCount,
	})
	if err != nil {
		return pipeline.EncodeResult{}, fmt.Errorf("begin encoding: %w", err)
	}

	for _, f := range input.Frames {
		if err := ctx.Err(); err != nil {
			return pipeline.EncodeResult{}, err
		}
		if err := s.encoder.AddFrame(f.Image, f.TimestampMs); err != nil {
			return pipeline.EncodeResult{}, fmt.Errorf("encode frame at %dms: %w", f.TimestampMs, err)
		}
	}

	last := input.Frames[len(input.Frames)-1]
	end := last.TimestampMs
	if input.OutroMs > 0 {
		end += input.OutroMs
		if err := s.encoder.AddFrame(last.Image, end); err != nil {
			return pipeline.EncodeResult{}, fmt.Errorf("encode outro frame: %w", err)
		}
	}

	data, err := s.encoder.End()
	if err != nil {
		return pipeline.EncodeResult{}, fmt.Errorf("end encoding: %w", err)
	}
	s.logger.Debug("Encoded %d bytes", len(data))

	return pipeline.EncodeResult{
		Data:       data,
		DurationMs: end,
		FileSize:   int64(len(data)),
	}, nil
}
