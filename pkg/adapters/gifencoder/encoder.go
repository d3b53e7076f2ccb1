// Package gifencoder encodes rendered frames as an animated GIF.
package gifencoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"

	"golang.org/x/image/draw"

	"github.com/user/pinchview/pkg/ports"
)

// ErrNotStarted is returned when frames are added before Begin.
var ErrNotStarted = errors.New("encoder not started")

// Encoder implements ports.AnimationEncoder producing GIF89a data.
// Frame delays come from the timestamp gaps between consecutive frames.
type Encoder struct {
	width   int
	height  int
	fps     float64
	opts    ports.EncoderOptions
	palette color.Palette
	started bool

	frames     []*image.Paletted
	timestamps []int
}

// New creates a new Encoder.
func New() *Encoder {
	return &Encoder{}
}

// Begin initializes the encoder.
func (e *Encoder) Begin(width, height int, fps float64, opts ports.EncoderOptions) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if fps <= 0 {
		return fmt.Errorf("invalid fps %g", fps)
	}
	e.width = width
	e.height = height
	e.fps = fps
	e.opts = opts
	e.palette = buildPalette(opts.Colors)
	e.frames = nil
	e.timestamps = nil
	e.started = true
	return nil
}

// AddFrame quantizes img to the palette and queues it.
func (e *Encoder) AddFrame(img image.Image, timestampMs int) error {
	if !e.started {
		return ErrNotStarted
	}
	if n := len(e.timestamps); n > 0 && timestampMs < e.timestamps[n-1] {
		return fmt.Errorf("timestamp %dms before previous %dms", timestampMs, e.timestamps[n-1])
	}

	rect := image.Rect(0, 0, e.width, e.height)
	dst := image.NewPaletted(rect, e.palette)
	if e.opts.Dither {
		draw.FloydSteinberg.Draw(dst, rect, img, img.Bounds().Min)
	} else {
		draw.Draw(dst, rect, img, img.Bounds().Min, draw.Src)
	}

	e.frames = append(e.frames, dst)
	e.timestamps = append(e.timestamps, timestampMs)
	return nil
}

// End writes the animation and resets the encoder.
func (e *Encoder) End() ([]byte, error) {
	if !e.started {
		return nil, ErrNotStarted
	}
	defer func() { e.started = false }()

	if len(e.frames) == 0 {
		return nil, fmt.Errorf("no frames encoded")
	}

	delays := frameDelays(e.timestamps, int(1000/e.fps+0.5))

	anim := &gif.GIF{
		Image:     e.frames,
		Delay:     delays,
		LoopCount: e.opts.LoopCount,
		Config: image.Config{
			ColorModel: e.palette,
			Width:      e.width,
			Height:     e.height,
		},
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, fmt.Errorf("encode GIF: %w", err)
	}
	return buf.Bytes(), nil
}

// frameDelays converts frame timestamps to GIF delays in centiseconds. The last
// frame lasts lastMs. Each delay is taken from the rounded end time of its frame
// minus the delays already emitted, so rounding never accumulates: 33 ms frames
// alternate 3 and 4 ticks and stay in step with the timestamps.
func frameDelays(timestamps []int, lastMs int) []int {
	delays := make([]int, len(timestamps))
	if len(timestamps) == 0 {
		return delays
	}
	start := timestamps[0]
	emitted := 0
	for i := range timestamps {
		end := timestamps[len(timestamps)-1] + lastMs
		if i+1 < len(timestamps) {
			end = timestamps[i+1]
		}
		d := (end-start+5)/10 - emitted
		if d < 1 {
			d = 1
		}
		delays[i] = d
		emitted += d
	}
	return delays
}

// buildPalette returns n colours sampled evenly from the Plan 9 palette.
// Values outside 2..256 select the full palette.
func buildPalette(n int) color.Palette {
	full := palette.Plan9
	if n < 2 || n >= len(full) {
		return full
	}
	p := make(color.Palette, n)
	for i := range p {
		p[i] = full[i*(len(full)-1)/(n-1)]
	}
	return p
}

// Ensure Encoder implements ports.AnimationEncoder
var _ ports.AnimationEncoder = (*Encoder)(nil)
