package ports

import (
	"image"
)

// AnimationEncoder assembles rendered viewer frames into one animation.
// Calls follow Begin, AddFrame..., End.
type AnimationEncoder interface {
	Begin(width, height int, fps float64, opts EncoderOptions) error

	// AddFrame appends img, shown from timestampMs until the next frame's
	// timestamp. Timestamps must not decrease.
	AddFrame(img image.Image, timestampMs int) error

	// End returns the encoded animation. The last frame is shown for one
	// nominal frame duration.
	End() ([]byte, error)
}

// EncoderOptions tunes palette reduction and playback.
type EncoderOptions struct {
	Colors    int  // palette size per frame, 2 to 256
	Dither    bool // Floyd-Steinberg error diffusion when quantizing
	LoopCount int  // 0 loops forever, -1 plays once
}
