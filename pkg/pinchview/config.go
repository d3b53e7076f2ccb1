// Package pinchview provides a high-level API for configuring gesture replays.
package pinchview

import (
	"image/color"
	"time"

	"github.com/user/pinchview/pkg/config"
	"github.com/user/pinchview/pkg/orchestrator"
	"github.com/user/pinchview/pkg/viewport"
)

// QualityPreset represents an animation quality preset name.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
)

// QualitySettings contains frame rate and palette parameters.
type QualitySettings struct {
	FPS    float64
	Colors int
}

// GetQualitySettings returns quality settings for the given preset.
func GetQualitySettings(preset QualityPreset) QualitySettings {
	switch preset {
	case QualityLow:
		return QualitySettings{FPS: 15, Colors: 64}
	case QualityHigh:
		return QualitySettings{FPS: 30, Colors: 256}
	default: // medium
		return QualitySettings{FPS: 24, Colors: 128}
	}
}

// Config represents the configuration for a gesture replay.
type Config struct {
	Preset string

	// Viewer geometry
	ViewportWidth      int
	ViewportHeight     int
	ContentWidthRatio  float64 // Content box width as a fraction of the viewport
	ContentHeightRatio float64
	HUDHeight          int

	// Controller
	MinScale        float64
	MaxScale        float64
	ResetDurationMs int

	// Style
	BackgroundColor  color.Color
	PlaceholderColor color.Color
	BoundsColor      color.Color
	ShowBounds       bool
	ShowHUD          bool

	// Encoding
	FPS       float64
	OutroMs   int
	Colors    int
	Dither    bool
	LoopCount int

	// Content
	ImagesDir string
	PickOrder string
	MaxImage  int

	// Rendering
	Workers  int
	Sampling string // nearest, bilinear or catmull-rom

	// Debug artifacts go to DebugDir when set. DebugEvery keeps every n-th frame.
	DebugDir   string
	DebugEvery int
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with phone preset defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: phoneDefaults(),
	}
}

// NewTabletConfigBuilder creates a new ConfigBuilder with tablet preset defaults.
func NewTabletConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: tabletDefaults(),
	}
}

// NewConfigBuilderFromFile starts from a loaded configuration file.
func NewConfigBuilderFromFile(c config.Config) *ConfigBuilder {
	d := phoneDefaults()
	return &ConfigBuilder{
		config: Config{
			Preset: "file",

			ViewportWidth:      c.Viewport.Width,
			ViewportHeight:     c.Viewport.Height,
			ContentWidthRatio:  c.ContentWidthRatio,
			ContentHeightRatio: c.ContentHeightRatio,
			HUDHeight:          c.HUDHeight,

			MinScale:        c.MinScale,
			MaxScale:        c.MaxScale,
			ResetDurationMs: c.ResetDurationMs,

			BackgroundColor:  colorOr(c.Theme.BackgroundColor, d.BackgroundColor),
			PlaceholderColor: colorOr(c.Theme.PlaceholderColor, d.PlaceholderColor),
			BoundsColor:      colorOr(c.Theme.BoundsColor, d.BoundsColor),
			ShowBounds:       c.ShowBounds,
			ShowHUD:          c.ShowHUD,

			FPS:       c.FPS,
			OutroMs:   c.OutroMs,
			Colors:    c.Colors,
			Dither:    c.Dither,
			LoopCount: c.LoopCount,

			ImagesDir: c.ImagesDir,
			PickOrder: c.PickOrder,
			MaxImage:  c.MaxImage,

			Workers:  c.Workers,
			Sampling: c.Sampling,

			DebugDir:   conditionalString(c.Debug, c.DebugDir, ""),
			DebugEvery: c.DebugEvery,
		},
	}
}

func conditionalString(condition bool, trueVal, falseVal string) string {
	if condition {
		return trueVal
	}
	return falseVal
}

// phoneDefaults returns the phone preset configuration.
func phoneDefaults() Config {
	return Config{
		Preset: "phone",

		ViewportWidth:      400,
		ViewportHeight:     800,
		ContentWidthRatio:  viewport.DefaultContentWidthRatio,
		ContentHeightRatio: viewport.DefaultContentHeightRatio,
		HUDHeight:          24,

		MinScale:        viewport.DefaultMinScale,
		MaxScale:        viewport.DefaultMaxScale,
		ResetDurationMs: int(viewport.DefaultResetDuration.Milliseconds()),

		BackgroundColor:  color.RGBA{R: 18, G: 18, B: 18, A: 255},    // #121212
		PlaceholderColor: color.RGBA{R: 48, G: 48, B: 48, A: 255},    // #303030
		BoundsColor:      color.RGBA{R: 100, G: 180, B: 255, A: 255}, // #64b4ff
		ShowHUD:          true,

		FPS:     24,
		OutroMs: 1000,
		Colors:  128,
		Dither:  true,

		ImagesDir: ".",
		PickOrder: "sequential",
		MaxImage:  2048,

		Sampling: "bilinear",
	}
}

// tabletDefaults returns the tablet preset configuration.
func tabletDefaults() Config {
	cfg := phoneDefaults()
	cfg.Preset = "tablet"
	cfg.ViewportWidth = 768
	cfg.ViewportHeight = 1024
	cfg.ContentHeightRatio = 0.6
	cfg.HUDHeight = 32
	cfg.MaxScale = 6
	return cfg
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	// Enforce a minimum viewport of 100x100
	cfg.ViewportWidth = max(cfg.ViewportWidth, 100)
	cfg.ViewportHeight = max(cfg.ViewportHeight, 100)

	// Content ratios must stay in (0, 1]
	cfg.ContentWidthRatio = ratio(cfg.ContentWidthRatio, viewport.DefaultContentWidthRatio)
	cfg.ContentHeightRatio = ratio(cfg.ContentHeightRatio, viewport.DefaultContentHeightRatio)

	// Scale limits must bracket 1
	if cfg.MinScale <= 0 || cfg.MinScale > 1 {
		cfg.MinScale = viewport.DefaultMinScale
	}
	cfg.MaxScale = max(cfg.MaxScale, 1)

	cfg.ResetDurationMs = max(cfg.ResetDurationMs, 0)
	cfg.HUDHeight = min(max(cfg.HUDHeight, 0), cfg.ViewportHeight/4)
	cfg.OutroMs = max(cfg.OutroMs, 0)

	// Frame rate in (0, 60]
	if cfg.FPS <= 0 {
		cfg.FPS = 24
	}
	cfg.FPS = min(cfg.FPS, 60)

	// GIF palettes hold 2 to 256 colors
	cfg.Colors = min(max(cfg.Colors, 2), 256)

	cfg.LoopCount = max(cfg.LoopCount, -1)
	cfg.MaxImage = max(cfg.MaxImage, 0)
	cfg.Workers = max(cfg.Workers, 0)
	cfg.DebugEvery = max(cfg.DebugEvery, 1)

	return cfg
}

// WithViewportSize sets the device screen size.
// Values below 100 will be forced to 100.
func (b *ConfigBuilder) WithViewportSize(width, height int) *ConfigBuilder {
	b.config.ViewportWidth = width
	b.config.ViewportHeight = height
	return b
}

// WithContentRatio sets the content box size as fractions of the viewport.
func (b *ConfigBuilder) WithContentRatio(width, height float64) *ConfigBuilder {
	b.config.ContentWidthRatio = width
	b.config.ContentHeightRatio = height
	return b
}

// WithScaleLimits sets the pinch scale range.
func (b *ConfigBuilder) WithScaleLimits(minScale, maxScale float64) *ConfigBuilder {
	b.config.MinScale = minScale
	b.config.MaxScale = maxScale
	return b
}

// WithResetDurationMs sets the reset animation length. 0 resets instantly.
func (b *ConfigBuilder) WithResetDurationMs(ms int) *ConfigBuilder {
	b.config.ResetDurationMs = ms
	return b
}

// WithHUDHeight sets the status strip height. 0 hides it.
func (b *ConfigBuilder) WithHUDHeight(height int) *ConfigBuilder {
	b.config.HUDHeight = height
	b.config.ShowHUD = height > 0
	return b
}

// WithShowBounds toggles the bounds overlay.
func (b *ConfigBuilder) WithShowBounds(show bool) *ConfigBuilder {
	b.config.ShowBounds = show
	return b
}

// WithBackgroundColor sets the viewport background color.
func (b *ConfigBuilder) WithBackgroundColor(c color.Color) *ConfigBuilder {
	b.config.BackgroundColor = c
	return b
}

// WithPlaceholderColor sets the fill shown before any content is picked.
func (b *ConfigBuilder) WithPlaceholderColor(c color.Color) *ConfigBuilder {
	b.config.PlaceholderColor = c
	return b
}

// WithBoundsColor sets the overlay color.
func (b *ConfigBuilder) WithBoundsColor(c color.Color) *ConfigBuilder {
	b.config.BoundsColor = c
	return b
}

// WithFPS sets the frame rate used when the script does not set one.
func (b *ConfigBuilder) WithFPS(fps float64) *ConfigBuilder {
	b.config.FPS = fps
	return b
}

// WithColors sets the palette size.
func (b *ConfigBuilder) WithColors(colors int) *ConfigBuilder {
	b.config.Colors = colors
	return b
}

// WithDither toggles Floyd-Steinberg dithering.
func (b *ConfigBuilder) WithDither(dither bool) *ConfigBuilder {
	b.config.Dither = dither
	return b
}

// WithQualityPreset applies a quality preset (low, medium, high).
func (b *ConfigBuilder) WithQualityPreset(preset QualityPreset) *ConfigBuilder {
	settings := GetQualitySettings(preset)
	b.config.FPS = settings.FPS
	b.config.Colors = settings.Colors
	return b
}

// WithOutroMs sets the duration to hold the final frame in milliseconds.
func (b *ConfigBuilder) WithOutroMs(ms int) *ConfigBuilder {
	b.config.OutroMs = ms
	return b
}

// WithLoopCount sets how often the animation repeats. 0 loops forever, -1 plays once.
func (b *ConfigBuilder) WithLoopCount(n int) *ConfigBuilder {
	b.config.LoopCount = n
	return b
}

// WithImagesDir sets the directory the picker chooses images from.
func (b *ConfigBuilder) WithImagesDir(dir string) *ConfigBuilder {
	b.config.ImagesDir = dir
	return b
}

// WithPickOrder sets the picker order, sequential or random.
func (b *ConfigBuilder) WithPickOrder(order string) *ConfigBuilder {
	b.config.PickOrder = order
	return b
}

// WithMaxImage caps the longest side of loaded images.
func (b *ConfigBuilder) WithMaxImage(px int) *ConfigBuilder {
	b.config.MaxImage = px
	return b
}

// WithSampling sets the content resampling filter.
func (b *ConfigBuilder) WithSampling(name string) *ConfigBuilder {
	b.config.Sampling = name
	return b
}

// WithWorkers sets the number of render workers. 0 uses every CPU.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.config.Workers = n
	return b
}

// WithDebug enables debug artifacts under dir, keeping every n-th frame.
// An empty dir disables them.
func (b *ConfigBuilder) WithDebug(dir string, every int) *ConfigBuilder {
	b.config.DebugDir = dir
	b.config.DebugEvery = every
	return b
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(scriptPath, outputPath string) orchestrator.Config {
	return orchestrator.Config{
		ScriptPath: scriptPath,
		OutputPath: outputPath,

		ViewportWidth:      c.ViewportWidth,
		ViewportHeight:     c.ViewportHeight,
		ContentWidthRatio:  c.ContentWidthRatio,
		ContentHeightRatio: c.ContentHeightRatio,
		HUDHeight:          c.HUDHeight,

		MinScale:        c.MinScale,
		MaxScale:        c.MaxScale,
		ResetDurationMs: c.ResetDurationMs,

		BackgroundColor:  colorToArray(c.BackgroundColor),
		PlaceholderColor: colorToArray(c.PlaceholderColor),
		BoundsColor:      colorToArray(c.BoundsColor),

		ShowBounds: c.ShowBounds,
		ShowHUD:    c.ShowHUD,

		FPS:       c.FPS,
		OutroMs:   c.OutroMs,
		Colors:    c.Colors,
		Dither:    c.Dither,
		LoopCount: c.LoopCount,
	}
}

// ViewportConfig returns the controller configuration this Config describes.
func (c Config) ViewportConfig() viewport.Config {
	vw, vh := float64(c.ViewportWidth), float64(c.ViewportHeight)
	return viewport.Config{
		ViewportWidth:  vw,
		ViewportHeight: vh,
		ContentWidth:   vw * c.ContentWidthRatio,
		ContentHeight:  vh * c.ContentHeightRatio,
		MinScale:       c.MinScale,
		MaxScale:       c.MaxScale,
		ResetDuration:  time.Duration(c.ResetDurationMs) * time.Millisecond,
	}
}

func ratio(v, fallback float64) float64 {
	if v <= 0 || v > 1 {
		return fallback
	}
	return v
}

func colorOr(hex string, fallback color.Color) color.Color {
	if hex == "" {
		return fallback
	}
	return config.ParseColor(hex)
}

// colorToArray converts color.Color to [4]uint8 array.
func colorToArray(c color.Color) [4]uint8 {
	if c == nil {
		return [4]uint8{}
	}
	r, g, b, a := c.RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
