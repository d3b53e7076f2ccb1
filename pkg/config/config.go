// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/user/pinchview/pkg/orchestrator"
	"github.com/user/pinchview/pkg/pipeline"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration file for pinchview.
type Config struct {
	// Input/Output
	ScriptPath string `yaml:"script"`
	OutputPath string `yaml:"output"`
	ImagesDir  string `yaml:"images_dir"` // Directory the picker chooses from
	PickOrder  string `yaml:"pick_order"` // sequential or random
	MaxImage   int    `yaml:"max_image"`  // Longest side of loaded images, 0 keeps them as is

	// Layout
	Viewport           ViewportConfig `yaml:"viewport"`
	ContentWidthRatio  float64        `yaml:"content_width_ratio"`
	ContentHeightRatio float64        `yaml:"content_height_ratio"`
	HUDHeight          int            `yaml:"hud_height"`

	// Controller
	MinScale        float64 `yaml:"min_scale"`
	MaxScale        float64 `yaml:"max_scale"`
	ResetDurationMs int     `yaml:"reset_ms"`

	// Render
	Workers    int         `yaml:"workers"`
	Sampling   string      `yaml:"sampling"`
	ShowBounds bool        `yaml:"show_bounds"`
	ShowHUD    bool        `yaml:"show_hud"`
	Theme      ThemeConfig `yaml:"theme"`

	// Encoding
	FPS       float64 `yaml:"fps"`
	OutroMs   int     `yaml:"outro_ms"`
	Colors    int     `yaml:"colors"`
	Dither    bool    `yaml:"dither"`
	LoopCount int     `yaml:"loop_count"`

	// Debug
	Debug      bool   `yaml:"debug"`
	DebugDir   string `yaml:"debug_dir"`
	DebugEvery int    `yaml:"debug_every"`
}

// ViewportConfig is the device screen size.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ThemeConfig represents theming options.
type ThemeConfig struct {
	BackgroundColor  string `yaml:"background_color"`
	PlaceholderColor string `yaml:"placeholder_color"`
	BoundsColor      string `yaml:"bounds_color"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	layout := pipeline.DefaultLayoutInput()
	encode := pipeline.DefaultEncodeInput()
	return Config{
		ImagesDir: ".",
		PickOrder: "sequential",
		MaxImage:  2048,

		// Layout
		Viewport:           ViewportConfig{Width: layout.ViewportWidth, Height: layout.ViewportHeight},
		ContentWidthRatio:  layout.ContentWidthRatio,
		ContentHeightRatio: layout.ContentHeightRatio,
		HUDHeight:          layout.HUDHeight,

		// Controller
		MinScale:        layout.MinScale,
		MaxScale:        layout.MaxScale,
		ResetDurationMs: layout.ResetDurationMs,

		// Render
		Workers:  4,
		Sampling: "bilinear",
		ShowHUD:  true,
		Theme: ThemeConfig{
			BackgroundColor:  "#121212",
			PlaceholderColor: "#303030",
			BoundsColor:      "#64b4ff",
		},

		// Encoding
		FPS:     encode.FPS,
		OutroMs: encode.OutroMs,
		Colors:  encode.Colors,
		Dither:  true,

		// Debug
		DebugDir:   "./debug",
		DebugEvery: 1,
	}
}

// LoadFromFile loads configuration from a YAML file over Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ParseColor parses a "#rrggbb" or "#rrggbbaa" hex color string.
// Malformed input yields black.
func ParseColor(hex string) color.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 && len(hex) != 8 {
		return color.Black
	}

	c := color.RGBA{A: 255}
	c.R = hexByte(hex[0], hex[1])
	c.G = hexByte(hex[2], hex[3])
	c.B = hexByte(hex[4], hex[5])
	if len(hex) == 8 {
		c.A = hexByte(hex[6], hex[7])
	}
	return c
}

func hexByte(hi, lo byte) uint8 {
	return hexValue(hi)<<4 | hexValue(lo)
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		ScriptPath: c.ScriptPath,
		OutputPath: c.OutputPath,

		ViewportWidth:      c.Viewport.Width,
		ViewportHeight:     c.Viewport.Height,
		ContentWidthRatio:  c.ContentWidthRatio,
		ContentHeightRatio: c.ContentHeightRatio,
		HUDHeight:          c.HUDHeight,

		MinScale:        c.MinScale,
		MaxScale:        c.MaxScale,
		ResetDurationMs: c.ResetDurationMs,

		BackgroundColor:  colorArray(c.Theme.BackgroundColor),
		PlaceholderColor: colorArray(c.Theme.PlaceholderColor),
		BoundsColor:      colorArray(c.Theme.BoundsColor),

		ShowBounds: c.ShowBounds,
		ShowHUD:    c.ShowHUD,

		FPS:       c.FPS,
		OutroMs:   c.OutroMs,
		Colors:    c.Colors,
		Dither:    c.Dither,
		LoopCount: c.LoopCount,
	}
}

// colorArray parses hex into RGBA bytes. Empty strings stay zero so the
// render theme default applies.
func colorArray(hex string) [4]uint8 {
	if hex == "" {
		return [4]uint8{}
	}
	r, g, b, a := ParseColor(hex).RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
