package summarizer

import "time"

// Summary contains all data collected during a replay session.
type Summary struct {
	// Metadata
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Script information
	Script ScriptInfo `json:"script" yaml:"script"`

	// Replay results
	Replay ReplayInfo `json:"replay" yaml:"replay"`

	// Viewer settings
	Settings Settings `json:"settings" yaml:"settings"`

	// Animation output details
	Animation AnimationInfo `json:"animation" yaml:"animation"`
}

// ScriptInfo describes the replayed gesture script.
type ScriptInfo struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	Steps int    `json:"steps" yaml:"steps"`
}

// ReplayInfo contains what the controller did during the replay.
type ReplayInfo struct {
	DurationMs     int    `json:"duration_ms" yaml:"duration_ms"`
	Picks          int    `json:"picks" yaml:"picks"`
	CancelledPicks int    `json:"cancelled_picks" yaml:"cancelled_picks"`
	Resets         int    `json:"resets" yaml:"resets"`
	PinchUpdates   int    `json:"pinch_updates" yaml:"pinch_updates"`
	PanUpdates     int    `json:"pan_updates" yaml:"pan_updates"`
	Rejected       int    `json:"rejected" yaml:"rejected"`
	ScaleClamps    int    `json:"scale_clamps" yaml:"scale_clamps"`
	OffsetClamps   int    `json:"offset_clamps" yaml:"offset_clamps"`
	Final          string `json:"final" yaml:"final"` // Transform at the end of the replay
}

// Settings contains the viewer configuration.
type Settings struct {
	Preset          string  `json:"preset" yaml:"preset"`
	ViewportWidth   int     `json:"viewport_width" yaml:"viewport_width"`
	ViewportHeight  int     `json:"viewport_height" yaml:"viewport_height"`
	MinScale        float64 `json:"min_scale" yaml:"min_scale"`
	MaxScale        float64 `json:"max_scale" yaml:"max_scale"`
	ResetDurationMs int     `json:"reset_duration_ms" yaml:"reset_duration_ms"`
	FPS             float64 `json:"fps" yaml:"fps"`
}

// AnimationInfo contains information about the output animation.
type AnimationInfo struct {
	FrameCount    int   `json:"frame_count" yaml:"frame_count"`
	DurationMs    int   `json:"duration_ms" yaml:"duration_ms"`
	FileSize      int64 `json:"file_size" yaml:"file_size"`
	Colors        int   `json:"colors" yaml:"colors"`
	Dither        bool  `json:"dither" yaml:"dither"`
	OutroDuration int   `json:"outro_ms" yaml:"outro_ms"` // ms
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithScript sets script information.
func (b *Builder) WithScript(name, path string, steps int) *Builder {
	b.summary.Script = ScriptInfo{
		Name:  name,
		Path:  path,
		Steps: steps,
	}
	return b
}

// WithReplay sets replay results.
func (b *Builder) WithReplay(replay ReplayInfo) *Builder {
	b.summary.Replay = replay
	return b
}

// WithSettings sets viewer settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithAnimation sets animation output information.
func (b *Builder) WithAnimation(animation AnimationInfo) *Builder {
	b.summary.Animation = animation
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
