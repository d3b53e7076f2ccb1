// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/user/pinchview/pkg/pipeline"
	"github.com/user/pinchview/pkg/ports"
	"github.com/user/pinchview/pkg/script"
	"github.com/user/pinchview/pkg/viewport"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	ScriptPath string
	OutputPath string

	// Layout
	ViewportWidth      int
	ViewportHeight     int
	ContentWidthRatio  float64
	ContentHeightRatio float64
	HUDHeight          int

	// Controller
	MinScale        float64
	MaxScale        float64
	ResetDurationMs int

	// Style
	BackgroundColor  [4]uint8 // RGBA
	PlaceholderColor [4]uint8 // RGBA
	BoundsColor      [4]uint8 // RGBA

	// Rendering
	ShowBounds bool
	ShowHUD    bool

	// Encoding
	FPS       float64 // Used when the script does not set its own
	OutroMs   int
	Colors    int
	Dither    bool
	LoopCount int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	layout := pipeline.DefaultLayoutInput()
	encode := pipeline.DefaultEncodeInput()
	return Config{
		ViewportWidth:      layout.ViewportWidth,
		ViewportHeight:     layout.ViewportHeight,
		ContentWidthRatio:  layout.ContentWidthRatio,
		ContentHeightRatio: layout.ContentHeightRatio,
		HUDHeight:          layout.HUDHeight,

		MinScale:        viewport.DefaultMinScale,
		MaxScale:        viewport.DefaultMaxScale,
		ResetDurationMs: layout.ResetDurationMs,

		ShowBounds: false,
		ShowHUD:    true,

		FPS:     encode.FPS,
		OutroMs: encode.OutroMs,
		Colors:  encode.Colors,
		Dither:  true,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult]
	replayStage pipeline.Stage[pipeline.ReplayInput, pipeline.ReplayResult]
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult]
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fs          ports.FileSystem
	sink        ports.DebugSink
	logger      ports.Logger

	timings []StageTiming
}

// StageTiming is the wall time one stage took during a run.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

// New creates a new Orchestrator.
func New(
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult],
	replayStage pipeline.Stage[pipeline.ReplayInput, pipeline.ReplayResult],
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	o := &Orchestrator{
		fs:     fs,
		sink:   sink,
		logger: logger,
	}
	o.layoutStage = pipeline.Timed(layoutStage, o.observe("layout"))
	o.replayStage = pipeline.Timed(replayStage, o.observe("replay"))
	o.renderStage = pipeline.Timed(renderStage, o.observe("render"))
	o.encodeStage = pipeline.Timed(encodeStage, o.observe("encode"))
	return o
}

func (o *Orchestrator) observe(stage string) func(time.Duration, error) {
	return func(elapsed time.Duration, err error) {
		o.timings = append(o.timings, StageTiming{Stage: stage, Duration: elapsed})
		if err == nil {
			o.logger.Debug("Stage %s finished in %s", stage, elapsed.Round(time.Millisecond))
		}
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting pipeline"))
	o.timings = nil

	// 1. Load script
	data, err := o.fs.ReadFile(config.ScriptPath)
	if err != nil {
		o.logger.Error(l10n.F("Failed to read script: %s", err))
		return RunResult{}, fmt.Errorf("read script: %w", err)
	}
	sc, err := script.Parse(data)
	if err != nil {
		o.logger.Error(l10n.F("Failed to parse script: %s", err))
		return RunResult{}, fmt.Errorf("parse script: %w", err)
	}
	if sc.Name == "" {
		sc.Name = config.ScriptPath
	}
	o.logger.Info(l10n.F("Loaded script %s with %d steps", sc.Name, len(sc.Steps)))

	// 2. Layout calculation
	o.logger.Info(l10n.T("Calculating layout"))
	layout, err := o.layoutStage.Execute(ctx, o.buildLayoutInput(config))
	if err != nil {
		o.logger.Error(l10n.F("Failed to calculate layout: %s", err))
		return RunResult{}, fmt.Errorf("layout stage: %w", err)
	}
	o.logger.Info(l10n.F("Layout calculated: %dx%d viewport, %.0fx%.0f content",
		layout.Viewport.Width, layout.Viewport.Height, layout.ContentBox.Width, layout.ContentBox.Height))

	o.saveDebugJSON("layout", layout, o.sink.SaveLayoutJSON)

	// 3. Replay gestures
	fps := effectiveFPS(sc, config)
	o.logger.Info(l10n.F("Replaying %d steps at %.1f fps", len(sc.Steps), fps))
	replay, err := o.replayStage.Execute(ctx, pipeline.ReplayInput{
		Script: sc,
		Layout: layout,
		FPS:    config.FPS,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to replay script: %s", err))
		return RunResult{}, fmt.Errorf("replay stage: %w", err)
	}
	o.logger.Info(l10n.F("Replay produced %d frames over %d ms", replay.Stats.Frames, replay.Stats.DurationMs))
	if replay.Stats.Rejected > 0 {
		o.logger.Warn(l10n.F("%d gesture events were rejected", replay.Stats.Rejected))
	}

	o.saveDebugJSON("trace", replay, o.sink.SaveTraceJSON)

	// 4. Render frames
	o.logger.Info(l10n.F("Rendering %d frames", len(replay.Frames)))
	rendered, err := o.renderStage.Execute(ctx, o.buildRenderInput(config, layout, replay))
	if err != nil {
		o.logger.Error(l10n.F("Failed to render frames: %s", err))
		return RunResult{}, fmt.Errorf("render stage: %w", err)
	}
	o.logger.Info(l10n.T("Rendering completed"))

	// 5. Encode animation
	o.logger.Info(l10n.F("Encoding animation with %d colors", config.Colors))
	encoded, err := o.encodeStage.Execute(ctx, o.buildEncodeInput(config, fps, rendered))
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode animation: %s", err))
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}
	o.logger.Info(l10n.F("Animation encoded: %d bytes", len(encoded.Data)))

	// 6. Write output file
	if err := o.fs.WriteFile(config.OutputPath, encoded.Data); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}

	o.logger.Info(l10n.T("Pipeline completed successfully"))

	return RunResult{
		ScriptName:     sc.Name,
		Stats:          replay.Stats,
		FPS:            fps,
		FrameCount:     len(rendered.Frames),
		AnimationMs:    encoded.DurationMs,
		FileSize:       encoded.FileSize,
		ViewportWidth:  layout.Viewport.Width,
		ViewportHeight: layout.Viewport.Height,
		MinScale:       layout.Controller.MinScale,
		MaxScale:       layout.Controller.MaxScale,
		Timings:        o.timings,
	}, nil
}

// saveDebugJSON hands v to save as indented JSON when the sink is enabled.
// Failures are warnings; debug output never fails a run.
func (o *Orchestrator) saveDebugJSON(name string, v any, save func([]byte) error) {
	if !o.sink.Enabled() {
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err == nil {
		err = save(data)
	}
	if err != nil {
		o.logger.Warn(l10n.F("Failed to save debug %s: %s", name, err))
	}
}

func (o *Orchestrator) buildLayoutInput(config Config) pipeline.LayoutInput {
	return pipeline.LayoutInput{
		ViewportWidth:      config.ViewportWidth,
		ViewportHeight:     config.ViewportHeight,
		ContentWidthRatio:  config.ContentWidthRatio,
		ContentHeightRatio: config.ContentHeightRatio,
		MinScale:           config.MinScale,
		MaxScale:           config.MaxScale,
		ResetDurationMs:    config.ResetDurationMs,
		HUDHeight:          conditionalInt(config.ShowHUD, config.HUDHeight, 0),
	}
}

func (o *Orchestrator) buildRenderInput(config Config, layout pipeline.LayoutResult, replay pipeline.ReplayResult) pipeline.RenderInput {
	theme := pipeline.DefaultRenderTheme()
	// Override theme colors if specified
	if config.BackgroundColor != [4]uint8{} {
		theme.BackgroundColor = rgbaFromArray(config.BackgroundColor)
	}
	if config.PlaceholderColor != [4]uint8{} {
		theme.PlaceholderColor = rgbaFromArray(config.PlaceholderColor)
	}
	if config.BoundsColor != [4]uint8{} {
		theme.BoundsColor = rgbaFromArray(config.BoundsColor)
	}

	return pipeline.RenderInput{
		Frames:     replay.Frames,
		Layout:     layout,
		Theme:      theme,
		ShowBounds: config.ShowBounds,
		ShowHUD:    config.ShowHUD,
	}
}

func (o *Orchestrator) buildEncodeInput(config Config, fps float64, rendered pipeline.RenderResult) pipeline.EncodeInput {
	return pipeline.EncodeInput{
		Frames:    rendered.Frames,
		OutroMs:   config.OutroMs,
		FPS:       fps,
		Colors:    config.Colors,
		Dither:    config.Dither,
		LoopCount: config.LoopCount,
	}
}

// effectiveFPS mirrors the replay stage's frame rate choice so the encoder
// timing matches the sampled frames.
func effectiveFPS(sc script.Script, config Config) float64 {
	if sc.FPS > 0 {
		return sc.FPS
	}
	if config.FPS > 0 {
		return config.FPS
	}
	return pipeline.DefaultEncodeInput().FPS
}

func conditionalInt(condition bool, trueVal, falseVal int) int {
	if condition {
		return trueVal
	}
	return falseVal
}

func rgbaFromArray(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	ScriptName string

	// Replay information
	Stats pipeline.ReplayStats
	FPS   float64

	// Animation information
	FrameCount  int
	AnimationMs int // Includes outro
	FileSize    int64

	// Viewer information
	ViewportWidth  int
	ViewportHeight int
	MinScale       float64
	MaxScale       float64

	// Wall time per stage, in execution order
	Timings []StageTiming
}
