// Package main provides the CLI entry point for pinchview.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/pinchview/pkg/adapters/dirpicker"
	"github.com/user/pinchview/pkg/adapters/filesink"
	"github.com/user/pinchview/pkg/adapters/ggrenderer"
	"github.com/user/pinchview/pkg/adapters/gifencoder"
	"github.com/user/pinchview/pkg/adapters/imagesource"
	"github.com/user/pinchview/pkg/adapters/logger"
	"github.com/user/pinchview/pkg/adapters/osfilesystem"
	"github.com/user/pinchview/pkg/adapters/tween"
	"github.com/user/pinchview/pkg/config"
	"github.com/user/pinchview/pkg/orchestrator"
	"github.com/user/pinchview/pkg/pinchview"
	"github.com/user/pinchview/pkg/ports"
	"github.com/user/pinchview/pkg/script"
	"github.com/user/pinchview/pkg/stages/encode"
	"github.com/user/pinchview/pkg/stages/layout"
	"github.com/user/pinchview/pkg/stages/render"
	"github.com/user/pinchview/pkg/stages/replay"
	"github.com/user/pinchview/pkg/summarizer"
	"github.com/user/pinchview/pkg/viewport"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:        "pinchview",
		Usage:       l10n.T("Replay pinch and pan gestures on an image viewer"),
		Description: l10n.T("pinchview replays scripted gestures through a zoomable viewport and renders the result as an animated GIF."),
		Version:     version,
		Commands: []*cli.Command{
			replayCommand(),
			checkCommand(),
			boundsCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func presetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "preset", Aliases: []string{"p"}, Value: "phone", Usage: l10n.T("Device preset (phone, tablet)"), Category: l10n.T("Preset")},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file (replaces the preset)"), Category: l10n.T("Preset")},
		&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Viewport width in pixels"), Category: l10n.T("Viewer")},
		&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Viewport height in pixels"), Category: l10n.T("Viewer")},
		&cli.Float64Flag{Name: "content-width", Usage: l10n.T("Content box width as a fraction of the viewport"), Category: l10n.T("Viewer")},
		&cli.Float64Flag{Name: "content-height", Usage: l10n.T("Content box height as a fraction of the viewport"), Category: l10n.T("Viewer")},
		&cli.Float64Flag{Name: "min-scale", Usage: l10n.T("Minimum zoom scale (0-1]"), Category: l10n.T("Viewer")},
		&cli.Float64Flag{Name: "max-scale", Usage: l10n.T("Maximum zoom scale (1 or more)"), Category: l10n.T("Viewer")},
		&cli.IntFlag{Name: "reset-ms", Usage: l10n.T("Reset animation duration in milliseconds (0 = instant)"), Category: l10n.T("Viewer")},
	}
}

func replayCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output GIF file path (required)"), Category: l10n.T("Output")},
		&cli.StringFlag{Name: "summary", Usage: l10n.T("Output execution summary to file (.md, .yaml or .json)"), Category: l10n.T("Output")},
	}
	flags = append(flags, presetFlags()...)
	flags = append(flags,
		&cli.StringFlag{Name: "quality", Aliases: []string{"q"}, Usage: l10n.T("Quality preset (low, medium, high)"), Category: l10n.T("Preset")},
		&cli.StringFlag{Name: "easing", Value: "quad-in-out", Usage: l10n.T("Reset easing (quad-in-out, cubic-out, linear)"), Category: l10n.T("Viewer")},

		&cli.StringFlag{Name: "images", Aliases: []string{"i"}, Usage: l10n.T("Directory the picker chooses images from"), Category: l10n.T("Content")},
		&cli.StringFlag{Name: "pick-order", Usage: l10n.T("Picker order (sequential, random)"), Category: l10n.T("Content")},
		&cli.Int64Flag{Name: "seed", Usage: l10n.T("Random seed for the picker (default: current time)"), Category: l10n.T("Content")},
		&cli.IntFlag{Name: "max-image", Usage: l10n.T("Downscale images whose longer side exceeds this many pixels"), Category: l10n.T("Content")},

		&cli.StringFlag{Name: "background-color", Usage: l10n.T("Background color (hex, e.g., #121212)"), Category: l10n.T("Layout and Style")},
		&cli.StringFlag{Name: "placeholder-color", Usage: l10n.T("Placeholder color shown before any image is picked"), Category: l10n.T("Layout and Style")},
		&cli.StringFlag{Name: "bounds-color", Usage: l10n.T("Bounds overlay color"), Category: l10n.T("Layout and Style")},
		&cli.BoolFlag{Name: "show-bounds", Aliases: []string{"b"}, Usage: l10n.T("Outline the content box and the pan bounds"), Category: l10n.T("Layout and Style")},
		&cli.IntFlag{Name: "hud-height", Usage: l10n.T("Status strip height in pixels (0 = hidden)"), Category: l10n.T("Layout and Style")},

		&cli.Float64Flag{Name: "fps", Usage: l10n.T("Frames per second when the script does not set one"), Category: l10n.T("Animation and Quality")},
		&cli.IntFlag{Name: "colors", Usage: l10n.T("Palette size (2-256, overrides quality preset)"), Category: l10n.T("Animation and Quality")},
		&cli.BoolFlag{Name: "no-dither", Usage: l10n.T("Disable Floyd-Steinberg dithering"), Category: l10n.T("Animation and Quality")},
		&cli.IntFlag{Name: "loop", Usage: l10n.T("Loop count (0 = forever, -1 = play once)"), Category: l10n.T("Animation and Quality")},
		&cli.IntFlag{Name: "outro-ms", Usage: l10n.T("Duration to hold final frame in milliseconds"), Category: l10n.T("Animation and Quality")},
		&cli.StringFlag{Name: "sampling", Usage: l10n.T("Content resampling (nearest, bilinear, catmull-rom)"), Category: l10n.T("Animation and Quality")},
		&cli.IntFlag{Name: "workers", Usage: l10n.T("Render workers (0 = one per CPU)"), Category: l10n.T("Animation and Quality")},

		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output"), Category: l10n.T("Debug")},
		&cli.StringFlag{Name: "debug-dir", Value: "./debug", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},
		&cli.IntFlag{Name: "debug-every", Value: 1, Usage: l10n.T("Save every n-th rendered frame as PNG"), Category: l10n.T("Debug")},

		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
	)

	return &cli.Command{
		Name:        "replay",
		Usage:       l10n.T("Replay a gesture script as an animated GIF"),
		Description: l10n.T("Run a gesture script through the viewer and save every frame as an animated GIF."),
		ArgsUsage:   "SCRIPT",
		Flags:       flags,
		Action:      runReplay,
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     l10n.T("Validate a gesture script"),
		ArgsUsage: "SCRIPT",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit(l10n.T("Script argument is required"), 2)
			}
			s, err := script.Load(c.Args().First())
			if err != nil {
				return err
			}
			fmt.Println(l10n.F("%s: %d steps (%d picks, %d pinch, %d pan, %d resets, %d waits)",
				c.Args().First(), len(s.Steps),
				s.Count(script.KindPick), s.Count(script.KindPinch), s.Count(script.KindPan),
				s.Count(script.KindReset), s.Count(script.KindWait)))
			return nil
		},
	}
}

func boundsCommand() *cli.Command {
	flags := append(presetFlags(),
		&cli.Float64SliceFlag{Name: "scale", Aliases: []string{"s"}, Usage: l10n.T("Scales to report (default: min, 1, 2, max)"), Category: l10n.T("Viewer")},
	)
	return &cli.Command{
		Name:   "bounds",
		Usage:  l10n.T("Print the pan bounds for a viewer configuration"),
		Flags:  flags,
		Action: runBounds,
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Println(l10n.F("pinchview version %s", version))
			return nil
		},
	}
}

func runReplay(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("Script argument is required"), 2)
	}
	scriptPath := c.Args().First()
	output := c.String("output")

	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		level, err := ports.ParseLogLevel(c.String("log-level"))
		if err != nil {
			return cli.Exit(err, 2)
		}
		log = logger.NewConsole(level)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn(l10n.T("Interrupted, shutting down..."))
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	interp, err := ggrenderer.ParseInterpolator(cfg.Sampling)
	if err != nil {
		return cli.Exit(err, 2)
	}
	renderer := ggrenderer.New(ggrenderer.WithInterpolator(interp))
	animator := tween.New(tween.ParseEasing(c.String("easing")))
	encoder := gifencoder.New()

	imagesDir, err := filepath.Abs(cfg.ImagesDir)
	if err != nil {
		return fmt.Errorf("resolve images directory: %w", err)
	}
	seed := time.Now().UnixNano()
	if c.IsSet("seed") {
		seed = c.Int64("seed")
	}
	picker := dirpicker.New(fs, imagesDir, dirpicker.ParseOrder(cfg.PickOrder), seed)
	source := imagesource.New(fs, renderer, filepath.Dir(scriptPath), cfg.MaxImage)

	if ok, err := fs.Exists(imagesDir); err == nil && !ok {
		log.Warn(l10n.F("Images directory %s does not exist; picks will be dismissed", imagesDir))
	}

	// Create debug sink
	sink := filesink.Disabled()
	if cfg.DebugDir != "" {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer, filesink.WithFrameStride(cfg.DebugEvery))
	}

	// Create stages
	orch := orchestrator.New(
		layout.NewStage(),
		replay.NewStage(animator, picker, source, log),
		render.NewStage(renderer, sink, log, cfg.Workers),
		encode.NewStage(encoder, log),
		fs,
		sink,
		log,
	)

	log.Info(l10n.F("Replaying %s (%s preset)...", scriptPath, cfg.Preset))

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig(scriptPath, output))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return cli.Exit(l10n.T("Interrupted"), 130)
		}
		return err
	}

	log.Info(l10n.F("Output saved to %s", output))

	if path := c.String("summary"); path != "" {
		if err := writeSummary(fs, path, scriptPath, cfg, result); err != nil {
			log.Error(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", path))
		}
	}
	return nil
}

// buildConfig creates a Config from the preset or config file and CLI overrides.
func buildConfig(c *cli.Context) (pinchview.Config, error) {
	var builder *pinchview.ConfigBuilder
	switch {
	case c.IsSet("config"):
		fileCfg, err := config.LoadFromFile(c.String("config"))
		if err != nil {
			return pinchview.Config{}, fmt.Errorf("load config: %w", err)
		}
		builder = pinchview.NewConfigBuilderFromFile(fileCfg)
	case c.String("preset") == "tablet":
		builder = pinchview.NewTabletConfigBuilder()
	default:
		builder = pinchview.NewConfigBuilder()
	}

	applyViewerFlags(c, builder)

	// The replay command has more flags than bounds
	if c.IsSet("quality") {
		builder.WithQualityPreset(pinchview.QualityPreset(c.String("quality")))
	}
	if c.IsSet("images") {
		builder.WithImagesDir(c.String("images"))
	}
	if c.IsSet("pick-order") {
		builder.WithPickOrder(c.String("pick-order"))
	}
	if c.IsSet("max-image") {
		builder.WithMaxImage(c.Int("max-image"))
	}
	if c.IsSet("background-color") {
		builder.WithBackgroundColor(config.ParseColor(c.String("background-color")))
	}
	if c.IsSet("placeholder-color") {
		builder.WithPlaceholderColor(config.ParseColor(c.String("placeholder-color")))
	}
	if c.IsSet("bounds-color") {
		builder.WithBoundsColor(config.ParseColor(c.String("bounds-color")))
	}
	if c.IsSet("show-bounds") {
		builder.WithShowBounds(c.Bool("show-bounds"))
	}
	if c.IsSet("hud-height") {
		builder.WithHUDHeight(c.Int("hud-height"))
	}
	if c.IsSet("fps") {
		builder.WithFPS(c.Float64("fps"))
	}
	if c.IsSet("colors") {
		builder.WithColors(c.Int("colors"))
	}
	if c.IsSet("no-dither") {
		builder.WithDither(!c.Bool("no-dither"))
	}
	if c.IsSet("loop") {
		builder.WithLoopCount(c.Int("loop"))
	}
	if c.IsSet("outro-ms") {
		builder.WithOutroMs(c.Int("outro-ms"))
	}
	if c.IsSet("workers") {
		builder.WithWorkers(c.Int("workers"))
	}
	if c.IsSet("sampling") {
		builder.WithSampling(c.String("sampling"))
	}
	if c.Bool("debug") {
		builder.WithDebug(c.String("debug-dir"), c.Int("debug-every"))
	}

	return builder.Build(), nil
}

func applyViewerFlags(c *cli.Context, builder *pinchview.ConfigBuilder) {
	current := builder.Build()
	if c.IsSet("width") || c.IsSet("height") {
		w, h := current.ViewportWidth, current.ViewportHeight
		if c.IsSet("width") {
			w = c.Int("width")
		}
		if c.IsSet("height") {
			h = c.Int("height")
		}
		builder.WithViewportSize(w, h)
	}
	if c.IsSet("content-width") || c.IsSet("content-height") {
		w, h := current.ContentWidthRatio, current.ContentHeightRatio
		if c.IsSet("content-width") {
			w = c.Float64("content-width")
		}
		if c.IsSet("content-height") {
			h = c.Float64("content-height")
		}
		builder.WithContentRatio(w, h)
	}
	if c.IsSet("min-scale") || c.IsSet("max-scale") {
		lo, hi := current.MinScale, current.MaxScale
		if c.IsSet("min-scale") {
			lo = c.Float64("min-scale")
		}
		if c.IsSet("max-scale") {
			hi = c.Float64("max-scale")
		}
		builder.WithScaleLimits(lo, hi)
	}
	if c.IsSet("reset-ms") {
		builder.WithResetDurationMs(c.Int("reset-ms"))
	}
}

func runBounds(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}
	vc := cfg.ViewportConfig()
	if err := vc.Validate(); err != nil {
		return err
	}

	scales := c.Float64Slice("scale")
	if len(scales) == 0 {
		scales = []float64{vc.MinScale, 1, 2, vc.MaxScale}
	}

	fmt.Println(l10n.F("Viewport %gx%g, content %gx%g", vc.ViewportWidth, vc.ViewportHeight, vc.ContentWidth, vc.ContentHeight))
	fmt.Printf("%8s %10s %10s\n", l10n.T("Scale"), "X", "Y")
	for _, s := range scales {
		s = viewport.Clamp(s, vc.MinScale, vc.MaxScale)
		bx, by := viewport.ComputeBounds(vc, s)
		fmt.Printf("%8.2f %10.1f %10.1f\n", s, bx, by)
	}
	return nil
}

func writeSummary(fs ports.FileSystem, path, scriptPath string, cfg pinchview.Config, result orchestrator.RunResult) error {
	s := summarizer.NewBuilder().
		WithScript(result.ScriptName, scriptPath, result.Stats.Steps).
		WithReplay(summarizer.ReplayInfo{
			DurationMs:     result.Stats.DurationMs,
			Picks:          result.Stats.Picks,
			CancelledPicks: result.Stats.CancelledPicks,
			Resets:         result.Stats.Resets,
			PinchUpdates:   result.Stats.PinchUpdates,
			PanUpdates:     result.Stats.PanUpdates,
			Rejected:       result.Stats.Rejected,
			ScaleClamps:    result.Stats.ScaleClamps,
			OffsetClamps:   result.Stats.OffsetClamps,
			Final:          result.Stats.Final.String(),
		}).
		WithSettings(summarizer.Settings{
			Preset:          cfg.Preset,
			ViewportWidth:   result.ViewportWidth,
			ViewportHeight:  result.ViewportHeight,
			MinScale:        result.MinScale,
			MaxScale:        result.MaxScale,
			ResetDurationMs: cfg.ResetDurationMs,
			FPS:             result.FPS,
		}).
		WithAnimation(summarizer.AnimationInfo{
			FrameCount:    result.FrameCount,
			DurationMs:    result.AnimationMs,
			FileSize:      result.FileSize,
			Colors:        cfg.Colors,
			Dither:        cfg.Dither,
			OutroDuration: cfg.OutroMs,
		}).
		Build()

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	return summarizer.NewWriter(summarizer.ForPath(path, formatter), fs).Write(path, s)
}
