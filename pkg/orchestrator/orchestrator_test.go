package orchestrator

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/user/pinchview/pkg/adapters/logger"
	"github.com/user/pinchview/pkg/mocks"
	"github.com/user/pinchview/pkg/pipeline"
	"github.com/user/pinchview/pkg/ports"
	"github.com/user/pinchview/pkg/stages/layout"
	"github.com/user/pinchview/pkg/viewport"
)

const testScript = `
name: quick zoom
steps:
  - pick: next
  - pinch: start
  - pinch: update
    scale: 2
    focal: [200, 400]
  - pinch: end
  - reset: true
`

// mockReplayStage is a mock for the replay stage.
type mockReplayStage struct {
	result pipeline.ReplayResult
	err    error
	input  pipeline.ReplayInput
}

func (m *mockReplayStage) Execute(ctx context.Context, input pipeline.ReplayInput) (pipeline.ReplayResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.ReplayResult{}, m.err
	}
	return m.result, nil
}

// mockRenderStage is a mock for the render stage.
type mockRenderStage struct {
	result pipeline.RenderResult
	err    error
	input  pipeline.RenderInput
}

func (m *mockRenderStage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.RenderResult{}, m.err
	}
	return m.result, nil
}

// mockEncodeStage is a mock for the encode stage.
type mockEncodeStage struct {
	result pipeline.EncodeResult
	err    error
	input  pipeline.EncodeInput
}

func (m *mockEncodeStage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.EncodeResult{}, m.err
	}
	return m.result, nil
}

type fixture struct {
	fs     *mocks.FileSystem
	sink   *mocks.DebugSink
	replay *mockReplayStage
	render *mockRenderStage
	encode *mockEncodeStage
	log    *logger.Recorder
	orch   *Orchestrator
}

func newFixture(debug bool) *fixture {
	f := &fixture{
		fs:   mocks.NewFileSystem(),
		sink: mocks.NewDebugSink(debug),
		replay: &mockReplayStage{
			result: pipeline.ReplayResult{
				Frames: []pipeline.FrameState{
					{Index: 0, TimestampMs: 0, Transform: viewport.Identity},
					{Index: 1, TimestampMs: 33, Transform: viewport.Transform{Scale: 2}},
				},
				Stats: pipeline.ReplayStats{Steps: 5, Frames: 2, DurationMs: 66, Picks: 1, Resets: 1},
			},
		},
		render: &mockRenderStage{
			result: pipeline.RenderResult{
				Frames: []pipeline.RenderedFrame{
					{TimestampMs: 0, Image: image.NewRGBA(image.Rect(0, 0, 400, 800))},
					{TimestampMs: 33, Image: image.NewRGBA(image.Rect(0, 0, 400, 800))},
				},
			},
		},
		encode: &mockEncodeStage{
			result: pipeline.EncodeResult{
				Data:       []byte("GIF89a"),
				DurationMs: 1033,
				FileSize:   6,
			},
		},
	}
	f.fs.WriteFile("session.yaml", []byte(testScript))
	f.log = logger.NewRecorder()
	f.orch = New(
		layout.NewStage(),
		f.replay,
		f.render,
		f.encode,
		f.fs,
		f.sink,
		f.log,
	)
	return f
}

func testConfig() Config {
	config := DefaultConfig()
	config.ScriptPath = "session.yaml"
	config.OutputPath = "output.gif"
	return config
}

func TestOrchestrator_Run(t *testing.T) {
	f := newFixture(false)

	result, err := f.orch.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, ok := f.fs.GetFile("output.gif")
	if !ok {
		t.Fatal("expected output file to be written")
	}
	if string(data) != "GIF89a" {
		t.Errorf("expected encoded data, got %q", data)
	}

	if result.ScriptName != "quick zoom" {
		t.Errorf("expected script name %q, got %q", "quick zoom", result.ScriptName)
	}
	if result.FrameCount != 2 {
		t.Errorf("expected 2 frames, got %d", result.FrameCount)
	}
	if result.AnimationMs != 1033 {
		t.Errorf("expected animation 1033 ms, got %d", result.AnimationMs)
	}
	if result.Stats.Resets != 1 {
		t.Errorf("expected stats to be carried, got %+v", result.Stats)
	}
	if result.ViewportWidth != 400 || result.ViewportHeight != 800 {
		t.Errorf("expected 400x800 viewport, got %dx%d", result.ViewportWidth, result.ViewportHeight)
	}
	if result.FPS != 30 {
		t.Errorf("expected fallback fps 30, got %f", result.FPS)
	}

	// Stages see the parsed script and the computed layout.
	if len(f.replay.input.Script.Steps) != 5 {
		t.Errorf("expected 5 script steps, got %d", len(f.replay.input.Script.Steps))
	}
	if f.replay.input.Layout.ContentBox.Width != 320 {
		t.Errorf("expected content width 320, got %f", f.replay.input.Layout.ContentBox.Width)
	}
	if len(f.render.input.Frames) != 2 {
		t.Errorf("expected render input of 2 frames, got %d", len(f.render.input.Frames))
	}
	if !f.render.input.ShowHUD || f.render.input.Layout.HUDArea.Height != 24 {
		t.Error("expected HUD to be enabled by default")
	}
	if f.encode.input.Colors != 256 || f.encode.input.OutroMs != 1000 {
		t.Errorf("unexpected encode input: colors=%d outro=%d", f.encode.input.Colors, f.encode.input.OutroMs)
	}
}

func TestOrchestrator_Run_TimingsAndWarnings(t *testing.T) {
	f := newFixture(false)
	f.replay.result.Stats.Rejected = 2

	result, err := f.orch.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stages []string
	for _, st := range result.Timings {
		stages = append(stages, st.Stage)
	}
	want := []string{"layout", "replay", "render", "encode"}
	if len(stages) != len(want) {
		t.Fatalf("expected timings for %v, got %v", want, stages)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("timing %d: expected %s, got %s", i, want[i], stages[i])
		}
	}

	warns := f.log.Entries(ports.LevelWarn)
	if len(warns) != 1 || !strings.Contains(warns[0].Message, "2") {
		t.Errorf("expected one rejection warning, got %+v", warns)
	}

	// A second run starts its timings afresh.
	result, err = f.orch.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Timings) != 4 {
		t.Errorf("expected 4 timings on rerun, got %d", len(result.Timings))
	}
}

func TestOrchestrator_Run_ScriptFPS(t *testing.T) {
	f := newFixture(false)
	f.fs.WriteFile("session.yaml", []byte("fps: 12\nsteps:\n  - reset: true\n"))

	result, err := f.orch.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FPS != 12 || f.encode.input.FPS != 12 {
		t.Errorf("expected script fps 12, got result %f encode %f", result.FPS, f.encode.input.FPS)
	}
	if result.ScriptName != "session.yaml" {
		t.Errorf("expected script path as name, got %q", result.ScriptName)
	}
}

func TestOrchestrator_Run_NoHUD(t *testing.T) {
	f := newFixture(false)
	config := testConfig()
	config.ShowHUD = false
	config.BackgroundColor = [4]uint8{1, 2, 3, 255}

	if _, err := f.orch.Run(context.Background(), config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.render.input.Layout.HUDArea.Height != 0 {
		t.Errorf("expected no HUD area, got height %f", f.render.input.Layout.HUDArea.Height)
	}
	r, g, b, _ := f.render.input.Theme.BackgroundColor.RGBA()
	if r>>8 != 1 || g>>8 != 2 || b>>8 != 3 {
		t.Error("expected background color override")
	}
}

func TestOrchestrator_Run_WithDebugSink(t *testing.T) {
	f := newFixture(true)

	if _, err := f.orch.Run(context.Background(), testConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.sink.LayoutJSON) == 0 {
		t.Error("expected layout JSON to be saved")
	}
	if len(f.sink.TraceJSON) == 0 {
		t.Error("expected trace JSON to be saved")
	}
}

func TestOrchestrator_Run_DebugSinkFailureIsNotFatal(t *testing.T) {
	f := newFixture(true)
	f.sink.SaveJSONErr = errors.New("disk full")

	if _, err := f.orch.Run(context.Background(), testConfig()); err != nil {
		t.Fatalf("debug output must not fail the run: %v", err)
	}

	var failed int
	for _, e := range f.log.Entries(ports.LevelWarn) {
		if strings.Contains(e.Message, "disk full") {
			failed++
		}
	}
	if failed != 2 {
		t.Errorf("expected a warning for the layout and the trace, got %d", failed)
	}
}

func TestOrchestrator_Run_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name  string
		setup func(f *fixture, c *Config)
	}{
		{"missing script", func(f *fixture, c *Config) { c.ScriptPath = "missing.yaml" }},
		{"invalid script", func(f *fixture, c *Config) { f.fs.WriteFile("session.yaml", []byte("steps: []")) }},
		{"invalid layout", func(f *fixture, c *Config) { c.MinScale = 0 }},
		{"replay", func(f *fixture, c *Config) { f.replay.err = boom }},
		{"render", func(f *fixture, c *Config) { f.render.err = boom }},
		{"encode", func(f *fixture, c *Config) { f.encode.err = boom }},
		{"write", func(f *fixture, c *Config) {
			f.fs.WriteFileFunc = func(path string, data []byte) error { return boom }
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(false)
			config := testConfig()
			tt.setup(f, &config)

			if _, err := f.orch.Run(context.Background(), config); err == nil {
				t.Error("expected error")
			}
			if _, ok := f.fs.GetFile("output.gif"); ok {
				t.Error("expected no output on failure")
			}
		})
	}
}
