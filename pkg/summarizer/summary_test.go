package summarizer

import (
	"errors"
	"testing"
	"time"

	"github.com/user/pinchview/pkg/mocks"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithScript(t *testing.T) {
	summary := NewBuilder().
		WithScript("zoom and reset", "scripts/session.yaml", 11).
		Build()

	if summary.Script.Name != "zoom and reset" {
		t.Errorf("expected name 'zoom and reset', got '%s'", summary.Script.Name)
	}
	if summary.Script.Path != "scripts/session.yaml" {
		t.Errorf("expected path 'scripts/session.yaml', got '%s'", summary.Script.Path)
	}
	if summary.Script.Steps != 11 {
		t.Errorf("expected 11 steps, got %d", summary.Script.Steps)
	}
}

func TestBuilder_FullChain(t *testing.T) {
	summary := NewBuilder().
		WithScript("s", "s.yaml", 3).
		WithReplay(ReplayInfo{DurationMs: 900, Resets: 1}).
		WithSettings(Settings{Preset: "phone", ViewportWidth: 400}).
		WithAnimation(AnimationInfo{FrameCount: 27}).
		Build()

	if summary.Replay.DurationMs != 900 || summary.Replay.Resets != 1 {
		t.Error("Replay not set correctly")
	}
	if summary.Settings.Preset != "phone" || summary.Settings.ViewportWidth != 400 {
		t.Error("Settings not set correctly")
	}
	if summary.Animation.FrameCount != 27 {
		t.Error("Animation.FrameCount not set correctly")
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	formatter := FormatFunc(func(s *Summary) ([]byte, error) { return []byte("summary of " + s.Script.Name), nil })
	w := NewWriter(formatter, fs)

	summary := NewBuilder().WithScript("demo", "", 1).Build()
	if err := w.Write("out/summary.md", summary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, ok := fs.GetFile("out/summary.md")
	if !ok {
		t.Fatal("expected summary file")
	}
	if string(data) != "summary of demo" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestWriter_Write_Errors(t *testing.T) {
	boom := errors.New("disk full")

	tests := []struct {
		name      string
		formatter Formatter
		writeErr  error
	}{
		{"format", FormatFunc(func(*Summary) ([]byte, error) { return nil, boom }), nil},
		{"write", NewMarkdownFormatter(), boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewFileSystem()
			if tt.writeErr != nil {
				fs.WriteFileFunc = func(path string, data []byte) error { return tt.writeErr }
			}
			err := NewWriter(tt.formatter, fs).Write("summary.md", NewSummary())
			if !errors.Is(err, boom) {
				t.Errorf("expected wrapped error, got %v", err)
			}
			if _, ok := fs.GetFile("summary.md"); ok {
				t.Error("expected no summary on failure")
			}
		})
	}
}
