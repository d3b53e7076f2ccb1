package summarizer

import (
	"encoding/json"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func structuredSummary() *Summary {
	s := NewBuilder().
		WithScript("zoom and pan", "scripts/zoom.yaml", 12).
		WithReplay(ReplayInfo{DurationMs: 1500, Picks: 1, PinchUpdates: 4, OffsetClamps: 1, Final: "scale=1.000 offset=(0.0, 0.0)"}).
		WithSettings(Settings{Preset: "phone", ViewportWidth: 400, ViewportHeight: 800, MinScale: 0.5, MaxScale: 4, FPS: 24}).
		WithAnimation(AnimationInfo{FrameCount: 36, DurationMs: 2500, FileSize: 4096, Colors: 128, Dither: true, OutroDuration: 1000}).
		Build()
	s.GeneratedAt = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	return s
}

func TestYAMLFormatter(t *testing.T) {
	data, err := YAMLFormatter{}.Format(structuredSummary())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var doc struct {
		Script struct {
			Name string `yaml:"name"`
		} `yaml:"script"`
		Replay struct {
			OffsetClamps int `yaml:"offset_clamps"`
		} `yaml:"replay"`
		Animation struct {
			OutroMs int `yaml:"outro_ms"`
		} `yaml:"animation"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, data)
	}
	if doc.Script.Name != "zoom and pan" {
		t.Errorf("unexpected script name %q", doc.Script.Name)
	}
	if doc.Replay.OffsetClamps != 1 {
		t.Errorf("unexpected offset clamps %d", doc.Replay.OffsetClamps)
	}
	if doc.Animation.OutroMs != 1000 {
		t.Errorf("unexpected outro %d", doc.Animation.OutroMs)
	}
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(structuredSummary())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var doc struct {
		GeneratedAt time.Time `json:"generated_at"`
		Settings    struct {
			Preset   string  `json:"preset"`
			MaxScale float64 `json:"max_scale"`
		} `json:"settings"`
		Animation struct {
			FileSize int64 `json:"file_size"`
		} `json:"animation"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, data)
	}
	if doc.Settings.Preset != "phone" || doc.Settings.MaxScale != 4 {
		t.Errorf("unexpected settings: %+v", doc.Settings)
	}
	if doc.Animation.FileSize != 4096 {
		t.Errorf("unexpected file size %d", doc.Animation.FileSize)
	}
	if !doc.GeneratedAt.Equal(structuredSummary().GeneratedAt) {
		t.Errorf("unexpected timestamp %v", doc.GeneratedAt)
	}
}

func TestForPath(t *testing.T) {
	md := NewMarkdownFormatter()

	tests := []struct {
		path string
		want Formatter
	}{
		{"summary.yaml", YAMLFormatter{}},
		{"out/SUMMARY.YML", YAMLFormatter{}},
		{"summary.json", JSONFormatter{}},
		{"summary.md", md},
		{"summary", md},
	}
	for _, tt := range tests {
		if got := ForPath(tt.path, md); got != tt.want {
			t.Errorf("ForPath(%q) = %T, want %T", tt.path, got, tt.want)
		}
	}
}
