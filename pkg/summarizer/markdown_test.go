package summarizer

import (
	"strings"
	"testing"
	"time"
)

func testSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Script: ScriptInfo{
			Name:  "zoom and reset",
			Path:  "scripts/session.yaml",
			Steps: 11,
		},
		Replay: ReplayInfo{
			DurationMs:     1100,
			Picks:          2,
			CancelledPicks: 1,
			Resets:         1,
			PinchUpdates:   2,
			PanUpdates:     1,
			ScaleClamps:    0,
			OffsetClamps:   1,
			Final:          "scale=1.000 offset=(0.0, 0.0)",
		},
		Settings: Settings{
			Preset:          "phone",
			ViewportWidth:   400,
			ViewportHeight:  800,
			MinScale:        0.5,
			MaxScale:        4,
			ResetDurationMs: 300,
			FPS:             25,
		},
		Animation: AnimationInfo{
			FrameCount:    28,
			DurationMs:    2100,
			FileSize:      1024 * 1024,
			Colors:        128,
			Dither:        true,
			OutroDuration: 1000,
		},
	}
}

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	result := NewMarkdownFormatter().Render(testSummary())

	checks := []string{
		"# Replay Summary",
		"2024-01-15 10:30:00",
		"zoom and reset",
		"scripts/session.yaml",
		"| Steps | 11 |",
		"1100 ms",
		"| Picks | 2 (1 cancelled) |",
		"| Clamped Updates | 0 / 1 |",
		"scale=1.000 offset=(0.0, 0.0)",
		"phone",
		"400x800",
		"0.50 - 4.00",
		"300 ms",
		"25.0 fps",
		"| Frame Count | 28 |",
		"1.00 MB",
		"128 (dithered)",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}

	if strings.Contains(result, "Rejected Events") {
		t.Error("expected no rejected row when nothing was rejected")
	}
}

func TestMarkdownFormatter_Format_Variants(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Summary)
		want    []string
		notWant []string
	}{
		{
			name:   "rejected events",
			mutate: func(s *Summary) { s.Replay.Rejected = 3 },
			want:   []string{"| Rejected Events | 3 |"},
		},
		{
			name:    "no cancelled picks",
			mutate:  func(s *Summary) { s.Replay.CancelledPicks = 0 },
			want:    []string{"| Picks | 2 |"},
			notWant: []string{"cancelled"},
		},
		{
			name:   "instant reset",
			mutate: func(s *Summary) { s.Settings.ResetDurationMs = 0 },
			want:   []string{"| Reset Duration | Instant |"},
		},
		{
			name:    "no dithering",
			mutate:  func(s *Summary) { s.Animation.Dither = false },
			want:    []string{"| Colors | 128 |"},
			notWant: []string{"dithered"},
		},
		{
			name:    "path equals name",
			mutate:  func(s *Summary) { s.Script.Path = s.Script.Name },
			notWant: []string{"Script Path"},
		},
		{
			name:   "pipe in transform",
			mutate: func(s *Summary) { s.Replay.Final = "a|b" },
			want:   []string{`a\|b`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSummary()
			tt.mutate(s)
			result := NewMarkdownFormatter().Render(s)

			for _, w := range tt.want {
				if !strings.Contains(result, w) {
					t.Errorf("expected output to contain %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(result, w) {
					t.Errorf("expected output NOT to contain %q", w)
				}
			}
		})
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Replay Summary": "リプレイサマリー",
			"Script":         "スクリプト",
			"Instant":        "即時",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	formatter := NewMarkdownFormatter(WithTranslator(translator))

	s := testSummary()
	s.Settings.ResetDurationMs = 0
	result := formatter.Render(s)

	for _, want := range []string{"リプレイサマリー", "スクリプト", "即時"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected translated %q", want)
		}
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	formatter := NewMarkdownFormatter(WithVersion("v1.2.0"))

	result := formatter.Render(testSummary())

	if !strings.Contains(result, "v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1536 * 1024 * 1024, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
