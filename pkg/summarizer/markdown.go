package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion sets the version printed in the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter. Labels are left in
// English unless a translator is given.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
		version:   "dev",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ Formatter = (*MarkdownFormatter)(nil)

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) ([]byte, error) {
	return []byte(f.Render(s)), nil
}

// Render returns the Markdown document for s.
func (f *MarkdownFormatter) Render(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Replay Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05"))

	// Results
	fmt.Fprintf(&b, "## %s\n\n", t("Results"))
	f.tableHeader(&b)
	f.row(&b, "Script", s.Script.Name)
	if s.Script.Path != "" && s.Script.Path != s.Script.Name {
		f.row(&b, "Script Path", s.Script.Path)
	}
	f.row(&b, "Steps", fmt.Sprintf("%d", s.Script.Steps))
	f.row(&b, "Replay Duration", fmt.Sprintf("%d ms", s.Replay.DurationMs))
	f.row(&b, "Picks", formatPicks(s.Replay.Picks, s.Replay.CancelledPicks, t))
	f.row(&b, "Pinch Updates", fmt.Sprintf("%d", s.Replay.PinchUpdates))
	f.row(&b, "Pan Updates", fmt.Sprintf("%d", s.Replay.PanUpdates))
	f.row(&b, "Resets", fmt.Sprintf("%d", s.Replay.Resets))
	f.row(&b, "Clamped Updates", fmt.Sprintf("%d / %d", s.Replay.ScaleClamps, s.Replay.OffsetClamps))
	if s.Replay.Rejected > 0 {
		f.row(&b, "Rejected Events", fmt.Sprintf("%d", s.Replay.Rejected))
	}
	if s.Replay.Final != "" {
		f.row(&b, "Final Transform", s.Replay.Final)
	}
	b.WriteString("\n")

	// Settings
	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	f.tableHeader(&b)
	if s.Settings.Preset != "" {
		f.row(&b, "Preset", s.Settings.Preset)
	}
	f.row(&b, "Viewport Size", fmt.Sprintf("%dx%d", s.Settings.ViewportWidth, s.Settings.ViewportHeight))
	f.row(&b, "Scale Range", fmt.Sprintf("%.2f - %.2f", s.Settings.MinScale, s.Settings.MaxScale))
	f.row(&b, "Reset Duration", formatReset(s.Settings.ResetDurationMs, t))
	f.row(&b, "Frame Rate", fmt.Sprintf("%.1f fps", s.Settings.FPS))
	b.WriteString("\n")

	// Animation
	fmt.Fprintf(&b, "## %s\n\n", t("Animation Details"))
	f.tableHeader(&b)
	f.row(&b, "Frame Count", fmt.Sprintf("%d", s.Animation.FrameCount))
	f.row(&b, "Animation Duration", fmt.Sprintf("%d ms", s.Animation.DurationMs))
	f.row(&b, "Animation File Size", formatBytes(s.Animation.FileSize))
	f.row(&b, "Colors", formatColors(s.Animation.Colors, s.Animation.Dither, t))
	f.row(&b, "Outro Duration", fmt.Sprintf("%d ms", s.Animation.OutroDuration))
	b.WriteString("\n")

	fmt.Fprintf(&b, "---\n%s pinchview %s\n", t("Generated by"), f.version)
	return b.String()
}

func (f *MarkdownFormatter) tableHeader(b *strings.Builder) {
	fmt.Fprintf(b, "| %s | %s |\n|---|---|\n", f.translate("Item"), f.translate("Value"))
}

func (f *MarkdownFormatter) row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", f.translate(label), escapeCell(value))
}

func formatPicks(picks, cancelled int, t func(string) string) string {
	if cancelled == 0 {
		return fmt.Sprintf("%d", picks)
	}
	return fmt.Sprintf("%d (%d %s)", picks, cancelled, t("cancelled"))
}

func formatReset(ms int, t func(string) string) string {
	if ms == 0 {
		return t("Instant")
	}
	return fmt.Sprintf("%d ms", ms)
}

func formatColors(colors int, dither bool, t func(string) string) string {
	if dither {
		return fmt.Sprintf("%d (%s)", colors, t("dithered"))
	}
	return fmt.Sprintf("%d", colors)
}

// escapeCell keeps pipes in values from breaking the table.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// formatBytes formats a byte count using binary units.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
