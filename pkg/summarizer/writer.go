package summarizer

import (
	"fmt"

	"github.com/user/pinchview/pkg/ports"
)

// Writer formats summaries and stores them through a ports.FileSystem.
type Writer struct {
	formatter Formatter
	fs        ports.FileSystem
}

// NewWriter creates a Writer.
func NewWriter(formatter Formatter, fs ports.FileSystem) *Writer {
	return &Writer{formatter: formatter, fs: fs}
}

// Write formats summary and writes it to path. Parent directories are created
// by the file system.
func (w *Writer) Write(path string, summary *Summary) error {
	data, err := w.formatter.Format(summary)
	if err != nil {
		return fmt.Errorf("format summary: %w", err)
	}
	if err := w.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
