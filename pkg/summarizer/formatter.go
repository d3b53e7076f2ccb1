// Package summarizer describes a finished replay for humans and tools.
package summarizer

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter serializes a Summary.
type Formatter interface {
	Format(summary *Summary) ([]byte, error)
}

// FormatFunc lets a plain function serve as a Formatter.
type FormatFunc func(summary *Summary) ([]byte, error)

func (f FormatFunc) Format(summary *Summary) ([]byte, error) {
	return f(summary)
}

// YAMLFormatter emits the summary as YAML, for diffing runs.
type YAMLFormatter struct{}

func (YAMLFormatter) Format(s *Summary) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	return data, nil
}

// JSONFormatter emits the summary as indented JSON, for CI tooling.
type JSONFormatter struct{}

func (JSONFormatter) Format(s *Summary) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	return append(data, '\n'), nil
}

// ForPath picks a formatter from the extension of path: .yaml and .yml give
// YAML, .json gives JSON, anything else falls back to markdown.
func ForPath(path string, markdown *MarkdownFormatter) Formatter {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLFormatter{}
	case ".json":
		return JSONFormatter{}
	default:
		return markdown
	}
}

var (
	_ Formatter = YAMLFormatter{}
	_ Formatter = JSONFormatter{}
)
