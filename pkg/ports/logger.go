// Package ports declares the collaborators of the viewer and the replay
// pipeline. Implementations live under pkg/adapters, test doubles under pkg/mocks.
package ports

import (
	"fmt"
	"strings"
)

// LogLevel orders log messages by severity. Messages below the configured
// level are dropped.
type LogLevel int

const (
	LevelDebug LogLevel = iota // per-frame and per-gesture detail from components
	LevelInfo                  // pipeline progress
	LevelWarn                  // rejected events, recoverable problems
	LevelError                 // the run is about to fail
	LevelQuiet                 // nothing is printed
)

var levelNames = [...]string{"debug", "info", "warn", "error", "quiet"}

func (l LogLevel) String() string {
	if l < LevelDebug || l > LevelQuiet {
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLogLevel parses a level name, ignoring case.
func ParseLogLevel(s string) (LogLevel, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return LogLevel(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q (want one of %s)", s, strings.Join(levelNames[:], ", "))
}

// Logger receives printf-style messages. msg doubles as the translation key,
// so callers pass a constant format string.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that tags messages with component,
	// e.g. "viewport" or "render".
	WithComponent(component string) Logger
}
