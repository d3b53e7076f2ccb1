package logger

import (
	"fmt"
	"sync"

	"github.com/user/pinchview/pkg/ports"
)

// NoopLogger discards everything. It backs --quiet and most tests.
type NoopLogger struct{}

// NewNoop returns a NoopLogger.
func NewNoop() *NoopLogger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(string, ...interface{}) {}
func (l *NoopLogger) Info(string, ...interface{})  {}
func (l *NoopLogger) Warn(string, ...interface{})  {}
func (l *NoopLogger) Error(string, ...interface{}) {}

func (l *NoopLogger) WithComponent(string) ports.Logger { return l }

// Entry is one message captured by a Recorder. Message is formatted but not
// translated.
type Entry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// Recorder keeps every message in memory, for tests that assert on logging.
type Recorder struct {
	component string
	log       *entryLog
}

type entryLog struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{log: &entryLog{}}
}

func (r *Recorder) Debug(msg string, args ...interface{}) { r.add(ports.LevelDebug, msg, args) }
func (r *Recorder) Info(msg string, args ...interface{})  { r.add(ports.LevelInfo, msg, args) }
func (r *Recorder) Warn(msg string, args ...interface{})  { r.add(ports.LevelWarn, msg, args) }
func (r *Recorder) Error(msg string, args ...interface{}) { r.add(ports.LevelError, msg, args) }

// WithComponent returns a Recorder sharing the same entries.
func (r *Recorder) WithComponent(component string) ports.Logger {
	return &Recorder{component: component, log: r.log}
}

// Entries returns the captured messages at or above level, oldest first.
func (r *Recorder) Entries(level ports.LogLevel) []Entry {
	r.log.mu.Lock()
	defer r.log.mu.Unlock()
	var out []Entry
	for _, e := range r.log.entries {
		if e.Level >= level {
			out = append(out, e)
		}
	}
	return out
}

func (r *Recorder) add(level ports.LogLevel, msg string, args []interface{}) {
	r.log.mu.Lock()
	defer r.log.mu.Unlock()
	r.log.entries = append(r.log.entries, Entry{
		Level:     level,
		Component: r.component,
		Message:   fmt.Sprintf(msg, args...),
	})
}

var (
	_ ports.Logger = (*NoopLogger)(nil)
	_ ports.Logger = (*Recorder)(nil)
)
