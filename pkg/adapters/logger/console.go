// Package logger implements ports.Logger for the terminal and for tests.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
	"github.com/user/pinchview/pkg/ports"
)

const (
	ansiReset  = "\033[0m"
	ansiGray   = "\033[90m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
	ansiCyan   = "\033[36m"
)

var levelColors = map[ports.LogLevel]string{
	ports.LevelDebug: ansiGray,
	ports.LevelWarn:  ansiYellow,
	ports.LevelError: ansiRed,
}

// console is the destination shared by a logger and all of its component
// loggers, so concurrent render workers never interleave partial lines.
type console struct {
	mu     sync.Mutex
	out    io.Writer // debug, info
	errOut io.Writer // warn, error
	color  bool
}

// ConsoleLogger prints translated messages, one per line.
type ConsoleLogger struct {
	level     ports.LogLevel
	component string
	dst       *console
}

// NewConsole logs to stdout and stderr, with color when stdout is a terminal.
func NewConsole(level ports.LogLevel) *ConsoleLogger {
	return NewConsoleWriter(level, os.Stdout, os.Stderr)
}

// NewConsoleWriter logs to arbitrary writers. Color is only used when out is
// a terminal.
func NewConsoleWriter(level ports.LogLevel, out, errOut io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		level: level,
		dst: &console{
			out:    out,
			errOut: errOut,
			color:  isTerminal(out),
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) { l.log(ports.LevelDebug, msg, args) }
func (l *ConsoleLogger) Info(msg string, args ...interface{})  { l.log(ports.LevelInfo, msg, args) }
func (l *ConsoleLogger) Warn(msg string, args ...interface{})  { l.log(ports.LevelWarn, msg, args) }
func (l *ConsoleLogger) Error(msg string, args ...interface{}) { l.log(ports.LevelError, msg, args) }

// WithComponent tags lines with component. Tags nest: a "viewport" logger
// derived from a "replay" logger prints [replay/viewport].
func (l *ConsoleLogger) WithComponent(component string) ports.Logger {
	if l.component != "" {
		component = l.component + "/" + component
	}
	return &ConsoleLogger{level: l.level, component: component, dst: l.dst}
}

func (l *ConsoleLogger) log(level ports.LogLevel, msg string, args []interface{}) {
	if level < l.level {
		return
	}
	line := l10n.F(msg, args...)

	color := l.dst.color
	if l.component != "" {
		tag := "[" + l.component + "]"
		if color {
			tag = ansiCyan + tag + ansiReset
		}
		line = tag + " " + line
	}
	if c, ok := levelColors[level]; ok && color {
		line = c + line + ansiReset
	}

	w := l.dst.out
	if level >= ports.LevelWarn {
		w = l.dst.errOut
	}
	l.dst.mu.Lock()
	defer l.dst.mu.Unlock()
	fmt.Fprintln(w, line)
}

var _ ports.Logger = (*ConsoleLogger)(nil)
