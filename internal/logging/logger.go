// Package logging provides the leveled, colored diagnostic logger used by patchall.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level selects which messages are written.
type Level int

// Available log levels, from quietest to noisiest.
const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

// Logger writes colored, leveled messages to a writer.
// Colors are only emitted when the writer is a terminal.
type Logger struct {
	Level  Level
	writer io.Writer
	colors bool
	mu     sync.Mutex
}

// NewLogger creates a logger writing to w at the given level.
func NewLogger(w io.Writer, level Level) *Logger {
	return &Logger{
		Level:  level,
		writer: w,
		colors: isTerminal(w),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewLogger(io.Discard, LevelError)
}

// SetLevel changes the logging level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.Level = level
}

// Debugf logs tool invocations and skip reasons.
func (l *Logger) Debugf(format string, a ...interface{}) {
	l.helper(LevelDebug, "DEBUG", color.New(color.FgBlue, color.Italic), format, a)
}

// Infof logs progress information.
func (l *Logger) Infof(format string, a ...interface{}) {
	l.helper(LevelInfo, "INFO", color.New(color.FgBlue), format, a)
}

// Warningf logs recoverable problems.
func (l *Logger) Warningf(format string, a ...interface{}) {
	l.helper(LevelWarning, "WARN", color.New(color.FgHiYellow), format, a)
}

// Errorf logs errors. Errors are always written.
func (l *Logger) Errorf(format string, a ...interface{}) {
	l.helper(LevelError, "ERROR", color.New(color.FgHiRed, color.Bold), format, a)
}

func (l *Logger) helper(level Level, tag string, msgColor *color.Color, format string, a []interface{}) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Level < level {
		return
	}

	if l.colors {
		msgColor.EnableColor()
	} else {
		msgColor.DisableColor()
	}

	msg := strings.TrimRight(fmt.Sprintf(format, a...), "\n")
	_, _ = fmt.Fprintln(l.writer, msgColor.Sprintf("[%s] %s", tag, msg))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
