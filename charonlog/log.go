// Package charonlog provides the process-wide logging hook.  Callers may
// install their own callback; the default logger writes levelled, colored
// lines to stderr.  Fatal logging terminates the process.
package charonlog

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelWarn
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelFatal:
		return "FATAL"
	}
	return "(unknown)"
}

// Func is an installable logging callback.
type Func func(level Level, format string, args ...interface{})

var logger Func

var levelColors = map[Level]*color.Color{
	LevelDebug: color.New(color.FgCyan),
	LevelWarn:  color.New(color.FgYellow),
	LevelFatal: color.New(color.FgHiRed),
}

func defaultLogger(level Level, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", levelColors[level].Sprint(level), fmt.Sprintf(format, args...))
}

// SetLogger installs fn as the logging callback.  Passing nil restores the
// default logger.
func SetLogger(fn Func) {
	logger = fn
}

func emit(level Level, format string, args ...interface{}) {
	if logger != nil {
		logger(level, format, args...)
		return
	}
	defaultLogger(level, format, args...)
}

// Debugf logs at debug level.
func Debugf(format string, args ...interface{}) {
	emit(LevelDebug, format, args...)
}

// Warnf logs at warn level.
func Warnf(format string, args ...interface{}) {
	emit(LevelWarn, format, args...)
}

// exit is swapped out by tests that exercise fatal paths.
var exit = os.Exit

// Fatalf logs at fatal level and terminates the process with a non-zero
// status.
func Fatalf(format string, args ...interface{}) {
	emit(LevelFatal, format, args...)
	exit(1)
}
