// Package logger provides the process-wide structured logger. Diagnostic
// output goes to stderr through charmbracelet/log; user-facing command output
// is printed by the cli package and does not pass through here.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger = newLogger(os.Stderr, log.InfoLevel)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.New(w)
	l.SetTimeFormat("")
	l.SetLevel(level)
	return l
}

// Configure sets the log level. An empty level falls back to "info";
// unknown levels are treated as "info" as well.
func Configure(level string) {
	Logger.SetLevel(ParseLevel(level))
}

// SetOutput redirects the logger, keeping the current level.
func SetOutput(w io.Writer) {
	Logger = newLogger(w, Logger.GetLevel())
}

// ParseLevel converts a level name to a log.Level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
