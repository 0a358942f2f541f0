// ABOUTME: Level-gated logging wrapper around slog levels for diagnostics
// ABOUTME: Output is redirectable so logs never interleave with raw-mode drawing

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	mu  sync.Mutex
	out io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelWarn))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects all log lines to w and returns the previous writer.
// A nil w restores stderr.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()

	prev := out
	if w == nil {
		w = os.Stderr
	}
	out = w
	return prev
}

// Enabled reports whether messages at l would be emitted.
func Enabled(l slog.Level) bool {
	return l >= slog.Level(level.Load())
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	logf(LevelDebug, "DEBUG", format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	logf(LevelInfo, "INFO", format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	logf(LevelWarn, "WARN", format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	emit("ERROR", format, args...)
}

func logf(l slog.Level, tag, format string, args ...any) {
	if !Enabled(l) {
		return
	}
	emit(tag, format, args...)
}

// emit writes one line. Raw mode disables output post-processing, so the
// line ends in CRLF to keep the next line at column 1 either way.
func emit(tag, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	fmt.Fprintf(out, "["+tag+"] "+format+"\r\n", args...)
}
