// Package logger provides verbose logging for the feedme CLI.
// When verbose mode is enabled via the --verbose flag, messages are
// written to stderr to show how quantities were parsed and merged.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// quiet is above every level zap emits, so nothing is written.
const quiet = zapcore.FatalLevel + 1

var (
	level = zap.NewAtomicLevelAt(quiet)

	mu    sync.RWMutex
	sink  zapcore.WriteSyncer
	sugar *zap.SugaredLogger
)

func init() {
	SetOutput(os.Stderr)
}

// bracketLevel renders levels as "[DEBUG]", "[INFO]", "[WARN]".
func bracketLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	if v {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(quiet)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	return level.Enabled(zapcore.DebugLevel)
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	ws := zapcore.Lock(zapcore.AddSync(w))
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      bracketLevel,
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	})

	mu.Lock()
	defer mu.Unlock()
	sink = ws
	sugar = zap.New(zapcore.NewCore(enc, ws, level)).Sugar()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Debug logs a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	current().Debugf(format, args...)
}

// Info logs an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	current().Infof(format, args...)
}

// Warn logs a warning if verbose mode is enabled.
func Warn(format string, args ...any) {
	current().Warnf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	if !IsVerbose() {
		return
	}
	mu.RLock()
	defer mu.RUnlock()
	_, _ = fmt.Fprintf(sink, "\n=== %s ===\n", name)
}

// Sync flushes buffered log output.
func Sync() {
	_ = current().Sync()
}
