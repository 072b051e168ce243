// Package xlog provides component-tagged structured logging for
// edidgen's external collaborators (the CLI and the YAML loader). The
// edid core never imports this package: it reports diagnostics only
// through returned errors (spec.md §5).
package xlog

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Component identifies which external collaborator emitted a log line.
type Component string

// Known components.
const (
	ComponentCLI    Component = "cli"
	ComponentLoader Component = "loader"
)

// Format specifies the output encoding for logging.
type Format int

// Output format options.
const (
	FormatText Format = iota
	FormatJSON
)

var (
	// defaultLogger backs the package-level Debug/Info/Warn/Error
	// helpers. The edid core does not use it.
	defaultLogger *slog.Logger

	level = new(slog.LevelVar)

	mu sync.RWMutex
)

func init() {
	level.Set(slog.LevelInfo)
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// SetLevel sets the minimum level for the default logger.
func SetLevel(l slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	level.Set(l)
}

// SetFormat reconfigures the default logger to write in the given format
// to os.Stderr at the current level.
func SetFormat(format Format) {
	mu.Lock()
	defer mu.Unlock()
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case FormatJSON:
		defaultLogger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
	default:
		defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
}

// New creates a logger writing to w in the given format at the package's
// current level.
func New(w io.Writer, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Debug logs a debug-level message tagged with component.
func Debug(component Component, msg string, args ...any) {
	logger().Debug(msg, append([]any{"component", string(component)}, args...)...)
}

// Info logs an info-level message tagged with component.
func Info(component Component, msg string, args ...any) {
	logger().Info(msg, append([]any{"component", string(component)}, args...)...)
}

// Warn logs a warning-level message tagged with component.
func Warn(component Component, msg string, args ...any) {
	logger().Warn(msg, append([]any{"component", string(component)}, args...)...)
}

// Error logs an error-level message tagged with component.
func Error(component Component, msg string, args ...any) {
	logger().Error(msg, append([]any{"component", string(component)}, args...)...)
}
