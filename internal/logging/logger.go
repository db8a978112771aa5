// Package logging builds the charmbracelet/log loggers used by the tabular
// command and carries them through a context.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Built once on first use.
var defaultLogger = sync.OnceValue(func() *log.Logger {
	return New(os.Stderr, log.InfoLevel)
})

type loggerKey struct{}

// New returns a logger writing to w at the given level, without timestamps.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{Level: level})
}

// ParseLevel parses a level name case-insensitively. "warning" is an alias
// for "warn". Unknown names give InfoLevel.
func ParseLevel(name string) log.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		name = "warn"
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Default returns the process logger, writing to stderr at info level.
func Default() *log.Logger {
	return defaultLogger()
}

// WithLogger attaches logger to ctx.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached to ctx, or Default.
func FromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
