// Package logging configures the charmbracelet/log logger shared by the
// twui CLI and carries it through command contexts.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLevel overrides the configured level when set.
const EnvLevel = "TWUI_LOG_LEVEL"

// Options configures New.
type Options struct {
	Writer io.Writer
	Level  string
	JSON   bool
	Prefix string
}

// New builds a logger. An empty level means "warn", so routine runs stay quiet.
func New(opts Options) (*log.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := log.WarnLevel
	raw := opts.Level
	if env := os.Getenv(EnvLevel); env != "" {
		raw = env
	}
	if raw != "" {
		parsed, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
		if err != nil {
			return nil, fmt.Errorf("logging: parse level %q: %w", raw, err)
		}
		level = parsed
	}

	formatter := log.TextFormatter
	if opts.JSON {
		formatter = log.JSONFormatter
	}

	return log.NewWithOptions(writer, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.JSON,
		Formatter:       formatter,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l *log.Logger) context.Context {
	return log.WithContext(ctx, l)
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Discard()
	}
	if l, ok := ctx.Value(log.ContextKey).(*log.Logger); ok && l != nil {
		return l
	}
	return Discard()
}
