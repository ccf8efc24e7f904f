// Package logging builds the structured loggers used by the host and the CLI
// and carries request-scoped loggers through context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(logging.Command("test_throw")))
//	logging.FromContext(ctx).ErrorContext(ctx, "command failed",
//	    logging.Operation("Registry.Invoke"),
//	    logging.Err(err),
//	)
//
// Error logs carry the operation, the command when there is one, and the
// error itself. A *bridge.CommandError logs its full chain whatever the build
// mode; only the frontend sees the redacted form.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Attribute keys shared by log lines across the repository.
const (
	KeyOperation = "operation"
	KeyCommand   = "command"
	KeyError     = "error"
)

// Formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type contextKey struct{}

// New creates a logger writing to w.
//
// level is one of "debug", "info", "warn", "error" (case-insensitive);
// anything else means info. format "text" selects slog's text handler and
// anything else JSON. Debug loggers include the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == FormatText {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// FromContextOr returns the logger stored by WithLogger, or fallback.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return fallback
}

// Operation names the function or use case emitting the log line.
func Operation(name string) slog.Attr { return slog.String(KeyOperation, name) }

// Command names the command being registered or invoked.
func Command(name string) slog.Attr { return slog.String(KeyCommand, name) }

// Err attaches err under the "error" key.
func Err(err error) slog.Attr { return slog.Any(KeyError, err) }

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
