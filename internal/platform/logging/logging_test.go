package logging_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-command-bridge/internal/bridge"
	"github.com/jsamuelsen11/go-command-bridge/internal/platform/logging"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "json", format: logging.FormatJSON, want: `"level":"INFO"`},
		{name: "text", format: logging.FormatText, want: "level=INFO"},
		{name: "unknown falls back to json", format: "xml", want: `"msg":"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")

			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		log     func(*slog.Logger)
		wantOut bool
	}{
		{name: "debug passes debug", level: "debug", log: func(l *slog.Logger) { l.Debug("x") }, wantOut: true},
		{name: "upper case debug", level: "DEBUG", log: func(l *slog.Logger) { l.Debug("x") }, wantOut: true},
		{name: "info filters debug", level: "info", log: func(l *slog.Logger) { l.Debug("x") }, wantOut: false},
		{name: "error filters warn", level: "error", log: func(l *slog.Logger) { l.Warn("x") }, wantOut: false},
		{name: "unknown means info", level: "verbose", log: func(l *slog.Logger) { l.Info("x") }, wantOut: true},
		{name: "unknown filters debug", level: "verbose", log: func(l *slog.Logger) { l.Debug("x") }, wantOut: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, logging.FormatJSON, &buf))

			assert.Equal(t, tt.wantOut, buf.Len() > 0, "output = %q", buf.String())
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", logging.FormatJSON, &debugBuf).Info("x")
	logging.New("info", logging.FormatJSON, &infoBuf).Info("x")

	assert.Contains(t, debugBuf.String(), `"source"`)
	assert.NotContains(t, infoBuf.String(), `"source"`)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))

	first := logging.Discard()
	second := logging.Discard()
	ctx := logging.WithLogger(context.Background(), first)
	ctx = logging.WithLogger(ctx, second)

	assert.Same(t, second, logging.FromContext(ctx))
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", logging.FormatJSON, &buf)

	logger.Error("command failed",
		logging.Operation("Registry.Invoke"),
		logging.Command("test_throw"),
		logging.Err(bridge.NewCommandError(errors.New("boom"))),
	)

	out := buf.String()
	assert.Contains(t, out, `"operation":"Registry.Invoke"`)
	assert.Contains(t, out, `"command":"test_throw"`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestCommandErrorLogsFullChain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", logging.FormatJSON, &buf)

	ce := bridge.NewCommandError(bridge.Wrap(errors.New("disk full"), "saving settings"))
	logger.Error("command failed", logging.Err(ce))

	assert.Contains(t, buf.String(), `"error":"saving settings: disk full"`)
}

func TestRedaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization field", attr: slog.String("authorization", "Bearer supersecret-token"), secret: "supersecret-token"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "secret prefix", attr: slog.String("secret_key", "s3cr3t"), secret: "s3cr3t"},
		{name: "bearer in other field", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "api key inside a message", attr: slog.String("detail", "calling upstream with api_key=abc123"), secret: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", logging.FormatJSON, &buf).Info("event", tt.attr)

			require.NotEmpty(t, buf.String())
			assert.NotContains(t, buf.String(), tt.secret)
		})
	}
}

func TestRedaction_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", logging.FormatJSON, &buf).Info("event",
		logging.Command("test_bail"),
		slog.String("path", "/api/v1/invoke/test_bail"),
	)

	assert.Contains(t, buf.String(), "test_bail")
	assert.Contains(t, buf.String(), "/api/v1/invoke/test_bail")
}
