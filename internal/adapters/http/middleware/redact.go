package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-command-bridge/internal/platform/logging"
)

// redacted replaces the value of a credential-bearing header.
const redacted = "[REDACTED]"

// RedactHeaders converts headers to slog attributes sorted by name. Headers listed in logging.SensitiveHeaders are
// replaced with "[REDACTED]"; multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
