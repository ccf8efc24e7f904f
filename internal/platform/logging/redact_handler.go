package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lower-case HTTP header names that carry
// credentials. The HTTP middleware redacts the same set when it logs headers.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// bearerPattern matches "Bearer <token>" values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// jwtPattern matches header.payload.signature. Ten characters per segment
// keeps version strings like 1.2.3 out.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// apiKeyInlinePattern matches "api_key=<value>" and "apikey: <value>".
var apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

// sensitiveFields are attribute names redacted wherever they appear.
var sensitiveFields = []string{"password", "secret", "token"}

// sensitivePrefixes catch variants such as secret_key or api_key_v2.
var sensitivePrefixes = []string{"secret_", "api_key"}

// newRedactAttr returns a masq ReplaceAttr that redacts by field name and,
// for values logged under innocent names, by pattern. Error chains rendered
// into logs go through the same patterns, so a command failure that quotes a
// token is still masked.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+3)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	opts = append(opts,
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
