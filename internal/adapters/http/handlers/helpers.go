// Package handlers implements the inbound HTTP handlers: command invocation,
// command listing and health probes.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
	"github.com/jsamuelsen11/go-command-bridge/internal/platform/logging"
)

// DefaultMaxBodyBytes is the argument size limit used when none is configured.
const DefaultMaxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			logging.Err(err),
		)
	}
}

// readBody reads at most limit bytes of the request body. An oversized body
// returns the *http.MaxBytesError; any other read failure is reported as a
// validation error on the body.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("reading arguments: %w", err)
		}
		return nil, &domain.ValidationError{Fields: map[string]string{"body": "unreadable request body"}}
	}
	return body, nil
}
