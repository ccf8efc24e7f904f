// Package invoker is the frontend's outbound adapter for the command host.
// It sends invocations through httpclient.Client and turns the host's
// answers back into values and errors:
//
//   - a success envelope yields the raw JSON data;
//   - a failure envelope yields a *RemoteError wrapping domain.ErrCommandFailed;
//   - a problem-details response yields the matching domain sentinel.
package invoker

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
)

// maxErrorBodySize limits how much of a problem response is read.
const maxErrorBodySize = 1 << 20

// RemoteError is a command failure reported by the host. Message is the
// serialized CommandError, so its content depends on how the host was built.
type RemoteError struct {
	Command string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("command %q failed: %s", e.Command, e.Message)
}

// Unwrap makes errors.Is(err, domain.ErrCommandFailed) hold.
func (e *RemoteError) Unwrap() error {
	return domain.ErrCommandFailed
}

type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// translateProblem maps a non-200 host response to a domain error.
func translateProblem(resp *http.Response) error {
	pd := parseProblem(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("host returned %d: %s", resp.StatusCode, detail)
	}
}

func parseProblem(resp *http.Response) problemDetail {
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[strings.TrimPrefix(d.Location, "body.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
