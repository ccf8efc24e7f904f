package dto

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
	"github.com/jsamuelsen11/go-command-bridge/internal/platform/logging"
)

// ContentTypeProblem is the media type of every ErrorResponse.
const ContentTypeProblem = "application/problem+json"

// internalDetail replaces the detail of 500 responses so unexpected errors
// never leak to the frontend.
const internalDetail = "internal server error"

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a host-level error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := errorToStatus(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = internalDetail
	}

	resp := NewProblem(r, status, detail)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// NewProblem builds an ErrorResponse with an explicit status and detail.
func NewProblem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.URL.RequestURI(),
	}
}

// WriteErrorResponse writes an RFC 9457 error response for the given error.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem sets the problem+json content type, writes resp.Status and
// encodes resp as the body.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode error response",
			logging.Err(encErr),
		)
	}
}

// errorToStatus maps domain sentinels and transport errors to HTTP status codes.
func errorToStatus(err error) int {
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
