// Package apierrors provides the error taxonomy and JSON response helpers for the API.
package apierrors

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Client-facing error messages.
const (
	MessageValidation = "Validation error"
	MessageNotFound   = "Not Found"
	MessageInternal   = "Internal server error"
)

// Kind classifies an APIError.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
)

// APIError is the JSON body written for every non-2xx response.
type APIError struct {
	Kind    Kind   `json:"-"`
	Message string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error carrying field-level details.
func NewValidationError(details any) *APIError {
	return &APIError{Kind: KindValidation, Message: MessageValidation, Details: details}
}

// NewNotFoundError creates a not found error.
func NewNotFoundError() *APIError {
	return &APIError{Kind: KindNotFound, Message: MessageNotFound}
}

// NewInternalError creates an internal server error. The cause is never exposed to the client.
func NewInternalError() *APIError {
	return &APIError{Kind: KindInternal, Message: MessageInternal}
}

// HTTPStatusCode returns the appropriate HTTP status code for the error.
func (e *APIError) HTTPStatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes a JSON response with the given status code.
// The status line is already sent when an encoding or write error is returned.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return nil
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

// WriteError writes an APIError as a JSON response.
func WriteError(w http.ResponseWriter, err *APIError) error {
	return WriteJSON(w, err.HTTPStatusCode(), err)
}

// NotFoundHandler responds 404 for unmatched routes and methods.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	if err := WriteError(w, NewNotFoundError()); err != nil {
		slog.ErrorContext(r.Context(), "failed to write response",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
		)
	}
}
