// Package errors defines the error taxonomy of the console: local
// validation failures, authorization failures and remote API failures.
package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrUnauthorized is matched (errors.Is) by every 401 coming back from the
	// API. Receiving it means the session has already been torn down.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Your session has ended, please sign in again",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"You must be signed in",
		"",
	)

	ErrSessionLoading = NewBaseError(
		http.StatusServiceUnavailable,
		"SESSION_LOADING",
		"The session is still being restored",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"Malformed identifier",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// ValidationError is a local, pre-network rejection of form input. Fields
// maps a form field name to its message.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records another field failure.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// OrNil returns nil when no field failed, so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}

	return e
}

// Error implements the error interface with the field messages in a stable order.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) HTTPCode() int     { return http.StatusUnprocessableEntity }
func (e *ValidationError) ErrorCode() string { return "VALIDATION_FAILED" }
func (e *ValidationError) Message() string   { return "Please fill in all fields correctly" }
func (e *ValidationError) Details() string   { return e.Error() }

// APIError is any non-success answer of the remote API.
type APIError struct {
	Status        int
	ServerMessage string
}

// NewAPIError creates an APIError; message may be empty.
func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, ServerMessage: strings.TrimSpace(message)}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message())
}

// Is lets a 401 APIError match ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

func (e *APIError) HTTPCode() int {
	if e.Status >= http.StatusInternalServerError || e.Status == 0 {
		return http.StatusBadGateway
	}
	// a 2xx carrying success:false
	if e.Status < http.StatusBadRequest {
		return http.StatusUnprocessableEntity
	}

	return e.Status
}

func (e *APIError) ErrorCode() string { return "API_ERROR" }

// Message returns the server's message, or a generic one built from the status.
func (e *APIError) Message() string {
	if e.ServerMessage != "" {
		return e.ServerMessage
	}
	if text := http.StatusText(e.Status); text != "" && e.Status >= http.StatusBadRequest {
		return "Request failed: " + text
	}

	return "Request failed"
}

func (e *APIError) Details() string { return "" }

// HasServerMessage reports whether the API supplied its own message.
func (e *APIError) HasServerMessage() bool {
	return e.ServerMessage != ""
}

// UserMessage picks what to show the operator for err: the validation
// message, the server's message, or fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message()
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.HasServerMessage() {
		return apiErr.ServerMessage
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		if _, isAPI := appErr.(*APIError); !isAPI {
			return appErr.Message()
		}
	}

	return fallback
}
