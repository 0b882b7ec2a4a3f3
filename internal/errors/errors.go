package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrAccessDenied is returned when a request fails the credential gate.
	ErrAccessDenied = errors.New("access denied")
	// ErrNoIdentity is returned when a handler expects a verified identity but none is bound.
	ErrNoIdentity = errors.New("no verified identity on request")
	// ErrEmptyUpdate is returned when a patch request carries no updatable fields.
	ErrEmptyUpdate = errors.New("no fields to update")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrAccessDenied), errors.Is(err, ErrNoIdentity):
		return NewHTTPError(http.StatusForbidden, "Access Denied!", "ACCESS_DENIED")
	case errors.Is(err, ErrEmptyUpdate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_UPDATE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
