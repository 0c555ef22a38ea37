package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeTableNotFound       = "TABLE_NOT_FOUND"
	CodeTableNotRunning     = "TABLE_NOT_RUNNING"
	CodeDuplicateEnrollment = "DUPLICATE_ENROLLMENT"
	CodeWinnerNotInTable    = "WINNER_NOT_IN_TABLE"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrTableNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTableNotFound, "Table not found"}}
	case errors.Is(err, model.ErrTableNotRunning):
		return &httpError{http.StatusConflict, APIError{CodeTableNotRunning, "Table is not running"}}
	case errors.Is(err, model.ErrDuplicateEnrollment):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateEnrollment, "You are already in this table"}}
	case errors.Is(err, model.ErrWinnerNotInTable):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeWinnerNotInTable, "Winner not found in this table"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates a 400 error with a custom message
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates a 401 error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Missing or invalid principal"}}
}

// NewForbiddenError creates a 403 error
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Admin access required"}}
}

// NewInternalError creates a 500 error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
