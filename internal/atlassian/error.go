package atlassian

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error represents a Confluence REST error response. StatusCode carries the
// upstream HTTP status unchanged; Message is whatever the server reported.
type Error struct {
	StatusCode    int      `json:"statusCode"`
	Message       string   `json:"message"`
	ErrorMessages []string `json:"errorMessages"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.Message != "" {
		return fmt.Sprintf("confluence: %d %s", e.StatusCode, e.Message)
	}

	if len(e.ErrorMessages) > 0 {
		return fmt.Sprintf("confluence: %d %s", e.StatusCode, e.ErrorMessages[0])
	}

	return fmt.Sprintf("confluence: %d", e.StatusCode)
}

// ValidationError reports a malformed or missing parameter. It is raised
// before any request is built, so a validation failure never reaches the
// network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Message
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a pre-request parameter error.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsAuthentication reports whether err is an upstream 401.
func IsAuthentication(err error) bool { return hasStatus(err, http.StatusUnauthorized) }

// IsPermission reports whether err is an upstream 403.
func IsPermission(err error) bool { return hasStatus(err, http.StatusForbidden) }

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsRateLimit reports whether err is an upstream 429.
func IsRateLimit(err error) bool { return hasStatus(err, http.StatusTooManyRequests) }

// IsInvalidQuery reports whether err is an upstream 400, which the search
// endpoint returns for CQL syntax errors.
func IsInvalidQuery(err error) bool { return hasStatus(err, http.StatusBadRequest) }

func hasStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

func parseError(res *http.Response) error {
	data, _ := io.ReadAll(res.Body)
	errRes := &Error{}
	if len(data) > 0 {
		_ = json.Unmarshal(data, errRes)
	}
	errRes.StatusCode = res.StatusCode

	if errRes.Message == "" && len(errRes.ErrorMessages) == 0 {
		errRes.Message = string(data)
	}

	return errRes
}
