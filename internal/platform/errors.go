package platform

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorObject is one entry of the platform's error response "errors" array.
type ErrorObject struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error is returned for every non-2xx platform response.
type Error struct {
	StatusCode int           `json:"statusCode"`
	Message    string        `json:"message"`
	Errors     []ErrorObject `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("platform %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a platform "resource not found" answer.
// Some endpoints answer unknown paths with 400/"URI not found", so the message
// is checked as well.
func IsNotFound(err error) bool {
	var pe *Error
	if !errors.As(err, &pe) {
		return false
	}
	if pe.StatusCode == http.StatusNotFound {
		return true
	}
	msg := strings.ToLower(pe.Message)
	return strings.Contains(msg, "uri not found") || strings.Contains(msg, "not found")
}

// IsConflict reports a version mismatch on an optimistic-concurrency write.
func IsConflict(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.StatusCode == http.StatusConflict
}
