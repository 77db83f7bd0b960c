package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of a response body an error message carries.
const maxErrorBody = 512

var (
	// ErrUnauthorized indicates the API rejected the credentials (401 or 403).
	ErrUnauthorized = errors.New("unauthorized: check --token or MMAICTL_TOKEN")

	// ErrDeleteNotConfirmed indicates a DELETE returned a success status other
	// than 204 No Content, so the server did not confirm the deletion.
	ErrDeleteNotConfirmed = errors.New("delete not confirmed by server")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap returns ErrUnauthorized for 401 and 403 responses so callers can use
// errors.Is without inspecting the status code.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

func newStatusError(method, path string, status int, body []byte) *StatusError {
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody] + "..."
	}
	return &StatusError{Method: method, Path: path, StatusCode: status, Body: text}
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
