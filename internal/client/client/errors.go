package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Errors returned by every API client. Callers match them with errors.Is:
//
//   - ErrUnavailable wraps transport failures (refused connection, DNS,
//     timeout). No response was received.
//   - ErrRequestFailed matches any *StatusError, that is any non-2xx answer.
//   - ErrUnauthorized additionally matches a 401 or 403 *StatusError. The
//     session is not cleared; the user logs in again explicitly.
var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrRequestFailed = errors.New("request failed")
)

// maxErrorBody caps how much of a failed response is kept.
const maxErrorBody = 64 << 10

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
	// Message is the "message" (or "error") field of a JSON body, if any.
	Message string
}

func (e *StatusError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = strings.TrimSpace(e.Body)
	}
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, detail)
}

// Is lets errors.Is match ErrRequestFailed, and ErrUnauthorized for 401
// and 403.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrRequestFailed:
		return true
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

// mapError converts a non-2xx response into a *StatusError. The body is
// consumed but not closed.
func mapError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	se := &StatusError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
	if resp.Request != nil {
		se.Method = resp.Request.Method
		se.URL = resp.Request.URL.String()
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		se.Message = payload.Message
		if se.Message == "" {
			se.Message = payload.Error
		}
	}
	return se
}

// ErrorMessage returns the server supplied message of err, or "".
func ErrorMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
