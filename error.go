// Package errnotify provides a tiny client-side HTTP error interceptor
// for Go programs that call HTTP APIs on behalf of an end user.
// It maps failed requests to a human-readable message, hands that
// message to a notifier, and returns the original failure untouched.
package errnotify

import (
	"fmt"
	"net/http"
)

// Error is a failed request outcome.
//
// Status is 0 when no response was received. Code, Message, TraceID and
// Retryable are decoded from the upstream JSON error envelope when the
// server sent one.
type Error struct {
	Status int
	Method string
	URL    string

	Code      string
	Message   string
	TraceID   string
	Retryable bool

	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	target := e.Method
	if e.URL != "" {
		target = fmt.Sprintf("%s %s", e.Method, e.URL)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: network error: %v", target, e.Cause)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", target, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: status %d", target, e.Status)
}

func (e *Error) Unwrap() error { return e.Cause }

// NetworkError creates an Error for a request that never got a response.
func NetworkError(req *http.Request, cause error) *Error {
	e := &Error{Status: StatusNetworkError, Cause: cause}
	e.describe(req)
	return e
}

// StatusError creates an Error for a response with a failing status.
func StatusError(req *http.Request, status int) *Error {
	e := &Error{Status: status}
	e.describe(req)
	return e
}

func (e *Error) describe(req *http.Request) {
	if req == nil {
		return
	}
	e.Method = req.Method
	if req.URL != nil {
		e.URL = req.URL.String()
	}
}
