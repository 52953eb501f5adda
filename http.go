package errnotify

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const (
	// HeaderTraceID is the standard header name for trace/request IDs.
	HeaderTraceID = "X-Request-Id"

	maxErrorBody = 64 << 10
)

// envelope is the JSON error body exchanged with upstream servers and
// written back to callers by Write.
type envelope struct {
	Status    int    `json:"status"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message"`
	TraceID   string `json:"trace_id,omitempty"`
	Retryable bool   `json:"retryable"`
}

// Client adapts c to a Handler with browser-like failure semantics:
// a transport failure becomes an *Error with status 0, and any non-2xx
// response becomes an *Error carrying the response status. A nil c
// uses http.DefaultClient.
func Client(c *http.Client) Handler {
	if c == nil {
		c = http.DefaultClient
	}
	return HandlerFunc(func(req *http.Request) (*http.Response, error) {
		resp, err := c.Do(req)
		if err != nil {
			return nil, NetworkError(req, err)
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}
		return nil, fromResponse(req, resp)
	})
}

// fromResponse consumes and closes the body of a failed response.
func fromResponse(req *http.Request, resp *http.Response) *Error {
	defer resp.Body.Close()

	e := StatusError(req, resp.StatusCode)
	e.TraceID = resp.Header.Get(HeaderTraceID)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return e
	}
	var env envelope
	if json.Unmarshal(body, &env) != nil {
		return e
	}
	e.Code = env.Code
	e.Message = env.Message
	e.Retryable = env.Retryable
	if env.TraceID != "" {
		e.TraceID = env.TraceID
	}
	return e
}

// Write relays a failure to the caller as a JSON error envelope whose
// message is the human-readable message for the failure's status.
// Failures without a usable HTTP status are written as 502 Bad Gateway.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	env := envelope{Message: MessageFor(err)}
	var e *Error
	if errors.As(err, &e) && e != nil {
		env.Status = e.Status
		env.Code = e.Code
		env.TraceID = e.TraceID
		env.Retryable = e.Retryable
	}
	if env.TraceID == "" {
		env.TraceID = TraceIDFromRequest(r)
	}

	if env.TraceID != "" {
		w.Header().Set(HeaderTraceID, env.TraceID)
	}

	status := env.Status
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(env)
}
