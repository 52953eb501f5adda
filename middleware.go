package errnotify

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey string

const (
	traceKey    ctxKey = "errnotify.trace_id"
	notifierKey ctxKey = "errnotify.notifier"
)

// WithTraceID adds a trace ID to the context.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey, id)
}

// TraceIDFromContext returns the trace ID stored by WithTraceID.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if s, ok := ctx.Value(traceKey).(string); ok {
		return s
	}
	return ""
}

// TraceIDFromRequest extracts the trace ID from the request header or context.
func TraceIDFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	// Prefer header
	if id := r.Header.Get(HeaderTraceID); id != "" {
		return id
	}
	return TraceIDFromContext(r.Context())
}

// PropagateTrace is an Interceptor that copies the context trace ID onto
// the outgoing request header. The caller's request is left untouched.
func PropagateTrace(req *http.Request, next Handler) (*http.Response, error) {
	id := TraceIDFromContext(req.Context())
	if id == "" || req.Header.Get(HeaderTraceID) != "" {
		return next.Do(req)
	}
	out := req.Clone(req.Context())
	out.Header.Set(HeaderTraceID, id)
	return next.Do(out)
}

// WithNotifier stores a request-scoped notifier in the context.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierKey, n)
}

// NotifierFromContext returns the notifier stored by WithNotifier, or Discard.
func NotifierFromContext(ctx context.Context) Notifier {
	if ctx == nil {
		return Discard
	}
	if n, ok := ctx.Value(notifierKey).(Notifier); ok && n != nil {
		return n
	}
	return Discard
}

// NotifierFromRequest is NotifierFromContext for r's context.
func NotifierFromRequest(r *http.Request) Notifier {
	if r == nil {
		return Discard
	}
	return NotifierFromContext(r.Context())
}

// NoticeMiddleware prepares each request for calling upstream services:
// it generates or propagates a trace ID and installs a HeaderNotifier for
// the response, retrievable with NotifierFromRequest.
func NoticeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderTraceID)
		if id == "" {
			id = newTraceID()
		}
		ctx := WithTraceID(r.Context(), id)
		ctx = WithNotifier(ctx, HeaderNotifier(w))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newTraceID() string {
	return uuid.NewString()
}
