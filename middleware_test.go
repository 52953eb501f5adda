package errnotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestTraceIDFromRequestHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/test", nil)
	r.Header.Set(HeaderTraceID, "trace-from-header")

	if traceID := TraceIDFromRequest(r); traceID != "trace-from-header" {
		t.Errorf("expected trace-from-header, got %s", traceID)
	}
}

func TestTraceIDFromRequestContext(t *testing.T) {
	r := httptest.NewRequest("GET", "/test", nil)
	r = r.WithContext(WithTraceID(r.Context(), "trace-from-context"))

	if traceID := TraceIDFromRequest(r); traceID != "trace-from-context" {
		t.Errorf("expected trace-from-context, got %s", traceID)
	}
}

func TestTraceIDFromRequestHeaderPriority(t *testing.T) {
	// Header should take priority over context
	r := httptest.NewRequest("GET", "/test", nil)
	r.Header.Set(HeaderTraceID, "header-trace")
	r = r.WithContext(WithTraceID(r.Context(), "context-trace"))

	if traceID := TraceIDFromRequest(r); traceID != "header-trace" {
		t.Errorf("expected header-trace (header priority), got %s", traceID)
	}
}

func TestTraceIDFromRequestNil(t *testing.T) {
	if traceID := TraceIDFromRequest(nil); traceID != "" {
		t.Errorf("expected empty string for nil request, got %s", traceID)
	}
}

func TestTraceIDFromContextEmpty(t *testing.T) {
	if traceID := TraceIDFromContext(context.Background()); traceID != "" {
		t.Errorf("expected empty string, got %s", traceID)
	}
}

func TestPropagateTrace(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = req.WithContext(WithTraceID(req.Context(), "outgoing-trace"))

	var sent *http.Request
	next := HandlerFunc(func(r *http.Request) (*http.Response, error) {
		sent = r
		return &http.Response{StatusCode: 200}, nil
	})

	if _, err := PropagateTrace(req, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sent.Header.Get(HeaderTraceID); got != "outgoing-trace" {
		t.Errorf("expected outgoing-trace header, got %s", got)
	}
	if req.Header.Get(HeaderTraceID) != "" {
		t.Error("caller's request must not be mutated")
	}
}

func TestPropagateTraceKeepsExistingHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(HeaderTraceID, "explicit")
	req = req.WithContext(WithTraceID(req.Context(), "from-context"))

	var sent *http.Request
	next := HandlerFunc(func(r *http.Request) (*http.Response, error) {
		sent = r
		return &http.Response{StatusCode: 200}, nil
	})
	_, _ = PropagateTrace(req, next)

	if sent != req {
		t.Error("expected request to pass through unchanged")
	}
	if got := sent.Header.Get(HeaderTraceID); got != "explicit" {
		t.Errorf("expected explicit header, got %s", got)
	}
}

func TestPropagateTraceWithoutTrace(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	var sent *http.Request
	next := HandlerFunc(func(r *http.Request) (*http.Response, error) {
		sent = r
		return &http.Response{StatusCode: 200}, nil
	})
	_, _ = PropagateTrace(req, next)

	if sent != req {
		t.Error("expected request to pass through unchanged")
	}
}

func TestNotifierFromContextDefault(t *testing.T) {
	if NotifierFromContext(context.Background()) != Discard {
		t.Error("expected Discard when no notifier is installed")
	}
	if NotifierFromRequest(nil) != Discard {
		t.Error("expected Discard for nil request")
	}
}

func TestNotifierFromContext(t *testing.T) {
	inbox := &Inbox{}
	ctx := WithNotifier(context.Background(), inbox)

	NotifierFromContext(ctx).Notify("hi")
	if inbox.Len() != 1 {
		t.Error("expected the installed notifier to be returned")
	}
}

func TestNoticeMiddleware(t *testing.T) {
	var capturedTraceID string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedTraceID = TraceIDFromRequest(r)
		NotifierFromRequest(r).Notify("upstream failed")
		w.WriteHeader(http.StatusBadGateway)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)
	NoticeMiddleware(handler).ServeHTTP(w, r)

	if _, err := uuid.Parse(capturedTraceID); err != nil {
		t.Errorf("expected generated UUID trace ID, got %q", capturedTraceID)
	}
	if got := w.Header().Get(HeaderNotice); got != "upstream failed" {
		t.Errorf("expected notice header, got %q", got)
	}
}

func TestNoticeMiddlewareWithExistingHeader(t *testing.T) {
	var capturedTraceID string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedTraceID = TraceIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/test", nil)
	r.Header.Set(HeaderTraceID, "existing-trace")
	NoticeMiddleware(handler).ServeHTTP(w, r)

	if capturedTraceID != "existing-trace" {
		t.Errorf("expected existing-trace, got %s", capturedTraceID)
	}
	if w.Header().Get(HeaderNotice) != "" {
		t.Error("expected no notice on success")
	}
}

func TestNoticeMiddlewareUniqueIDs(t *testing.T) {
	ids := make(map[string]bool)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[TraceIDFromRequest(r)] = true
	})
	mw := NoticeMiddleware(handler)

	for i := 0; i < 100; i++ {
		mw.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/test", nil))
	}
	if len(ids) != 100 {
		t.Errorf("expected 100 unique trace IDs, got %d", len(ids))
	}
}
