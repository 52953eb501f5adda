package errnotify

import (
	"net/http"

	"go.uber.org/zap"
)

// Handler performs a request and returns its outcome: a response, or an
// error that carries a status code (see Client).
type Handler interface {
	Do(req *http.Request) (*http.Response, error)
}

// HandlerFunc adapts an ordinary function to a Handler.
type HandlerFunc func(req *http.Request) (*http.Response, error)

func (f HandlerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// Interceptor is a pipeline stage wrapped around a Handler.
type Interceptor func(req *http.Request, next Handler) (*http.Response, error)

// Chain wraps h with interceptors. The first interceptor is outermost.
func Chain(h Handler, interceptors ...Interceptor) Handler {
	for i := len(interceptors) - 1; i >= 0; i-- {
		ic, next := interceptors[i], h
		h = HandlerFunc(func(req *http.Request) (*http.Response, error) {
			return ic(req, next)
		})
	}
	return h
}

// Intercept calls next with req. On failure it sends the message for the
// failure's status to n, then returns the original error unchanged.
// Successful responses pass through without side effects.
func Intercept(req *http.Request, next Handler, n Notifier) (*http.Response, error) {
	resp, err := next.Do(req)
	if err != nil {
		if n != nil {
			n.Notify(MessageFor(err))
		}
		return resp, err
	}
	return resp, nil
}

// Option configures an ErrorInterceptor.
type Option func(*ErrorInterceptor)

// WithLogger logs every intercepted failure at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(ic *ErrorInterceptor) {
		if l != nil {
			ic.logger = l
		}
	}
}

// WithMetrics counts every intercepted failure.
func WithMetrics(m *Metrics) Option {
	return func(ic *ErrorInterceptor) { ic.metrics = m }
}

// ErrorInterceptor is Intercept bound to a notifier, with optional
// logging and metrics. It holds no per-request state.
type ErrorInterceptor struct {
	notifier Notifier
	logger   *zap.Logger
	metrics  *Metrics
}

// NewInterceptor creates an ErrorInterceptor. A nil notifier drops messages.
func NewInterceptor(n Notifier, opts ...Option) *ErrorInterceptor {
	if n == nil {
		n = Discard
	}
	ic := &ErrorInterceptor{notifier: n, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(ic)
	}
	return ic
}

// Intercept satisfies Interceptor.
func (ic *ErrorInterceptor) Intercept(req *http.Request, next Handler) (*http.Response, error) {
	resp, err := next.Do(req)
	if err == nil {
		return resp, nil
	}

	status, known := StatusOf(err)
	msg := MessageFor(err)
	fields := []zap.Field{
		zap.Int("status", status),
		zap.Bool("has_status", known),
		zap.String("message", msg),
		zap.Error(err),
	}
	if req != nil {
		fields = append(fields, zap.String("method", req.Method), zap.Stringer("url", req.URL))
	}
	ic.logger.Debug("request failed", fields...)
	ic.metrics.observe(status, known)
	ic.notifier.Notify(msg)
	return resp, err
}
