// Package chi provides thin adapters for using err-notify with chi router.
//
// Chi uses standard net/http handlers, so err-notify works directly.
// This package exists for discoverability and convenience.
package chi

import (
	"net/http"

	errnotify "github.com/blackwell-systems/err-notify"
)

// Notices is a convenience wrapper around errnotify.NoticeMiddleware
// that returns a standard net/http middleware for chi.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(chi.Notices)
func Notices(next http.Handler) http.Handler {
	return errnotify.NoticeMiddleware(next)
}

// Notifier returns the request-scoped notifier installed by Notices.
func Notifier(r *http.Request) errnotify.Notifier {
	return errnotify.NotifierFromRequest(r)
}
