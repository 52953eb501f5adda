// Package gin provides adapters for using err-notify with Gin framework.
package gin

import (
	"net/http"

	errnotify "github.com/blackwell-systems/err-notify"
	"github.com/gin-gonic/gin"
)

// Notices wires err-notify's notice middleware into Gin's middleware chain.
//
// Each request gets a trace ID and a notifier that writes messages to the
// X-Error-Notice response header. Retrieve it with Notifier(c).
//
// Example:
//
//	r := gin.Default()
//	r.Use(Notices())
//	r.GET("/orders", func(c *gin.Context) {
//	    req, _ := http.NewRequestWithContext(c.Request.Context(), "GET", upstreamURL, nil)
//	    resp, err := errnotify.Intercept(req, client, Notifier(c))
//	    if err != nil {
//	        Write(c, err)
//	        return
//	    }
//	    // ...
//	})
func Notices() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Wrap remaining chain with err-notify middleware
		handler := errnotify.NoticeMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Update context with prepared request
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// Notifier returns the request-scoped notifier installed by Notices.
func Notifier(c *gin.Context) errnotify.Notifier {
	return errnotify.NotifierFromRequest(c.Request)
}

// Write relays an upstream failure using err-notify's JSON format.
func Write(c *gin.Context, err error) {
	errnotify.Write(c.Writer, c.Request, err)
}
