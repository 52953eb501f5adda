// Package echo provides adapters for using err-notify with Echo framework.
package echo

import (
	"net/http"

	errnotify "github.com/blackwell-systems/err-notify"
	echofw "github.com/labstack/echo/v4"
)

// Notices adapts err-notify's notice middleware to Echo's middleware interface.
//
// Example:
//
//	e := echo.New()
//	e.Use(Notices)
//	e.GET("/orders", func(c echo.Context) error {
//	    resp, err := errnotify.Intercept(req, client, Notifier(c))
//	    if err != nil {
//	        return Write(c, err)
//	    }
//	    // ...
//	    return nil
//	})
func Notices(next echofw.HandlerFunc) echofw.HandlerFunc {
	return func(c echofw.Context) error {
		var err error
		handler := errnotify.NoticeMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.SetRequest(r)
			err = next(c)
		}))

		handler.ServeHTTP(c.Response().Writer, c.Request())
		return err
	}
}

// Notifier returns the request-scoped notifier installed by Notices.
func Notifier(c echofw.Context) errnotify.Notifier {
	return errnotify.NotifierFromRequest(c.Request())
}

// Write relays an upstream failure using err-notify's JSON format.
func Write(c echofw.Context, err error) error {
	errnotify.Write(c.Response().Writer, c.Request(), err)
	return nil
}
