package errnotify

import (
	"mime"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// HeaderNotice is the response header HeaderNotifier writes messages to.
const HeaderNotice = "X-Error-Notice"

// Notifier displays a message to the end user.
// Notify must not block for long and must not fail.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts an ordinary function to a Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

type discard struct{}

func (discard) Notify(string) {}

// Discard is a Notifier that drops every message.
var Discard Notifier = discard{}

// Inbox collects messages in memory. It is safe for concurrent use.
type Inbox struct {
	mu   sync.Mutex
	msgs []string
}

func (b *Inbox) Notify(message string) {
	b.mu.Lock()
	b.msgs = append(b.msgs, message)
	b.mu.Unlock()
}

// Messages returns the collected messages in arrival order.
func (b *Inbox) Messages() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.msgs))
	copy(out, b.msgs)
	return out
}

// Len returns the number of collected messages.
func (b *Inbox) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.msgs)
}

// HeaderNotifier returns a Notifier that appends each message to the
// X-Error-Notice header of w. Non-ASCII text is RFC 2047 Q-encoded.
// Messages arriving after the header was written are lost.
func HeaderNotifier(w http.ResponseWriter) Notifier {
	return NotifierFunc(func(message string) {
		w.Header().Add(HeaderNotice, mime.QEncoding.Encode("utf-8", message))
	})
}

// LogNotifier returns a Notifier that logs each message at warn level.
func LogNotifier(l *zap.Logger) Notifier {
	if l == nil {
		l = zap.NewNop()
	}
	return NotifierFunc(func(message string) {
		l.Warn("request failed", zap.String("notice", message))
	})
}

// Multi fans a message out to every non-nil notifier, in order.
func Multi(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(message string) {
		for _, n := range notifiers {
			if n != nil {
				n.Notify(message)
			}
		}
	})
}
