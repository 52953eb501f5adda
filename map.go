package errnotify

import "errors"

// StatusOf reports the status code carried by err, if any.
func StatusOf(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Status, true
	}
	return 0, false
}

// IsStatus checks if err carries one of the given status codes.
func IsStatus(err error, codes ...int) bool {
	status, ok := StatusOf(err)
	if !ok {
		return false
	}
	for _, c := range codes {
		if status == c {
			return true
		}
	}
	return false
}

// MessageFor returns the message to display for a failure.
// Failures that carry no status fall back to FallbackMessage.
func MessageFor(err error) string {
	status, ok := StatusOf(err)
	if !ok {
		return FallbackMessage
	}
	return Message(status)
}
