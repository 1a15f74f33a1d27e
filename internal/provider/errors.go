package provider

import "fmt"

// Error is the single adapter-level error type surfaced to the host. It
// carries a descriptive message and, when wrapping an API failure, the
// underlying error for errors.As inspection.
type Error struct {
	msg string
	err error
}

// Errorf builds an *Error from a format string.
func Errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// wrapError builds an *Error around an underlying failure. If err already is
// an *Error it is returned unchanged so messages are not nested.
func wrapError(msg string, err error) *Error {
	if pe, ok := err.(*Error); ok {
		return pe
	}
	return &Error{msg: msg, err: err}
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}
