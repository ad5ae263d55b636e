package display

import "errors"

// ErrNoPainter is returned by New when no Painter has been given.
var ErrNoPainter = errors.New("no painter configured")

// ErrNoHost is returned by New when no Host has been given.
var ErrNoHost = errors.New("no window host configured")

// ErrNoBackend is returned by New when no drawing backend has been given.
var ErrNoBackend = errors.New("no drawing backend configured")

// InitError describes a failure of the windowing system or the graphics
// context during startup.
type InitError struct {
	// may be empty; if not, names what was being initialized.
	Description string
	// may be nil; if not, the error reported by the underlying library.
	Inner error
}

func (ie *InitError) Error() string {
	msg := ""
	if ie.Description != "" {
		msg += ie.Description + ": "
	}
	if ie.Inner != nil {
		msg += ie.Inner.Error()
	}
	return msg
}

// Unwrap returns the inner error.
func (ie *InitError) Unwrap() error {
	return ie.Inner
}
