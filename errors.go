package screenkit

import "errors"

var (
	// ErrNilResponse indicates a handler returned a nil Response.
	ErrNilResponse = errors.New("screenkit: handler returned nil response")
	// ErrNilComponent indicates a Templ response was built from a nil component.
	ErrNilComponent = errors.New("screenkit: nil component")
)
