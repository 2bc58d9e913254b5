package screenstate

import "errors"

var (
	// ErrSuperseded is returned by a fetch future whose completion was
	// discarded because a newer trigger (or Close) arrived first.
	ErrSuperseded = errors.New("screenstate: fetch superseded by a newer trigger")
	// ErrClosed is returned when triggering a fetch on a closed view model.
	ErrClosed = errors.New("screenstate: view model is closed")
)
