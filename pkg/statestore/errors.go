package statestore

import "errors"

var (
	// ErrClosed is returned when writing to a closed store.
	ErrClosed = errors.New("statestore: store is closed")
)
