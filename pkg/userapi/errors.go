package userapi

import "errors"

var (
	// ErrRequestFailed indicates the HTTP request could not be built or sent.
	ErrRequestFailed = errors.New("userapi: request failed")
	// ErrUnexpectedStatus indicates the endpoint answered with a non-2xx status.
	ErrUnexpectedStatus = errors.New("userapi: unexpected status")
	// ErrDecodeFailed indicates the response body was not a valid user array.
	ErrDecodeFailed = errors.New("userapi: failed to decode response")
)
