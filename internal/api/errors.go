package api

import "errors"

var (
	// ErrUnavailable means the request could not be completed: transport
	// failure, timeout, or a non-success HTTP status.
	ErrUnavailable = errors.New("styling service unavailable")

	// ErrMalformedResponse means the service answered but the payload could
	// not be decoded or reported success=false.
	ErrMalformedResponse = errors.New("malformed service response")
)
