package api

import "errors"

var (
	// ErrUnreachable marks transport-level failures (connection refused,
	// timeout, malformed response body).
	ErrUnreachable = errors.New("backend unreachable")
	// ErrBackend marks responses the backend itself flagged as failed,
	// either with a non-2xx status or a success:false body.
	ErrBackend = errors.New("backend reported failure")
)
