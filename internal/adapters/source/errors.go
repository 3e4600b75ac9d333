package source

import "errors"

// Sentinel kinds for loader errors.
var (
	ErrFetch     = errors.New("event source fetch failed")
	ErrStatus    = errors.New("event source returned non-success status")
	ErrMalformed = errors.New("event source payload is malformed")
)
