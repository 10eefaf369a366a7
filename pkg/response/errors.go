package response

import "errors"

// Response errors.
var (
	// ErrNotFound is returned for the "-1" body, the server's way of saying
	// the requested object does not exist.
	ErrNotFound = errors.New("response: not found")

	// ErrAccessBlocked is returned for the "error code: 1005" body sent by
	// the server's edge proxy when it blocks the client's address.
	ErrAccessBlocked = errors.New("response: access blocked by upstream proxy")

	// ErrUnexpectedFormat is returned when the body does not have the layout
	// the endpoint is known to produce.
	ErrUnexpectedFormat = errors.New("response: unexpected format")
)
