package poller

import "errors"

var (
	// ErrNilNotify is returned when New is called without a notify function.
	ErrNilNotify = errors.New("poller: notify function is required")

	// ErrRequest is returned when the poll request cannot be built or sent.
	ErrRequest = errors.New("poller: request failed")

	// ErrUnexpectedStatus is returned for a non-2xx response.
	ErrUnexpectedStatus = errors.New("poller: unexpected response status")

	// ErrDecodeResponse is returned when the response body is not a valid poll response.
	ErrDecodeResponse = errors.New("poller: failed to decode response")
)
