package growl

import "errors"

var (
	// ErrInvalidType is returned when the alert type is not one of the Type constants.
	ErrInvalidType = errors.New("growl: invalid alert type")

	// ErrInvalidDelay is returned for a negative display delay.
	ErrInvalidDelay = errors.New("growl: delay must not be negative")

	// ErrPollingURLRequired is returned when polling is configured without an endpoint URL.
	ErrPollingURLRequired = errors.New("growl: URL parameter must be specified with polling options")

	// ErrInvalidPollingMethod is returned for an HTTP method the poll request cannot use.
	ErrInvalidPollingMethod = errors.New("growl: invalid polling method")

	// ErrInvalidPollingInterval is returned for a negative polling interval.
	ErrInvalidPollingInterval = errors.New("growl: polling interval must not be negative")

	// ErrInvalidCallback is returned when a callback reference is not a JavaScript identifier path.
	ErrInvalidCallback = errors.New("growl: callback must be a JavaScript function reference")

	// ErrInvalidPollingData is returned when a GET or DELETE payload cannot be carried in a query string.
	ErrInvalidPollingData = errors.New("growl: GET and DELETE polling data must be an object or a string")

	// ErrEncodePayload is returned when the polling payload or plugin options cannot be encoded as JSON.
	ErrEncodePayload = errors.New("growl: failed to encode payload")
)
