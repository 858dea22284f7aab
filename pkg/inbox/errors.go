package inbox

import "errors"

var (
	ErrRecipientRequired = errors.New("inbox: recipient is required")
	ErrMessageIDRequired = errors.New("inbox: message id is required")
	ErrEmptyMessage      = errors.New("inbox: message has neither title nor body")
	ErrStore             = errors.New("inbox: store failure")
)
