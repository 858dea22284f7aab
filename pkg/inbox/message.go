package inbox

import (
	"time"

	"github.com/dmitrymomot/growlkit/pkg/growl"
)

// Message is one queued notification.
type Message struct {
	ID        string    `json:"id"`
	Recipient string    `json:"recipient"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Hidden    bool      `json:"hidden,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	// ExpiresAt is zero for messages that never expire.
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Expired reports whether m is past its expiry at now.
func (m Message) Expired(now time.Time) bool {
	return !m.ExpiresAt.IsZero() && !now.Before(m.ExpiresAt)
}

// Entry converts m to the poll response form.
func (m Message) Entry() growl.PollEntry {
	return growl.PollEntry{Body: m.Body, Title: m.Title, Show: !m.Hidden}
}
