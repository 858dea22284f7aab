package inbox

import (
	"context"
	"time"
)

// Store persists queued messages.
type Store interface {
	// Push appends a message to its recipient's queue.
	Push(ctx context.Context, msg Message) error

	// Take removes and returns up to limit messages not expired at now from the
	// recipient's queue, oldest first. Expired messages met on the way are dropped
	// and do not count against limit. A limit of zero takes everything.
	Take(ctx context.Context, recipient string, limit int, now time.Time) ([]Message, error)

	// Pending counts the recipient's messages not expired at now.
	Pending(ctx context.Context, recipient string, now time.Time) (int, error)

	// Purge removes every expired message and returns how many were removed.
	Purge(ctx context.Context, now time.Time) (int, error)
}
