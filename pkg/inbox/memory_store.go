package inbox

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps queues in process memory. Suitable for development, tests
// and single instance deployments.
type MemoryStore struct {
	mu     sync.Mutex
	queues map[string][]Message
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{queues: make(map[string][]Message)}
}

func (s *MemoryStore) Push(_ context.Context, msg Message) error {
	if msg.ID == "" {
		return ErrMessageIDRequired
	}
	if msg.Recipient == "" {
		return ErrRecipientRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[msg.Recipient] = append(s.queues[msg.Recipient], msg)
	return nil
}

func (s *MemoryStore) Take(_ context.Context, recipient string, limit int, now time.Time) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.queues[recipient]
	size := len(queue)
	if limit > 0 {
		size = min(size, limit)
	}
	out := make([]Message, 0, size)
	i := 0
	for ; i < len(queue); i++ {
		if limit > 0 && len(out) == limit {
			break
		}
		if !queue[i].Expired(now) {
			out = append(out, queue[i])
		}
	}

	rest := queue[i:]
	if len(rest) == 0 {
		delete(s.queues, recipient)
	} else {
		s.queues[recipient] = append([]Message(nil), rest...)
	}
	return out, nil
}

func (s *MemoryStore) Pending(_ context.Context, recipient string, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, msg := range s.queues[recipient] {
		if !msg.Expired(now) {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) Purge(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for recipient, queue := range s.queues {
		kept := queue[:0]
		for _, msg := range queue {
			if msg.Expired(now) {
				removed++
				continue
			}
			kept = append(kept, msg)
		}
		if len(kept) == 0 {
			delete(s.queues, recipient)
		} else {
			s.queues[recipient] = kept
		}
	}
	return removed, nil
}
