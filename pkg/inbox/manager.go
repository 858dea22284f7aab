package inbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/growlkit/pkg/growl"
	"github.com/dmitrymomot/growlkit/pkg/logger"
)

// Manager queues messages and drains them into poll responses.
type Manager struct {
	store     Store
	logger    *slog.Logger
	ttl       time.Duration
	batchSize int
	now       func() time.Time
	newID     func() string
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the Manager's logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTTL sets the lifetime of messages sent without an expiry. Zero keeps them forever.
func WithTTL(d time.Duration) Option {
	return func(m *Manager) {
		m.ttl = max(d, 0)
	}
}

// WithBatchSize caps the number of messages returned by one Poll. Zero means no cap.
func WithBatchSize(n int) Option {
	return func(m *Manager) {
		m.batchSize = max(n, 0)
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithIDGenerator replaces the message id generator.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// NewManager creates a Manager backed by store.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		logger: logger.Discard(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send queues msg for its recipient, filling in the id, creation time and expiry.
func (m *Manager) Send(ctx context.Context, msg Message) error {
	if msg.Recipient == "" {
		return ErrRecipientRequired
	}
	if msg.Title == "" && msg.Body == "" {
		return ErrEmptyMessage
	}
	if msg.ID == "" {
		msg.ID = m.newID()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = m.now()
	}
	if msg.ExpiresAt.IsZero() && m.ttl > 0 {
		msg.ExpiresAt = msg.CreatedAt.Add(m.ttl)
	}

	if err := m.store.Push(ctx, msg); err != nil {
		return errors.Join(ErrStore, err)
	}
	m.logger.DebugContext(ctx, "inbox message queued",
		slog.String("message_id", msg.ID),
		slog.String("recipient", msg.Recipient),
	)
	return nil
}

// SendToMany queues a copy of msg for every recipient. It stops at the first failure.
func (m *Manager) SendToMany(ctx context.Context, recipients []string, msg Message) error {
	for _, r := range recipients {
		copied := msg
		copied.ID = ""
		copied.Recipient = r
		if err := m.Send(ctx, copied); err != nil {
			return err
		}
	}
	return nil
}

// Poll drains the recipient's queue into a successful poll response.
func (m *Manager) Poll(ctx context.Context, recipient string) (growl.PollResponse, error) {
	if recipient == "" {
		return growl.PollResponse{}, ErrRecipientRequired
	}
	msgs, err := m.store.Take(ctx, recipient, m.batchSize, m.now())
	if err != nil {
		return growl.PollResponse{}, errors.Join(ErrStore, err)
	}

	resp := growl.PollResponse{Success: true, Notifications: make([]growl.PollEntry, 0, len(msgs))}
	for _, msg := range msgs {
		resp.Notifications = append(resp.Notifications, msg.Entry())
	}
	return resp, nil
}

// Pending returns how many messages wait for the recipient.
func (m *Manager) Pending(ctx context.Context, recipient string) (int, error) {
	n, err := m.store.Pending(ctx, recipient, m.now())
	if err != nil {
		return 0, errors.Join(ErrStore, err)
	}
	return n, nil
}

// Purge drops expired messages from the store.
func (m *Manager) Purge(ctx context.Context) error {
	n, err := m.store.Purge(ctx, m.now())
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	if n > 0 {
		m.logger.InfoContext(ctx, "inbox purged expired messages", slog.Int("count", n))
	}
	return nil
}

// RunPurge calls Purge every interval until ctx is done.
// It returns immediately when interval is not positive.
func (m *Manager) RunPurge(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		m.logger.WarnContext(ctx, "inbox purge disabled", slog.Duration("interval", interval))
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.Purge(ctx); err != nil {
				m.logger.ErrorContext(ctx, "inbox purge failed", logger.Error(err))
			}
		}
	}
}
