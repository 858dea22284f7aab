package inbox_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/growlkit/pkg/growl"
	"github.com/dmitrymomot/growlkit/pkg/inbox"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("msg-%d", n)
	}
}

func TestManager_SendAndPoll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := &clock{now: epoch}
	m := inbox.NewManager(inbox.NewMemoryStore(),
		inbox.WithClock(c.Now),
		inbox.WithIDGenerator(sequentialIDs()),
	)

	require.NoError(t, m.Send(ctx, inbox.Message{Recipient: "u1", Title: "T1", Body: "A"}))
	require.NoError(t, m.Send(ctx, inbox.Message{Recipient: "u1", Title: "T2", Body: "B", Hidden: true}))

	n, err := m.Pending(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	resp, err := m.Poll(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, growl.PollResponse{
		Success: true,
		Notifications: []growl.PollEntry{
			{Body: "A", Title: "T1", Show: true},
			{Body: "B", Title: "T2", Show: false},
		},
	}, resp)

	resp, err = m.Poll(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Notifications)
	assert.Empty(t, resp.Notifications)
}

func TestManager_SendValidation(t *testing.T) {
	t.Parallel()

	m := inbox.NewManager(inbox.NewMemoryStore())
	require.ErrorIs(t, m.Send(context.Background(), inbox.Message{Body: "x"}), inbox.ErrRecipientRequired)
	require.ErrorIs(t, m.Send(context.Background(), inbox.Message{Recipient: "u1"}), inbox.ErrEmptyMessage)

	_, err := m.Poll(context.Background(), "")
	require.ErrorIs(t, err, inbox.ErrRecipientRequired)
}

func TestManager_TTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := &clock{now: epoch}
	m := inbox.NewManager(inbox.NewMemoryStore(), inbox.WithClock(c.Now), inbox.WithTTL(time.Minute))

	require.NoError(t, m.Send(ctx, inbox.Message{Recipient: "u1", Body: "stale"}))
	c.now = epoch.Add(30 * time.Second)
	require.NoError(t, m.Send(ctx, inbox.Message{Recipient: "u1", Body: "fresh"}))

	c.now = epoch.Add(time.Minute)
	resp, err := m.Poll(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "fresh", resp.Notifications[0].Body)
}

func TestManager_BatchSize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := inbox.NewManager(inbox.NewMemoryStore(), inbox.WithBatchSize(2))
	require.NoError(t, m.SendToMany(ctx, []string{"u1", "u2"}, inbox.Message{Body: "hello"}))
	for i := range 2 {
		require.NoError(t, m.Send(ctx, inbox.Message{Recipient: "u1", Body: fmt.Sprint(i)}))
	}

	resp, err := m.Poll(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "0"}, bodies(resp))

	resp, err = m.Poll(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, bodies(resp))

	resp, err = m.Poll(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, bodies(resp))

	t.Run("expired messages ahead of a live one", func(t *testing.T) {
		t.Parallel()

		c := &clock{now: epoch}
		m := inbox.NewManager(inbox.NewMemoryStore(), inbox.WithBatchSize(2), inbox.WithClock(c.Now))
		for _, body := range []string{"old-1", "old-2"} {
			require.NoError(t, m.Send(ctx, inbox.Message{Recipient: "u1", Body: body, ExpiresAt: epoch.Add(time.Second)}))
		}
		require.NoError(t, m.Send(ctx, inbox.Message{Recipient: "u1", Body: "live"}))

		c.now = epoch.Add(time.Minute)
		n, err := m.Pending(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		resp, err := m.Poll(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"live"}, bodies(resp))

		n, err = m.Pending(ctx, "u1")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func bodies(resp growl.PollResponse) []string {
	out := make([]string, 0, len(resp.Notifications))
	for _, e := range resp.Notifications {
		out = append(out, e.Body)
	}
	return out
}

type failingStore struct{ inbox.Store }

var errBoom = errors.New("boom")

func (failingStore) Push(context.Context, inbox.Message) error { return errBoom }

func (failingStore) Take(context.Context, string, int, time.Time) ([]inbox.Message, error) {
	return nil, errBoom
}

func TestManager_StoreErrors(t *testing.T) {
	t.Parallel()

	m := inbox.NewManager(failingStore{})
	err := m.Send(context.Background(), inbox.Message{Recipient: "u1", Body: "x"})
	require.ErrorIs(t, err, inbox.ErrStore)
	require.ErrorIs(t, err, errBoom)

	_, err = m.Poll(context.Background(), "u1")
	require.ErrorIs(t, err, inbox.ErrStore)
}

func TestManager_RunPurgeNonPositiveInterval(t *testing.T) {
	t.Parallel()

	m := inbox.NewManager(inbox.NewMemoryStore())
	for _, interval := range []time.Duration{0, -time.Second} {
		done := make(chan struct{})
		go func() {
			m.RunPurge(context.Background(), interval)
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("RunPurge(%v) did not return", interval)
		}
	}
}

func TestManager_RunPurge(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	store := inbox.NewMemoryStore()
	m := inbox.NewManager(store, inbox.WithTTL(time.Millisecond))
	require.NoError(t, m.Send(ctx, inbox.Message{Recipient: "u1", Body: "x"}))

	done := make(chan struct{})
	go func() {
		m.RunPurge(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		n, _ := store.Pending(context.Background(), "u1", time.Time{})
		return n == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunPurge did not stop after cancel")
	}
}
