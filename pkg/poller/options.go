package poller

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/growlkit/pkg/growl"
)

// Option configures a Poller.
type Option func(*Poller)

// TickerFunc starts a ticker and returns its channel and a stop function.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

// WithHTTPClient sets the client used for poll requests.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Poller) {
		if c != nil {
			p.client = c
		}
	}
}

// WithBaseURL resolves relative polling URLs against base.
func WithBaseURL(base string) Option {
	return func(p *Poller) { p.baseURL = base }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Poller) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithOnSuccess registers a hook called with every successful response and the
// base settings, before any notification is dispatched.
func WithOnSuccess(fn func(ctx context.Context, resp growl.PollResponse, base growl.Settings)) Option {
	return func(p *Poller) { p.onSuccess = fn }
}

// WithOnFail registers a hook called when a cycle fails.
func WithOnFail(fn func(ctx context.Context, err error)) Option {
	return func(p *Poller) { p.onFail = fn }
}

// WithTicker replaces the interval ticker.
func WithTicker(fn TickerFunc) Option {
	return func(p *Poller) {
		if fn != nil {
			p.ticker = fn
		}
	}
}

func defaultTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}
