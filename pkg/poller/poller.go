package poller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/growlkit/pkg/growl"
	"github.com/dmitrymomot/growlkit/pkg/logger"
)

// NotifyFunc displays one notification.
type NotifyFunc func(ctx context.Context, s growl.Settings)

// maxResponseSize bounds the poll response body.
const maxResponseSize = 1 << 20

// Poller runs polling cycles against one endpoint.
type Poller struct {
	spec      growl.Polling
	base      growl.Settings
	notify    NotifyFunc
	client    *http.Client
	baseURL   string
	logger    *slog.Logger
	onSuccess func(ctx context.Context, resp growl.PollResponse, base growl.Settings)
	onFail    func(ctx context.Context, err error)
	ticker    TickerFunc
}

// New validates spec and returns a Poller. The base settings are copied into every
// dispatched notification before the entry's body and title are applied.
func New(spec growl.Polling, base growl.Settings, notify NotifyFunc, opts ...Option) (*Poller, error) {
	spec, err := spec.Normalize()
	if err != nil {
		return nil, err
	}
	if notify == nil {
		return nil, ErrNilNotify
	}

	p := &Poller{
		spec:   spec,
		base:   base,
		notify: notify,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger.Discard(),
		ticker: defaultTicker,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// FromWidget creates a Poller for a widget built in one-shot or repeating mode.
func FromWidget(w *growl.Widget, notify NotifyFunc, opts ...Option) (*Poller, error) {
	spec := w.Polling()
	if spec == nil {
		return nil, growl.ErrPollingURLRequired
	}
	return New(*spec, w.Settings(), notify, opts...)
}

// Interval returns the time between cycles, zero for a single request.
func (p *Poller) Interval() time.Duration {
	return time.Duration(p.spec.Interval) * time.Millisecond
}

// Run performs one cycle immediately and, when an interval is configured, one per
// tick until ctx is cancelled. A cycle already in flight when ctx is cancelled runs to
// completion; no further cycle starts. Without an interval Run returns the result of
// the single cycle.
func (p *Poller) Run(ctx context.Context) error {
	if !p.spec.Repeats() {
		return p.Cycle(ctx)
	}

	log := p.logger.With(logger.Component("poller"), logger.URL(p.spec.URL))
	log.InfoContext(ctx, "polling started", slog.Duration("interval", p.Interval()))

	_ = p.cycle(ctx)

	ticks, stop := p.ticker(p.Interval())
	defer stop()

	for {
		select {
		case <-ctx.Done():
			log.InfoContext(ctx, "polling stopped")
			return nil
		case <-ticks:
			if ctx.Err() != nil {
				log.InfoContext(ctx, "polling stopped")
				return nil
			}
			_ = p.cycle(ctx)
		}
	}
}

// Cycle performs a single request and dispatches the shown entries.
func (p *Poller) Cycle(ctx context.Context) error {
	return p.cycle(ctx)
}

func (p *Poller) cycle(ctx context.Context) error {
	// cancelling the loop must not abort a request that already started
	reqCtx := context.WithoutCancel(ctx)

	resp, err := p.fetch(reqCtx)
	if err != nil {
		p.logger.WarnContext(ctx, "poll request failed", logger.URL(p.spec.URL), logger.Error(err))
		if p.onFail != nil {
			p.onFail(reqCtx, err)
		}
		return err
	}
	if !resp.Success {
		p.logger.DebugContext(ctx, "poll response unsuccessful", logger.URL(p.spec.URL))
		return nil
	}

	if p.onSuccess != nil {
		p.onSuccess(reqCtx, resp, p.base)
	}

	shown := 0
	for _, entry := range resp.Notifications {
		if !entry.Show {
			continue
		}
		p.notify(reqCtx, entry.Apply(p.base))
		shown++
	}
	p.logger.DebugContext(ctx, "poll cycle done",
		logger.URL(p.spec.URL),
		slog.Int("received", len(resp.Notifications)),
		slog.Int("shown", shown),
	)
	return nil
}

func (p *Poller) fetch(ctx context.Context) (growl.PollResponse, error) {
	req, err := p.newRequest(ctx)
	if err != nil {
		return growl.PollResponse{}, errors.Join(ErrRequest, err)
	}

	res, err := p.client.Do(req)
	if err != nil {
		return growl.PollResponse{}, errors.Join(ErrRequest, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxResponseSize))
		return growl.PollResponse{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var out growl.PollResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, maxResponseSize)).Decode(&out); err != nil {
		return growl.PollResponse{}, errors.Join(ErrDecodeResponse, err)
	}
	return out, nil
}

// newRequest encodes the payload the way jQuery does: objects and strings go into the
// query string for GET and DELETE and into a form encoded body otherwise. Other
// payloads are sent as JSON.
func (p *Poller) newRequest(ctx context.Context) (*http.Request, error) {
	target, err := p.resolveURL()
	if err != nil {
		return nil, err
	}

	var (
		body        io.Reader
		contentType string
	)
	if p.spec.Data != nil {
		pl, err := encodePayload(p.spec.Data)
		if err != nil {
			return nil, errors.Join(growl.ErrEncodePayload, err)
		}
		inQuery := p.spec.Method == http.MethodGet || p.spec.Method == http.MethodDelete
		switch {
		case inQuery && pl.form != nil:
			q := target.Query()
			for k, vs := range pl.form {
				for _, v := range vs {
					q.Add(k, v)
				}
			}
			target.RawQuery = q.Encode()
		case inQuery && pl.raw != "":
			if target.RawQuery != "" {
				target.RawQuery += "&"
			}
			target.RawQuery += pl.raw
		case inQuery:
			// a null payload adds nothing to the query
		case pl.form != nil:
			body = strings.NewReader(pl.form.Encode())
			contentType = formContentType
		case pl.raw != "":
			body = strings.NewReader(pl.raw)
			contentType = formContentType
		case pl.json != nil:
			body = bytes.NewReader(pl.json)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, p.spec.Method, target.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

func (p *Poller) resolveURL() (*url.URL, error) {
	ref, err := url.Parse(p.spec.URL)
	if err != nil {
		return nil, err
	}
	if p.baseURL == "" || ref.IsAbs() {
		return ref, nil
	}
	base, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, err
	}
	return base.ResolveReference(ref), nil
}

const formContentType = "application/x-www-form-urlencoded; charset=UTF-8"

// payload is the request form of polling data. Exactly one field is set, or none
// for a null payload.
type payload struct {
	form url.Values
	raw  string
	json []byte
}

// encodePayload converts data to what the browser script sends. The data goes through
// its JSON form, as it does on the page, and objects are flattened the way jQuery.param
// does: {"filter":{"tags":["a"]},"page":2} becomes filter[tags][]=a&page=2.
func encodePayload(data any) (payload, error) {
	switch d := data.(type) {
	case url.Values:
		return payload{form: d}, nil
	case map[string]string:
		out := make(url.Values, len(d))
		for k, v := range d {
			out.Set(k, v)
		}
		return payload{form: out}, nil
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return payload{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return payload{}, err
	}

	switch t := v.(type) {
	case nil:
		return payload{}, nil
	case map[string]any:
		out := url.Values{}
		for k, child := range t {
			addParams(out, k, child)
		}
		return payload{form: out}, nil
	case string:
		return payload{raw: t}, nil
	}
	return payload{json: encoded}, nil
}

func addParams(out url.Values, prefix string, v any) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			addParams(out, prefix+"["+k+"]", child)
		}
	case []any:
		for i, child := range t {
			switch child.(type) {
			case map[string]any, []any:
				addParams(out, prefix+"["+strconv.Itoa(i)+"]", child)
			default:
				addParams(out, prefix+"[]", child)
			}
		}
	case nil:
		out.Add(prefix, "")
	default:
		out.Add(prefix, fmt.Sprint(t))
	}
}
