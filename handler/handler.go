package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/growlkit/pkg/logger"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// HandlerFunc produces the response for a request.
type HandlerFunc func(r *http.Request) Response

// ErrorHandler answers a request whose handler or response failed.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	errorHandler ErrorHandler
	logger       *slog.Logger
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithLogger sets the logger of the default error handler.
func WithLogger(l *slog.Logger) WrapOption {
	return func(c *wrapConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Wrap converts a HandlerFunc to an http.HandlerFunc.
func Wrap(h HandlerFunc, opts ...WrapOption) http.HandlerFunc {
	cfg := &wrapConfig{logger: logger.Discard()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = NewErrorHandler(cfg.logger)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp := h(r)
		if resp == nil {
			cfg.errorHandler(w, r, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}

// errorResponse defers an error to the ErrorHandler.
type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Error returns a Response that hands err to the ErrorHandler.
func Error(err error) Response {
	return errorResponse{err: err}
}
