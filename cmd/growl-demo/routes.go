package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/growlkit/handler"
	"github.com/dmitrymomot/growlkit/pkg/growl"
	"github.com/dmitrymomot/growlkit/pkg/inbox"
)

// guest receives notifications when a request names no recipient.
const guest = "guest"

var errEmptyMessage = errors.New("message is required")

type app struct {
	log          *slog.Logger
	inbox        *inbox.Manager
	pollInterval int
	growlOpts    []growl.Option
}

func (a *app) routes() http.Handler {
	wrap := func(h handler.HandlerFunc) http.HandlerFunc {
		return handler.Wrap(h, handler.WithLogger(a.log))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", wrap(a.index))
	r.Post("/notify", wrap(a.notify))
	r.Get("/notifications", wrap(a.poll))
	r.Post("/notifications", wrap(a.enqueue))
	return r
}

func (a *app) index(r *http.Request) handler.Response {
	page := growl.NewPage()
	if _, err := page.Add(growl.Config{
		Type:          growl.TypeInfo,
		Icon:          "glyphicon glyphicon-info-sign",
		Title:         "Welcome",
		Body:          "Notifications queued on the server show up below.",
		ShowSeparator: true,
		Delay:         500,
	}, a.growlOpts...); err != nil {
		return handler.Error(err)
	}
	if _, err := page.Add(growl.Config{
		Type:        growl.TypeMinimalist,
		CloseButton: growl.NoCloseButton(),
		Polling: &growl.Polling{
			URL:      "/notifications",
			Interval: a.pollInterval,
		},
	}, a.growlOpts...); err != nil {
		return handler.Error(err)
	}
	return handler.Templ(indexPage(page))
}

// notify answers with a growl built from the "message" form value.
func (a *app) notify(r *http.Request) handler.Response {
	msg := strings.TrimSpace(r.FormValue("message"))
	if msg == "" {
		return handler.Error(handler.NewHTTPError(http.StatusUnprocessableEntity, errEmptyMessage.Error()))
	}
	typ, err := growl.ParseType(r.FormValue("type"))
	if err != nil {
		return handler.Error(handler.NewHTTPError(http.StatusBadRequest, err.Error()))
	}
	w, err := growl.New(growl.Config{Type: typ, Title: "Notice", Body: msg}, a.growlOpts...)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Growl(w)
}

func recipient(r *http.Request) string {
	if u := r.FormValue("user"); u != "" {
		return u
	}
	return guest
}

func (a *app) poll(r *http.Request) handler.Response {
	resp, err := a.inbox.Poll(r.Context(), recipient(r))
	if err != nil {
		return handler.Error(err)
	}
	return handler.Poll(resp)
}

func (a *app) enqueue(r *http.Request) handler.Response {
	body := strings.TrimSpace(r.FormValue("body"))
	if body == "" {
		return handler.Error(handler.NewHTTPError(http.StatusUnprocessableEntity, errEmptyMessage.Error()))
	}
	msg := inbox.Message{Recipient: recipient(r), Title: r.FormValue("title"), Body: body}
	if err := a.inbox.Send(r.Context(), msg); err != nil {
		return handler.Error(err)
	}
	return handler.JSON(http.StatusAccepted, map[string]bool{"queued": true})
}
