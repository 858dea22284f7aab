package handler

import (
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/growlkit/pkg/growl"
	"github.com/dmitrymomot/growlkit/pkg/logger"
)

// NewErrorHandler logs the error and answers the client. DataStar clients get a toast:
// warning for 4xx, danger for 5xx. Other clients get a plain text error.
// Messages of server errors are not exposed to clients.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		status := statusOf(err)
		message := err.Error()
		level := slog.LevelWarn
		toastType := growl.TypeWarning
		if status >= http.StatusInternalServerError {
			message = http.StatusText(status)
			level = slog.LevelError
			toastType = growl.TypeDanger
		}

		log.Log(r.Context(), level, "request failed",
			logger.Error(err),
			slog.Int("status", status),
			slog.String("path", r.URL.Path),
		)

		if IsDataStar(r) {
			toast, buildErr := growl.New(growl.Config{
				Type:  toastType,
				Icon:  "fa fa-exclamation-triangle",
				Body:  message,
				Title: http.StatusText(status),
			})
			if buildErr == nil {
				sse := datastar.NewSSE(w, r)
				if sseErr := sse.ExecuteScript(toast.Script()); sseErr != nil {
					log.WarnContext(r.Context(), "error toast not delivered", logger.Error(sseErr))
				}
				return
			}
		}
		http.Error(w, message, status)
	}
}
