package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/growlkit/pkg/growl"
)

type growlResponse struct {
	widgets []*growl.Widget
}

// Render executes each widget script over SSE for DataStar requests. Other requests
// receive the widgets as script elements, in order. The plugin assets must already be
// on the page.
func (g growlResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, widget := range g.widgets {
			if err := sse.ExecuteScript(widget.Script()); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, widget := range g.widgets {
		if err := widget.Component().Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Growl creates a response that shows the given notifications.
func Growl(widgets ...*growl.Widget) Response {
	return growlResponse{widgets: widgets}
}
