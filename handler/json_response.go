package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/growlkit/pkg/growl"
)

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON creates a JSON response with the given status.
func JSON(status int, v any) Response {
	return jsonResponse{status: status, body: v}
}

// Poll encodes a poll response for growl widgets configured with polling.
// A nil notification list is encoded as an empty array.
func Poll(resp growl.PollResponse) Response {
	if resp.Notifications == nil {
		resp.Notifications = []growl.PollEntry{}
	}
	return jsonResponse{status: http.StatusOK, body: resp}
}
