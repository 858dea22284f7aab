package handler

import (
	"net/http"
	"strings"
)

const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals.
	DataStarQueryParam = "datastar"

	// HXRequest is set to "true" on every HTMX request.
	HXRequest = "HX-Request"
)

// IsDataStar checks if the request comes from a DataStar client expecting SSE.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// IsHTMX checks if the request is an HTMX request.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HXRequest) == "true"
}
