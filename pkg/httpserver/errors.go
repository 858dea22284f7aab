package httpserver

import "errors"

// Errors returned by Server.Run, joined with the underlying net/http error.
var (
	ErrStart    = errors.New("httpserver: listener failed")
	ErrShutdown = errors.New("httpserver: graceful shutdown did not complete")
)
