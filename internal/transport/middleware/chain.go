// Package middleware holds the HTTP middleware: request ids, logging, panic
// recovery, CORS, per-IP rate limits, metrics and the session gate.
package middleware

import (
	"net/http"
	"slices"
)

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws into one Middleware. The first element is outermost:
// in the global chain the request id is assigned before anything logs, and
// the session gate runs last, right before the mux.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			h = mw(h)
		}
		return h
	}
}
