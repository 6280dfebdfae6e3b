// ABOUTME: Middleware composition for the route table
// ABOUTME: Wraps handlers outermost-first and skips middleware that is switched off

package middleware

import "net/http"

// Middleware wraps a handler with one concern such as logging or rate limiting.
type Middleware func(http.HandlerFunc) http.HandlerFunc

// Chain wraps h so the first middleware runs first. Nil entries are skipped,
// so callers can leave out optional layers without branching.
func Chain(h http.HandlerFunc, middlewares ...Middleware) http.HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] == nil {
			continue
		}
		h = middlewares[i](h)
	}
	return h
}
