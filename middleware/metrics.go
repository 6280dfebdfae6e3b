// ABOUTME: Request metrics middleware
// ABOUTME: Records per-route request counts and latency into the service metrics

package middleware

import (
	"net/http"
	"time"

	"github.com/markalston/assetdex-dcim/metrics"
)

// Instrument records every request against its ServeMux pattern so that
// path parameters like rack names do not explode label cardinality.
func Instrument(m *metrics.Metrics) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)

			next(wrapped, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(r.Method, route, wrapped.statusCode, time.Since(start))
		}
	}
}
