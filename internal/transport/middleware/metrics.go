package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/dripdrop-backend/internal/observability"
)

// Metrics records request count and latency under a fixed route label.
// The label is the registration pattern, never the raw path, so usernames
// and item ids do not explode label cardinality.
func Metrics(route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			observability.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
			observability.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(sw.status)).Inc()
		})
	}
}
