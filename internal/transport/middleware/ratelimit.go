package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an unused client limiter is kept.
const idleTTL = 10 * time.Minute

// RateLimiter implements per-IP token bucket rate limiting on top of
// x/time/rate. Each RateLimiter carries one limit; create one per policy.
type RateLimiter struct {
	clients  sync.Map // map[string]*client
	limit    rate.Limit
	burst    int
	perMin   int
	stop     chan struct{}
	stopOnce sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter allows perMinute requests per client IP with the given burst,
// and evicts idle clients every cleanupInterval. Call Stop() on shutdown.
// A non-positive perMinute disables limiting.
func NewRateLimiter(perMinute, burst int, cleanupInterval time.Duration) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		limit:  rate.Limit(float64(perMinute) / 60.0),
		burst:  burst,
		perMin: perMinute,
		stop:   make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Allow reports whether a request from key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	if rl.perMin <= 0 {
		return true
	}
	return rl.client(key).limiter.Allow()
}

// Limit returns middleware that answers 429 once a client IP exceeds the limit.
func (rl *RateLimiter) Limit() Middleware {
	retryAfter := "1"
	if rl.perMin > 0 {
		retryAfter = strconv.Itoa(int(math.Ceil(60.0 / float64(rl.perMin))))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.Allow(clientIP(r)) {
				w.Header().Set("Retry-After", retryAfter)
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) client(key string) *client {
	now := time.Now().UnixNano()
	if v, ok := rl.clients.Load(key); ok {
		c := v.(*client)
		c.lastSeen.Store(now)
		return c
	}

	c := &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
	c.lastSeen.Store(now)
	v, _ := rl.clients.LoadOrStore(key, c)
	return v.(*client)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-idleTTL).UnixNano()
			rl.clients.Range(func(key, value any) bool {
				if value.(*client).lastSeen.Load() < cutoff {
					rl.clients.Delete(key)
				}
				return true
			})
		}
	}
}

// clientIP returns the host part of RemoteAddr. Deployments behind a proxy are
// expected to rewrite RemoteAddr before this middleware runs.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
