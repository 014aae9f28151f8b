package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// bucket tracks request counts for one client within the current window.
type bucket struct {
	count int
	until time.Time
}

// limiter implements a fixed-window counter per client IP. Buckets whose
// window has passed are evicted whenever the map is touched, so the map
// does not grow with every client the server has ever seen.
type limiter struct {
	mu      sync.Mutex
	limit   int
	per     time.Duration
	now     func() time.Time
	buckets map[string]*bucket
}

func newLimiter(limit int, per time.Duration) *limiter {
	return &limiter{
		limit:   limit,
		per:     per,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

func (l *limiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, b := range l.buckets {
		if now.After(b.until) {
			delete(l.buckets, key)
		}
	}

	b, ok := l.buckets[ip]
	if !ok {
		l.buckets[ip] = &bucket{count: 1, until: now.Add(l.per)}
		return true
	}

	if b.count >= l.limit {
		return false
	}
	b.count++
	return true
}

// RateLimit caps each client IP at limit requests per window. Requests
// over the cap get a 429 so a stuck SPA cannot flood the analyzer.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	l := newLimiter(limit, per)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(clientIPForRateLimit(r)) {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIPForRateLimit resolves the client address, preferring the first
// entry of X-Forwarded-For when a proxy sits in front of the API.
func clientIPForRateLimit(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
