package mcp

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitConfig bounds HTTP requests. Every tool call assembles charts
// from scratch, so a burst of requests is a burst of CPU work.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate; zero or less disables limiting.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit is applied by RunHTTP unless WithRateLimit overrides it.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 20, BurstSize: 40}

// limitRequests rejects requests beyond cfg with 429 Too Many Requests.
func limitRequests(next http.Handler, cfg RateLimitConfig) http.Handler {
	if cfg.RequestsPerSecond <= 0 {
		return next
	}
	burst := cfg.BurstSize
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
