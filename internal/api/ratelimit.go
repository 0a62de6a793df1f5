package api

import (
	"net/http"

	"golang.org/x/time/rate"
)

// newLimiter creates a token bucket, defaulting to 10 rps with a burst of 20.
func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		rps = 10
	}
	if burst <= 0 {
		burst = 20
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// limit rejects requests with 429 once the bucket is empty.
func limit(l *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow() {
			w.Header().Set("Retry-After", "1")
			writeJSON(w, http.StatusTooManyRequests, errorBody{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
