package ratelimit

import (
	"net/http"
	"strings"

	"github.com/xw1nchester/stylequiz-backend/internal/apperror"
	"go.uber.org/zap"
)

// Middleware rejects requests over the limit with 429, keyed by the first
// entry of X-Forwarded-For or "unknown" when the header is absent.
func Middleware(limiter *Limiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientKey(r)

			if !limiter.Allow(key) {
				logger.Warn("rate limit exceeded",
					zap.String("path", r.URL.Path),
					zap.String("client", key),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write(apperror.ErrTooManyRequests.Marshal())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ClientKey(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return "unknown"
	}

	first, _, _ := strings.Cut(forwarded, ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return "unknown"
	}

	return first
}
