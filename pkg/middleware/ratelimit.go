package middleware

import (
	"net/http"
	"time"

	"film-recommendations/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit limits requests per client IP within window.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseError(w, http.StatusTooManyRequests, "Too many requests", "RateLimited")
		}),
	)
}
