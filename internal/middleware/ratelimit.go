package middleware

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// MsgTooManyRequests ответ при превышении лимита.
const MsgTooManyRequests = "Too many requests, please retry later"

// RateLimitMiddleware ограничивает общий поток запросов процесса.
// rps <= 0 отключает ограничение.
func RateLimitMiddleware(rps float64, burst int, logger *zap.Logger) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Warn("rate limit exceeded", zap.String("uri", r.RequestURI))
				w.Header().Set("Retry-After", "1")
				writeJSONError(w, http.StatusTooManyRequests, MsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
