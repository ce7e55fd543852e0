package middleware

import (
	"net"
	"net/http"

	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	"github.com/RoyceAzure/lab/bookshop/internal/pkg/limiter"
	"github.com/rs/zerolog/log"
)

const MsgTooManyRequests = "Too many requests, please try again later."

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// NewRateLimitMiddleware 以 client ip 分桶限流, 需放在 RealIP 之後
func NewRateLimitMiddleware(rateLimiter *limiter.KeyedLimiter) func(http.Handler) http.Handler {
	if rateLimiter == nil {
		panic("rateLimiter cannot be nil")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !rateLimiter.Allow(ip) {
				log.Warn().Str("ip", ip).Str("url", r.URL.Path).Msg("rate limited")
				response.ErrorMessageJSON(w, http.StatusTooManyRequests, MsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
