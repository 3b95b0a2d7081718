package middleware

import (
	"net/http"
	"net/netip"

	"github.com/bnema/zerowrap"

	"github.com/bnema/domaingate/internal/boundaries/out"
)

// RateLimit applies a per-client limit keyed by "ip:<addr>". It protects the
// provider quota from abusive clients; it is not a substitute for the caller
// debouncing status polls. A nil limiter disables the middleware.
func RateLimit(limiter out.RateLimiter, trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := GetClientIP(r, trusted)
			if !limiter.Allow(r.Context(), "ip:"+ip) {
				zerowrap.FromCtx(r.Context()).Debug().
					Str(zerowrap.FieldClientIP, ip).
					Str(zerowrap.FieldPath, r.URL.Path).
					Msg("request rate limited")

				w.Header().Set("Retry-After", "1")
				sendError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded", true)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
