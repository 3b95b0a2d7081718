package middleware

import (
	"net/http"
	"net/netip"

	"github.com/bnema/zerowrap"
)

// loopbackNets are always allowed so local tooling can reach the API.
var loopbackNets = []netip.Prefix{
	netip.MustParsePrefix("127.0.0.0/8"),
	netip.MustParsePrefix("::1/128"),
}

// CIDRAllowlist restricts access to the given networks.
// An empty allowed slice is a no-op.
func CIDRAllowlist(allowed, trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(allowed) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := GetClientIP(r, trusted)
			if ContainsIP(clientIP, loopbackNets) || ContainsIP(clientIP, allowed) {
				next.ServeHTTP(w, r)
				return
			}

			zerowrap.FromCtx(r.Context()).Warn().
				Str(zerowrap.FieldLayer, "adapter").
				Str(zerowrap.FieldAdapter, "http").
				Str(zerowrap.FieldMethod, r.Method).
				Str(zerowrap.FieldPath, r.URL.Path).
				Str(zerowrap.FieldClientIP, clientIP).
				Msg("access denied by CIDR allowlist")

			sendError(w, http.StatusForbidden, "forbidden", "Forbidden", false)
		})
	}
}
