package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/domaingate/internal/adapters/dto"
)

func TestCIDRAllowlist(t *testing.T) {
	allowed := mustNetworks(t, "100.64.0.0/10")
	trusted := mustNetworks(t, "10.0.0.0/8")

	tests := []struct {
		name       string
		allowed    []netip.Prefix
		remoteAddr string
		xff        string
		wantStatus int
	}{
		{"no networks passes through", nil, "203.0.113.50:1234", "", http.StatusOK},
		{"allowed IP", allowed, "100.100.1.1:1234", "", http.StatusOK},
		{"denied IP", allowed, "203.0.113.50:1234", "", http.StatusForbidden},
		{"loopback always allowed", allowed, "127.0.0.1:1234", "", http.StatusOK},
		{"ipv6 loopback always allowed", allowed, "[::1]:1234", "", http.StatusOK},
		{"allowed client behind trusted proxy", allowed, "10.0.0.1:1234", "100.64.1.1", http.StatusOK},
		{"denied client behind trusted proxy", allowed, "10.0.0.1:1234", "203.0.113.50", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/sites/abc", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			rec := httptest.NewRecorder()

			CIDRAllowlist(tt.allowed, trusted)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				var body dto.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, "forbidden", body.Code)
			}
		})
	}
}
