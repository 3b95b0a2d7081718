package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/domaingate/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "domaingate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "routing:\n  root_domain: example.com\n")

	_, cfg, err := initConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.EdgeAddr)
	assert.Equal(t, ":8081", cfg.Server.APIAddr)
	assert.Equal(t, "example.com", cfg.Routing.RootDomain)
	assert.Equal(t, "/subdomain", cfg.Routing.RewritePrefix)
	assert.Equal(t, ProviderDriverVercel, cfg.Provider.Driver)
	assert.Equal(t, 15*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, StoreDriverSQLite, cfg.Store.Driver)
	assert.Equal(t, filepath.Join(cfg.Server.DataDir, "domaingate.db"), cfg.Store.SQLite.Path)
	assert.True(t, cfg.API.RateLimit.Enabled)
	assert.Equal(t, 20, cfg.API.RateLimit.Burst)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, 100, cfg.Events.BufferSize)
	assert.Equal(t, 5*time.Second, cfg.Edge.ProbeTimeout)
}

func TestInitConfig_FileValues(t *testing.T) {
	path := writeConfig(t, `
server:
  edge_addr: ":9000"
  trusted_proxies: ["10.0.0.0/8"]
routing:
  root_domain: sites.example.io
  reserved_prefixes: ["/api", "/internal"]
provider:
  driver: cloudflare
  timeout: 3s
  cloudflare:
    api_token: cf-token
    zone_id: zone-1
store:
  driver: memory
api:
  cors_origins: ["https://app.example.io"]
`)

	_, cfg, err := initConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.EdgeAddr)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.Server.TrustedProxies)
	assert.Equal(t, []string{"/api", "/internal"}, cfg.Routing.ReservedPrefixes)
	assert.Equal(t, ProviderDriverCloudflare, cfg.Provider.Driver)
	assert.Equal(t, 3*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "zone-1", cfg.Provider.Cloudflare.ZoneID)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, []string{"https://app.example.io"}, cfg.API.CORSOrigins)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "routing:\n  root_domain: example.com\n")
	t.Setenv("DOMAINGATE_ROUTING_ROOT_DOMAIN", "override.dev")
	t.Setenv("DOMAINGATE_PROVIDER_VERCEL_TOKEN", "secret-token")
	t.Setenv("DOMAINGATE_PROVIDER_TIMEOUT", "7s")

	_, cfg, err := initConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "override.dev", cfg.Routing.RootDomain)
	assert.Equal(t, "secret-token", cfg.Provider.Vercel.Token)
	assert.Equal(t, 7*time.Second, cfg.Provider.Timeout)
}

func TestInitConfig_MalformedFile(t *testing.T) {
	path := writeConfig(t, "routing: [unterminated\n")

	_, _, err := initConfig(path)
	assert.Error(t, err)
}

func TestValidateServeConfig(t *testing.T) {
	valid := func() Config {
		var cfg Config
		cfg.Server.EdgeAddr = ":8080"
		cfg.Server.APIAddr = ":8081"
		cfg.Routing.RootDomain = "example.com"
		cfg.Edge.AppUpstream = "http://127.0.0.1:3000"
		cfg.API.RateLimit.Enabled = true
		cfg.API.RateLimit.PerIPRPS = 5
		return cfg
	}

	require.NoError(t, validateServeConfig(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing root domain", func(c *Config) { c.Routing.RootDomain = "" }},
		{"missing app upstream", func(c *Config) { c.Edge.AppUpstream = "" }},
		{"same listen address", func(c *Config) { c.Server.APIAddr = c.Server.EdgeAddr }},
		{"zero rate", func(c *Config) { c.API.RateLimit.PerIPRPS = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.ErrorIs(t, validateServeConfig(cfg), domain.ErrInvalidConfig)
		})
	}
}
