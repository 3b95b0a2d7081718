package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/domaingate/internal/adapters/out/sitestore"
	"github.com/bnema/domaingate/internal/domain"
)

func testCtx() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func TestCreateSiteStore(t *testing.T) {
	var cfg Config

	cfg.Store.Driver = StoreDriverMemory
	store, closeFn, err := createSiteStore(testCtx(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &sitestore.MemoryStore{}, store)
	assert.Nil(t, closeFn)

	cfg.Store.Driver = StoreDriverSQLite
	cfg.Store.SQLite.Path = filepath.Join(t.TempDir(), "data", "sites.db")
	store, closeFn, err = createSiteStore(testCtx(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &sitestore.SQLiteStore{}, store)
	require.NotNil(t, closeFn)
	assert.NoError(t, closeFn())

	cfg.Store.Driver = "postgres"
	_, _, err = createSiteStore(testCtx(), cfg)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestCreateDomainProvider(t *testing.T) {
	var cfg Config

	cfg.Provider.Driver = ProviderDriverVercel
	_, err := createDomainProvider(cfg)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig, "missing token")

	cfg.Provider.Vercel.Token = "token"
	cfg.Provider.Vercel.ProjectID = "prj_1"
	p, err := createDomainProvider(cfg)
	require.NoError(t, err)
	assert.NotNil(t, p)

	cfg.Provider.Driver = ProviderDriverCloudflare
	_, err = createDomainProvider(cfg)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig, "missing zone")

	cfg.Provider.Cloudflare.APIToken = "cf-token"
	cfg.Provider.Cloudflare.ZoneID = "zone"
	p, err = createDomainProvider(cfg)
	require.NoError(t, err)
	assert.NotNil(t, p)

	cfg.Provider.Driver = "route53"
	_, err = createDomainProvider(cfg)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestCreateServices(t *testing.T) {
	var cfg Config
	cfg.Routing.RootDomain = "Example.com"
	cfg.Store.Driver = StoreDriverMemory
	cfg.Provider.Driver = ProviderDriverVercel
	cfg.Provider.Vercel.Token = "token"
	cfg.Provider.Vercel.ProjectID = "prj_1"

	svc, err := createServices(testCtx(), cfg, nil)
	require.NoError(t, err)
	defer svc.close()

	assert.Equal(t, "example.com", svc.router.RootDomain())
	assert.Equal(t, domain.DecisionRewriteToSubdomainPage, svc.router.Route("alice.example.com", "/").Kind)

	// Validation fails before any provider call.
	_, err = svc.domainSvc.SubmitCustomDomain(testCtx(), "site-1", "not a domain")
	assert.ErrorIs(t, err, domain.ErrInvalidDomainFormat)
}

func TestCreateServices_DefersProviderConstruction(t *testing.T) {
	var cfg Config
	cfg.Routing.RootDomain = "example.com"
	cfg.Store.Driver = StoreDriverMemory
	cfg.Provider.Driver = ProviderDriverVercel

	svc, err := createServices(testCtx(), cfg, nil)
	require.NoError(t, err)
	defer svc.close()

	_, err = svc.provider.Get()
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	cfg.Provider.Driver = "route53"
	_, err = createServices(testCtx(), cfg, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestCreateServices_WithEventsAndReadiness(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	var cfg Config
	cfg.Routing.RootDomain = "example.com"
	cfg.Store.Driver = StoreDriverMemory
	cfg.Provider.Driver = ProviderDriverVercel
	cfg.Provider.Vercel.Token = "token"
	cfg.Provider.Vercel.ProjectID = "prj_1"
	cfg.Edge.AppUpstream = upstream.URL
	cfg.Edge.ProbeTimeout = time.Second
	cfg.Events.Enabled = true
	cfg.Events.BufferSize = 8

	svc, err := createServices(testCtx(), cfg, nil)
	require.NoError(t, err)

	require.NotNil(t, svc.bus)

	results := svc.healthSvc.CheckUpstreams(testCtx())
	require.Contains(t, results, "app")
	assert.True(t, results["app"].Healthy)
	assert.NotContains(t, results, "custom_domain")

	svc.close()
}
