package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/domaingate/internal/domain"
)

func TestNewKernel(t *testing.T) {
	path := writeConfig(t, `
routing:
  root_domain: example.com
store:
  driver: memory
provider:
  vercel:
    token: token
    project_id: prj_1
logging:
  level: error
`)

	k, err := NewKernel(path)
	require.NoError(t, err)
	defer k.Close()

	assert.Equal(t, domain.DecisionDeferToExternalProxy, k.Router().Route("mycustomdomain.org", "/").Kind)

	expires := time.Now().Add(-time.Hour)
	record, err := k.CreateSite(k.Context(), "site-1", &expires)
	require.NoError(t, err)
	require.NotNil(t, record.SubscriptionExpiresAt)

	_, err = k.CreateSite(k.Context(), "site-1", nil)
	assert.ErrorIs(t, err, domain.ErrSiteExists)

	_, err = k.Domains().ResolveSiteByCustomDomain(k.Context(), "nothing.example.org")
	assert.ErrorIs(t, err, domain.ErrSiteNotFound)

	require.NoError(t, k.SetSubscriptionExpiry(k.Context(), "site-1", nil))
}

func TestNewKernel_InvalidProvider(t *testing.T) {
	path := writeConfig(t, "store:\n  driver: memory\nprovider:\n  driver: nope\n")

	_, err := NewKernel(path)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestNewRouter_WithoutProviderCredentials(t *testing.T) {
	path := writeConfig(t, "routing:\n  root_domain: example.com\n  rewrite_prefix: /s\n")

	router, err := NewRouter(path)
	require.NoError(t, err)

	got := router.Route("alice.example.com", "/blog")
	assert.Equal(t, domain.DecisionRewriteToSubdomainPage, got.Kind)
	assert.Equal(t, "/s/alice/blog", got.Path)
}

func TestNewKernel_WithoutProviderCredentials(t *testing.T) {
	path := writeConfig(t, `
routing:
  root_domain: example.com
store:
  driver: memory
provider:
  driver: cloudflare
logging:
  level: error
`)

	k, err := NewKernel(path)
	require.NoError(t, err)
	defer k.Close()

	expires := time.Now().Add(24 * time.Hour)
	record, err := k.CreateSite(k.Context(), "site-1", &expires)
	require.NoError(t, err)
	require.NotNil(t, record.SubscriptionExpiresAt)
	assert.Equal(t, int64(1), record.Version)

	require.NoError(t, k.SetSubscriptionExpiry(k.Context(), "site-1", nil))

	_, err = k.Domains().ResolveSiteByCustomDomain(k.Context(), "shop.example.org")
	assert.ErrorIs(t, err, domain.ErrSiteNotFound)

	// Only a provider call needs the credentials.
	_, err = k.Domains().SubmitCustomDomain(k.Context(), "site-1", "shop.example.org")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
