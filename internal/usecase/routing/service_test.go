package routing

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/domaingate/internal/domain"
)

func testRouter() *Router {
	return NewRouter(Config{RootDomain: "example.com"})
}

func TestRouter_Route(t *testing.T) {
	router := testRouter()

	tests := []struct {
		name          string
		host          string
		path          string
		wantKind      domain.DecisionKind
		wantSubdomain string
		wantPath      string
	}{
		{"platform apex", "example.com", "/", domain.DecisionPassThrough, "", "/"},
		{"platform www", "www.example.com", "/", domain.DecisionPassThrough, "", "/"},
		{"platform subdomain", "alice.example.com", "/", domain.DecisionRewriteToSubdomainPage, "alice", "/subdomain/alice"},
		{"platform subdomain deep path", "alice.example.com", "/about/team", domain.DecisionRewriteToSubdomainPage, "alice", "/subdomain/alice/about/team"},
		{"platform subdomain with port", "alice.example.com:443", "/", domain.DecisionRewriteToSubdomainPage, "alice", "/subdomain/alice"},
		{"platform subdomain uppercase", "Alice.Example.COM", "/", domain.DecisionRewriteToSubdomainPage, "alice", "/subdomain/alice"},
		{"apex label as subdomain", "example.example.com", "/", domain.DecisionPassThrough, "", "/"},
		{"custom domain", "mycustomdomain.org", "/", domain.DecisionDeferToExternalProxy, "", "/"},
		{"custom domain www", "www.mycustomdomain.org", "/pricing", domain.DecisionDeferToExternalProxy, "", "/pricing"},
		{"bare localhost", "localhost", "/", domain.DecisionPassThrough, "", "/"},
		{"localhost with port", "localhost:3000", "/", domain.DecisionPassThrough, "", "/"},
		{"local subdomain", "alice.localhost", "/", domain.DecisionRewriteToSubdomainPage, "alice", "/subdomain/alice"},
		{"local subdomain with port", "bob.localhost:3000", "/blog", domain.DecisionRewriteToSubdomainPage, "bob", "/subdomain/bob/blog"},
		{"api on custom domain", "mycustomdomain.org", "/api/anything", domain.DecisionBypassAlways, "", "/api/anything"},
		{"api on subdomain", "alice.example.com", "/api/anything", domain.DecisionBypassAlways, "", "/api/anything"},
		{"next assets", "alice.example.com", "/_next/static/chunk.js", domain.DecisionBypassAlways, "", "/_next/static/chunk.js"},
		{"already rewritten", "alice.example.com", "/subdomain/alice", domain.DecisionBypassAlways, "", "/subdomain/alice"},
		{"favicon", "mycustomdomain.org", "/favicon.ico", domain.DecisionBypassAlways, "", "/favicon.ico"},
		{"dashboard", "example.com", "/dashboard/sites", domain.DecisionBypassAlways, "", "/dashboard/sites"},
		{"empty host", "", "/", domain.DecisionPassThrough, "", "/"},
		{"garbage host", "not a host!", "/", domain.DecisionPassThrough, "", "/"},
		{"ipv4 host", "10.0.0.1:8080", "/", domain.DecisionPassThrough, "", "/"},
		{"ipv6 host", "[::1]:8080", "/", domain.DecisionPassThrough, "", "/"},
		{"empty path", "alice.example.com", "", domain.DecisionRewriteToSubdomainPage, "alice", "/subdomain/alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := router.Route(tt.host, tt.path)

			assert.Equal(t, tt.wantKind, got.Kind, "kind was %s", got.Kind)
			assert.Equal(t, tt.wantSubdomain, got.Subdomain)
			assert.Equal(t, tt.wantPath, got.Path)
		})
	}
}

// The local rule requires two labels while the platform rule requires three.
// These hosts pin the asymmetry so a change to either threshold is visible.
func TestRouter_Route_SubdomainThresholdAsymmetry(t *testing.T) {
	router := testRouter()

	// Two labels: a subdomain locally, the main site in production.
	assert.Equal(t, domain.DecisionRewriteToSubdomainPage, router.Route("alice.localhost", "/").Kind)
	assert.Equal(t, domain.DecisionPassThrough, router.Route("example.com", "/").Kind)

	// Three labels: a subdomain in both environments.
	assert.Equal(t, domain.DecisionRewriteToSubdomainPage, router.Route("a.b.localhost", "/").Kind)
	assert.Equal(t, domain.DecisionRewriteToSubdomainPage, router.Route("a.b.example.com", "/").Kind)
}

func TestRouter_Route_AnyLocalhostSubdomain(t *testing.T) {
	router := testRouter()

	for _, label := range []string{"a", "alice", "team-1", "x9", "www"} {
		host := label + ".localhost"
		got := router.Route(host, "/")
		assert.Equal(t, domain.DecisionRewriteToSubdomainPage, got.Kind, host)
		assert.Equal(t, label, got.Subdomain, host)
	}
}

func TestRouter_Route_APIBypassForAnyHost(t *testing.T) {
	router := testRouter()

	hosts := []string{"", "example.com", "www.example.com", "alice.example.com", "alice.localhost", "mycustomdomain.org", "10.0.0.1", "%%%"}
	for _, host := range hosts {
		assert.Equal(t, domain.DecisionBypassAlways, router.Route(host, "/api/anything").Kind, host)
	}
}

func TestNewRouter_CustomConfig(t *testing.T) {
	router := NewRouter(Config{
		RootDomain:       "Sites.Example.io.",
		ReservedPrefixes: []string{"/internal"},
		RewritePrefix:    "/s/",
	})

	assert.Equal(t, "sites.example.io", router.RootDomain())
	assert.Equal(t, "sites", router.apexLabel)
	assert.ElementsMatch(t, []string{"/internal", "/s"}, router.reserved)

	assert.Equal(t, domain.DecisionBypassAlways, router.Route("bob.sites.example.io", "/internal/x").Kind)
	assert.Equal(t, domain.DecisionBypassAlways, router.Route("bob.sites.example.io", "/s/bob").Kind)

	got := router.Route("bob.sites.example.io", "/api")
	assert.Equal(t, domain.DecisionRewriteToSubdomainPage, got.Kind)
	assert.Equal(t, "/s/bob/api", got.Path)

	assert.Equal(t, domain.DecisionPassThrough, router.Route("sites.example.io", "/").Kind)
}

func TestRouter_Route_NoRootDomain(t *testing.T) {
	router := NewRouter(Config{})

	assert.Equal(t, domain.DecisionDeferToExternalProxy, router.Route("example.com", "/").Kind)
	assert.Equal(t, domain.DecisionRewriteToSubdomainPage, router.Route("alice.localhost", "/").Kind)
}

func TestRouter_Route_Concurrent(t *testing.T) {
	router := testRouter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			host := fmt.Sprintf("site%d.example.com", i)
			got := router.Route(host, "/")
			assert.Equal(t, fmt.Sprintf("site%d", i), got.Subdomain)
		}(i)
	}
	wg.Wait()
}
