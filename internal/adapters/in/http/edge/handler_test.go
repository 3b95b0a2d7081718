package edge

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	inmocks "github.com/bnema/domaingate/internal/boundaries/in/mocks"
	outmocks "github.com/bnema/domaingate/internal/boundaries/out/mocks"
	"github.com/bnema/domaingate/internal/domain"
	"github.com/bnema/domaingate/internal/usecase/routing"
)

type echoed struct {
	Upstream  string `json:"upstream"`
	Host      string `json:"host"`
	Path      string `json:"path"`
	Query     string `json:"query"`
	Decision  string `json:"decision"`
	Subdomain string `json:"subdomain"`
	FwdHost   string `json:"fwdHost"`
}

func newEchoUpstream(t *testing.T, name string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(echoed{
			Upstream:  name,
			Host:      r.Host,
			Path:      r.URL.Path,
			Query:     r.URL.RawQuery,
			Decision:  r.Header.Get(HeaderDecision),
			Subdomain: r.Header.Get(HeaderSubdomain),
			FwdHost:   r.Header.Get("X-Forwarded-Host"),
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func serve(t *testing.T, h http.Handler, host, target string) (*httptest.ResponseRecorder, echoed) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Host = host
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var got echoed
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	}
	return rec, got
}

func TestHandler_RealizesDecisions(t *testing.T) {
	app := newEchoUpstream(t, "app")
	tier := newEchoUpstream(t, "tier")

	h, err := NewHandler(routing.NewRouter(routing.Config{RootDomain: "example.com"}), nil, Config{
		AppUpstream:          app.URL,
		CustomDomainUpstream: tier.URL,
	})
	require.NoError(t, err)

	t.Run("main site passes through", func(t *testing.T) {
		rec, got := serve(t, h, "www.example.com", "/pricing?plan=pro")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "app", got.Upstream)
		assert.Equal(t, "/pricing", got.Path)
		assert.Equal(t, "plan=pro", got.Query)
		assert.Equal(t, "pass_through", got.Decision)
		assert.Equal(t, "www.example.com", got.FwdHost)
		assert.Equal(t, "domaingate", rec.Header().Get("X-Proxied-By"))
	})

	t.Run("subdomain is rewritten with query preserved", func(t *testing.T) {
		rec, got := serve(t, h, "alice.example.com", "/blog/post?draft=1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "app", got.Upstream)
		assert.Equal(t, "/subdomain/alice/blog/post", got.Path)
		assert.Equal(t, "draft=1", got.Query)
		assert.Equal(t, "alice", got.Subdomain)
		assert.Equal(t, "rewrite_to_subdomain_page", got.Decision)
	})

	t.Run("api bypasses routing", func(t *testing.T) {
		_, got := serve(t, h, "mycustomdomain.org", "/api/sites")
		assert.Equal(t, "app", got.Upstream)
		assert.Equal(t, "/api/sites", got.Path)
		assert.Equal(t, "bypass_always", got.Decision)
	})

	t.Run("custom domain goes to tier with host preserved", func(t *testing.T) {
		rec, got := serve(t, h, "mycustomdomain.org", "/about")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "tier", got.Upstream)
		assert.Equal(t, "mycustomdomain.org", got.Host)
		assert.Equal(t, "/about", got.Path)
	})
}

func TestHandler_StripsSpoofedRoutingHeaders(t *testing.T) {
	app := newEchoUpstream(t, "app")
	h, err := NewHandler(routing.NewRouter(routing.Config{RootDomain: "example.com"}), nil, Config{AppUpstream: app.URL})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "example.com"
	req.Header.Set(HeaderSubdomain, "mallory")
	req.Header.Set(HeaderDecision, "rewrite_to_subdomain_page")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var got echoed
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Empty(t, got.Subdomain)
	assert.Equal(t, "pass_through", got.Decision)
}

func TestHandler_CustomDomainWithoutTier(t *testing.T) {
	app := newEchoUpstream(t, "app")
	router := inmocks.NewMockHostRouter(t)
	router.EXPECT().Route("mycustomdomain.org", "/").
		Return(domain.RoutingDecision{Kind: domain.DecisionDeferToExternalProxy, Path: "/"})

	metrics := outmocks.NewMockMetrics(t)
	metrics.EXPECT().RecordRoutingDecision(mock.Anything, domain.DecisionDeferToExternalProxy).Return()

	h, err := NewHandler(router, metrics, Config{AppUpstream: app.URL})
	require.NoError(t, err)

	rec, _ := serve(t, h, "mycustomdomain.org", "/")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandler_UpstreamDown(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	down.Close()

	h, err := NewHandler(routing.NewRouter(routing.Config{RootDomain: "example.com"}), nil, Config{AppUpstream: down.URL})
	require.NoError(t, err)

	rec, _ := serve(t, h, "example.com", "/")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestNewHandler_InvalidUpstreams(t *testing.T) {
	router := inmocks.NewMockHostRouter(t)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing app", Config{}},
		{"relative app", Config{AppUpstream: "/app"}},
		{"bad scheme", Config{AppUpstream: "ftp://app:21"}},
		{"bad tier", Config{AppUpstream: "http://app:3000", CustomDomainUpstream: "tier"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHandler(router, nil, tt.cfg)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}
