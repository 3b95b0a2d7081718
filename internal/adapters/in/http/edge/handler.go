// Package edge implements the HTTP adapter that realizes routing decisions.
package edge

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/domaingate/internal/boundaries/in"
	"github.com/bnema/domaingate/internal/boundaries/out"
	"github.com/bnema/domaingate/internal/domain"
)

// Headers set on every proxied request. Client-supplied values are overwritten.
const (
	HeaderDecision  = "X-Routing-Decision"
	HeaderSubdomain = "X-Routing-Subdomain"
)

// proxyTransport is shared by both upstreams.
var proxyTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	TLSHandshakeTimeout:   10 * time.Second,
	ResponseHeaderTimeout: 30 * time.Second,
	MaxIdleConns:          100,
	MaxIdleConnsPerHost:   10,
	IdleConnTimeout:       90 * time.Second,
}

// Config holds the upstreams of the edge listener.
type Config struct {
	// AppUpstream renders the main site and subdomain pages. Required.
	AppUpstream string
	// CustomDomainUpstream is the reverse-proxy tier for foreign hosts.
	// When empty, custom-domain requests are answered with 502.
	CustomDomainUpstream string
}

// Handler routes every request through the HostRouter and proxies it.
type Handler struct {
	router       in.HostRouter
	metrics      out.Metrics
	app          *httputil.ReverseProxy
	customDomain *httputil.ReverseProxy
}

// NewHandler creates the edge handler. metrics may be nil.
func NewHandler(router in.HostRouter, metrics out.Metrics, cfg Config) (*Handler, error) {
	appURL, err := parseUpstream(cfg.AppUpstream)
	if err != nil {
		return nil, fmt.Errorf("app upstream: %w", err)
	}

	h := &Handler{
		router:  router,
		metrics: metrics,
		app:     newReverseProxy(appURL, false),
	}

	if cfg.CustomDomainUpstream != "" {
		cdURL, err := parseUpstream(cfg.CustomDomainUpstream)
		if err != nil {
			return nil, fmt.Errorf("custom domain upstream: %w", err)
		}
		h.customDomain = newReverseProxy(cdURL, true)
	}

	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	decision := h.router.Route(r.Host, r.URL.Path)

	ctx := zerowrap.CtxWithFields(r.Context(), map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "http",
		zerowrap.FieldHandler: "edge",
		"decision":            decision.Kind.String(),
	})
	if h.metrics != nil {
		h.metrics.RecordRoutingDecision(ctx, decision.Kind)
	}

	req := r.Clone(ctx)
	req.Header.Set(HeaderDecision, decision.Kind.String())
	req.Header.Del(HeaderSubdomain)

	switch decision.Kind {
	case domain.DecisionRewriteToSubdomainPage:
		req.URL.Path = decision.Path
		req.URL.RawPath = ""
		req.Header.Set(HeaderSubdomain, decision.Subdomain)
		zerowrap.FromCtx(ctx).Debug().
			Str("subdomain", decision.Subdomain).
			Str("rewritten_path", decision.Path).
			Msg("rewriting to subdomain page")
		h.app.ServeHTTP(w, req)

	case domain.DecisionDeferToExternalProxy:
		if h.customDomain == nil {
			zerowrap.FromCtx(ctx).Warn().
				Str(zerowrap.FieldHost, r.Host).
				Msg("custom domain request but no reverse-proxy tier configured")
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
			return
		}
		h.customDomain.ServeHTTP(w, req)

	default:
		h.app.ServeHTTP(w, req)
	}
}

func parseUpstream(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: upstream URL is required", domain.ErrInvalidConfig)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: upstream %q must be an absolute http(s) URL", domain.ErrInvalidConfig, raw)
	}
	return u, nil
}

// newReverseProxy uses Rewrite rather than Director so hop-by-hop headers are
// stripped before the outbound request is built. preserveHost keeps the
// client's Host, which the reverse-proxy tier needs to pick the certificate.
func newReverseProxy(target *url.URL, preserveHost bool) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			if preserveHost {
				pr.Out.Host = pr.In.Host
			}
		},
		Transport: proxyTransport,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			zerowrap.FromCtx(r.Context()).Error().
				Err(err).
				Str("upstream", target.String()).
				Msg("proxy error: upstream unreachable")
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
		},
		ModifyResponse: func(resp *http.Response) error {
			resp.Header.Set("X-Proxied-By", "domaingate")
			return nil
		},
	}
}
