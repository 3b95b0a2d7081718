// Package routing implements the host-based request routing use case.
package routing

import (
	"net"
	"strings"

	"github.com/bnema/domaingate/internal/boundaries/in"
	"github.com/bnema/domaingate/internal/domain"
)

const localhostToken = "localhost"

// DefaultRewritePrefix is the namespace subdomain pages are rewritten into.
const DefaultRewritePrefix = "/subdomain"

// DefaultReservedPrefixes are the paths that bypass host routing entirely.
var DefaultReservedPrefixes = []string{
	"/api",
	"/_next",
	"/static",
	"/favicon.ico",
	"/login",
	"/signup",
	"/dashboard",
	"/editor",
	"/profile",
	"/reset-password",
	"/subdomain",
	"/published",
	"/debug",
}

// Config holds the static routing configuration loaded at process start.
type Config struct {
	// RootDomain is the platform's own root domain, e.g. "example.com".
	RootDomain string
	// ReservedPrefixes bypass routing; DefaultReservedPrefixes when empty.
	ReservedPrefixes []string
	// RewritePrefix is where subdomain pages live; DefaultRewritePrefix when empty.
	RewritePrefix string
}

// Router implements in.HostRouter. It is immutable after NewRouter returns
// and safe for unbounded concurrent use.
type Router struct {
	rootDomain    string
	apexLabel     string
	rewritePrefix string
	reserved      []string
}

var _ in.HostRouter = (*Router)(nil)

// NewRouter builds a Router from cfg. The rewrite prefix is always reserved
// so already-rewritten paths are never routed twice.
func NewRouter(cfg Config) *Router {
	root := domain.NormalizeDomain(cfg.RootDomain)

	apexLabel := root
	if label, _, found := strings.Cut(root, "."); found {
		apexLabel = label
	}

	rewritePrefix := cfg.RewritePrefix
	if rewritePrefix == "" {
		rewritePrefix = DefaultRewritePrefix
	}
	rewritePrefix = "/" + strings.Trim(rewritePrefix, "/")

	prefixes := cfg.ReservedPrefixes
	if len(prefixes) == 0 {
		prefixes = DefaultReservedPrefixes
	}

	reserved := make([]string, 0, len(prefixes)+1)
	seen := make(map[string]bool, len(prefixes)+1)
	for _, p := range append(append([]string{}, prefixes...), rewritePrefix) {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		reserved = append(reserved, p)
	}

	return &Router{
		rootDomain:    root,
		apexLabel:     apexLabel,
		rewritePrefix: rewritePrefix,
		reserved:      reserved,
	}
}

// RootDomain returns the normalized platform root domain.
func (r *Router) RootDomain() string {
	return r.rootDomain
}

// Route classifies one request. It never fails: malformed hosts pass through.
func (r *Router) Route(host, path string) domain.RoutingDecision {
	if path == "" {
		path = "/"
	}

	// Reserved paths are checked before any host parsing, for every host.
	if r.isReserved(path) {
		return domain.RoutingDecision{Kind: domain.DecisionBypassAlways, Path: path}
	}

	h, ok := normalizeHost(host)
	if !ok {
		return domain.RoutingDecision{Kind: domain.DecisionPassThrough, Path: path}
	}

	env := r.classify(h)
	if env == envCustomDomain {
		return domain.RoutingDecision{Kind: domain.DecisionDeferToExternalProxy, Path: path}
	}

	sub, ok := r.subdomain(h, env)
	if !ok {
		return domain.RoutingDecision{Kind: domain.DecisionPassThrough, Path: path}
	}

	return domain.RoutingDecision{
		Kind:      domain.DecisionRewriteToSubdomainPage,
		Subdomain: sub,
		Path:      r.rewritePath(sub, path),
	}
}

func (r *Router) isReserved(path string) bool {
	for _, p := range r.reserved {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

type environment int

const (
	envLocal environment = iota
	envPlatform
	envCustomDomain
)

func (r *Router) classify(host string) environment {
	switch {
	case strings.Contains(host, localhostToken):
		return envLocal
	case r.rootDomain != "" && strings.Contains(host, r.rootDomain):
		return envPlatform
	default:
		return envCustomDomain
	}
}

// subdomain extracts the first label when the host addresses a customer site.
// The local rule needs two labels and the platform rule three; the asymmetry
// is kept so "example.com" and "www.example.com" reach the main site.
func (r *Router) subdomain(host string, env environment) (string, bool) {
	labels := strings.Split(host, ".")
	first := labels[0]
	if first == "" {
		return "", false
	}

	switch env {
	case envLocal:
		return first, len(labels) >= 2 && first != localhostToken
	case envPlatform:
		return first, len(labels) >= 3 && first != "www" && first != r.apexLabel
	default:
		return "", false
	}
}

func (r *Router) rewritePath(sub, path string) string {
	base := r.rewritePrefix + "/" + sub
	if path == "/" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// normalizeHost lowercases the host and strips the port and trailing dot.
// It reports false for empty hosts, IP literals and invalid characters.
func normalizeHost(host string) (string, bool) {
	h := strings.TrimSpace(host)
	if h == "" {
		return "", false
	}

	if strings.HasPrefix(h, "[") {
		// Bracketed IPv6 literal.
		return "", false
	}
	if hostOnly, _, err := net.SplitHostPort(h); err == nil {
		h = hostOnly
	}

	h = strings.TrimSuffix(strings.ToLower(h), ".")
	if h == "" || net.ParseIP(h) != nil {
		return "", false
	}

	for _, c := range h {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' && c != '.' {
			return "", false
		}
	}
	return h, true
}
