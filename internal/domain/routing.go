package domain

// DecisionKind identifies how the edge must realize a routing decision.
type DecisionKind int

const (
	// DecisionPassThrough serves the path as-is (main site).
	DecisionPassThrough DecisionKind = iota
	// DecisionRewriteToSubdomainPage internally rewrites to a subdomain-scoped route.
	DecisionRewriteToSubdomainPage
	// DecisionDeferToExternalProxy hands a foreign host to the reverse proxy tier.
	DecisionDeferToExternalProxy
	// DecisionBypassAlways marks administrative, API and static paths.
	DecisionBypassAlways
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionPassThrough:
		return "pass_through"
	case DecisionRewriteToSubdomainPage:
		return "rewrite_to_subdomain_page"
	case DecisionDeferToExternalProxy:
		return "defer_to_external_proxy"
	case DecisionBypassAlways:
		return "bypass_always"
	default:
		return "unknown"
	}
}

// RoutingDecision is the outcome of routing one request.
// Subdomain is only set for DecisionRewriteToSubdomainPage; Path is the
// path the edge should serve (rewritten for subdomain pages).
type RoutingDecision struct {
	Kind      DecisionKind
	Subdomain string
	Path      string
}
