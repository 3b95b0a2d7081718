package in

import (
	"context"

	"github.com/bnema/domaingate/internal/domain"
)

// HealthService defines the contract for upstream readiness checks.
type HealthService interface {
	// CheckUpstreams probes every configured upstream concurrently.
	// Returns a map of upstream name to health status.
	CheckUpstreams(ctx context.Context) map[string]*domain.UpstreamHealth
}

// HTTPProber defines the contract for HTTP health probing.
// This allows for easy mocking in tests.
type HTTPProber interface {
	// Probe sends an HTTP request to the URL and returns status code and response time.
	// Returns (statusCode, responseTimeMs, error).
	Probe(ctx context.Context, url string) (int, int64, error)
}
