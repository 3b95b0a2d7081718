package out

import (
	"context"

	"github.com/bnema/domaingate/internal/domain"
)

// DomainProvider is the capability interface of a third-party domain-hosting API
// that registers custom domains and verifies them against its edge.
// Failures are returned as *domain.ProviderError.
type DomainProvider interface {
	// AddDomain registers the domain and returns its initial state.
	AddDomain(ctx context.Context, name string) (*domain.ProviderDomain, error)

	// RemoveDomain unregisters the domain.
	RemoveDomain(ctx context.Context, name string) error

	// GetStatus returns the current verification state of the domain.
	GetStatus(ctx context.Context, name string) (*domain.ProviderDomain, error)
}
