package in

import (
	"context"

	"github.com/bnema/domaingate/internal/domain"
)

// DomainService defines the contract for custom domain lifecycle operations.
// Callers polling CheckStatus or RefreshStatus are responsible for debouncing;
// the service never deduplicates or retries provider calls.
type DomainService interface {
	// SubmitCustomDomain validates the domain, registers it with the provider and
	// persists it on the site with the provider's initial verification state.
	SubmitCustomDomain(ctx context.Context, siteID, customDomain string) (*domain.DomainState, error)

	// RemoveCustomDomain unregisters the site's domain from the provider and clears it.
	// The record is left untouched when the provider call fails.
	RemoveCustomDomain(ctx context.Context, siteID string) error

	// CheckStatus reads the provider's verification state without persisting it.
	CheckStatus(ctx context.Context, customDomain string) (*domain.DomainState, error)

	// RefreshStatus checks the provider and persists the result on the site record.
	RefreshStatus(ctx context.Context, siteID string) (*domain.DomainState, error)

	// ResolveSiteByCustomDomain finds the site a foreign host belongs to.
	ResolveSiteByCustomDomain(ctx context.Context, customDomain string) (*domain.SiteDomainRecord, error)
}
