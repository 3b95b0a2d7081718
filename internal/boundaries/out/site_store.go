package out

import (
	"context"
	"time"

	"github.com/bnema/domaingate/internal/domain"
)

// SiteStore persists the domain-related subset of site documents.
type SiteStore interface {
	// Create stores an empty record for a new site with its subscription
	// expiry (nil for none) in a single write.
	Create(ctx context.Context, siteID string, expiresAt *time.Time) (*domain.SiteDomainRecord, error)

	// Get returns the record for siteID or domain.ErrSiteNotFound.
	Get(ctx context.Context, siteID string) (*domain.SiteDomainRecord, error)

	// GetByCustomDomain is an indexed lookup by custom domain. It returns
	// domain.ErrSiteNotFound on miss and domain.ErrSubscriptionExpired when the
	// owning site's subscription has ended.
	GetByCustomDomain(ctx context.Context, customDomain string) (*domain.SiteDomainRecord, error)

	// UpdateDomain applies update only if the stored version equals
	// expectedVersion, otherwise it returns domain.ErrPersistenceConflict.
	UpdateDomain(ctx context.Context, siteID string, expectedVersion int64, update domain.DomainUpdate) (*domain.SiteDomainRecord, error)

	// SetSubscriptionExpiry records the billing expiry of a site; nil means no expiry.
	SetSubscriptionExpiry(ctx context.Context, siteID string, expiresAt *time.Time) error
}
