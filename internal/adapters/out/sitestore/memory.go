// Package sitestore implements the SiteStore interface.
package sitestore

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/domaingate/internal/boundaries/out"
	"github.com/bnema/domaingate/internal/domain"
)

// MemoryStore implements out.SiteStore in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sites    map[string]*domain.SiteDomainRecord
	byDomain map[string]string
	now      func() time.Time
}

var _ out.SiteStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory site store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sites:    make(map[string]*domain.SiteDomainRecord),
		byDomain: make(map[string]string),
		now:      time.Now,
	}
}

// Create stores an empty record for siteID.
func (s *MemoryStore) Create(ctx context.Context, siteID string, expiresAt *time.Time) (*domain.SiteDomainRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sites[siteID]; exists {
		return nil, domain.ErrSiteExists
	}

	record := &domain.SiteDomainRecord{
		SiteID:             siteID,
		VerificationStatus: domain.VerificationUnconfigured,
		Version:            1,
		UpdatedAt:          s.now().UTC(),
	}
	if expiresAt != nil {
		t := expiresAt.UTC()
		record.SubscriptionExpiresAt = &t
	}
	s.sites[siteID] = record

	zerowrap.FromCtx(ctx).Debug().
		Str(zerowrap.FieldAdapter, "sitestore").
		Str(zerowrap.FieldEntityID, siteID).
		Msg("site created")

	return cloneRecord(record), nil
}

// Get returns a copy of the record for siteID.
func (s *MemoryStore) Get(_ context.Context, siteID string) (*domain.SiteDomainRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.sites[siteID]
	if !ok {
		return nil, domain.ErrSiteNotFound
	}
	return cloneRecord(record), nil
}

// GetByCustomDomain looks a site up through the domain index.
func (s *MemoryStore) GetByCustomDomain(_ context.Context, customDomain string) (*domain.SiteDomainRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	siteID, ok := s.byDomain[customDomain]
	if !ok {
		return nil, domain.ErrSiteNotFound
	}
	record := s.sites[siteID]
	if record.SubscriptionExpired(s.now()) {
		return nil, domain.ErrSubscriptionExpired
	}
	return cloneRecord(record), nil
}

// UpdateDomain applies update when the stored version matches expectedVersion.
func (s *MemoryStore) UpdateDomain(ctx context.Context, siteID string, expectedVersion int64, update domain.DomainUpdate) (*domain.SiteDomainRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.sites[siteID]
	if !ok {
		return nil, domain.ErrSiteNotFound
	}
	if record.Version != expectedVersion {
		return nil, domain.ErrPersistenceConflict
	}

	newDomain := ""
	if update.CustomDomain != nil {
		newDomain = *update.CustomDomain
	}
	if newDomain != "" {
		if owner, taken := s.byDomain[newDomain]; taken && owner != siteID {
			return nil, domain.ErrCustomDomainTaken
		}
	}

	if old := record.Domain(); old != "" && old != newDomain {
		delete(s.byDomain, old)
	}
	if newDomain != "" {
		s.byDomain[newDomain] = siteID
		record.CustomDomain = &newDomain
	} else {
		record.CustomDomain = nil
	}

	record.VerificationStatus = update.VerificationStatus
	record.VerificationDetails = cloneDetails(update.VerificationDetails)
	record.Version++
	record.UpdatedAt = s.now().UTC()

	zerowrap.FromCtx(ctx).Debug().
		Str(zerowrap.FieldAdapter, "sitestore").
		Str(zerowrap.FieldEntityID, siteID).
		Int64("version", record.Version).
		Msg("site domain updated")

	return cloneRecord(record), nil
}

// SetSubscriptionExpiry records the subscription expiry for siteID.
func (s *MemoryStore) SetSubscriptionExpiry(_ context.Context, siteID string, expiresAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.sites[siteID]
	if !ok {
		return domain.ErrSiteNotFound
	}
	if expiresAt == nil {
		record.SubscriptionExpiresAt = nil
		return nil
	}
	t := expiresAt.UTC()
	record.SubscriptionExpiresAt = &t
	return nil
}

func cloneRecord(r *domain.SiteDomainRecord) *domain.SiteDomainRecord {
	c := *r
	if r.CustomDomain != nil {
		d := *r.CustomDomain
		c.CustomDomain = &d
	}
	if r.SubscriptionExpiresAt != nil {
		t := *r.SubscriptionExpiresAt
		c.SubscriptionExpiresAt = &t
	}
	c.VerificationDetails = cloneDetails(r.VerificationDetails)
	return &c
}

func cloneDetails(d *domain.VerificationDetails) *domain.VerificationDetails {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
