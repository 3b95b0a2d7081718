package domain

import "time"

// VerificationStatus is the cached provider verification state of a custom domain.
type VerificationStatus string

const (
	VerificationUnconfigured VerificationStatus = "unconfigured"
	VerificationPending      VerificationStatus = "pending"
	VerificationVerified     VerificationStatus = "verified"
	VerificationFailed       VerificationStatus = "failed"
)

// Valid reports whether s is one of the four known states.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationUnconfigured, VerificationPending, VerificationVerified, VerificationFailed:
		return true
	}
	return false
}

// VerificationDetails describes the DNS record a user must configure
// for the provider to verify their domain.
type VerificationDetails struct {
	Type   string
	Name   string
	Value  string
	Reason string
}

// SiteDomainRecord is the domain-related subset of a persisted site document.
// The provider is the source of truth for verification; this record caches it.
type SiteDomainRecord struct {
	SiteID              string
	CustomDomain        *string
	VerificationStatus  VerificationStatus
	VerificationDetails *VerificationDetails

	// Version is bumped on every write and used for compare-and-swap updates.
	Version   int64
	UpdatedAt time.Time

	// SubscriptionExpiresAt is owned by the billing side of the site document.
	SubscriptionExpiresAt *time.Time
}

// HasCustomDomain reports whether a custom domain is configured.
func (r *SiteDomainRecord) HasCustomDomain() bool {
	return r.CustomDomain != nil && *r.CustomDomain != ""
}

// Domain returns the configured custom domain or "".
func (r *SiteDomainRecord) Domain() string {
	if r.CustomDomain == nil {
		return ""
	}
	return *r.CustomDomain
}

// SubscriptionExpired reports whether the subscription ended before now.
func (r *SiteDomainRecord) SubscriptionExpired(now time.Time) bool {
	return r.SubscriptionExpiresAt != nil && r.SubscriptionExpiresAt.Before(now)
}

// DomainUpdate is the write applied by a store compare-and-swap.
// A nil CustomDomain clears the domain.
type DomainUpdate struct {
	CustomDomain        *string
	VerificationStatus  VerificationStatus
	VerificationDetails *VerificationDetails
}

// DomainState is the result of a submit or status check.
type DomainState struct {
	SiteID       string
	Domain       string
	Status       VerificationStatus
	Verification *VerificationDetails
}
