package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Input errors
	ErrInvalidDomainFormat = errors.New("invalid domain format")
	ErrInvalidSiteID       = errors.New("invalid site id")

	// Provider errors
	ErrProviderRejected       = errors.New("provider rejected request")
	ErrProviderTimeout        = errors.New("provider timeout")
	ErrProviderUnavailable    = errors.New("provider unavailable")
	ErrProviderDomainNotFound = errors.New("domain not registered with provider")

	// Site errors
	ErrSiteNotFound           = errors.New("site not found")
	ErrSiteExists             = errors.New("site already exists")
	ErrSubscriptionExpired    = errors.New("subscription expired")
	ErrCustomDomainAlreadySet = errors.New("site already has a different custom domain")
	ErrCustomDomainTaken      = errors.New("custom domain is used by another site")

	// Persistence errors
	ErrPersistenceConflict = errors.New("concurrent update detected")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
)
