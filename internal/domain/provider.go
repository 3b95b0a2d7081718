package domain

import (
	"errors"
	"fmt"
)

// ProviderStatus is the provider-neutral status vocabulary adapters translate into.
type ProviderStatus string

const (
	ProviderStatusVerified ProviderStatus = "verified"
	ProviderStatusPending  ProviderStatus = "pending"
	ProviderStatusFailed   ProviderStatus = "failed"
)

// ProviderDomain is what a domain-hosting provider reports about one domain.
type ProviderDomain struct {
	Name         string
	Status       ProviderStatus
	Verification *VerificationDetails
}

// ProviderOp names a provider call for logging and errors.
type ProviderOp string

const (
	ProviderOpAdd    ProviderOp = "add_domain"
	ProviderOpRemove ProviderOp = "remove_domain"
	ProviderOpStatus ProviderOp = "get_status"
)

// ProviderError is a failed provider call. Kind is one of ErrProviderRejected,
// ErrProviderTimeout, ErrProviderUnavailable or ErrProviderDomainNotFound and
// is matched by errors.Is.
type ProviderError struct {
	Kind       error
	Op         ProviderOp
	Domain     string
	StatusCode int
	Code       string
	Reason     string
	Err        error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Op, e.Domain, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches the error kind.
func (e *ProviderError) Is(target error) bool {
	return target == e.Kind
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may retry the same input later.
func (e *ProviderError) Retryable() bool {
	return errors.Is(e.Kind, ErrProviderTimeout) || errors.Is(e.Kind, ErrProviderUnavailable)
}

// AsProviderError extracts a *ProviderError from err.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
