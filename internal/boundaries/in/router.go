// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import "github.com/bnema/domaingate/internal/domain"

// HostRouter classifies an inbound request by host and path.
// Implementations are pure: no I/O, no shared mutable state, never fail.
type HostRouter interface {
	Route(host, path string) domain.RoutingDecision
}
