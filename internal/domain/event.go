package domain

import "time"

// EventType defines the type of event that occurred.
type EventType string

const (
	EventDomainSubmitted     EventType = "domain.submitted"
	EventDomainRemoved       EventType = "domain.removed"
	EventDomainStatusChanged EventType = "domain.status_changed"
)

// Event represents a custom domain lifecycle event.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	SiteID    string
	Domain    string
	Data      any
}

// DomainEventPayload contains data for domain.* events.
type DomainEventPayload struct {
	SiteID         string
	Domain         string
	Status         VerificationStatus
	PreviousStatus VerificationStatus
}
