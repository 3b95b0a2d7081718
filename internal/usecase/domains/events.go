package domains

import (
	"context"

	"github.com/bnema/zerowrap"

	"github.com/bnema/domaingate/internal/boundaries/out"
	"github.com/bnema/domaingate/internal/domain"
)

// AuditHandler writes every domain lifecycle event to the structured log.
type AuditHandler struct {
	ctx context.Context
}

var _ out.EventHandler = (*AuditHandler)(nil)

// NewAuditHandler creates an AuditHandler logging through the logger in ctx.
func NewAuditHandler(ctx context.Context) *AuditHandler {
	return &AuditHandler{ctx: ctx}
}

// Handle logs one event.
func (h *AuditHandler) Handle(_ context.Context, event domain.Event) error {
	log := zerowrap.FromCtx(h.ctx)

	evt := log.Info().
		Str(zerowrap.FieldLayer, "usecase").
		Str(zerowrap.FieldHandler, "AuditHandler").
		Str(zerowrap.FieldEvent, string(event.Type)).
		Str("event_id", event.ID).
		Str(zerowrap.FieldEntityID, event.SiteID).
		Str("domain", event.Domain).
		Time("occurred_at", event.Timestamp)

	if p, ok := event.Data.(domain.DomainEventPayload); ok {
		evt = evt.Str("status", string(p.Status)).Str("previous_status", string(p.PreviousStatus))
	}

	evt.Msg("domain event")
	return nil
}

// CanHandle returns whether this handler can handle the given event type.
func (h *AuditHandler) CanHandle(eventType domain.EventType) bool {
	switch eventType {
	case domain.EventDomainSubmitted, domain.EventDomainRemoved, domain.EventDomainStatusChanged:
		return true
	}
	return false
}
