package out

import (
	"context"
	"time"

	"github.com/bnema/domaingate/internal/domain"
)

// Metrics records operational measurements. Implementations must be safe
// for concurrent use and cheap enough to call on every request.
type Metrics interface {
	// RecordRoutingDecision counts one routing decision on the edge.
	RecordRoutingDecision(ctx context.Context, kind domain.DecisionKind)

	// RecordProviderCall records one provider call; err is nil on success.
	RecordProviderCall(ctx context.Context, op domain.ProviderOp, took time.Duration, err error)

	// RecordEvent counts one lifecycle event by outcome: "processed", "failed" or "dropped".
	RecordEvent(ctx context.Context, eventType domain.EventType, outcome string)
}
