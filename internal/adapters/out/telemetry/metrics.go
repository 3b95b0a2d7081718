package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bnema/domaingate/internal/boundaries/out"
	"github.com/bnema/domaingate/internal/domain"
)

// Metrics holds domaingate OTel metrics instruments and implements out.Metrics.
type Metrics struct {
	// Edge
	RoutingDecisions metric.Int64Counter

	// Provider
	ProviderCalls    metric.Int64Counter
	ProviderErrors   metric.Int64Counter
	ProviderDuration metric.Float64Histogram

	// Events
	Events metric.Int64Counter
}

var _ out.Metrics = (*Metrics)(nil)

// NewMetrics creates and registers all metric instruments.
// OTel returns noop instruments when no MeterProvider is set, so the
// returned Metrics is always safe to use.
func NewMetrics() (*Metrics, error) {
	return newMetrics(otel.Meter("domaingate"))
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	if m.RoutingDecisions, err = meter.Int64Counter("domaingate.routing.decisions",
		metric.WithDescription("Routing decisions taken by the edge")); err != nil {
		return nil, err
	}
	if m.ProviderCalls, err = meter.Int64Counter("domaingate.provider.calls",
		metric.WithDescription("Total domain provider calls")); err != nil {
		return nil, err
	}
	if m.ProviderErrors, err = meter.Int64Counter("domaingate.provider.errors",
		metric.WithDescription("Failed domain provider calls")); err != nil {
		return nil, err
	}
	if m.ProviderDuration, err = meter.Float64Histogram("domaingate.provider.duration_seconds",
		metric.WithDescription("Domain provider call duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30)); err != nil {
		return nil, err
	}
	if m.Events, err = meter.Int64Counter("domaingate.events",
		metric.WithDescription("Domain lifecycle events by outcome")); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordRoutingDecision counts one routing decision.
func (m *Metrics) RecordRoutingDecision(ctx context.Context, kind domain.DecisionKind) {
	m.RoutingDecisions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("decision", kind.String()),
	))
}

// RecordProviderCall records one provider call and, on failure, its error kind.
func (m *Metrics) RecordProviderCall(ctx context.Context, op domain.ProviderOp, took time.Duration, err error) {
	opAttr := attribute.String("operation", string(op))

	m.ProviderCalls.Add(ctx, 1, metric.WithAttributes(opAttr))
	m.ProviderDuration.Record(ctx, took.Seconds(), metric.WithAttributes(opAttr))

	if err != nil {
		m.ProviderErrors.Add(ctx, 1, metric.WithAttributes(
			opAttr,
			attribute.String("kind", ErrorKind(err)),
		))
	}
}

// RecordEvent counts one lifecycle event.
func (m *Metrics) RecordEvent(ctx context.Context, eventType domain.EventType, outcome string) {
	m.Events.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event_type", string(eventType)),
		attribute.String("outcome", outcome),
	))
}

// ErrorKind returns a low-cardinality label for a provider error.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrProviderTimeout):
		return "timeout"
	case errors.Is(err, domain.ErrProviderUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrProviderDomainNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrProviderRejected):
		return "rejected"
	default:
		return "other"
	}
}
