package provider

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bnema/domaingate/internal/boundaries/out"
	"github.com/bnema/domaingate/internal/domain"
)

// Instrumented decorates a DomainProvider with metrics and trace spans.
type Instrumented struct {
	next    out.DomainProvider
	metrics out.Metrics
	tracer  trace.Tracer
	name    string
}

var _ out.DomainProvider = (*Instrumented)(nil)

// NewInstrumented wraps next. name identifies the provider driver in spans.
func NewInstrumented(next out.DomainProvider, metrics out.Metrics, name string) *Instrumented {
	return &Instrumented{
		next:    next,
		metrics: metrics,
		tracer:  otel.Tracer("domaingate/provider"),
		name:    name,
	}
}

func (p *Instrumented) AddDomain(ctx context.Context, name string) (*domain.ProviderDomain, error) {
	ctx, finish := p.start(ctx, domain.ProviderOpAdd, name)
	pd, err := p.next.AddDomain(ctx, name)
	finish(err)
	return pd, err
}

func (p *Instrumented) RemoveDomain(ctx context.Context, name string) error {
	ctx, finish := p.start(ctx, domain.ProviderOpRemove, name)
	err := p.next.RemoveDomain(ctx, name)
	finish(err)
	return err
}

func (p *Instrumented) GetStatus(ctx context.Context, name string) (*domain.ProviderDomain, error) {
	ctx, finish := p.start(ctx, domain.ProviderOpStatus, name)
	pd, err := p.next.GetStatus(ctx, name)
	finish(err)
	return pd, err
}

func (p *Instrumented) start(ctx context.Context, op domain.ProviderOp, name string) (context.Context, func(error)) {
	ctx, span := p.tracer.Start(ctx, "provider."+string(op),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("provider.driver", p.name),
			attribute.String("domain", name),
		),
	)
	start := time.Now()

	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			if pe, ok := domain.AsProviderError(err); ok && pe.StatusCode != 0 {
				span.SetAttributes(attribute.Int("provider.status_code", pe.StatusCode))
			}
		}
		span.End()

		if p.metrics != nil {
			p.metrics.RecordProviderCall(ctx, op, time.Since(start), err)
		}
	}
}
