// Package telemetry wires domaingate's OpenTelemetry export: spans from the
// instrumented domain provider and the routing, provider and event counters,
// all shipped over OTLP/HTTP.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/zerowrap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ServiceName is reported as service.name on every span and metric.
const ServiceName = "domaingate"

// Resource attribute keys describing which provider and root domain an
// instance manages.
const (
	AttrProviderDriver = attribute.Key("domaingate.provider.driver")
	AttrRootDomain     = attribute.Key("domaingate.root_domain")
)

// Config holds telemetry configuration.
type Config struct {
	Enabled bool `mapstructure:"enabled"`
	// Endpoint is the collector base URL, e.g. "http://localhost:4318".
	// Signal paths (/v1/traces, /v1/metrics) are appended to it.
	Endpoint string `mapstructure:"endpoint"`
	// AuthToken is sent as HTTP basic credentials (base64 user:pass).
	AuthToken       string  `mapstructure:"auth_token"`
	Traces          bool    `mapstructure:"traces"`
	Metrics         bool    `mapstructure:"metrics"`
	TraceSampleRate float64 `mapstructure:"trace_sample_rate"`
}

// Instance identifies the running process in exported telemetry.
type Instance struct {
	Version        string
	ProviderDriver string
	RootDomain     string
}

// Provider holds whichever SDK providers were started. A nil field means
// that signal is not exported.
type Provider struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
}

// NewProvider starts trace and metric export according to cfg and installs
// the providers globally. With telemetry disabled, no endpoint, or both
// signals switched off it returns an empty Provider and a no-op shutdown.
func NewProvider(ctx context.Context, cfg Config, inst Instance) (*Provider, func(context.Context), error) {
	noop := func(context.Context) {}

	if !cfg.Enabled || cfg.Endpoint == "" || (!cfg.Traces && !cfg.Metrics) {
		return &Provider{}, noop, nil
	}
	if cfg.TraceSampleRate < 0 || cfg.TraceSampleRate > 1 {
		return nil, noop, fmt.Errorf("telemetry.trace_sample_rate must be within [0, 1], got %v", cfg.TraceSampleRate)
	}

	res, err := newResource(ctx, inst)
	if err != nil {
		return nil, noop, fmt.Errorf("create resource: %w", err)
	}

	headers := map[string]string{}
	if cfg.AuthToken != "" {
		headers["Authorization"] = "Basic " + cfg.AuthToken
	}

	p := &Provider{}

	if cfg.Traces {
		target, err := signalURL(cfg.Endpoint, "traces")
		if err != nil {
			return nil, noop, err
		}
		exp, err := otlptracehttp.New(ctx,
			otlptracehttp.WithEndpointURL(target),
			otlptracehttp.WithHeaders(headers),
		)
		if err != nil {
			return nil, noop, fmt.Errorf("create trace exporter: %w", err)
		}
		p.TracerProvider = trace.NewTracerProvider(
			trace.WithBatcher(exp),
			trace.WithResource(res),
			trace.WithSampler(sampler(cfg.TraceSampleRate)),
		)
		otel.SetTracerProvider(p.TracerProvider)
	}

	if cfg.Metrics {
		target, err := signalURL(cfg.Endpoint, "metrics")
		if err != nil {
			p.shutdown(ctx)
			return nil, noop, err
		}
		exp, err := otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithEndpointURL(target),
			otlpmetrichttp.WithHeaders(headers),
		)
		if err != nil {
			p.shutdown(ctx)
			return nil, noop, fmt.Errorf("create metric exporter: %w", err)
		}
		p.MeterProvider = metric.NewMeterProvider(
			metric.WithReader(metric.NewPeriodicReader(exp)),
			metric.WithResource(res),
		)
		otel.SetMeterProvider(p.MeterProvider)
	}

	zerowrap.FromCtx(ctx).Info().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "telemetry").
		Str("endpoint", cfg.Endpoint).
		Bool("traces", cfg.Traces).
		Bool("metrics", cfg.Metrics).
		Float64("trace_sample_rate", cfg.TraceSampleRate).
		Msg("telemetry export started")

	return p, p.shutdown, nil
}

// shutdown flushes and stops every started provider, logging failures.
func (p *Provider) shutdown(ctx context.Context) {
	var errs []error
	if p.TracerProvider != nil {
		errs = append(errs, p.TracerProvider.Shutdown(ctx))
	}
	if p.MeterProvider != nil {
		errs = append(errs, p.MeterProvider.Shutdown(ctx))
	}
	if err := errors.Join(errs...); err != nil {
		zerowrap.FromCtx(ctx).Warn().Err(err).Msg("telemetry shutdown incomplete")
	}
}

func newResource(ctx context.Context, inst Instance) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(inst.Version),
	}
	if inst.ProviderDriver != "" {
		attrs = append(attrs, AttrProviderDriver.String(inst.ProviderDriver))
	}
	if inst.RootDomain != "" {
		attrs = append(attrs, AttrRootDomain.String(inst.RootDomain))
	}
	return resource.New(ctx, resource.WithAttributes(attrs...), resource.WithHost())
}

// signalURL joins the collector base URL with the OTLP path for signal.
func signalURL(endpoint, signal string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse telemetry endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("parse telemetry endpoint: unsupported scheme in %q", endpoint)
	}
	if u.Host == "" {
		return "", fmt.Errorf("parse telemetry endpoint: missing host in %q", endpoint)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/v1/" + signal
	return u.String(), nil
}

// sampler maps trace_sample_rate onto a sampler. Rates strictly between 0 and
// 1 sample root spans by trace ID and follow the parent's decision otherwise.
func sampler(rate float64) trace.Sampler {
	switch {
	case rate <= 0:
		return trace.NeverSample()
	case rate >= 1:
		return trace.AlwaysSample()
	default:
		return trace.ParentBased(trace.TraceIDRatioBased(rate))
	}
}
