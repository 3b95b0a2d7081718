package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func TestNewProvider_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"disabled", Config{Enabled: false, Endpoint: "http://collector:4318", Traces: true, Metrics: true}},
		{"no endpoint", Config{Enabled: true, Traces: true, Metrics: true}},
		{"no signals", Config{Enabled: true, Endpoint: "http://collector:4318"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, shutdown, err := NewProvider(testContext(), tt.cfg, Instance{Version: "test"})

			require.NoError(t, err)
			assert.Nil(t, p.TracerProvider)
			assert.Nil(t, p.MeterProvider)
			shutdown(testContext())
		})
	}
}

func TestNewProvider_InvalidSampleRate(t *testing.T) {
	cfg := Config{Enabled: true, Endpoint: "http://collector:4318", Traces: true, TraceSampleRate: 1.5}

	_, _, err := NewProvider(testContext(), cfg, Instance{Version: "test"})

	assert.ErrorContains(t, err, "trace_sample_rate")
}

func TestNewProvider_InvalidEndpoint(t *testing.T) {
	cfg := Config{Enabled: true, Endpoint: "collector:4318", Metrics: true}

	_, _, err := NewProvider(testContext(), cfg, Instance{Version: "test"})

	assert.Error(t, err)
}

func TestNewProvider_SignalToggles(t *testing.T) {
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(collector.Close)

	tests := []struct {
		name        string
		traces      bool
		metrics     bool
		wantTracer  bool
		wantMetrics bool
	}{
		{"traces only", true, false, true, false},
		{"metrics only", false, true, false, true},
		{"both", true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Enabled:         true,
				Endpoint:        collector.URL,
				Traces:          tt.traces,
				Metrics:         tt.metrics,
				TraceSampleRate: 1,
			}

			p, shutdown, err := NewProvider(testContext(), cfg, Instance{Version: "test", ProviderDriver: "vercel"})
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(testContext(), 2*time.Second)
			defer cancel()
			defer shutdown(ctx)

			assert.Equal(t, tt.wantTracer, p.TracerProvider != nil)
			assert.Equal(t, tt.wantMetrics, p.MeterProvider != nil)
		})
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource(context.Background(), Instance{
		Version:        "1.2.3",
		ProviderDriver: "cloudflare",
		RootDomain:     "example.com",
	})
	require.NoError(t, err)

	set := res.Set()
	name, ok := set.Value("service.name")
	require.True(t, ok)
	assert.Equal(t, ServiceName, name.AsString())

	version, ok := set.Value("service.version")
	require.True(t, ok)
	assert.Equal(t, "1.2.3", version.AsString())

	driver, ok := set.Value(AttrProviderDriver)
	require.True(t, ok)
	assert.Equal(t, "cloudflare", driver.AsString())

	root, ok := set.Value(AttrRootDomain)
	require.True(t, ok)
	assert.Equal(t, "example.com", root.AsString())
}

func TestNewResource_OmitsEmptyAttributes(t *testing.T) {
	res, err := newResource(context.Background(), Instance{Version: "dev"})
	require.NoError(t, err)

	_, ok := res.Set().Value(AttrProviderDriver)
	assert.False(t, ok)
	_, ok = res.Set().Value(AttrRootDomain)
	assert.False(t, ok)
}

func TestSignalURL(t *testing.T) {
	got, err := signalURL("http://collector:4318/otlp/", "traces")
	require.NoError(t, err)
	assert.Equal(t, "http://collector:4318/otlp/v1/traces", got)

	got, err = signalURL("https://otel.example.com", "metrics")
	require.NoError(t, err)
	assert.Equal(t, "https://otel.example.com/v1/metrics", got)

	_, err = signalURL("not a url", "traces")
	assert.Error(t, err)

	_, err = signalURL("http://", "traces")
	assert.Error(t, err)
}

func TestSampler(t *testing.T) {
	assert.Equal(t, "AlwaysOffSampler", sampler(0).Description())
	assert.Equal(t, "AlwaysOnSampler", sampler(1).Description())
	assert.Contains(t, sampler(0.25).Description(), "TraceIDRatioBased{0.25}")
	assert.Contains(t, sampler(0.25).Description(), "ParentBased")
}
