// Package app provides the application initialization and wiring.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/domaingate/internal/adapters/in/http/api"
	"github.com/bnema/domaingate/internal/adapters/in/http/edge"
	"github.com/bnema/domaingate/internal/adapters/in/http/httputil"
	"github.com/bnema/domaingate/internal/adapters/in/http/middleware"
	"github.com/bnema/domaingate/internal/adapters/out/ratelimit"
	"github.com/bnema/domaingate/internal/adapters/out/telemetry"
	"github.com/bnema/domaingate/internal/boundaries/out"
)

// edgeWriteTimeout allows proxied pages to stream; the API answers quickly.
const (
	edgeWriteTimeout = 5 * time.Minute
	apiWriteTimeout  = 60 * time.Second
)

// Run starts the edge and API listeners and blocks until ctx is cancelled
// or SIGINT/SIGTERM is received.
func Run(ctx context.Context, configPath, version string) error {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return err
	}
	if err := validateServeConfig(cfg); err != nil {
		return err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = zerowrap.WithCtx(ctx, log)
	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str(zerowrap.FieldComponent, "serve").
		Str("version", version).
		Msg("starting domaingate")

	tp, shutdownTelemetry, err := telemetry.NewProvider(ctx, cfg.Telemetry, telemetry.Instance{
		Version:        version,
		ProviderDriver: cfg.Provider.Driver,
		RootDomain:     cfg.Routing.RootDomain,
	})
	if err != nil {
		return log.WrapErr(err, "failed to initialize telemetry")
	}
	defer shutdownTelemetry(context.WithoutCancel(ctx))

	var metrics out.Metrics
	if tp.MeterProvider != nil {
		m, err := telemetry.NewMetrics()
		if err != nil {
			return log.WrapErr(err, "failed to create metrics")
		}
		metrics = m
	}

	svc, err := createServices(ctx, cfg, metrics)
	if err != nil {
		return err
	}
	defer svc.close()

	if _, err := svc.provider.Get(); err != nil {
		return log.WrapErr(err, "failed to create domain provider")
	}

	trusted, err := middleware.ParseNetworks(cfg.Server.TrustedProxies)
	if err != nil {
		return fmt.Errorf("server.trusted_proxies: %w", err)
	}
	allowed, err := middleware.ParseNetworks(cfg.API.AllowedCIDRs)
	if err != nil {
		return fmt.Errorf("api.allowed_cidrs: %w", err)
	}

	edgeHandler, err := edge.NewHandler(svc.router, metrics, edge.Config{
		AppUpstream:          cfg.Edge.AppUpstream,
		CustomDomainUpstream: cfg.Edge.CustomDomainUpstream,
	})
	if err != nil {
		return err
	}

	var limiter *ratelimit.MemoryStore
	var apiLimiter out.RateLimiter
	if cfg.API.RateLimit.Enabled {
		limiter = ratelimit.NewMemoryStore(cfg.API.RateLimit.PerIPRPS, cfg.API.RateLimit.Burst)
		apiLimiter = limiter
	}

	edgeChain := middleware.Chain(
		middleware.PanicRecovery(log),
		middleware.RequestLogger(log, "edge", trusted),
	)
	apiChain := middleware.Chain(
		middleware.PanicRecovery(log),
		middleware.RequestLogger(log, "api", trusted),
		middleware.SecurityHeaders,
		middleware.CORS(cfg.API.CORSOrigins),
		middleware.CIDRAllowlist(allowed, trusted),
		middleware.RateLimit(apiLimiter, trusted),
	)

	servers := []struct {
		name string
		srv  *http.Server
	}{
		{"edge", httputil.NewServer(cfg.Server.EdgeAddr, edgeChain(edgeHandler), edgeWriteTimeout)},
		{"api", httputil.NewServer(cfg.Server.APIAddr, apiChain(api.NewHandler(svc.domainSvc, api.WithHealthService(svc.healthSvc))), apiWriteTimeout)},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		g.Go(func() error {
			return httputil.Serve(gctx, s.srv, nil, s.name)
		})
	}
	if limiter != nil {
		g.Go(func() error {
			limiter.Run(gctx, cfg.API.RateLimit.SweepInterval)
			return nil
		})
	}

	err = g.Wait()
	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str(zerowrap.FieldComponent, "serve").
		Msg("domaingate stopped")
	return err
}
