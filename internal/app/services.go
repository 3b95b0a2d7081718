package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bnema/zerowrap"

	"github.com/bnema/domaingate/internal/adapters/out/eventbus"
	"github.com/bnema/domaingate/internal/adapters/out/httpprober"
	"github.com/bnema/domaingate/internal/adapters/out/provider"
	"github.com/bnema/domaingate/internal/adapters/out/provider/cloudflare"
	"github.com/bnema/domaingate/internal/adapters/out/provider/vercel"
	"github.com/bnema/domaingate/internal/adapters/out/sitestore"
	"github.com/bnema/domaingate/internal/boundaries/out"
	"github.com/bnema/domaingate/internal/domain"
	"github.com/bnema/domaingate/internal/usecase/domains"
	"github.com/bnema/domaingate/internal/usecase/health"
	"github.com/bnema/domaingate/internal/usecase/routing"
)

// services holds the wired use cases and the adapters they own.
type services struct {
	router    *routing.Router
	domainSvc *domains.Service
	healthSvc *health.Service
	store     out.SiteStore
	provider  *provider.Lazy
	bus       *eventbus.InMemory
	closers   []func() error
}

func (s *services) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]()
	}
}

// initLogger initializes the zerowrap logger.
func initLogger(cfg Config) (zerowrap.Logger, func(), error) {
	logConfig := zerowrap.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}

	if cfg.Logging.File.Enabled {
		logPath := cfg.Logging.File.Path
		if logPath == "" {
			logPath = filepath.Join(cfg.Server.DataDir, "logs", "domaingate.log")
		}

		log, cleanup, err := zerowrap.NewWithFile(logConfig, zerowrap.FileConfig{
			Enabled:    true,
			Path:       logPath,
			MaxSize:    cfg.Logging.File.MaxSize,
			MaxBackups: cfg.Logging.File.MaxBackups,
			MaxAge:     cfg.Logging.File.MaxAge,
			Compress:   true,
		})
		if err != nil {
			return zerowrap.Default(), nil, fmt.Errorf("failed to create logger with file: %w", err)
		}
		return log, cleanup, nil
	}

	return zerowrap.New(logConfig), nil, nil
}

// createServices wires the store, the provider and both use cases.
// metrics may be nil. The provider client is only built on first use;
// callers that need it up front call svc.provider.Get.
func createServices(ctx context.Context, cfg Config, metrics out.Metrics) (*services, error) {
	log := zerowrap.FromCtx(ctx)

	svc := &services{router: newRouter(cfg)}

	store, closeStore, err := createSiteStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	svc.store = store
	if closeStore != nil {
		svc.closers = append(svc.closers, closeStore)
	}

	if err := validateProviderDriver(cfg.Provider.Driver); err != nil {
		svc.close()
		return nil, err
	}
	svc.provider = provider.NewLazy(func() (out.DomainProvider, error) {
		dp, err := createDomainProvider(cfg)
		if err != nil {
			return nil, err
		}
		return provider.NewInstrumented(dp, metrics, cfg.Provider.Driver), nil
	})

	svc.domainSvc = domains.NewService(svc.provider, store, domains.Config{
		ProviderTimeout: cfg.Provider.Timeout,
	})

	if cfg.Events.Enabled {
		bus, err := createEventBus(ctx, cfg, metrics)
		if err != nil {
			svc.close()
			return nil, err
		}
		svc.bus = bus
		svc.closers = append(svc.closers, bus.Stop)
		svc.domainSvc.SetEventPublisher(bus)
	}

	svc.healthSvc = health.NewService([]domain.Upstream{
		{Name: "app", URL: cfg.Edge.AppUpstream},
		{Name: "custom_domain", URL: cfg.Edge.CustomDomainUpstream},
	}, httpprober.New(httpprober.WithTimeout(cfg.Edge.ProbeTimeout)))

	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str("store", cfg.Store.Driver).
		Str("provider", cfg.Provider.Driver).
		Bool("events", svc.bus != nil).
		Str("root_domain", svc.router.RootDomain()).
		Msg("services initialized")

	return svc, nil
}

// createEventBus starts the lifecycle event bus with the audit subscriber.
// metrics may be nil.
func createEventBus(ctx context.Context, cfg Config, metrics out.Metrics) (*eventbus.InMemory, error) {
	bus := eventbus.NewInMemory(cfg.Events.BufferSize, zerowrap.FromCtx(ctx))
	if metrics != nil {
		bus.SetMetrics(metrics)
	}
	if err := bus.Subscribe(domains.NewAuditHandler(ctx)); err != nil {
		return nil, err
	}
	if err := bus.Start(); err != nil {
		return nil, err
	}
	return bus, nil
}

func newRouter(cfg Config) *routing.Router {
	return routing.NewRouter(routing.Config{
		RootDomain:       cfg.Routing.RootDomain,
		ReservedPrefixes: cfg.Routing.ReservedPrefixes,
		RewritePrefix:    cfg.Routing.RewritePrefix,
	})
}

// createSiteStore opens the configured site store.
func createSiteStore(ctx context.Context, cfg Config) (out.SiteStore, func() error, error) {
	switch cfg.Store.Driver {
	case StoreDriverMemory:
		zerowrap.FromCtx(ctx).Warn().
			Str(zerowrap.FieldLayer, "app").
			Msg("using in-memory site store, data is lost on exit")
		return sitestore.NewMemoryStore(), nil, nil
	case StoreDriverSQLite, "":
		store, err := sitestore.NewSQLiteStore(ctx, cfg.Store.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown store driver %q", domain.ErrInvalidConfig, cfg.Store.Driver)
	}
}

func validateProviderDriver(driver string) error {
	switch driver {
	case ProviderDriverVercel, ProviderDriverCloudflare:
		return nil
	default:
		return fmt.Errorf("%w: unknown provider driver %q", domain.ErrInvalidConfig, driver)
	}
}

// createDomainProvider builds the configured provider client.
func createDomainProvider(cfg Config) (out.DomainProvider, error) {
	switch cfg.Provider.Driver {
	case ProviderDriverVercel:
		client, err := vercel.New(vercel.Config{
			Token:       cfg.Provider.Vercel.Token,
			ProjectID:   cfg.Provider.Vercel.ProjectID,
			TeamID:      cfg.Provider.Vercel.TeamID,
			BaseURL:     cfg.Provider.Vercel.BaseURL,
			CNAMETarget: cfg.Edge.CNAMETarget,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderDriverCloudflare:
		client, err := cloudflare.New(cloudflare.Config{
			APIToken:    cfg.Provider.Cloudflare.APIToken,
			ZoneID:      cfg.Provider.Cloudflare.ZoneID,
			BaseURL:     cfg.Provider.Cloudflare.BaseURL,
			CNAMETarget: cfg.Edge.CNAMETarget,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider driver %q", domain.ErrInvalidConfig, cfg.Provider.Driver)
	}
}
