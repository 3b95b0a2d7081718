package app

import (
	"context"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/domaingate/internal/boundaries/in"
	"github.com/bnema/domaingate/internal/domain"
)

// Kernel provides in-process service access for local CLI execution.
//
// It does not start HTTP servers or register signal handlers.
type Kernel struct {
	svc     *services
	ctx     context.Context
	cleanup func()
}

// NewKernel initializes local services without starting server listeners.
func NewKernel(configPath string) (*Kernel, error) {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return nil, err
	}

	log, cleanup, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}
	if cleanup == nil {
		cleanup = func() {}
	}

	ctx := zerowrap.WithCtx(context.Background(), log)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{zerowrap.FieldComponent: "cli"})

	svc, err := createServices(ctx, cfg, nil)
	if err != nil {
		cleanup()
		return nil, err
	}

	return &Kernel{svc: svc, ctx: ctx, cleanup: cleanup}, nil
}

// Close releases the store and flushes the logger.
func (k *Kernel) Close() error {
	k.svc.close()
	k.cleanup()
	return nil
}

// Context returns a context carrying the kernel's logger.
func (k *Kernel) Context() context.Context { return k.ctx }

// Router returns the host router.
func (k *Kernel) Router() in.HostRouter { return k.svc.router }

// Domains returns the domain lifecycle service.
func (k *Kernel) Domains() in.DomainService { return k.svc.domainSvc }

// CreateSite stores an empty record for siteID, optionally with a subscription
// expiry. The record and its expiry are written together.
func (k *Kernel) CreateSite(ctx context.Context, siteID string, expiresAt *time.Time) (*domain.SiteDomainRecord, error) {
	return k.svc.store.Create(ctx, siteID, expiresAt)
}

// SetSubscriptionExpiry records the billing expiry of an existing site.
func (k *Kernel) SetSubscriptionExpiry(ctx context.Context, siteID string, expiresAt *time.Time) error {
	return k.svc.store.SetSubscriptionExpiry(ctx, siteID, expiresAt)
}

// NewRouter builds the host router from configuration alone. It needs no
// provider credentials and opens no store.
func NewRouter(configPath string) (in.HostRouter, error) {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return nil, err
	}
	return newRouter(cfg), nil
}
