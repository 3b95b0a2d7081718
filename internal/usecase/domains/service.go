// Package domains implements the custom domain lifecycle use case.
package domains

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/domaingate/internal/boundaries/in"
	"github.com/bnema/domaingate/internal/boundaries/out"
	"github.com/bnema/domaingate/internal/domain"
)

// DefaultProviderTimeout bounds every provider call when Config.ProviderTimeout is zero.
const DefaultProviderTimeout = 15 * time.Second

// Config holds configuration needed by the domain service.
type Config struct {
	ProviderTimeout time.Duration
}

// Service implements the DomainService interface.
// It mediates between the site store and the domain-hosting provider and
// never retries: retry policy belongs to the caller.
type Service struct {
	provider out.DomainProvider
	store    out.SiteStore
	config   Config
	events   out.EventPublisher
}

var _ in.DomainService = (*Service)(nil)

// NewService creates a new domain service.
func NewService(provider out.DomainProvider, store out.SiteStore, config Config) *Service {
	if config.ProviderTimeout <= 0 {
		config.ProviderTimeout = DefaultProviderTimeout
	}
	return &Service{
		provider: provider,
		store:    store,
		config:   config,
	}
}

// SetEventPublisher enables lifecycle events. Must be called before the
// service handles requests.
func (s *Service) SetEventPublisher(events out.EventPublisher) {
	s.events = events
}

// SubmitCustomDomain validates and registers customDomain for siteID.
func (s *Service) SubmitCustomDomain(ctx context.Context, siteID, customDomain string) (*domain.DomainState, error) {
	name := domain.NormalizeDomain(customDomain)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "SubmitCustomDomain",
		zerowrap.FieldEntityID: siteID,
		"domain":               name,
	})
	log := zerowrap.FromCtx(ctx)

	if err := validateSiteID(siteID); err != nil {
		return nil, err
	}
	if err := domain.ValidateCustomDomain(name); err != nil {
		log.Warn().Err(err).Msg("domain validation failed")
		return nil, err
	}

	record, err := s.store.Get(ctx, siteID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to load site")
	}
	if record.HasCustomDomain() && record.Domain() != name {
		log.Warn().Str("current_domain", record.Domain()).Msg("site already has a custom domain")
		return nil, domain.ErrCustomDomainAlreadySet
	}

	pd, err := s.callProvider(ctx, domain.ProviderOpAdd, name, func(ctx context.Context) (*domain.ProviderDomain, error) {
		return s.provider.AddDomain(ctx, name)
	})
	if err != nil {
		return nil, err
	}

	status := MapProviderStatus(pd.Status)
	update := domain.DomainUpdate{
		CustomDomain:        &name,
		VerificationStatus:  status,
		VerificationDetails: pd.Verification,
	}
	if _, err := s.store.UpdateDomain(ctx, siteID, record.Version, update); err != nil {
		if errors.Is(err, domain.ErrPersistenceConflict) {
			// The provider already holds the domain; the caller re-fetches and resubmits.
			log.Warn().Err(err).Msg("site changed while submitting domain")
			return nil, err
		}
		return nil, log.WrapErr(err, "failed to persist custom domain")
	}

	log.Info().Str("status", string(status)).Msg("custom domain submitted")
	s.publish(ctx, domain.EventDomainSubmitted, domain.DomainEventPayload{
		SiteID:         siteID,
		Domain:         name,
		Status:         status,
		PreviousStatus: record.VerificationStatus,
	})
	return &domain.DomainState{
		SiteID:       siteID,
		Domain:       name,
		Status:       status,
		Verification: pd.Verification,
	}, nil
}

// RemoveCustomDomain unregisters and clears the site's custom domain.
func (s *Service) RemoveCustomDomain(ctx context.Context, siteID string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "RemoveCustomDomain",
		zerowrap.FieldEntityID: siteID,
	})
	log := zerowrap.FromCtx(ctx)

	if err := validateSiteID(siteID); err != nil {
		return err
	}

	record, err := s.store.Get(ctx, siteID)
	if err != nil {
		return log.WrapErr(err, "failed to load site")
	}
	if !record.HasCustomDomain() {
		log.Debug().Msg("no custom domain configured, nothing to remove")
		return nil
	}

	name := record.Domain()
	_, err = s.callProvider(ctx, domain.ProviderOpRemove, name, func(ctx context.Context) (*domain.ProviderDomain, error) {
		return nil, s.provider.RemoveDomain(ctx, name)
	})
	if err != nil && !errors.Is(err, domain.ErrProviderDomainNotFound) {
		// Never clear optimistically: the provider may still hold the domain.
		return err
	}

	update := domain.DomainUpdate{VerificationStatus: domain.VerificationUnconfigured}
	if _, err := s.store.UpdateDomain(ctx, siteID, record.Version, update); err != nil {
		if errors.Is(err, domain.ErrPersistenceConflict) {
			log.Warn().Err(err).Str("domain", name).Msg("site changed while removing domain")
			return err
		}
		return log.WrapErrWithFields(err, "failed to clear custom domain", map[string]any{"domain": name})
	}

	log.Info().Str("domain", name).Msg("custom domain removed")
	s.publish(ctx, domain.EventDomainRemoved, domain.DomainEventPayload{
		SiteID:         siteID,
		Domain:         name,
		Status:         domain.VerificationUnconfigured,
		PreviousStatus: record.VerificationStatus,
	})
	return nil
}

// CheckStatus reads the provider state of customDomain. The store is never written.
func (s *Service) CheckStatus(ctx context.Context, customDomain string) (*domain.DomainState, error) {
	name := domain.NormalizeDomain(customDomain)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "CheckStatus",
		"domain":              name,
	})
	log := zerowrap.FromCtx(ctx)

	if err := domain.ValidateCustomDomain(name); err != nil {
		log.Warn().Err(err).Msg("domain validation failed")
		return nil, err
	}

	return s.checkStatus(ctx, name)
}

// RefreshStatus checks the provider and persists the outcome on the site.
func (s *Service) RefreshStatus(ctx context.Context, siteID string) (*domain.DomainState, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "RefreshStatus",
		zerowrap.FieldEntityID: siteID,
	})
	log := zerowrap.FromCtx(ctx)

	if err := validateSiteID(siteID); err != nil {
		return nil, err
	}

	record, err := s.store.Get(ctx, siteID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to load site")
	}
	if !record.HasCustomDomain() {
		return &domain.DomainState{SiteID: siteID, Status: domain.VerificationUnconfigured}, nil
	}

	name := record.Domain()
	state, err := s.checkStatus(ctx, name)
	if err != nil {
		return nil, err
	}
	state.SiteID = siteID

	update := domain.DomainUpdate{
		CustomDomain:        &name,
		VerificationStatus:  state.Status,
		VerificationDetails: state.Verification,
	}
	if _, err := s.store.UpdateDomain(ctx, siteID, record.Version, update); err != nil {
		if errors.Is(err, domain.ErrPersistenceConflict) {
			log.Warn().Err(err).Msg("site changed while refreshing status")
			return nil, err
		}
		return nil, log.WrapErr(err, "failed to persist verification status")
	}

	log.Info().Str("status", string(state.Status)).Msg("verification status refreshed")
	if state.Status != record.VerificationStatus {
		s.publish(ctx, domain.EventDomainStatusChanged, domain.DomainEventPayload{
			SiteID:         siteID,
			Domain:         name,
			Status:         state.Status,
			PreviousStatus: record.VerificationStatus,
		})
	}
	return state, nil
}

// ResolveSiteByCustomDomain finds the site owning customDomain.
func (s *Service) ResolveSiteByCustomDomain(ctx context.Context, customDomain string) (*domain.SiteDomainRecord, error) {
	name := domain.NormalizeDomain(customDomain)
	if name == "" {
		return nil, domain.ErrSiteNotFound
	}

	record, err := s.store.GetByCustomDomain(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrSiteNotFound) && !errors.Is(err, domain.ErrSubscriptionExpired) {
			zerowrap.FromCtx(ctx).Error().Err(err).Str("domain", name).Msg("failed to resolve site by custom domain")
		}
		return nil, err
	}
	return record, nil
}

func (s *Service) checkStatus(ctx context.Context, name string) (*domain.DomainState, error) {
	pd, err := s.callProvider(ctx, domain.ProviderOpStatus, name, func(ctx context.Context) (*domain.ProviderDomain, error) {
		return s.provider.GetStatus(ctx, name)
	})
	if errors.Is(err, domain.ErrProviderDomainNotFound) {
		return &domain.DomainState{Domain: name, Status: domain.VerificationUnconfigured}, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.DomainState{
		Domain:       name,
		Status:       MapProviderStatus(pd.Status),
		Verification: pd.Verification,
	}, nil
}

// publish emits a lifecycle event. Failures are logged and never fail the operation.
func (s *Service) publish(ctx context.Context, eventType domain.EventType, payload domain.DomainEventPayload) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(eventType, payload); err != nil {
		zerowrap.FromCtx(ctx).Warn().Err(err).Str("event", string(eventType)).Msg("failed to publish domain event")
	}
}

// callProvider runs one provider call under the configured timeout and logs failures.
func (s *Service) callProvider(
	ctx context.Context,
	op domain.ProviderOp,
	name string,
	call func(ctx context.Context) (*domain.ProviderDomain, error),
) (*domain.ProviderDomain, error) {
	log := zerowrap.FromCtx(ctx)

	callCtx, cancel := context.WithTimeout(ctx, s.config.ProviderTimeout)
	defer cancel()

	pd, err := call(callCtx)
	if err != nil {
		err = classifyProviderError(callCtx, op, name, err)
		if errors.Is(err, domain.ErrProviderDomainNotFound) {
			log.Debug().Str("operation", string(op)).Msg("domain not registered with provider")
			return nil, err
		}

		evt := log.Warn().Err(err).Str("operation", string(op))
		if pe, ok := domain.AsProviderError(err); ok {
			evt = evt.Int("provider_status", pe.StatusCode).Str("provider_code", pe.Code).Bool("retryable", pe.Retryable())
		}
		evt.Msg("provider call failed")
		return nil, err
	}

	if pd == nil {
		pd = &domain.ProviderDomain{Name: name}
	}
	return pd, nil
}

// classifyProviderError guarantees callers always receive a *domain.ProviderError.
func classifyProviderError(ctx context.Context, op domain.ProviderOp, name string, err error) error {
	if _, ok := domain.AsProviderError(err); ok {
		return err
	}

	kind := domain.ErrProviderUnavailable
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		kind = domain.ErrProviderTimeout
	}
	return &domain.ProviderError{Kind: kind, Op: op, Domain: name, Err: err}
}

// MapProviderStatus maps the provider vocabulary into the four verification states.
// Unknown values map to pending: only the provider can declare a domain verified.
func MapProviderStatus(status domain.ProviderStatus) domain.VerificationStatus {
	switch domain.ProviderStatus(strings.ToLower(string(status))) {
	case domain.ProviderStatusVerified:
		return domain.VerificationVerified
	case domain.ProviderStatusFailed:
		return domain.VerificationFailed
	default:
		return domain.VerificationPending
	}
}

func validateSiteID(siteID string) error {
	if strings.TrimSpace(siteID) == "" {
		return domain.ErrInvalidSiteID
	}
	return nil
}
