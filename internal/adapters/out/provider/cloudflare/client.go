// Package cloudflare implements the DomainProvider interface on top of
// Cloudflare for SaaS custom hostnames.
package cloudflare

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/zerowrap"
	cf "github.com/cloudflare/cloudflare-go"

	"github.com/bnema/domaingate/internal/adapters/out/provider"
	"github.com/bnema/domaingate/internal/boundaries/out"
	"github.com/bnema/domaingate/internal/domain"
)

// Config holds the credentials and zone custom hostnames are created in.
type Config struct {
	APIToken string
	ZoneID   string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// CNAMETarget is the fallback origin users point their domain at.
	CNAMETarget string
	HTTPClient  *http.Client
}

// Client implements out.DomainProvider for Cloudflare.
type Client struct {
	api         *cf.API
	zoneID      string
	cnameTarget string
}

var _ out.DomainProvider = (*Client)(nil)

// New creates a new Cloudflare custom hostname client.
func New(config Config) (*Client, error) {
	if config.APIToken == "" {
		return nil, fmt.Errorf("%w: cloudflare api token is required", domain.ErrInvalidConfig)
	}
	if config.ZoneID == "" {
		return nil, fmt.Errorf("%w: cloudflare zone id is required", domain.ErrInvalidConfig)
	}

	// The lifecycle manager owns retry policy, so the SDK must not retry.
	opts := []cf.Option{cf.UsingRetryPolicy(0, 0, 0)}
	if config.BaseURL != "" {
		opts = append(opts, cf.BaseURL(config.BaseURL))
	}
	if config.HTTPClient != nil {
		opts = append(opts, cf.HTTPClient(config.HTTPClient))
	}

	api, err := cf.NewWithAPIToken(config.APIToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudflare client: %w", err)
	}

	return &Client{
		api:         api,
		zoneID:      config.ZoneID,
		cnameTarget: config.CNAMETarget,
	}, nil
}

// AddDomain creates a custom hostname with HTTP domain-validated certificates.
// An existing hostname is returned as-is so resubmission is idempotent.
func (c *Client) AddDomain(ctx context.Context, name string) (*domain.ProviderDomain, error) {
	ctx = logFields(ctx, "AddDomain", name)
	log := zerowrap.FromCtx(ctx)

	resp, err := c.api.CreateCustomHostname(ctx, c.zoneID, cf.CustomHostname{
		Hostname: name,
		SSL: &cf.CustomHostnameSSL{
			Method: "http",
			Type:   "dv",
		},
	})
	if err != nil {
		var reqErr *cf.RequestError
		if errors.As(err, &reqErr) {
			if existing, findErr := c.find(ctx, domain.ProviderOpAdd, name); findErr == nil {
				log.Debug().Msg("custom hostname already exists")
				return c.toProviderDomain(existing), nil
			}
		}
		return nil, classify(ctx, domain.ProviderOpAdd, name, err)
	}

	log.Info().Str("hostname_id", resp.Result.ID).Str("status", string(resp.Result.Status)).Msg("custom hostname created")
	return c.toProviderDomain(&resp.Result), nil
}

// RemoveDomain deletes the custom hostname.
func (c *Client) RemoveDomain(ctx context.Context, name string) error {
	ctx = logFields(ctx, "RemoveDomain", name)
	log := zerowrap.FromCtx(ctx)

	ch, err := c.find(ctx, domain.ProviderOpRemove, name)
	if err != nil {
		return err
	}

	if err := c.api.DeleteCustomHostname(ctx, c.zoneID, ch.ID); err != nil {
		return classify(ctx, domain.ProviderOpRemove, name, err)
	}

	log.Info().Str("hostname_id", ch.ID).Msg("custom hostname deleted")
	return nil
}

// GetStatus looks the custom hostname up and reports its state.
func (c *Client) GetStatus(ctx context.Context, name string) (*domain.ProviderDomain, error) {
	ch, err := c.find(ctx, domain.ProviderOpStatus, name)
	if err != nil {
		return nil, err
	}
	return c.toProviderDomain(ch), nil
}

func (c *Client) find(ctx context.Context, op domain.ProviderOp, name string) (*cf.CustomHostname, error) {
	hostnames, _, err := c.api.CustomHostnames(ctx, c.zoneID, 1, cf.CustomHostname{Hostname: name})
	if err != nil {
		return nil, classify(ctx, op, name, err)
	}
	for i := range hostnames {
		if hostnames[i].Hostname == name {
			return &hostnames[i], nil
		}
	}
	return nil, &domain.ProviderError{
		Kind:       domain.ErrProviderDomainNotFound,
		Op:         op,
		Domain:     name,
		StatusCode: http.StatusNotFound,
		Reason:     "custom hostname not found",
	}
}

func (c *Client) toProviderDomain(ch *cf.CustomHostname) *domain.ProviderDomain {
	pd := &domain.ProviderDomain{
		Name:   ch.Hostname,
		Status: mapStatus(ch.Status),
	}

	reason := ""
	if len(ch.VerificationErrors) > 0 {
		reason = ch.VerificationErrors[0]
	}

	switch {
	case ch.OwnershipVerification.Name != "" && pd.Status != domain.ProviderStatusVerified:
		pd.Verification = &domain.VerificationDetails{
			Type:   ch.OwnershipVerification.Type,
			Name:   ch.OwnershipVerification.Name,
			Value:  ch.OwnershipVerification.Value,
			Reason: reason,
		}
	case c.cnameTarget != "":
		pd.Verification = &domain.VerificationDetails{
			Type:   "CNAME",
			Name:   ch.Hostname,
			Value:  c.cnameTarget,
			Reason: reason,
		}
	}
	return pd
}

// mapStatus translates custom hostname states. Unlisted states such as
// "pending_deletion" are passed through and treated as unknown upstream.
func mapStatus(status cf.CustomHostnameStatus) domain.ProviderStatus {
	switch status {
	case cf.ACTIVE:
		return domain.ProviderStatusVerified
	case cf.PENDING:
		return domain.ProviderStatusPending
	case cf.BLOCKED, cf.MOVED, cf.DELETED:
		return domain.ProviderStatusFailed
	default:
		return domain.ProviderStatus(status)
	}
}

func classify(ctx context.Context, op domain.ProviderOp, name string, err error) error {
	var (
		notFound  *cf.NotFoundError
		rateLimit *cf.RatelimitError
		service   *cf.ServiceError
		authn     *cf.AuthenticationError
		authz     *cf.AuthorizationError
		request   *cf.RequestError
	)

	switch {
	case provider.IsTimeout(ctx, err):
		return provider.FromTransport(ctx, op, name, err)
	case errors.As(err, &notFound):
		return withErr(provider.FromStatus(op, name, http.StatusNotFound, "", err.Error()), err)
	case errors.As(err, &rateLimit) || isRateLimited(err):
		return withErr(provider.FromStatus(op, name, http.StatusTooManyRequests, "", err.Error()), err)
	case errors.As(err, &service):
		return withErr(provider.FromStatus(op, name, http.StatusInternalServerError, "", err.Error()), err)
	case errors.As(err, &authn):
		return withErr(provider.FromStatus(op, name, http.StatusUnauthorized, "", err.Error()), err)
	case errors.As(err, &authz):
		return withErr(provider.FromStatus(op, name, http.StatusForbidden, "", err.Error()), err)
	case errors.As(err, &request):
		return withErr(provider.FromStatus(op, name, http.StatusBadRequest, "", err.Error()), err)
	default:
		return provider.FromTransport(ctx, op, name, err)
	}
}

// With retries disabled the SDK reports a 429 as a plain error rather than a
// *cf.RatelimitError.
func isRateLimited(err error) bool {
	return strings.Contains(err.Error(), "rate limit")
}

func withErr(pe *domain.ProviderError, err error) *domain.ProviderError {
	pe.Err = err
	return pe
}

func logFields(ctx context.Context, action, name string) context.Context {
	return zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "cloudflare",
		zerowrap.FieldAction:  action,
		"domain":              name,
	})
}
