// Package vercel implements the DomainProvider interface against the
// Vercel project domains API.
package vercel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/domaingate/internal/adapters/out/provider"
	"github.com/bnema/domaingate/internal/boundaries/out"
	"github.com/bnema/domaingate/internal/domain"
)

// DefaultBaseURL is the public Vercel API endpoint.
const DefaultBaseURL = "https://api.vercel.com"

// DefaultTimeout caps a single HTTP exchange with the API.
const DefaultTimeout = 30 * time.Second

const maxResponseBytes = 1 << 20

// Config holds the credentials and project the client manages domains for.
type Config struct {
	Token     string
	ProjectID string
	TeamID    string
	BaseURL   string
	// CNAMETarget is the record users point their domain at once the
	// ownership challenge, if any, is satisfied.
	CNAMETarget string
}

// Client implements out.DomainProvider for Vercel.
type Client struct {
	config  Config
	baseURL string
	client  *http.Client
}

var _ out.DomainProvider = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// New creates a new Vercel client.
func New(config Config, opts ...Option) (*Client, error) {
	if config.Token == "" {
		return nil, fmt.Errorf("%w: vercel token is required", domain.ErrInvalidConfig)
	}
	if config.ProjectID == "" {
		return nil, fmt.Errorf("%w: vercel project id is required", domain.ErrInvalidConfig)
	}

	c := &Client{
		config:  config,
		baseURL: strings.TrimRight(config.BaseURL, "/"),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: DefaultTimeout}
	}

	return c, nil
}

// projectDomain is the domain object returned by the API.
type projectDomain struct {
	Name         string              `json:"name"`
	ApexName     string              `json:"apexName"`
	ProjectID    string              `json:"projectId"`
	Verified     bool                `json:"verified"`
	Verification []verificationEntry `json:"verification"`
}

type verificationEntry struct {
	Type   string `json:"type"`
	Domain string `json:"domain"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// AddDomain registers name on the project. A domain the project already
// holds is returned as-is so resubmission is idempotent.
func (c *Client) AddDomain(ctx context.Context, name string) (*domain.ProviderDomain, error) {
	ctx = logFields(ctx, "AddDomain", name)
	log := zerowrap.FromCtx(ctx)

	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	var pd projectDomain
	err = c.do(ctx, domain.ProviderOpAdd, name, http.MethodPost, c.projectPath("/v10", ""), body, &pd)
	if err != nil {
		var pe *domain.ProviderError
		if errors.As(err, &pe) && pe.StatusCode == http.StatusConflict {
			existing, getErr := c.GetStatus(ctx, name)
			if getErr == nil {
				log.Debug().Msg("domain already registered on project")
				return existing, nil
			}
		}
		return nil, err
	}

	log.Info().Bool("verified", pd.Verified).Msg("domain added to project")
	return c.toProviderDomain(name, &pd), nil
}

// RemoveDomain unregisters name from the project.
func (c *Client) RemoveDomain(ctx context.Context, name string) error {
	ctx = logFields(ctx, "RemoveDomain", name)
	log := zerowrap.FromCtx(ctx)

	if err := c.do(ctx, domain.ProviderOpRemove, name, http.MethodDelete, c.projectPath("/v9", name), nil, nil); err != nil {
		return err
	}

	log.Info().Msg("domain removed from project")
	return nil
}

// GetStatus fetches the project domain and its verification state.
func (c *Client) GetStatus(ctx context.Context, name string) (*domain.ProviderDomain, error) {
	var pd projectDomain
	if err := c.do(ctx, domain.ProviderOpStatus, name, http.MethodGet, c.projectPath("/v9", name), nil, &pd); err != nil {
		return nil, err
	}
	return c.toProviderDomain(name, &pd), nil
}

func (c *Client) toProviderDomain(name string, pd *projectDomain) *domain.ProviderDomain {
	result := &domain.ProviderDomain{Name: name, Status: domain.ProviderStatusPending}
	if pd.Name != "" {
		result.Name = pd.Name
	}

	if pd.Verified {
		result.Status = domain.ProviderStatusVerified
	}

	switch {
	case !pd.Verified && len(pd.Verification) > 0:
		v := pd.Verification[0]
		result.Verification = &domain.VerificationDetails{
			Type:   v.Type,
			Name:   v.Domain,
			Value:  v.Value,
			Reason: v.Reason,
		}
	case c.config.CNAMETarget != "":
		result.Verification = &domain.VerificationDetails{
			Type:  "CNAME",
			Name:  result.Name,
			Value: c.config.CNAMETarget,
		}
	}
	return result
}

func (c *Client) projectPath(version, name string) string {
	p := version + "/projects/" + url.PathEscape(c.config.ProjectID) + "/domains"
	if name != "" {
		p += "/" + url.PathEscape(name)
	}
	if c.config.TeamID != "" {
		p += "?teamId=" + url.QueryEscape(c.config.TeamID)
	}
	return p
}

// do performs one API call and decodes a 2xx body into dst when non-nil.
func (c *Client) do(ctx context.Context, op domain.ProviderOp, name, method, path string, body []byte, dst any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return provider.FromTransport(ctx, op, name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return provider.FromTransport(ctx, op, name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		_ = json.Unmarshal(data, &apiErr)
		return provider.FromStatus(op, name, resp.StatusCode, apiErr.Error.Code, apiErr.Error.Message)
	}

	if dst == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return &domain.ProviderError{
			Kind:       domain.ErrProviderUnavailable,
			Op:         op,
			Domain:     name,
			StatusCode: resp.StatusCode,
			Reason:     "malformed response body",
			Err:        err,
		}
	}
	return nil
}

func logFields(ctx context.Context, action, name string) context.Context {
	return zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "vercel",
		zerowrap.FieldAction:  action,
		"domain":              name,
	})
}
