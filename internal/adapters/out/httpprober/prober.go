// Package httpprober probes upstream reachability for readiness checks.
package httpprober

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/domaingate/internal/boundaries/in"
)

const (
	// DefaultTimeout bounds one probe, connection and response included.
	DefaultTimeout = 5 * time.Second

	// UserAgent identifies probe requests in upstream access logs.
	UserAgent = "domaingate-healthcheck/1.0"

	maxDrain = 4 << 10
)

// Prober implements in.HTTPProber with a dedicated, non-pooled client.
type Prober struct {
	client  *http.Client
	timeout time.Duration
}

var _ in.HTTPProber = (*Prober)(nil)

// Option configures the Prober.
type Option func(*Prober)

// WithTimeout sets the probe timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		p.timeout = timeout
	}
}

// WithHTTPClient replaces the probe client entirely; WithTimeout is then ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Prober) {
		p.client = client
	}
}

// New creates a new HTTP prober.
func New(opts ...Option) *Prober {
	p := &Prober{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(p)
	}
	if p.client == nil {
		p.client = newProbeClient(p.timeout)
	}
	return p
}

func newProbeClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			// #nosec G402 - upstreams are internal and may use self-signed certificates.
			TLSClientConfig:   &tls.Config{InsecureSkipVerify: true},
			DisableKeepAlives: true,
		},
		// A redirect is an answer; report it as-is.
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Probe sends a GET to target and returns the status code and elapsed milliseconds.
func (p *Prober) Probe(ctx context.Context, target string) (int, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return 0, time.Since(start).Milliseconds(), fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
	return resp.StatusCode, time.Since(start).Milliseconds(), nil
}
