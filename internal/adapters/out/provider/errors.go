// Package provider holds what every domain-hosting provider adapter shares:
// error classification and instrumentation.
package provider

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/bnema/domaingate/internal/domain"
)

// FromStatus classifies a non-2xx provider response. Rate limiting (429) is a
// rejection like any other 4xx.
func FromStatus(op domain.ProviderOp, name string, statusCode int, code, reason string) *domain.ProviderError {
	var kind error
	switch {
	case statusCode == http.StatusNotFound:
		kind = domain.ErrProviderDomainNotFound
	case statusCode == http.StatusRequestTimeout || statusCode == http.StatusGatewayTimeout:
		kind = domain.ErrProviderTimeout
	case statusCode >= 500:
		kind = domain.ErrProviderUnavailable
	default:
		kind = domain.ErrProviderRejected
	}

	return &domain.ProviderError{
		Kind:       kind,
		Op:         op,
		Domain:     name,
		StatusCode: statusCode,
		Code:       code,
		Reason:     reason,
	}
}

// FromTransport classifies an error that happened before any response was read.
func FromTransport(ctx context.Context, op domain.ProviderOp, name string, err error) *domain.ProviderError {
	kind := domain.ErrProviderUnavailable
	if IsTimeout(ctx, err) {
		kind = domain.ErrProviderTimeout
	}
	return &domain.ProviderError{Kind: kind, Op: op, Domain: name, Err: err}
}

// IsTimeout reports whether err (or ctx) ran out of time.
func IsTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
