package provider

import (
	"context"
	"sync"

	"github.com/bnema/domaingate/internal/boundaries/out"
	"github.com/bnema/domaingate/internal/domain"
)

// Lazy builds its DomainProvider on the first call that needs one, so
// store-only commands run without provider credentials.
type Lazy struct {
	build func() (out.DomainProvider, error)

	mu sync.Mutex
	dp out.DomainProvider
}

var _ out.DomainProvider = (*Lazy)(nil)

// NewLazy returns a provider that calls build on first use.
func NewLazy(build func() (out.DomainProvider, error)) *Lazy {
	return &Lazy{build: build}
}

// Get returns the built provider. A failed build is not cached and is
// attempted again on the next call.
func (l *Lazy) Get() (out.DomainProvider, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.dp != nil {
		return l.dp, nil
	}
	dp, err := l.build()
	if err != nil {
		return nil, err
	}
	l.dp = dp
	return dp, nil
}

func (l *Lazy) AddDomain(ctx context.Context, name string) (*domain.ProviderDomain, error) {
	dp, err := l.Get()
	if err != nil {
		return nil, err
	}
	return dp.AddDomain(ctx, name)
}

func (l *Lazy) RemoveDomain(ctx context.Context, name string) error {
	dp, err := l.Get()
	if err != nil {
		return err
	}
	return dp.RemoveDomain(ctx, name)
}

func (l *Lazy) GetStatus(ctx context.Context, name string) (*domain.ProviderDomain, error) {
	dp, err := l.Get()
	if err != nil {
		return nil, err
	}
	return dp.GetStatus(ctx, name)
}
