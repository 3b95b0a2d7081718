package domains

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/domaingate/internal/adapters/out/sitestore"
	outmocks "github.com/bnema/domaingate/internal/boundaries/out/mocks"
	"github.com/bnema/domaingate/internal/domain"
)

type published struct {
	eventType domain.EventType
	payload   domain.DomainEventPayload
}

type fakePublisher struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (p *fakePublisher) Publish(eventType domain.EventType, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{eventType, payload.(domain.DomainEventPayload)})
	return p.err
}

func TestService_PublishesLifecycleEvents(t *testing.T) {
	provider := outmocks.NewMockDomainProvider(t)
	store := sitestore.NewMemoryStore()
	pub := &fakePublisher{}
	svc := NewService(provider, store, Config{})
	svc.SetEventPublisher(pub)
	ctx := testContext()

	_, err := store.Create(ctx, "site-1", nil)
	require.NoError(t, err)

	provider.EXPECT().AddDomain(mock.Anything, "example.com").Return(&domain.ProviderDomain{Status: domain.ProviderStatusPending}, nil)
	provider.EXPECT().GetStatus(mock.Anything, "example.com").Return(&domain.ProviderDomain{Status: domain.ProviderStatusPending}, nil).Once()
	provider.EXPECT().GetStatus(mock.Anything, "example.com").Return(&domain.ProviderDomain{Status: domain.ProviderStatusVerified}, nil).Once()
	provider.EXPECT().RemoveDomain(mock.Anything, "example.com").Return(nil)

	_, err = svc.SubmitCustomDomain(ctx, "site-1", "example.com")
	require.NoError(t, err)

	// Unchanged status: no event.
	_, err = svc.RefreshStatus(ctx, "site-1")
	require.NoError(t, err)

	_, err = svc.RefreshStatus(ctx, "site-1")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveCustomDomain(ctx, "site-1"))

	require.Len(t, pub.events, 3)
	assert.Equal(t, domain.EventDomainSubmitted, pub.events[0].eventType)
	assert.Equal(t, domain.VerificationPending, pub.events[0].payload.Status)
	assert.Equal(t, domain.VerificationUnconfigured, pub.events[0].payload.PreviousStatus)

	assert.Equal(t, domain.EventDomainStatusChanged, pub.events[1].eventType)
	assert.Equal(t, domain.VerificationVerified, pub.events[1].payload.Status)
	assert.Equal(t, domain.VerificationPending, pub.events[1].payload.PreviousStatus)

	assert.Equal(t, domain.EventDomainRemoved, pub.events[2].eventType)
	assert.Equal(t, "example.com", pub.events[2].payload.Domain)
	assert.Equal(t, "site-1", pub.events[2].payload.SiteID)
}

func TestService_PublishFailureDoesNotFailOperation(t *testing.T) {
	provider := outmocks.NewMockDomainProvider(t)
	store := sitestore.NewMemoryStore()
	svc := NewService(provider, store, Config{})
	svc.SetEventPublisher(&fakePublisher{err: errors.New("bus stopped")})
	ctx := testContext()

	_, err := store.Create(ctx, "site-1", nil)
	require.NoError(t, err)
	provider.EXPECT().AddDomain(mock.Anything, "example.com").Return(&domain.ProviderDomain{Status: domain.ProviderStatusPending}, nil)

	state, err := svc.SubmitCustomDomain(ctx, "site-1", "example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationPending, state.Status)
}

func TestService_FailedOperationPublishesNothing(t *testing.T) {
	provider := outmocks.NewMockDomainProvider(t)
	store := sitestore.NewMemoryStore()
	pub := &fakePublisher{}
	svc := NewService(provider, store, Config{})
	svc.SetEventPublisher(pub)
	ctx := testContext()

	_, err := store.Create(ctx, "site-1", nil)
	require.NoError(t, err)
	provider.EXPECT().AddDomain(mock.Anything, "example.com").Return(nil, &domain.ProviderError{
		Kind: domain.ErrProviderRejected, Op: domain.ProviderOpAdd, Domain: "example.com", StatusCode: 400,
	})

	_, err = svc.SubmitCustomDomain(ctx, "site-1", "example.com")
	require.Error(t, err)
	assert.Empty(t, pub.events)
}

func TestAuditHandler(t *testing.T) {
	h := NewAuditHandler(testContext())

	assert.True(t, h.CanHandle(domain.EventDomainSubmitted))
	assert.True(t, h.CanHandle(domain.EventDomainRemoved))
	assert.True(t, h.CanHandle(domain.EventDomainStatusChanged))
	assert.False(t, h.CanHandle(domain.EventType("site.created")))

	err := h.Handle(testContext(), domain.Event{
		ID:        "evt-1",
		Type:      domain.EventDomainSubmitted,
		Timestamp: time.Now(),
		SiteID:    "site-1",
		Domain:    "example.com",
		Data:      domain.DomainEventPayload{Status: domain.VerificationPending},
	})
	assert.NoError(t, err)
}
