package eventbus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	outmocks "github.com/bnema/domaingate/internal/boundaries/out/mocks"
	"github.com/bnema/domaingate/internal/domain"
)

type recordingHandler struct {
	accepts domain.EventType
	err     error
	events  chan domain.Event
}

func newRecordingHandler(accepts domain.EventType, err error) *recordingHandler {
	return &recordingHandler{accepts: accepts, err: err, events: make(chan domain.Event, 10)}
}

func (h *recordingHandler) Handle(_ context.Context, event domain.Event) error {
	h.events <- event
	return h.err
}

func (h *recordingHandler) CanHandle(eventType domain.EventType) bool {
	return eventType == h.accepts
}

func (h *recordingHandler) next(t *testing.T) domain.Event {
	t.Helper()
	select {
	case e := <-h.events:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return domain.Event{}
	}
}

func startBus(t *testing.T, bufferSize int) *InMemory {
	t.Helper()
	bus := NewInMemory(bufferSize, zerowrap.Default())
	require.NoError(t, bus.Start())
	t.Cleanup(func() { _ = bus.Stop() })
	return bus
}

func TestNewInMemory_DefaultBuffer(t *testing.T) {
	bus := NewInMemory(0, zerowrap.Default())
	assert.Equal(t, 100, bus.bufferSize)
	assert.Equal(t, 100, cap(bus.eventChan))
}

func TestInMemory_PublishDeliversToMatchingHandlers(t *testing.T) {
	bus := startBus(t, 10)

	submitted := newRecordingHandler(domain.EventDomainSubmitted, nil)
	removed := newRecordingHandler(domain.EventDomainRemoved, nil)
	require.NoError(t, bus.Subscribe(submitted))
	require.NoError(t, bus.Subscribe(removed))

	err := bus.Publish(domain.EventDomainSubmitted, domain.DomainEventPayload{
		SiteID: "site-1",
		Domain: "mycustomdomain.org",
		Status: domain.VerificationPending,
	})
	require.NoError(t, err)

	event := submitted.next(t)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.EventDomainSubmitted, event.Type)
	assert.Equal(t, "site-1", event.SiteID)
	assert.Equal(t, "mycustomdomain.org", event.Domain)
	assert.False(t, event.Timestamp.IsZero())

	select {
	case e := <-removed.events:
		t.Fatalf("unexpected delivery to removed handler: %v", e.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestInMemory_RecordsOutcomes(t *testing.T) {
	metrics := outmocks.NewMockMetrics(t)
	processed := make(chan string, 2)
	metrics.EXPECT().RecordEvent(mock.Anything, domain.EventDomainRemoved, mock.Anything).
		Run(func(_ context.Context, _ domain.EventType, outcome string) { processed <- outcome }).
		Return().Times(2)

	bus := NewInMemory(10, zerowrap.Default())
	bus.SetMetrics(metrics)
	require.NoError(t, bus.Start())
	t.Cleanup(func() { _ = bus.Stop() })

	ok := newRecordingHandler(domain.EventDomainRemoved, nil)
	failing := newRecordingHandler(domain.EventDomainRemoved, errors.New("boom"))
	require.NoError(t, bus.Subscribe(ok))
	require.NoError(t, bus.Subscribe(failing))

	require.NoError(t, bus.Publish(domain.EventDomainRemoved, domain.DomainEventPayload{SiteID: "site-1"}))

	var outcomes []string
	for range 2 {
		select {
		case o := <-processed:
			outcomes = append(outcomes, o)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for metrics")
		}
	}
	assert.ElementsMatch(t, []string{"processed", "failed"}, outcomes)
}

func TestInMemory_Unsubscribe(t *testing.T) {
	bus := NewInMemory(10, zerowrap.Default())
	h := newRecordingHandler(domain.EventDomainSubmitted, nil)

	require.NoError(t, bus.Subscribe(h))
	require.NoError(t, bus.Unsubscribe(h))
	assert.Empty(t, bus.handlers)
	assert.Error(t, bus.Unsubscribe(h))
}

func TestInMemory_PublishAfterStop(t *testing.T) {
	bus := NewInMemory(1, zerowrap.Default())
	require.NoError(t, bus.Start())
	require.NoError(t, bus.Stop())

	err := bus.Publish(domain.EventDomainSubmitted, nil)
	assert.ErrorIs(t, err, ErrBusStopped)
}

func TestInMemory_PublishDropsWhenBufferFull(t *testing.T) {
	metrics := outmocks.NewMockMetrics(t)
	metrics.EXPECT().RecordEvent(mock.Anything, domain.EventDomainSubmitted, "dropped").Return().Once()

	// Not started, so nothing drains the single buffered slot.
	bus := NewInMemory(1, zerowrap.Default())
	bus.SetMetrics(metrics)

	require.NoError(t, bus.Publish(domain.EventDomainSubmitted, domain.DomainEventPayload{SiteID: "site-1"}))

	start := time.Now()
	err := bus.Publish(domain.EventDomainSubmitted, domain.DomainEventPayload{SiteID: "site-2"})

	assert.ErrorIs(t, err, ErrBufferFull)
	assert.Less(t, time.Since(start), 500*time.Millisecond, "publish must not wait for buffer space")
	assert.Len(t, bus.eventChan, 1)
}

func TestInMemory_StopDeliversBufferedEvents(t *testing.T) {
	bus := NewInMemory(10, zerowrap.Default())
	h := newRecordingHandler(domain.EventDomainRemoved, nil)
	require.NoError(t, bus.Subscribe(h))

	// Published before Start: only the drain on Stop can deliver them.
	require.NoError(t, bus.Publish(domain.EventDomainRemoved, domain.DomainEventPayload{SiteID: "a"}))
	require.NoError(t, bus.Publish(domain.EventDomainRemoved, domain.DomainEventPayload{SiteID: "b"}))

	bus.cancel()
	bus.processEvents()

	assert.Equal(t, "a", h.next(t).SiteID)
	assert.Equal(t, "b", h.next(t).SiteID)
}
