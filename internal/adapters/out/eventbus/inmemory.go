// Package eventbus implements the event bus adapter.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"

	"github.com/bnema/domaingate/internal/boundaries/out"
	"github.com/bnema/domaingate/internal/domain"
)

const (
	handlerTimeout = 30 * time.Second
	stopTimeout    = 5 * time.Second
)

// Publish errors.
var (
	ErrBusStopped = errors.New("event bus is stopped")
	ErrBufferFull = errors.New("event buffer is full")
)

// InMemory implements the EventBus interface using in-memory channels.
type InMemory struct {
	handlers   []out.EventHandler
	eventChan  chan domain.Event
	done       chan struct{}
	mu         sync.RWMutex
	ctx        context.Context
	cancel     context.CancelFunc
	bufferSize int
	log        zerowrap.Logger
	metrics    out.Metrics
}

var _ out.EventBus = (*InMemory)(nil)

// NewInMemory creates a new in-memory event bus.
func NewInMemory(bufferSize int, log zerowrap.Logger) *InMemory {
	if bufferSize <= 0 {
		bufferSize = 100
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &InMemory{
		handlers:   make([]out.EventHandler, 0),
		eventChan:  make(chan domain.Event, bufferSize),
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
		bufferSize: bufferSize,
		log:        log,
	}
}

// SetMetrics sets the metrics recorder for the event bus.
// Must be called before Start() to avoid data races on bus.metrics reads.
func (bus *InMemory) SetMetrics(m out.Metrics) {
	bus.mu.Lock()
	bus.metrics = m
	bus.mu.Unlock()
}

// Publish queues an event without blocking. When the buffer is full the event
// is dropped, counted, and ErrBufferFull is returned.
func (bus *InMemory) Publish(eventType domain.EventType, payload any) error {
	event := domain.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      payload,
	}

	if p, ok := payload.(domain.DomainEventPayload); ok {
		event.SiteID = p.SiteID
		event.Domain = p.Domain
	}

	log := bus.log.With().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "eventbus").
		Str("event_id", event.ID).
		Str(zerowrap.FieldEvent, string(event.Type)).
		Str("domain", event.Domain).
		Logger()

	if bus.ctx.Err() != nil {
		return ErrBusStopped
	}

	select {
	case bus.eventChan <- event:
		log.Debug().Msg("event published")
		return nil
	default:
		log.Warn().Int("buffer_size", bus.bufferSize).Msg("event buffer full, dropping event")
		bus.record(event.Type, "dropped")
		return fmt.Errorf("%w: dropped event %s", ErrBufferFull, event.ID)
	}
}

// Subscribe adds an event handler to the bus.
func (bus *InMemory) Subscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.handlers = append(bus.handlers, handler)
	bus.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "eventbus").
		Str(zerowrap.FieldHandler, fmt.Sprintf("%T", handler)).
		Int("total_handlers", len(bus.handlers)).
		Msg("event handler subscribed")

	return nil
}

// Unsubscribe removes an event handler from the bus.
func (bus *InMemory) Unsubscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	for i, h := range bus.handlers {
		if h == handler {
			bus.handlers = append(bus.handlers[:i], bus.handlers[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("handler not found")
}

// Start starts the event bus processing loop.
func (bus *InMemory) Start() error {
	bus.log.Info().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "eventbus").
		Int("buffer_size", bus.bufferSize).
		Msg("starting event bus")

	go bus.processEvents()
	return nil
}

// Stop stops the event bus after delivering events already buffered.
func (bus *InMemory) Stop() error {
	bus.cancel()

	select {
	case <-bus.done:
		bus.log.Info().
			Str(zerowrap.FieldLayer, "adapter").
			Str(zerowrap.FieldAdapter, "eventbus").
			Msg("event bus stopped")
		return nil
	case <-time.After(stopTimeout):
		return fmt.Errorf("timeout waiting for event bus to stop")
	}
}

func (bus *InMemory) processEvents() {
	defer close(bus.done)

	for {
		select {
		case event := <-bus.eventChan:
			bus.handleEvent(bus.ctx, event)
		case <-bus.ctx.Done():
			bus.drain()
			return
		}
	}
}

// drain delivers what was published before Stop. Handlers get a fresh
// context since the bus context is already cancelled.
func (bus *InMemory) drain() {
	for {
		select {
		case event := <-bus.eventChan:
			bus.handleEvent(context.Background(), event)
		default:
			return
		}
	}
}

func (bus *InMemory) handleEvent(parent context.Context, event domain.Event) {
	bus.mu.RLock()
	handlers := make([]out.EventHandler, len(bus.handlers))
	copy(handlers, bus.handlers)
	bus.mu.RUnlock()

	for _, h := range handlers {
		if !h.CanHandle(event.Type) {
			continue
		}

		log := bus.log.With().
			Str(zerowrap.FieldLayer, "adapter").
			Str(zerowrap.FieldAdapter, "eventbus").
			Str("event_id", event.ID).
			Str(zerowrap.FieldEvent, string(event.Type)).
			Str(zerowrap.FieldHandler, fmt.Sprintf("%T", h)).
			Logger()

		start := time.Now()
		ctx, cancel := context.WithTimeout(parent, handlerTimeout)

		done := make(chan error, 1)
		go func() {
			done <- h.Handle(ctx, event)
		}()

		select {
		case err := <-done:
			if err != nil {
				log.Error().Err(err).Msg("error handling event")
				bus.record(event.Type, "failed")
			} else {
				log.Debug().Dur(zerowrap.FieldDuration, time.Since(start)).Msg("event handled successfully")
				bus.record(event.Type, "processed")
			}
		case <-ctx.Done():
			log.Warn().Dur(zerowrap.FieldDuration, time.Since(start)).Msg("handler timeout")
			bus.record(event.Type, "failed")
		}
		cancel()
	}
}

func (bus *InMemory) record(eventType domain.EventType, outcome string) {
	bus.mu.RLock()
	m := bus.metrics
	bus.mu.RUnlock()

	if m != nil {
		m.RecordEvent(context.Background(), eventType, outcome)
	}
}
