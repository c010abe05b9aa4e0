package events

import (
	"context"
	"sync"

	"greenscape_backend/platform/logger"
)

// InMemoryBus is a simple synchronous/asynchronous in-process event bus.
// Handlers registered for an event name receive every published event of
// that name. Async delivery uses a detached context so handlers outlive
// the originating HTTP request.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
}

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers a handler for a specific event type.
func (b *InMemoryBus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish sends an event to all registered handlers asynchronously.
// Handler errors are logged, not propagated.
func (b *InMemoryBus) Publish(_ context.Context, event Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.EventName()]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil && b.log != nil {
					b.log.Error("event handler panic", "event", event.EventName(), "panic", r)
				}
			}()
			if err := h.Handle(context.Background(), event); err != nil && b.log != nil {
				b.log.Error("event handler failed", "event", event.EventName(), "error", err)
			}
		}(h)
	}
}

// PublishSync sends an event and waits for all handlers to complete.
// The first handler error is returned; remaining handlers still run.
func (b *InMemoryBus) PublishSync(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.EventName()]...)
	b.mu.RUnlock()

	var firstErr error
	for _, h := range handlers {
		if err := h.Handle(ctx, event); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if b.log != nil {
				b.log.Error("event handler failed", "event", event.EventName(), "error", err)
			}
		}
	}
	return firstErr
}

// Compile-time check that InMemoryBus implements Bus.
var _ Bus = (*InMemoryBus)(nil)
