package events

import (
	"context"
	"log/slog"
	"sync"
)

// Event is anything that can be published on the in-process bus.
type Event interface {
	EventName() string
}

// Handler reacts to a published event. Handlers run on the publisher's
// goroutine; long work should be handed off.
type Handler func(ctx context.Context, event Event)

// Bus is a minimal in-process publish/subscribe hub. It keeps the
// domain services decoupled from side effects like notification mails
// and audit logging.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

func (b *Bus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish delivers the event to every subscriber. A panicking handler
// is logged and skipped; the remaining handlers still run.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.EventName()]))
	copy(handlers, b.handlers[event.EventName()])
	b.mu.RUnlock()

	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event handler panicked", "event", event.EventName(), "panic", r)
				}
			}()
			handler(ctx, event)
		}()
	}
}
