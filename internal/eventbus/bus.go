package eventbus

import (
	"context"
	"fmt"
	"sync"

	"github.com/wesrioswart/nervecontract/internal/pkg/logger"
)

// EventName identifies a domain event routed through the bus.
type EventName string

// Domain events routed through the bus
const (
	EventEmailClassified         EventName = "email.classified"
	EventEarlyWarningRaised      EventName = "early_warning.raised"
	EventCompensationEventRaised EventName = "compensation_event.raised"
	EventNotificationCreated     EventName = "notification.created"
)

// Handler processes a single emitted event. Handlers must tolerate payload
// types other than the one they expect and return an error instead of
// panicking.
type Handler func(ctx context.Context, payload interface{}) error

// Bus is an in-process publish-subscribe dispatcher. Handlers registered for
// an event are invoked synchronously, in registration order, within the
// emitting call stack. A failing handler is logged and never prevents the
// remaining handlers from running. The bus offers no persistence, retry or
// backpressure semantics.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventName][]Handler
	logger   logger.Logger
}

// NewBus creates an event bus with no registered handlers.
func NewBus(log logger.Logger) *Bus {
	return &Bus{
		handlers: make(map[EventName][]Handler),
		logger:   log,
	}
}

// Register adds a handler for the named event. Registration is expected to
// happen during startup, before Emit is called from request paths.
func (b *Bus) Register(name EventName, handler Handler) {
	if handler == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], handler)
}

// Emit synchronously invokes all handlers registered for the named event in
// registration order. Handler errors and panics are caught per handler and
// logged. Handlers may emit follow-up events from within their invocation.
func (b *Bus) Emit(ctx context.Context, name EventName, payload interface{}) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[name]))
	copy(handlers, b.handlers[name])
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := b.invoke(ctx, name, handler, payload); err != nil {
			b.logger.Error("event handler failed for ", string(name), ": ", err)
		}
	}
}

// HandlerCount returns the number of handlers registered for the named event.
func (b *Bus) HandlerCount(name EventName) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}

func (b *Bus) invoke(ctx context.Context, name EventName, handler Handler, payload interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked for event %s: %v", name, r)
		}
	}()

	return handler(ctx, payload)
}
