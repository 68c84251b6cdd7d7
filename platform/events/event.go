// Package events provides an in-process event bus used to fan diagnostic
// notifications out to independent sinks (logs, Redis, ...).
// This is part of the platform layer and contains no business logic.
package events

import (
	"context"
	"time"
)

// AllEvents subscribes a handler to every published event regardless of name.
const AllEvents = "*"

// Event is implemented by everything published on the bus.
type Event interface {
	// EventName returns a stable, dotted identifier such as "console.section.fallback".
	EventName() string
	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time
}

// BaseEvent carries the timestamp shared by all events.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps an event with the current UTC time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now().UTC()}
}

// Handler consumes events.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc lets plain functions act as handlers.
type HandlerFunc func(ctx context.Context, event Event) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes events to subscribed handlers.
type Bus interface {
	// Publish delivers the event to its handlers in the background.
	Publish(ctx context.Context, event Event)

	// PublishSync delivers the event and waits for every handler.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers a handler for an event name, or AllEvents.
	Subscribe(eventName string, handler Handler)
}
