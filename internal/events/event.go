// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"admin_console/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// AllEvents subscribes to every event.
const AllEvents = events.AllEvents

// =============================================================================
// Console Domain Events
// =============================================================================

// UserResolved is published when an identifying input resolves to a user.
type UserResolved struct {
	BaseEvent
	SessionID  string `json:"sessionId,omitempty"`
	InputKind  string `json:"inputKind"`
	Input      string `json:"input"`
	UserID     string `json:"userId"`
	IdentityID string `json:"identityId,omitempty"`
}

func (e UserResolved) EventName() string { return "console.user.resolved" }

// ResolutionFailed is published when an identity or email lookup fails.
type ResolutionFailed struct {
	BaseEvent
	SessionID string `json:"sessionId,omitempty"`
	InputKind string `json:"inputKind"`
	Input     string `json:"input"`
	Reason    string `json:"reason"`
}

func (e ResolutionFailed) EventName() string { return "console.user.resolution_failed" }

// SectionFellBack is published when a profile section fetch fails and its
// placeholder payload is used instead.
type SectionFellBack struct {
	BaseEvent
	Section    string `json:"section"`
	UserID     string `json:"userId"`
	IdentityID string `json:"identityId,omitempty"`
	Cause      string `json:"cause"`
}

func (e SectionFellBack) EventName() string { return "console.section.fallback" }

// ProfileAggregated is published once every section of a lookup has settled.
type ProfileAggregated struct {
	BaseEvent
	SessionID        string   `json:"sessionId,omitempty"`
	Generation       uint64   `json:"generation,omitempty"`
	UserID           string   `json:"userId"`
	FallbackSections []string `json:"fallbackSections,omitempty"`
	DurationMs       int64    `json:"durationMs"`
	Stale            bool     `json:"stale,omitempty"`
}

func (e ProfileAggregated) EventName() string { return "console.profile.aggregated" }
