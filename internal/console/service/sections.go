package service

import (
	"slices"
)

// SectionID identifies one independently loading part of a profile.
type SectionID string

const (
	SectionUserDetails    SectionID = "user_details"
	SectionUserIdentity   SectionID = "user_identity"
	SectionUserProperties SectionID = "user_properties"
	SectionPaymentInfo    SectionID = "payment_info"
	SectionNewsletter     SectionID = "newsletter"
	SectionAddresses      SectionID = "addresses"
	SectionUserAttributes SectionID = "user_attributes"
)

// AllSections lists every profile section in display order.
var AllSections = []SectionID{
	SectionUserDetails,
	SectionUserIdentity,
	SectionUserProperties,
	SectionPaymentInfo,
	SectionNewsletter,
	SectionAddresses,
	SectionUserAttributes,
}

// Status is the lifecycle stage of a section.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusLoading  Status = "loading"
	StatusLoaded   Status = "loaded"
	StatusFallback Status = "fallback"
)

// SectionState is the tagged state of one section. Data is set for loaded and
// fallback states; Error carries the cause of a fallback.
type SectionState struct {
	Status Status `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Idle is the state of a section that will not be fetched.
func Idle() SectionState { return SectionState{Status: StatusIdle} }

// Loading is the state of a section whose fetch is in flight.
func Loading() SectionState { return SectionState{Status: StatusLoading} }

// Loaded wraps a payload returned by the section's source.
func Loaded(data any) SectionState { return SectionState{Status: StatusLoaded, Data: data} }

// Fallback wraps the placeholder payload used after cause.
func Fallback(data any, cause error) SectionState {
	state := SectionState{Status: StatusFallback, Data: data}
	if cause != nil {
		state.Error = cause.Error()
	}
	return state
}

// Settled reports whether the section reached a final state.
func (s SectionState) Settled() bool {
	return s.Status == StatusLoaded || s.Status == StatusFallback
}

// ResolvedIdentity is the canonical user reference produced by the Resolver.
type ResolvedIdentity struct {
	UserID     string `json:"userId"`
	IdentityID string `json:"identityId,omitempty"`
}

// ProfileBundle is the outcome of one aggregation.
type ProfileBundle struct {
	Resolved         ResolvedIdentity           `json:"resolved"`
	Sections         map[SectionID]SectionState `json:"sections"`
	Degraded         bool                       `json:"degraded"`
	FallbackSections []SectionID                `json:"fallbackSections"`
}

func newBundle(resolved ResolvedIdentity, sections map[SectionID]SectionState) ProfileBundle {
	fallbacks := make([]SectionID, 0)
	for id, state := range sections {
		if state.Status == StatusFallback {
			fallbacks = append(fallbacks, id)
		}
	}
	slices.Sort(fallbacks)
	return ProfileBundle{
		Resolved:         resolved,
		Sections:         sections,
		Degraded:         len(fallbacks) > 0,
		FallbackSections: fallbacks,
	}
}

// State returns the state of id, or Idle when the bundle has none.
func (b ProfileBundle) State(id SectionID) SectionState {
	if state, ok := b.Sections[id]; ok {
		return state
	}
	return Idle()
}
