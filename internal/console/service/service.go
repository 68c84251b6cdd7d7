// Package service implements the console lookup workflow: resolving an
// identifying input, aggregating the profile sections and keeping per-session
// display state.
package service

import (
	"context"
	"time"

	"admin_console/internal/events"
	"admin_console/platform/apperr"
	"admin_console/platform/logger"
	"admin_console/platform/validator"
)

const msgSessionNotFound = "console session not found"

// Options configures the console service.
type Options struct {
	SectionTimeout time.Duration
	// SessionTTL is the idle time after which a session expires; zero keeps
	// sessions until the registry evicts them.
	SessionTTL time.Duration
}

// LookupResult is the outcome of one console lookup.
type LookupResult struct {
	SessionID  string `json:"sessionId"`
	Generation uint64 `json:"generation"`
	// Stale is set when a newer lookup on the same session started before
	// this one settled; its sections were not applied to the session.
	Stale bool `json:"stale"`
	ProfileBundle
}

// Service orchestrates lookups against a DataSource.
type Service struct {
	resolver   *Resolver
	aggregator *Aggregator
	browser    *PropertyBrowser
	sessions   *Registry
	bus        events.Bus
	log        *logger.Logger
	now        func() time.Time
}

// New creates the console service.
func New(src DataSource, val *validator.Validator, bus events.Bus, log *logger.Logger, opts Options) *Service {
	return &Service{
		resolver:   NewResolver(src, src, val, opts.SectionTimeout),
		aggregator: NewAggregator(src, opts.SectionTimeout, bus, log),
		browser:    NewPropertyBrowser(src, log),
		sessions:   NewRegistry(opts.SessionTTL),
		bus:        bus,
		log:        log,
		now:        time.Now,
	}
}

// Browser returns the property browser.
func (s *Service) Browser() *PropertyBrowser {
	return s.browser
}

// Lookup resolves in and aggregates the profile on the session identified by
// sessionID, creating a session when needed. Invalid input is rejected
// before any session is touched and echoes sessionID unchanged; every other
// result carries the ID of the session used.
func (s *Service) Lookup(ctx context.Context, sessionID string, in Input) (LookupResult, error) {
	if err := s.resolver.validate(in.Normalize()); err != nil {
		return LookupResult{SessionID: sessionID}, err
	}

	session := s.sessions.Acquire(sessionID)
	ctx = context.WithValue(ctx, logger.SessionIDKey, session.ID())
	log := s.log.WithContext(ctx)
	result := LookupResult{SessionID: session.ID()}

	resolved, err := s.resolver.Resolve(ctx, in)
	if err != nil {
		if !apperr.Is(err, apperr.KindValidation) {
			kind, value := in.Normalize().Kind()
			log.ResolutionFailed(string(kind), value, err)
			s.publish(ctx, events.ResolutionFailed{
				BaseEvent: events.NewBaseEvent(),
				SessionID: session.ID(),
				InputKind: string(kind),
				Input:     value,
				Reason:    err.Error(),
			})
		}
		return result, err
	}

	kind, value := in.Normalize().Kind()
	s.publish(ctx, events.UserResolved{
		BaseEvent:  events.NewBaseEvent(),
		SessionID:  session.ID(),
		InputKind:  string(kind),
		Input:      value,
		UserID:     resolved.UserID,
		IdentityID: resolved.IdentityID,
	})

	started := s.now()
	token := session.Begin(resolved)
	bundle := s.aggregator.Aggregate(ctx, resolved, func(id SectionID, state SectionState) {
		if !session.Settle(token, id, state) {
			log.Debug("discarded stale section", "section", id, "generation", token.Generation)
		}
	})
	stale := !session.Current(token)

	s.publish(ctx, events.ProfileAggregated{
		BaseEvent:        events.NewBaseEvent(),
		SessionID:        session.ID(),
		Generation:       token.Generation,
		UserID:           resolved.UserID,
		FallbackSections: sectionNames(bundle.FallbackSections),
		DurationMs:       s.now().Sub(started).Milliseconds(),
		Stale:            stale,
	})

	result.Generation = token.Generation
	result.Stale = stale
	result.ProfileBundle = bundle
	return result, nil
}

// Session returns the current view of a session.
func (s *Service) Session(_ context.Context, sessionID string) (SessionView, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return SessionView{}, apperr.NotFound(msgSessionNotFound)
	}
	return session.View(), nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.bus != nil {
		s.bus.Publish(ctx, event)
	}
}

func sectionNames(ids []SectionID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}
