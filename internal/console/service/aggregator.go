package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"admin_console/internal/events"
	"admin_console/internal/profile"
	"admin_console/platform/logger"

	"golang.org/x/sync/errgroup"
)

// SettleFunc observes a section reaching its final state.
type SettleFunc func(id SectionID, state SectionState)

// Aggregator fans out to every profile section and joins the results.
type Aggregator struct {
	src     ProfileSource
	timeout time.Duration
	bus     events.Bus
	log     *logger.Logger
}

// NewAggregator creates an aggregator. Every section fetch is bounded by
// timeout; a non-positive timeout leaves them unbounded.
func NewAggregator(src ProfileSource, timeout time.Duration, bus events.Bus, log *logger.Logger) *Aggregator {
	return &Aggregator{src: src, timeout: timeout, bus: bus, log: log}
}

type sectionFetch struct {
	id  SectionID
	run func(ctx context.Context) SectionState
}

// section binds a typed fetch to its fallback payload.
func section[T any](id SectionID, fetch func(context.Context) (T, error), fallback func() T) sectionFetch {
	return sectionFetch{
		id: id,
		run: func(ctx context.Context) (state SectionState) {
			defer func() {
				if r := recover(); r != nil {
					state = Fallback(fallback(), fmt.Errorf("section %s panicked: %v", id, r))
				}
			}()
			data, err := fetch(ctx)
			if err != nil {
				return Fallback(fallback(), err)
			}
			return Loaded(data)
		},
	}
}

// bind fixes the key argument of a source method.
func bind[T any](fn func(context.Context, string) (T, error), key string) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) { return fn(ctx, key) }
}

func (a *Aggregator) fetches(resolved ResolvedIdentity) []sectionFetch {
	userID := resolved.UserID
	identityID := resolved.IdentityID

	fetches := []sectionFetch{
		section(SectionUserDetails, bind(a.src.GetUserDetails, userID),
			func() profile.UserDetails { return fallbackUserDetails(userID) }),
		section(SectionUserProperties, bind(a.src.ListUserProperties, userID), fallbackUserProperties),
		section(SectionPaymentInfo, bind(a.src.GetPaymentInfo, userID), fallbackPaymentInfo),
		section(SectionNewsletter, bind(a.src.GetNewsletter, userID), fallbackNewsletter),
		section(SectionAddresses, bind(a.src.ListAddresses, userID), fallbackAddresses),
		section(SectionUserAttributes, bind(a.src.ListUserAttributes, userID), fallbackUserAttributes),
	}
	if identityID != "" {
		fetches = append(fetches, section(SectionUserIdentity, bind(a.src.GetUserIdentity, identityID),
			func() profile.UserIdentity { return fallbackUserIdentity(identityID) }))
	}
	return fetches
}

// Aggregate fetches every section of resolved concurrently and returns once
// all have settled. A failing section falls back to its placeholder payload
// and never affects its siblings; Aggregate itself cannot fail. The identity
// section stays idle when resolved has no identity ID. onSettle, if set, is
// called once per fetched section as soon as it settles.
//
// Fetches are detached from ctx cancellation: once issued they run to
// completion or to the per-section timeout.
func (a *Aggregator) Aggregate(ctx context.Context, resolved ResolvedIdentity, onSettle SettleFunc) ProfileBundle {
	detached := context.WithoutCancel(ctx)

	var mu sync.Mutex
	sections := make(map[SectionID]SectionState, len(AllSections))
	if resolved.IdentityID == "" {
		sections[SectionUserIdentity] = Idle()
	}

	var g errgroup.Group
	for _, f := range a.fetches(resolved) {
		g.Go(func() error {
			fctx, cancel := a.sectionContext(detached)
			defer cancel()

			state := f.run(fctx)
			if state.Status == StatusFallback {
				a.reportFallback(detached, f.id, resolved, state)
			}

			mu.Lock()
			sections[f.id] = state
			mu.Unlock()

			if onSettle != nil {
				onSettle(f.id, state)
			}
			// Sections never fail the group so no sibling is cancelled.
			return nil
		})
	}
	_ = g.Wait()

	return newBundle(resolved, sections)
}

func (a *Aggregator) sectionContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *Aggregator) reportFallback(ctx context.Context, id SectionID, resolved ResolvedIdentity, state SectionState) {
	if a.log != nil {
		a.log.WithContext(ctx).SectionFallback(string(id), resolved.UserID, errors.New(state.Error))
	}
	if a.bus != nil {
		a.bus.Publish(ctx, events.SectionFellBack{
			BaseEvent:  events.NewBaseEvent(),
			Section:    string(id),
			UserID:     resolved.UserID,
			IdentityID: resolved.IdentityID,
			Cause:      state.Error,
		})
	}
}
