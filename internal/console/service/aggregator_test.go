package service

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"admin_console/internal/events"
	"admin_console/internal/profile"
	"admin_console/platform/logger"
)

var fullIdentity = ResolvedIdentity{UserID: "user_001", IdentityID: "auth0|123456789"}

func newTestAggregator(src ProfileSource, timeout time.Duration) *Aggregator {
	return NewAggregator(src, timeout, nil, logger.Discard())
}

func expectedFallback(id SectionID, resolved ResolvedIdentity) any {
	switch id {
	case SectionUserDetails:
		return fallbackUserDetails(resolved.UserID)
	case SectionUserIdentity:
		return fallbackUserIdentity(resolved.IdentityID)
	case SectionUserProperties:
		return fallbackUserProperties()
	case SectionPaymentInfo:
		return fallbackPaymentInfo()
	case SectionNewsletter:
		return fallbackNewsletter()
	case SectionAddresses:
		return fallbackAddresses()
	case SectionUserAttributes:
		return fallbackUserAttributes()
	}
	return nil
}

func TestAggregateAllLoaded(t *testing.T) {
	bundle := newTestAggregator(newFakeSource(), time.Second).Aggregate(context.Background(), fullIdentity, nil)

	for _, id := range AllSections {
		if got := bundle.State(id).Status; got != StatusLoaded {
			t.Fatalf("%s: expected loaded, got %s", id, got)
		}
	}
	if bundle.Degraded || len(bundle.FallbackSections) != 0 {
		t.Fatalf("expected no fallbacks, got %v", bundle.FallbackSections)
	}
	details, ok := bundle.State(SectionUserDetails).Data.(profile.UserDetails)
	if !ok || details.UserID != "user_001" {
		t.Fatalf("expected verbatim payload, got %#v", bundle.State(SectionUserDetails).Data)
	}
}

func TestAggregateSingleFailureIsIsolated(t *testing.T) {
	for _, failing := range AllSections {
		t.Run(string(failing), func(t *testing.T) {
			src := newFakeSource().fail(failing)
			bundle := newTestAggregator(src, time.Second).Aggregate(context.Background(), fullIdentity, nil)

			for _, id := range AllSections {
				state := bundle.State(id)
				if id == failing {
					if state.Status != StatusFallback {
						t.Fatalf("%s: expected fallback, got %s", id, state.Status)
					}
					if !reflect.DeepEqual(state.Data, expectedFallback(id, fullIdentity)) {
						t.Fatalf("%s: unexpected fallback payload %#v", id, state.Data)
					}
					if state.Error != errSourceDown.Error() {
						t.Fatalf("%s: expected cause recorded, got %q", id, state.Error)
					}
					continue
				}
				if state.Status != StatusLoaded {
					t.Fatalf("%s: expected loaded while %s failed, got %s", id, failing, state.Status)
				}
			}
			if !bundle.Degraded || !reflect.DeepEqual(bundle.FallbackSections, []SectionID{failing}) {
				t.Fatalf("unexpected fallback list %v", bundle.FallbackSections)
			}
		})
	}
}

func TestAggregateAllFailingStillSettles(t *testing.T) {
	src := newFakeSource().fail(AllSections...)
	var settled atomic.Int32

	bundle := newTestAggregator(src, time.Second).Aggregate(context.Background(), fullIdentity, func(SectionID, SectionState) {
		settled.Add(1)
	})

	if settled.Load() != int32(len(AllSections)) {
		t.Fatalf("expected %d settle callbacks, got %d", len(AllSections), settled.Load())
	}
	for _, id := range AllSections {
		if !bundle.State(id).Settled() {
			t.Fatalf("%s left unsettled: %s", id, bundle.State(id).Status)
		}
	}
	if len(bundle.FallbackSections) != len(AllSections) {
		t.Fatalf("expected every section to fall back, got %v", bundle.FallbackSections)
	}
	for i := 1; i < len(bundle.FallbackSections); i++ {
		if bundle.FallbackSections[i-1] > bundle.FallbackSections[i] {
			t.Fatalf("fallback sections not sorted: %v", bundle.FallbackSections)
		}
	}
}

func TestAggregateSkipsIdentityWithoutIdentityID(t *testing.T) {
	src := newFakeSource()
	var settled []SectionID
	var mu sync.Mutex

	bundle := newTestAggregator(src, time.Second).Aggregate(context.Background(), ResolvedIdentity{UserID: "user_042"}, func(id SectionID, _ SectionState) {
		mu.Lock()
		settled = append(settled, id)
		mu.Unlock()
	})

	if src.count("GetUserIdentity") != 0 {
		t.Fatal("identity section must not be fetched without an identity ID")
	}
	if bundle.State(SectionUserIdentity).Status != StatusIdle {
		t.Fatalf("expected identity idle, got %s", bundle.State(SectionUserIdentity).Status)
	}
	if len(settled) != len(AllSections)-1 {
		t.Fatalf("expected %d settled sections, got %v", len(AllSections)-1, settled)
	}
}

func TestAggregateFetchesConcurrently(t *testing.T) {
	src := newFakeSource()
	var started sync.WaitGroup
	started.Add(len(AllSections))
	all := make(chan struct{})
	go func() {
		started.Wait()
		close(all)
	}()

	barrier := func(context.Context) error {
		started.Done()
		select {
		case <-all:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("sections were not in flight together")
		}
	}
	for _, id := range AllSections {
		src.hook(id, barrier)
	}

	bundle := newTestAggregator(src, 5*time.Second).Aggregate(context.Background(), fullIdentity, nil)
	if bundle.Degraded {
		t.Fatalf("expected all sections to run in parallel, fallbacks: %v", bundle.FallbackSections)
	}
}

func TestAggregateIgnoresCallerCancellation(t *testing.T) {
	src := newFakeSource()
	for _, id := range AllSections {
		src.hook(id, func(ctx context.Context) error { return ctx.Err() })
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bundle := newTestAggregator(src, time.Second).Aggregate(ctx, fullIdentity, nil)
	if bundle.Degraded {
		t.Fatalf("caller cancellation must not abort issued fetches: %v", bundle.FallbackSections)
	}
}

func TestAggregateTimesOutSlowSection(t *testing.T) {
	src := newFakeSource().hook(SectionPaymentInfo, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	bundle := newTestAggregator(src, 20*time.Millisecond).Aggregate(context.Background(), fullIdentity, nil)

	state := bundle.State(SectionPaymentInfo)
	if state.Status != StatusFallback || state.Error != context.DeadlineExceeded.Error() {
		t.Fatalf("expected deadline fallback, got %+v", state)
	}
	if bundle.State(SectionUserDetails).Status != StatusLoaded {
		t.Fatal("slow section must not affect siblings")
	}
}

func TestAggregateRecoversPanickingSection(t *testing.T) {
	src := newFakeSource().hook(SectionAddresses, func(context.Context) error {
		panic("boom")
	})

	bundle := newTestAggregator(src, time.Second).Aggregate(context.Background(), fullIdentity, nil)

	state := bundle.State(SectionAddresses)
	if state.Status != StatusFallback || !reflect.DeepEqual(state.Data, fallbackAddresses()) {
		t.Fatalf("expected panic to fall back, got %+v", state)
	}
}

func TestAggregatePublishesFallbackEvents(t *testing.T) {
	bus := events.NewInMemoryBus(logger.Discard())
	var mu sync.Mutex
	var got []events.SectionFellBack
	bus.Subscribe(events.SectionFellBack{}.EventName(), events.HandlerFunc(func(_ context.Context, e events.Event) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(events.SectionFellBack))
		return nil
	}))

	src := newFakeSource().fail(SectionNewsletter, SectionUserIdentity)
	NewAggregator(src, time.Second, bus, logger.Discard()).Aggregate(context.Background(), fullIdentity, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := bus.Drain(ctx); err != nil {
		t.Fatalf("drain: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Fatalf("expected 2 fallback events, got %d", len(got))
	}
	for _, e := range got {
		if e.UserID != "user_001" || e.Cause != errSourceDown.Error() {
			t.Fatalf("unexpected event %+v", e)
		}
	}
}
