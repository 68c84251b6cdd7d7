package service

import (
	"testing"
	"time"
)

func TestSessionBeginResetsSections(t *testing.T) {
	s := newSession("s1", time.Now)

	token := s.Begin(ResolvedIdentity{UserID: "user_001"})
	view := s.View()
	if view.Generation != 1 || token.Generation != 1 {
		t.Fatalf("expected generation 1, got %d/%d", view.Generation, token.Generation)
	}
	for _, id := range AllSections {
		want := StatusLoading
		if id == SectionUserIdentity {
			want = StatusIdle
		}
		if view.Sections[id].Status != want {
			t.Fatalf("%s: expected %s, got %s", id, want, view.Sections[id].Status)
		}
	}

	s.Begin(fullIdentity)
	if got := s.View().Sections[SectionUserIdentity].Status; got != StatusLoading {
		t.Fatalf("expected identity loading with an identity ID, got %s", got)
	}
}

func TestSessionDiscardsStaleCompletions(t *testing.T) {
	s := newSession("s1", time.Now)

	first := s.Begin(ResolvedIdentity{UserID: "user_old"})
	second := s.Begin(ResolvedIdentity{UserID: "user_new"})

	if s.Settle(first, SectionUserDetails, Loaded("old")) {
		t.Fatal("stale token must not apply")
	}
	if s.Current(first) || !s.Current(second) {
		t.Fatal("only the latest token is current")
	}
	if !s.Settle(second, SectionUserDetails, Loaded("new")) {
		t.Fatal("current token must apply")
	}

	view := s.View()
	if view.Sections[SectionUserDetails].Data != "new" {
		t.Fatalf("expected new data, got %v", view.Sections[SectionUserDetails].Data)
	}
	if view.Resolved == nil || view.Resolved.UserID != "user_new" {
		t.Fatalf("expected latest resolution, got %+v", view.Resolved)
	}
}

func TestSessionRejectsForeignToken(t *testing.T) {
	a := newSession("a", time.Now)
	b := newSession("b", time.Now)
	token := a.Begin(fullIdentity)
	b.Begin(fullIdentity)

	if b.Settle(token, SectionNewsletter, Loaded(nil)) {
		t.Fatal("token from another session must not apply")
	}
}

func TestSessionViewIsACopy(t *testing.T) {
	s := newSession("s1", time.Now)
	token := s.Begin(fullIdentity)
	s.Settle(token, SectionAddresses, Loaded("x"))

	view := s.View()
	view.Sections[SectionAddresses] = Idle()
	view.Resolved.UserID = "mutated"

	again := s.View()
	if again.Sections[SectionAddresses].Status != StatusLoaded || again.Resolved.UserID != "user_001" {
		t.Fatal("view mutation leaked into the session")
	}
}

func TestRegistryAcquireAndExpire(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRegistry(time.Minute)
	r.now = func() time.Time { return now }

	s := r.Acquire("")
	if s.ID() == "" {
		t.Fatal("expected generated session id")
	}
	if again := r.Acquire(s.ID()); again != s {
		t.Fatal("expected the same session for a known id")
	}
	if other := r.Acquire("unknown"); other == s || other.ID() == "unknown" {
		t.Fatal("unknown ids must get a fresh generated session")
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", r.Len())
	}

	now = now.Add(30 * time.Second)
	if _, ok := r.Get(s.ID()); !ok {
		t.Fatal("session should still be live")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := r.Get(s.ID()); ok {
		t.Fatal("idle session should have expired")
	}
	if r.Len() != 0 {
		t.Fatalf("expected all sessions swept, got %d", r.Len())
	}
}

func TestRegistryEvictsLeastRecentlySeenAtLimit(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRegistry(time.Hour)
	r.limit = 2
	r.now = func() time.Time { return now }

	first := r.Acquire("")
	now = now.Add(time.Second)
	second := r.Acquire("")
	now = now.Add(time.Second)
	r.Acquire(first.ID())

	now = now.Add(time.Second)
	third := r.Acquire("")
	if r.Len() != 2 {
		t.Fatalf("expected registry capped at 2, got %d", r.Len())
	}
	if _, ok := r.Get(second.ID()); ok {
		t.Fatal("expected the least recently seen session to be evicted")
	}
	for _, s := range []*Session{first, third} {
		if _, ok := r.Get(s.ID()); !ok {
			t.Fatalf("expected session %s to survive", s.ID())
		}
	}
}

func TestRegistryNeverReturnsExpiredSessionBetweenSweeps(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRegistry(10 * time.Minute)
	r.now = func() time.Time { return now }

	old := r.Acquire("")
	now = now.Add(11 * time.Minute)
	r.lastSweep = now

	if _, ok := r.Get(old.ID()); ok {
		t.Fatal("expired session returned")
	}
	if fresh := r.Acquire(old.ID()); fresh.ID() == old.ID() {
		t.Fatal("expired id must map to a fresh session")
	}
}

func TestRegistryWithoutTTLKeepsSessions(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRegistry(0)
	r.now = func() time.Time { return now }

	s := r.Acquire("")
	now = now.Add(24 * time.Hour)
	if got, ok := r.Get(s.ID()); !ok || got != s {
		t.Fatal("sessions must not expire without a TTL")
	}
}
