package service

import (
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Token identifies one lookup on a session. Completions carrying a token
// that is no longer current are discarded.
type Token struct {
	SessionID  string
	Generation uint64
}

// SessionView is a point-in-time copy of a session's display state.
type SessionView struct {
	SessionID  string                     `json:"sessionId"`
	Generation uint64                     `json:"generation"`
	Resolved   *ResolvedIdentity          `json:"resolved,omitempty"`
	Sections   map[SectionID]SectionState `json:"sections"`
	UpdatedAt  time.Time                  `json:"updatedAt"`
}

// Session is the display state of one operator: the last resolved identity
// and one tagged state per section.
type Session struct {
	id  string
	now func() time.Time

	mu         sync.Mutex
	generation uint64
	resolved   *ResolvedIdentity
	sections   map[SectionID]SectionState
	updatedAt  time.Time
	lastSeen   time.Time
}

func newSession(id string, now func() time.Time) *Session {
	sections := make(map[SectionID]SectionState, len(AllSections))
	for _, sid := range AllSections {
		sections[sid] = Idle()
	}
	t := now()
	return &Session{id: id, now: now, sections: sections, updatedAt: t, lastSeen: t}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Begin starts a new lookup for resolved and returns its token. Every
// section is reset to loading, except the identity section which is idle
// when resolved has no identity ID.
func (s *Session) Begin(resolved ResolvedIdentity) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	r := resolved
	s.resolved = &r
	for _, sid := range AllSections {
		s.sections[sid] = Loading()
	}
	if resolved.IdentityID == "" {
		s.sections[SectionUserIdentity] = Idle()
	}
	s.touch()
	return Token{SessionID: s.id, Generation: s.generation}
}

// Settle records state for section if token is still current and reports
// whether it was applied.
func (s *Session) Settle(token Token, section SectionID, state SectionState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token.SessionID != s.id || token.Generation != s.generation {
		return false
	}
	s.sections[section] = state
	s.touch()
	return true
}

// Current reports whether token belongs to the latest lookup.
func (s *Session) Current(token Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return token.SessionID == s.id && token.Generation == s.generation
}

// View returns a copy of the session state.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SessionView{
		SessionID:  s.id,
		Generation: s.generation,
		Sections:   maps.Clone(s.sections),
		UpdatedAt:  s.updatedAt,
	}
	if s.resolved != nil {
		r := *s.resolved
		view.Resolved = &r
	}
	return view
}

// touch must be called with mu held.
func (s *Session) touch() {
	s.updatedAt = s.now()
	s.lastSeen = s.updatedAt
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

func (s *Session) seenAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) markSeen(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

const (
	// DefaultMaxSessions bounds the registry; the least recently seen session
	// is evicted to make room.
	DefaultMaxSessions = 10000

	maxSweepInterval = time.Minute
)

// Registry holds the live sessions. Sessions idle for longer than the TTL
// are never returned and are dropped by a periodic sweep.
type Registry struct {
	ttl   time.Duration
	limit int
	now   func() time.Time

	mu        sync.Mutex
	sessions  map[string]*Session
	lastSweep time.Time
}

// NewRegistry creates an empty registry holding at most DefaultMaxSessions.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{ttl: ttl, limit: DefaultMaxSessions, now: time.Now, sessions: make(map[string]*Session)}
}

// Acquire returns the live session with id, or a new session with a fresh
// ID when id is empty, unknown or expired.
func (r *Registry) Acquire(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.maybeSweep(now)
	if s, ok := r.live(id, now); ok {
		s.markSeen(now)
		return s
	}
	if r.limit > 0 && len(r.sessions) >= r.limit {
		r.sweep(now)
		if len(r.sessions) >= r.limit {
			r.evictOldest()
		}
	}
	s := newSession(uuid.NewString(), r.now)
	r.sessions[s.id] = s
	return s
}

// Get returns the live session with id.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.maybeSweep(now)
	s, ok := r.live(id, now)
	if ok {
		s.markSeen(now)
	}
	return s, ok
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep(r.now())
	return len(r.sessions)
}

// live must be called with mu held. Expired sessions are removed.
func (r *Registry) live(id string, now time.Time) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if r.ttl > 0 && s.idleSince(now) > r.ttl {
		delete(r.sessions, id)
		return nil, false
	}
	return s, true
}

// maybeSweep must be called with mu held.
func (r *Registry) maybeSweep(now time.Time) {
	interval := min(r.ttl, maxSweepInterval)
	if now.Sub(r.lastSweep) < interval {
		return
	}
	r.sweep(now)
}

// sweep must be called with mu held.
func (r *Registry) sweep(now time.Time) {
	r.lastSweep = now
	if r.ttl <= 0 {
		return
	}
	for id, s := range r.sessions {
		if s.idleSince(now) > r.ttl {
			delete(r.sessions, id)
		}
	}
}

// evictOldest must be called with mu held.
func (r *Registry) evictOldest() {
	var (
		oldestID   string
		oldestSeen time.Time
	)
	for id, s := range r.sessions {
		seen := s.seenAt()
		if oldestID == "" || seen.Before(oldestSeen) {
			oldestID, oldestSeen = id, seen
		}
	}
	delete(r.sessions, oldestID)
}
