// Package session holds the login sessions that back the "signed in"
// concept. A session maps an opaque, unguessable token to an identity
// snapshot for a bounded time-to-live.
//
// The Store interface keeps callers independent of the backing storage:
// the in-memory implementation below is the default for a single-process
// deployment, and a distributed store (e.g. Redis-backed) can be dropped in
// without changing the auth gate or the login handler.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tbourn/go-hosting-portal/internal/domain"
)

// DefaultTTL is the session lifetime applied when none is configured.
const DefaultTTL = time.Hour

// Store is the contract between the login flow and session storage.
//
// Tokens are unique per session; two concurrent logins for the same user
// yield two independent tokens, and destroying one leaves the other valid.
type Store interface {
	// Create mints a new token bound to id, valid for the store's TTL.
	Create(id domain.Identity) string
	// Lookup resolves a token. ok is false for unknown, destroyed, or
	// expired tokens.
	Lookup(token string) (id domain.Identity, ok bool)
	// Destroy invalidates a token. Destroying an unknown token is a no-op.
	Destroy(token string)
}

// entry is one live session. Used to evict expired tokens.
type entry struct {
	id        domain.Identity
	expiresAt time.Time
}

// MemoryStore is a process-local Store backed by a mutex-guarded map.
//
// Expired entries are dropped lazily on Lookup and swept opportunistically
// after a threshold of Create calls to keep memory usage bounded. This type
// is safe for concurrent use.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]entry
	sweepN   uint64
}

// NewMemoryStore constructs a MemoryStore with the given time-to-live.
// A ttl <= 0 is coerced to DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]entry),
	}
}

// Create mints a fresh UUIDv4 token for id. uuid.NewString draws from
// crypto/rand, which makes tokens unguessable.
func (s *MemoryStore) Create(id domain.Identity) string {
	token := uuid.NewString()
	now := s.now()

	s.mu.Lock()
	// Opportunistic sweep after a threshold of creations, then reset the
	// counter. Run it BEFORE inserting so the sweep never has to special-case
	// the fresh entry.
	s.sweepN++
	if s.sweepN >= 1000 {
		for k, e := range s.sessions {
			if !now.Before(e.expiresAt) {
				delete(s.sessions, k)
			}
		}
		s.sweepN = 0
	}
	s.sessions[token] = entry{id: id, expiresAt: now.Add(s.ttl)}
	s.mu.Unlock()

	return token
}

// Lookup resolves token to its identity. Expired entries are deleted on the
// spot so a token is reported absent from the first lookup at or past its
// deadline, even if the sweep has not run.
func (s *MemoryStore) Lookup(token string) (domain.Identity, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok {
		return domain.Identity{}, false
	}
	if !now.Before(e.expiresAt) {
		delete(s.sessions, token)
		return domain.Identity{}, false
	}
	return e.id, true
}

// Destroy drops token immediately. Unknown tokens are ignored.
func (s *MemoryStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports the number of live plus not-yet-swept entries. Intended for
// tests and diagnostics only.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
