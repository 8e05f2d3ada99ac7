package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pokedex-service/internal/app/listing"
)

// Session is one browsing session: a list owned by a single client.
type Session struct {
	ID        string
	CreatedAt time.Time
	List      *listing.List
}

// DefaultCapacity is the session cap used by NewMemoryStore.
const DefaultCapacity = 1000

// MemoryStore keeps sessions in memory, keyed by id. It holds at most capacity
// sessions. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	capacity int
	newID    func() string
	now      func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore holding up to DefaultCapacity sessions.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithCapacity(DefaultCapacity)
}

// NewMemoryStoreWithCapacity constructs an empty MemoryStore holding up to capacity
// sessions. A non-positive capacity falls back to DefaultCapacity.
func NewMemoryStoreWithCapacity(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		sessions: make(map[string]Session),
		capacity: capacity,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Create registers list under a fresh id. When the store is full the oldest
// session is evicted and its list reset.
func (s *MemoryStore) Create(list *listing.List) Session {
	s.mu.Lock()
	var evicted []Session
	for len(s.sessions) >= s.capacity {
		oldest, ok := s.oldestLocked()
		if !ok {
			break
		}
		delete(s.sessions, oldest.ID)
		evicted = append(evicted, oldest)
	}
	session := Session{ID: s.newID(), CreatedAt: s.now().UTC(), List: list}
	s.sessions[session.ID] = session
	s.mu.Unlock()

	for _, old := range evicted {
		if old.List != nil {
			old.List.Reset()
		}
	}
	return session
}

// Capacity reports how many sessions the store holds before evicting.
func (s *MemoryStore) Capacity() int {
	return s.capacity
}

func (s *MemoryStore) oldestLocked() (Session, bool) {
	var oldest Session
	found := false
	for _, session := range s.sessions {
		if !found || before(session, oldest) {
			oldest = session
			found = true
		}
	}
	return oldest, found
}

// Get retrieves a session by id.
func (s *MemoryStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	return session, ok
}

// Delete removes a session and returns it so the caller can reset its list.
func (s *MemoryStore) Delete(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	return session, ok
}

// List returns the sessions ordered by creation time.
func (s *MemoryStore) List() []Session {
	s.mu.RLock()
	result := make([]Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		result = append(result, session)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return before(result[i], result[j])
	})
	return result
}

func before(a, b Session) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID < b.ID
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

// Len reports how many sessions are held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
