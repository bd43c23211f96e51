package compare

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CompactMax is the selection limit on small viewports.
const CompactMax = 2

// Selection is an ordered set of system ids chosen for comparison.
// Every method is safe for concurrent use.
type Selection struct {
	mu    sync.Mutex
	ids   []uuid.UUID
	limit int
}

// NewSelection creates an empty selection holding up to MaxSystems ids,
// or CompactMax when compact is set.
func NewSelection(compact bool) *Selection {
	limit := MaxSystems
	if compact {
		limit = CompactMax
	}
	return &Selection{limit: limit, ids: make([]uuid.UUID, 0, limit)}
}

// Add appends id. It is a no-op returning false when id is already selected
// or the selection is full.
func (s *Selection) Add(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ids) >= s.limit || slices.Contains(s.ids, id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove drops id, keeping the order of the rest.
func (s *Selection) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.ids, id)
	if i < 0 {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	return true
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.mu.Lock()
	s.ids = s.ids[:0]
	s.mu.Unlock()
}

// IDs returns a copy of the selected ids in selection order.
func (s *Selection) IDs() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.ids)
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Max returns the selection limit.
func (s *Selection) Max() int {
	return s.limit
}

// SessionStore keeps selections per comparison session. Sessions expire
// after ttl without being touched and the oldest are evicted beyond size.
type SessionStore struct {
	cache *expirable.LRU[uuid.UUID, *Selection]
}

// NewSessionStore creates a store for up to size sessions.
func NewSessionStore(size int, ttl time.Duration) *SessionStore {
	return &SessionStore{cache: expirable.NewLRU[uuid.UUID, *Selection](size, nil, ttl)}
}

// Create registers a new empty selection and returns its session id.
func (s *SessionStore) Create(compact bool) (uuid.UUID, *Selection) {
	id := uuid.New()
	sel := NewSelection(compact)
	s.cache.Add(id, sel)
	return id, sel
}

// Get returns the selection of a session and refreshes its expiry.
func (s *SessionStore) Get(id uuid.UUID) (*Selection, bool) {
	sel, ok := s.cache.Get(id)
	if ok {
		s.cache.Add(id, sel)
	}
	return sel, ok
}

// Delete forgets a session.
func (s *SessionStore) Delete(id uuid.UUID) {
	s.cache.Remove(id)
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	return s.cache.Len()
}
