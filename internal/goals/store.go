// Package goals holds the in-memory, insertion-ordered list of goals for a session.
package goals

import (
	"sync"
	"time"

	"github.com/akyairhashvil/goalpad/internal/models"
)

// Store is an in-memory goal list. It is NOT persistent; contents live only
// as long as the process.
type Store struct {
	mu    sync.RWMutex
	goals []models.Goal
	newID IDFunc
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc overrides identifier generation.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty store using random UUIDs for identifiers.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID: NewUUID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a goal with a fresh identifier and returns it.
// The text is stored as given; callers validate with ValidateText first.
func (s *Store) Add(text string) models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := models.Goal{
		ID:        s.newID(),
		Text:      text,
		CreatedAt: s.now(),
	}
	s.goals = append(s.goals, g)
	return g
}

// Remove deletes the first goal whose ID matches. An unknown ID leaves the
// list untouched and reports false.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.goals {
		if g.ID != id {
			continue
		}
		s.goals = append(s.goals[:i:i], s.goals[i+1:]...)
		return true
	}
	return false
}

// List returns a copy of the goals in insertion order.
func (s *Store) List() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Get looks a goal up by identifier.
func (s *Store) Get(id string) (models.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.goals {
		if g.ID == id {
			return g, true
		}
	}
	return models.Goal{}, false
}

// Len reports the number of goals.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.goals)
}
