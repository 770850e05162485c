package project

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Listener receives a copy of every project, in insertion order, after each
// mutation of the store.
type Listener func(snapshot []Project)

// Store holds the ordered list of projects and notifies listeners when it
// changes. The list is append-only.
type Store struct {
	// notifyMu serialises Add so listeners see snapshots in insertion order.
	notifyMu sync.Mutex

	mu        sync.RWMutex
	projects  []Project
	listeners []Listener

	newID func() string
	now   func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator overrides how project IDs are generated.
func WithIDGenerator(fn func() string) StoreOption {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(fn func() time.Time) StoreOption {
	return func(s *Store) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers l for future notifications. It is not invoked until
// the next Add.
func (s *Store) Subscribe(l Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Add appends a new active project and notifies every listener, in
// subscription order, before returning. The store trusts its caller: no
// field is validated. Listeners must not call Add.
func (s *Store) Add(title, description string, people int) Project {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	proj := Project{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      StatusActive,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	s.projects = append(s.projects, proj)
	snapshot := slices.Clone(s.projects)
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(slices.Clone(snapshot))
	}

	return proj
}

// Snapshot returns a copy of all projects in insertion order.
func (s *Store) Snapshot() []Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Len returns the number of stored projects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}
