// Package actionitems tracks transient approval state for suggested
// action items. Items live in memory only, expire after a fixed TTL, and
// never survive a process restart.
package actionitems

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/coralcrm/copilot/pkg/logger"
	"github.com/coralcrm/copilot/pkg/skills"
)

// Status is the approval state of an action item.
type Status string

const (
	// StatusPending means the item awaits a user decision.
	StatusPending Status = "pending"
	// StatusApproved means the user accepted the item.
	StatusApproved Status = "approved"
	// StatusDismissed means the user rejected the item.
	StatusDismissed Status = "dismissed"
)

// Item is one suggested action awaiting approval.
type Item struct {
	ID        string
	Title     string
	Command   string
	Entity    *skills.EntityReference
	Status    Status
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store holds action items guarded by a RWMutex. Expired items are
// pruned lazily on access and treated as absent.
type Store struct {
	mu    sync.RWMutex
	items map[string]*Item
	ttl   time.Duration
	now   func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the store's clock. Used by tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a store whose items expire ttl after creation.
func NewStore(ttl time.Duration, opts ...StoreOption) *Store {
	s := &Store{
		items: make(map[string]*Item),
		ttl:   ttl,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates a pending item and returns a copy of it.
func (s *Store) Add(title, command string, entity *skills.EntityReference) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	item := &Item{
		ID:        uuid.NewString(),
		Title:     title,
		Command:   command,
		Entity:    entity,
		Status:    StatusPending,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.items[item.ID] = item
	s.prune(now)

	return *item
}

// Get returns a copy of an item if it exists and has not expired.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok || s.expired(item) {
		return Item{}, false
	}
	return *item, true
}

// Approve marks a pending item approved.
func (s *Store) Approve(id string) error {
	return s.transition(id, StatusApproved)
}

// Dismiss marks a pending item dismissed.
func (s *Store) Dismiss(id string) error {
	return s.transition(id, StatusDismissed)
}

func (s *Store) transition(id string, to Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok || s.expired(item) {
		return errors.Errorf("action item '%s' not found", id)
	}
	if item.Status != StatusPending {
		return errors.Errorf("action item '%s' is already %s", id, item.Status)
	}

	item.Status = to
	return nil
}

// Pending returns copies of all live pending items, oldest first.
func (s *Store) Pending() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune(s.now())

	var pending []Item
	for _, item := range s.items {
		if item.Status == StatusPending {
			pending = append(pending, *item)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return pending
}

func (s *Store) expired(item *Item) bool {
	return !s.now().Before(item.ExpiresAt)
}

// prune removes expired items. Caller must hold the write lock.
func (s *Store) prune(now time.Time) {
	removed := 0
	for id, item := range s.items {
		if !now.Before(item.ExpiresAt) {
			delete(s.items, id)
			removed++
		}
	}
	if removed > 0 {
		logger.L.WithField("count", removed).Debug("pruned expired action items")
	}
}
