// Package store owns the in-memory AppState and the reducer that mutates it.
// The Store is an explicit object handed to consumers; there are no package
// globals. All mutations flow through Dispatch, which mirrors every new state
// to durable storage.
package store

import (
	"sync"

	"github.com/google/uuid"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/logger"
	"spendwise/internal/models"
)

// Persister mirrors AppState to a durable single-document slot.
type Persister interface {
	// Load returns the stored state, or nil when no prior snapshot exists.
	Load() (*models.AppState, error)
	// Save overwrites the stored state wholesale.
	Save(state models.AppState) error
}

// Store holds the process-wide AppState. It is created once at application
// start with the default category catalog, rehydrated from the persister if a
// snapshot exists, and persisted after every transition. The mutex makes the
// reducer the single mutation entry point under concurrent HTTP handlers;
// reads always observe the latest committed state.
type Store struct {
	mu        sync.Mutex
	state     models.AppState
	persister Persister
}

// New creates a Store seeded with the default categories and rehydrates it
// from the persister when a prior snapshot exists. A nil persister yields a
// memory-only store, used in tests.
func New(p Persister) (*Store, error) {
	s := &Store{
		state: models.AppState{
			Transactions: []models.Transaction{},
			Categories:   models.DefaultCategories(),
			BudgetGoals:  []models.BudgetGoal{},
		},
		persister: p,
	}

	if p != nil {
		snapshot, err := p.Load()
		if err != nil {
			return nil, err
		}
		if snapshot != nil {
			s.state = Apply(s.state, LoadState{Snapshot: *snapshot})
		}
	}

	return s, nil
}

// State returns a copy of the current state. Callers may read and aggregate
// freely without holding up the store.
func (s *Store) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies the action and mirrors the new state to durable storage.
// A failed save keeps the in-memory transition (no rollback, no retry) and
// returns the error so the caller can surface it.
func (s *Store) Dispatch(action Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Apply(s.state, action)

	if s.persister != nil {
		if err := s.persister.Save(s.state); err != nil {
			logger.Get().Errorw("snapshot save failed", "error", err)
			return apperrors.Wrap(apperrors.ErrSnapshotSave, err)
		}
	}
	return nil
}

// Transaction looks up a transaction by ID in the current state.
func (s *Store) Transaction(id string) (models.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.state.Transactions {
		if t.ID == id {
			return t, true
		}
	}
	return models.Transaction{}, false
}

// Category looks up a category by ID in the current state.
func (s *Store) Category(id string) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CategoryByID(id)
}

// BudgetGoal looks up a budget goal by ID in the current state.
func (s *Store) BudgetGoal(id string) (models.BudgetGoal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.state.BudgetGoals {
		if g.ID == id {
			return g, true
		}
	}
	return models.BudgetGoal{}, false
}

// newID generates an identifier unique within the process lifetime.
func newID() string {
	return uuid.NewString()
}
