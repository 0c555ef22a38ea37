package storage

import (
	"context"
	"sync"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
)

// Backend defines the interface for aggregate persistence.
//
// Load returns the full aggregate, substituting an empty one when nothing
// has been persisted yet or the persisted representation is unreadable.
// Save durably overwrites the persisted representation in full; it must
// leave either the fully-old or fully-new content behind, never a torn
// write.
type Backend interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snap *model.Snapshot) error
}

// Store serializes access to the aggregate. Every state-changing
// operation runs as one load-mutate-save cycle under the store's lock;
// two concurrent cycles can otherwise silently drop each other's writes.
type Store struct {
	mu      sync.Mutex
	backend Backend
}

// NewStore creates a Store over the given backend
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Update loads a fresh snapshot, applies fn, and saves the result.
// If fn returns an error nothing is saved and the error is returned
// unchanged. A save failure is returned to the caller so the operation
// never reports success without a durable write.
func (s *Store) Update(ctx context.Context, fn func(*model.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.backend.Load(ctx)
	if err != nil {
		return err
	}

	if err := fn(snap); err != nil {
		return err
	}

	return s.backend.Save(ctx, snap)
}

// View loads a fresh snapshot and applies fn without saving.
// Reads take the same lock as updates so they always observe a
// committed aggregate.
func (s *Store) View(ctx context.Context, fn func(*model.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.backend.Load(ctx)
	if err != nil {
		return err
	}

	return fn(snap)
}
