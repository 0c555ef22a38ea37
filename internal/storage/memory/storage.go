package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/storage"
)

// Backend is an in-memory implementation of the storage backend.
// The aggregate is held in its serialized form so Load hands out an
// independent copy each time, the same way the durable backends do.
type Backend struct {
	mu   sync.RWMutex
	data []byte
}

// New creates a new in-memory backend
func New() *Backend {
	return &Backend{}
}

// Ensure Backend implements the interface
var _ storage.Backend = (*Backend)(nil)

func (b *Backend) Load(ctx context.Context) (*model.Snapshot, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.data == nil {
		return model.NewSnapshot(), nil
	}

	snap := model.NewSnapshot()
	if err := json.Unmarshal(b.data, snap); err != nil {
		return model.NewSnapshot(), nil
	}
	return snap, nil
}

func (b *Backend) Save(ctx context.Context, snap *model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = data
	return nil
}
