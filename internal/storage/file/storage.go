package file

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/storage"
)

// Backend persists the aggregate as a single JSON file.
//
// Saves go through a temp file in the same directory followed by a
// rename, so an interrupted write leaves the previous file intact.
type Backend struct {
	path   string
	logger *slog.Logger
}

// New creates a file backend writing to the given path
func New(path string, logger *slog.Logger) *Backend {
	return &Backend{
		path:   path,
		logger: logger,
	}
}

// Ensure Backend implements the interface
var _ storage.Backend = (*Backend)(nil)

func (b *Backend) Load(ctx context.Context) (*model.Snapshot, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.NewSnapshot(), nil
		}
		return nil, err
	}

	snap := model.NewSnapshot()
	if err := json.Unmarshal(data, snap); err != nil {
		// Corrupt state is recovered locally, not surfaced
		b.logger.Warn("state file unreadable, starting fresh",
			slog.String("path", b.path),
			slog.String("error", err.Error()),
		)
		return model.NewSnapshot(), nil
	}
	return snap, nil
}

func (b *Backend) Save(ctx context.Context, snap *model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// Write to a temp file in the target directory so the rename stays
	// on one filesystem and replaces the old file atomically.
	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, b.path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
