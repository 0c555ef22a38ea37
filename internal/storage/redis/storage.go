package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/storage"
)

// Backend is a Redis-backed implementation of the storage backend.
// The whole aggregate lives under a single key; a SET is atomic on the
// server side, so readers never observe a torn write.
type Backend struct {
	client *redis.Client
	cfg    Config
	logger *slog.Logger
}

// New creates a new Redis backend
func New(cfg Config, logger *slog.Logger) (*Backend, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Backend{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// NewWithClient creates a Redis backend with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config, logger *slog.Logger) *Backend {
	return &Backend{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Close closes the Redis connection
func (b *Backend) Close() error {
	return b.client.Close()
}

// Ensure Backend implements the interface
var _ storage.Backend = (*Backend)(nil)

func (b *Backend) Load(ctx context.Context) (*model.Snapshot, error) {
	data, err := b.client.Get(ctx, b.cfg.Key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.NewSnapshot(), nil
		}
		return nil, err
	}

	snap := model.NewSnapshot()
	if err := json.Unmarshal(data, snap); err != nil {
		b.logger.Warn("stored state unreadable, starting fresh",
			slog.String("key", b.cfg.Key),
			slog.String("error", err.Error()),
		)
		return model.NewSnapshot(), nil
	}
	return snap, nil
}

func (b *Backend) Save(ctx context.Context, snap *model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return b.client.Set(ctx, b.cfg.Key, data, 0).Err()
}
