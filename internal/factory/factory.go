package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/config"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/dependencies/clock"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/identity"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/payout"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/referral"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/table"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/tournament"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/storage"
	filestorage "github.com/mikewthornton1988-glitch/Pool-bot/internal/storage/file"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/storage/memory"
	redisstorage "github.com/mikewthornton1988-glitch/Pool-bot/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store *storage.Store

	// External dependencies
	Clock clock.Clock

	// Services
	Registry     *identity.Registry
	Resolver     *referral.Resolver
	TableManager *table.Manager
	Ledger       *payout.Ledger
	Controller   *tournament.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Tournament holds the tournament constants
	Tournament config.Tournament
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "file" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// StatePath is the state file path (required if StorageType is "file")
	StatePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var backend storage.Backend
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeMemory:
		backend = memory.New()
	case StorageTypeFile:
		if cfg.StatePath == "" {
			return nil, errors.New("StatePath required when StorageType is file")
		}
		backend = filestorage.New(cfg.StatePath, logger)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisBackend, err := redisstorage.New(*cfg.RedisConfig, logger)
		if err != nil {
			return nil, err
		}
		backend = redisBackend
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'file' or 'redis'")
	}

	clk := clock.New()

	return newWithDependencies(backend, clk, cfg.Tournament, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(backend storage.Backend, clk clock.Clock, tcfg config.Tournament, logger *slog.Logger) *App {
	store := storage.NewStore(backend)

	registry := identity.NewRegistry(clk)
	resolver := referral.NewResolver(registry, logger)
	tableManager := table.NewManager(tcfg.TableCapacity, tcfg.BuyIn, clk)
	ledger := payout.NewLedger(logger)
	controller := tournament.NewController(store, registry, resolver, tableManager, ledger, tcfg, logger)

	return &App{
		Store:        store,
		Clock:        clk,
		Registry:     registry,
		Resolver:     resolver,
		TableManager: tableManager,
		Ledger:       ledger,
		Controller:   controller,
	}
}
