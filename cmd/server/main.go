package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/config"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/factory"
	redisstorage "github.com/mikewthornton1988-glitch/Pool-bot/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Tournament:  config.FromEnv(),
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
		StatePath:   os.Getenv("STATE_FILE"),
	}
	if cfg.StatePath == "" {
		cfg.StatePath = "data/state.json"
	}

	if cfg.Tournament.AdminID == 0 {
		logger.Warn("ADMIN_ID not set, privileged operations are disabled")
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		Controller: app.Controller,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			serverConfig.Port = p
		}
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
