package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/handler"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/middleware"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/tournament"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger     *slog.Logger
	Controller *tournament.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Controller)
	tableHandler := handler.NewTableHandler(cfg.Controller)
	promoterHandler := handler.NewPromoterHandler(cfg.Controller)

	// Create middleware
	principalMiddleware := middleware.Principal()
	adminMiddleware := middleware.Admin(cfg.Controller)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Health check endpoint (no principal required)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Player routes (principal required)
	players := api.NewRoute().Subrouter()
	players.Use(principalMiddleware)
	players.HandleFunc("/enroll", playerHandler.Enroll).Methods(http.MethodPost)
	players.HandleFunc("/tables/join", tableHandler.Join).Methods(http.MethodPost)
	players.HandleFunc("/players/me/status", playerHandler.Status).Methods(http.MethodGet)
	players.HandleFunc("/promoters/me", promoterHandler.Link).Methods(http.MethodGet)

	// Admin routes (principal + admin check)
	admin := api.NewRoute().Subrouter()
	admin.Use(principalMiddleware)
	admin.Use(adminMiddleware)
	admin.HandleFunc("/tables", tableHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/tables/{id}/winner", tableHandler.DeclareWinner).Methods(http.MethodPost)
	admin.HandleFunc("/promoters/balances", promoterHandler.Balances).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
