package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/lifegame/internal/api/handler"
	"github.com/mcoot/lifegame/internal/api/middleware"
	"github.com/mcoot/lifegame/internal/api/response"
	basemiddleware "github.com/mcoot/lifegame/internal/middleware"
	"github.com/mcoot/lifegame/internal/services/auth"
	"github.com/mcoot/lifegame/internal/services/simulation"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
	Controller  *simulation.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Controller)
	gameHandler := handler.NewGameHandler(cfg.Controller)
	dispatcher := NewDispatcher(cfg.AuthService, playerHandler, gameHandler)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(basemiddleware.Logging(cfg.Logger))

	// Method checks happen in the dispatcher so a wrong method gets a FAILURE body
	api.Handle("/actions/{action}", dispatcher)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
