package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fortuna/stattracker/internal/service"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
	router  http.Handler
}

// ServerOption configures a Server
type ServerOption func(*Handler)

// WithRedisCheck adds a Redis ping to /health
func WithRedisCheck(p Pinger) ServerOption {
	return func(h *Handler) {
		h.redis = p
	}
}

// NewServer creates a new REST API server
func NewServer(port string, reports *service.ReportService, log zerolog.Logger, opts ...ServerOption) *Server {
	log = log.With().Str("component", "rest").Logger()
	handler := NewHandler(reports)
	for _, opt := range opts {
		opt(handler)
	}

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware(log))
	router.Use(LoggingMiddleware(log))

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// League
	api.HandleFunc("/league", handler.GetLeagueReport).Methods("GET")
	api.HandleFunc("/league/percentages", handler.GetPercentages).Methods("GET")
	api.HandleFunc("/league/opinions", handler.GetOpinions).Methods("GET")

	// Seasons
	api.HandleFunc("/seasons", handler.GetSeasons).Methods("GET")
	api.HandleFunc("/seasons/{season}", handler.GetSeasonReport).Methods("GET")
	api.HandleFunc("/seasons/{season}/coaches", handler.GetSeasonCoaches).Methods("GET")

	// Games
	api.HandleFunc("/games/{gameID}", handler.GetGame).Methods("GET")

	// Teams
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/teams/{teamID}", handler.GetTeam).Methods("GET")
	api.HandleFunc("/teams/{teamID}/schedule", handler.GetTeamSchedule).Methods("GET")

	// CORS wraps the router so preflights reach it without a matching route
	root := CORSMiddleware(router)

	return &Server{
		port:    port,
		handler: handler,
		router:  root,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           root,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router exposes the configured routes
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
