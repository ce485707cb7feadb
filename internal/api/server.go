// Package api exposes the navigator over HTTP.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/hacktx/financial-navigator/internal/service"
)

// Server represents the HTTP API server.
type Server struct {
	router  *chi.Mux
	handler *Handler
	server  *http.Server
	config  domain.ServerConfig
}

// NewServer creates a new API server. A nil logger uses slog.Default.
func NewServer(cfg domain.ServerConfig, nav *service.Navigator, logger *slog.Logger, version string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	handler := NewHandler(nav, logger, version)
	router := chi.NewRouter()

	router.Use(CORSMiddleware)
	router.Use(RecoverMiddleware(logger))
	router.Use(TracingMiddleware)
	router.Use(LoggingMiddleware(logger))
	router.Use(middleware.RealIP)
	router.Use(middleware.Compress(5))

	router.Get("/health", handler.Health)

	router.Route("/v1", func(r chi.Router) {
		// stateless calculators
		r.Post("/analyze", handler.Analyze)
		r.Post("/health-score", handler.HealthScore)
		r.Post("/scenarios", handler.Scenarios)
		r.Post("/quote", handler.Quote)
		r.Post("/vehicles", handler.Vehicles)
		r.Post("/achievements", handler.Achievements)

		// stored profiles
		r.Post("/profiles", handler.CreateProfile)
		r.Get("/profiles", handler.ListProfiles)
		r.Put("/profiles/{userID}", handler.PutProfile)
		r.Get("/profiles/{userID}", handler.GetProfile)
		r.Delete("/profiles/{userID}", handler.DeleteProfile)
		r.Get("/profiles/{userID}/report", handler.UserReport)
	})

	return &Server{
		router:  router,
		handler: handler,
		config:  cfg,
	}
}

// Addr is the host:port the server listens on.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.Addr(),
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the Chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
