// Package api exposes the library over HTTP. JSON entities are served
// through huma-registered operations; the image-upload endpoints are
// plain chi handlers because huma doesn't easily support multipart
// forms.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bibliodigital/biblioteca-server/internal/config"
	"github.com/bibliodigital/biblioteca-server/internal/service"
	"github.com/bibliodigital/biblioteca-server/internal/store"
	"github.com/bibliodigital/biblioteca-server/internal/validation"
)

// Server is the HTTP server for the biblioteca API.
type Server struct {
	store      *store.Store
	services   *service.Services
	validator  *validation.Validator
	router     *chi.Mux
	api        huma.API
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates the server, wires middleware, and registers all routes.
func NewServer(cfg *config.Config, st *store.Store, services *service.Services, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	humaConfig := huma.DefaultConfig("Biblioteca API", "1.0.0")
	humaAPI := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:     st,
		services:  services,
		validator: validation.New(),
		router:    router,
		api:       humaAPI,
		logger:    logger,
	}

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	s.registerHealthRoutes()
	s.registerAuthorRoutes()
	s.registerReaderRoutes()
	s.registerLibrarianRoutes()
	s.registerBookRoutes()
	s.registerLoanRoutes()

	return s
}

// Start begins listening for HTTP requests. Blocks until the server
// stops.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Router returns the underlying handler, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// MessageResponse is the body of delete confirmations.
type MessageResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// MessageOutput wraps MessageResponse for huma.
type MessageOutput struct {
	Body MessageResponse
}
