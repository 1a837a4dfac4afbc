// Package web serves the built gazetteer over a read-only JSON API.
package web

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/pacport/japanese-addresses/internal/web/handlers"
	"github.com/pacport/japanese-addresses/internal/web/middleware"
)

// Config holds the HTTP server settings. An empty APIKey leaves the API
// open, which is the normal mode for this public dataset.
type Config struct {
	Addr   string
	APIKey string
}

// Server exposes the addresses table over HTTP.
type Server struct {
	config     Config
	db         *sql.DB
	log        zerolog.Logger
	router     *mux.Router
	httpServer *http.Server
}

// NewServer creates a web server on an already open database connection.
// The caller keeps ownership of the connection.
func NewServer(config Config, db *sql.DB, log zerolog.Logger) *Server {
	s := &Server{config: config, db: db, log: log}
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         config.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	addressesHandler := &handlers.AddressesHandler{DB: s.db}
	healthHandler := &handlers.HealthHandler{DB: s.db}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", healthHandler.Check).Methods("GET")
	api.HandleFunc("/prefectures", addressesHandler.ListPrefectures).Methods("GET")
	api.HandleFunc("/addresses", addressesHandler.ListAddresses).Methods("GET")
	api.HandleFunc("/addresses/{id:[0-9]+}", addressesHandler.GetAddress).Methods("GET")

	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogging(s.log))

	if s.config.APIKey != "" {
		api.Use(middleware.APIKey(s.config.APIKey))
	}
}

// Start runs the server until SIGINT or SIGTERM arrives, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("serving gazetteer API")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error().Err(err).Msg("server error")
		}
	}()

	<-stop
	s.log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
