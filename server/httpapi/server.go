// Package httpapi is the HTTP transport shell for the gateway: it decodes
// JSON requests, runs the execute pipeline and serializes the uniform
// response envelope.
package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/alekangelov/planetscale-go/auth"
	"github.com/alekangelov/planetscale-go/pkg/config"
	sqlcommon "github.com/alekangelov/planetscale-go/server/datasource/sql"
)

// Database endpoint paths of the serverless driver protocol.
const (
	PathExecute       = "/psdb.v1alpha1.Database/Execute"
	PathCreateSession = "/psdb.v1alpha1.Database/CreateSession"
	PathHealth        = "/health"
)

// Server is the gateway's HTTP server.
type Server struct {
	cfg        *config.Config
	handlers   *Handlers
	httpServer *http.Server
}

// NewServer wires the endpoint handlers to the configured credentials and
// the shared pool.
func NewServer(cfg *config.Config, pool *sqlcommon.Pool) *Server {
	creds := auth.Credentials{
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
	}
	return &Server{
		cfg:      cfg,
		handlers: NewHandlers(creds, pool),
	}
}

// Routes builds the full handler chain: Recovery → CORS → Logging → mux.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlers.Root)
	mux.HandleFunc(PathHealth, s.handlers.Health)
	mux.HandleFunc(PathCreateSession, s.handlers.CreateSession)
	mux.HandleFunc(PathExecute, s.handlers.Execute)

	return RecoveryMiddleware(CORSMiddleware(LoggingMiddleware(mux)))
}

// Start listens on the configured address and serves until shutdown
// (blocking).
func (s *Server) Start() error {
	addr := s.cfg.ListenAddress()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("[HTTP] listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
