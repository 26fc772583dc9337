// Package server exposes the workflow over HTTP. The routes mirror what
// the web frontend calls: multipart intake, a single JSON action
// endpoint driving the state machine, and a docx download.
package server

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"prdforge/internal/config"
	"prdforge/internal/logging"
	"prdforge/internal/workflow"
)

// Server wires the HTTP transport to the workflow engine.
type Server struct {
	engine *workflow.Engine
	cfg    config.ServerConfig
	http   *http.Server
}

// New builds the server with its routes registered.
func New(engine *workflow.Engine, cfg config.ServerConfig) *Server {
	s := &Server{engine: engine, cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /prd/initiate-session", s.handleInitiateSession)
	mux.HandleFunc("POST /prd/write-prd", s.handleWritePRD)
	mux.HandleFunc("GET /prd/export-prd/{id}", s.handleExportPRD)
	mux.HandleFunc("POST /analyze-file", s.handleAnalyzeFile)

	s.http = &http.Server{
		Addr:    cfg.Addr,
		Handler: logRequests(mux),
	}
	return s
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Run serves until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.Server("listening on %s", s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.GetShutdownTimeout())
		defer cancel()
		logging.Server("shutting down")
		return s.http.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.ServerDebug("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
