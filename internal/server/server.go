// Package server exposes the catalog lookups and chart renderers over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Evgya/anime-analysis/pkg/catalog"
)

// Config holds the server dependencies and settings.
type Config struct {
	Addr        string          // listen address, e.g. ":8080"
	ArtifactDir string          // directory for rendered chart files
	Catalog     *catalog.Client // nil disables the /api/anime routes
	Logger      *log.Logger
}

// Server serves the REST API.
type Server struct {
	cfg       Config
	artifacts *artifactStore
	logger    *log.Logger
}

// New creates a Server. The artifact directory is created lazily on the
// first chart render.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cfg:       cfg,
		artifacts: &artifactStore{dir: cfg.ArtifactDir},
		logger:    logger,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/anime/{name}", s.handleAnimeLookup)
		r.Post("/charts/{kind}", s.handleChartRender)
		r.Get("/charts/{file}", s.handleChartGet)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
