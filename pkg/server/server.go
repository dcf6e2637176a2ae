// Package server exposes the pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz    liveness probe, answers "OK"
//	GET  /version    build information as JSON
//	GET  /generate   run the pipeline, respond with the rendered artifact
//	POST /generate   same, with options from a JSON or TOML body
//	GET  /stats      run the pipeline, respond with its statistics as JSON
//
// Query parameters override the server's base options: seed, format, image,
// scale, min_depth, max_depth, degree, misalign, overlap and overflow.
// Every response of a pipeline route carries the page's run ID in
// X-Pagen-Run and the seed in X-Pagen-Seed, so any page can be reproduced.
//
// Each request runs its own pipeline on its own page; nothing is shared
// between requests except the runner's image cache.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pagen/pkg/observability"
	"github.com/matzehuels/pagen/pkg/pipeline"
)

// Defaults for [Config].
const (
	DefaultAddr    = ":8080"
	DefaultTimeout = 60 * time.Second
	shutdownGrace  = 10 * time.Second
)

// Response headers.
const (
	HeaderRun  = "X-Pagen-Run"
	HeaderSeed = "X-Pagen-Seed"
)

// Config configures a [Server].
type Config struct {
	Addr    string
	Timeout time.Duration
	// Base holds the options requests start from.
	Base pipeline.Options
}

// Server serves pipeline runs over HTTP.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	logger *log.Logger
}

// New returns a server that runs requests on runner.
func New(runner *pipeline.Runner, logger *log.Logger, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, runner: runner, logger: logger}
}

// Handler returns the HTTP handler with every route and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Timeout))
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Get("/generate", s.handleGenerate)
	r.Post("/generate", s.handleGenerate)
	r.Get("/stats", s.handleStats)
	return r
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// observe reports every request to the registered server hooks and logs it
// at debug level.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"request_id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start))
	})
}
