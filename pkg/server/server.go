// Package server exposes grids, searches, animations and box diagrams over
// HTTP.
//
// # Routes
//
//	GET  /healthz                          build info as JSON
//	GET  /grid?w=&h=&structure=1           blank grid or its edge weights
//	GET  /path?w=&h=&from=&to=&algo=       painted search result
//	GET  /animate?w=&h=&from=&to=          frames separated by form feeds (at
//	                                       most Options.MaxAnimateCells cells)
//	POST /diagram                          box diagram from a JSON body
//
// The grid routes also accept seal=1,4,7 and repeated weight=node:pos:w
// parameters. Responses are plain text; errors carry the error code in the
// X-Error-Code header and map to HTTP statuses (NOT_FOUND → 404,
// UNREACHABLE → 422, invalid input → 400).
//
// Every request gets a fresh grid, so handlers share no mutable state
// except the frame cache.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pathpane/pkg/animate"
	"github.com/matzehuels/pathpane/pkg/cache"
	"github.com/matzehuels/pathpane/pkg/render/connector"
)

// DefaultMaxAnimateCells is the largest grid /animate replays unless
// Options says otherwise. A 64×64 replay is already thousands of frames.
const DefaultMaxAnimateCells = 64 * 64

// Options configures request defaults and the frame cache.
type Options struct {
	Width   int // grid width when w is omitted
	Height  int // grid height when h is omitted
	Fill    string
	Markers animate.Markers
	Diagram connector.Settings

	// MaxAnimateCells caps w×h for /animate; 0 means DefaultMaxAnimateCells.
	MaxAnimateCells int

	Cache cache.Cache   // nil disables caching
	TTL   time.Duration // lifetime of cached frame sets
}

// DefaultOptions returns options matching the built-in configuration.
func DefaultOptions() Options {
	return Options{
		Width:   10,
		Height:  10,
		Fill:    ".",
		Markers: animate.DefaultMarkers(),
		Diagram: connector.DefaultSettings(),

		MaxAnimateCells: DefaultMaxAnimateCells,

		Cache: cache.NewNullCache(),
		TTL:   24 * time.Hour,
	}
}

// Server is the HTTP frontend.
type Server struct {
	logger *log.Logger
	opts   Options
	keyer  cache.Keyer
	router chi.Router
}

// New builds a server and its routes.
func New(logger *log.Logger, opts Options) *Server {
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.MaxAnimateCells <= 0 {
		opts.MaxAnimateCells = DefaultMaxAnimateCells
	}
	s := &Server{
		logger: logger,
		opts:   opts,
		keyer:  cache.NewScopedKeyer(cache.NewDefaultKeyer(), "server:"),
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/grid", s.handleGrid)
	r.Get("/path", s.handlePath)
	r.Get("/animate", s.handleAnimate)
	r.With(middleware.AllowContentType("application/json")).Post("/diagram", s.handleDiagram)

	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
