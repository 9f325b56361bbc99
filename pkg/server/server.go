// Package server serves fallback queries over HTTP.
//
// A [Service] owns a catalog behind a read-write lock: queries run
// concurrently, route insertions run alone. Every accepted insertion gets a
// new revision id, so clients can tell whether their cached answers are
// stale.
//
// # Endpoints
//
//	GET  /healthz                               status and revision
//	GET  /fonts                                 every font with its tags
//	GET  /fonts/{font}                          one font
//	GET  /fonts/{font}/fallbacks?tag=T          direct fallbacks (limit=N, chain=true)
//	POST /routes                                {"from","to","tag"}
//	GET  /render?tag=T&format=svg               node-link diagram
//
// Errors are JSON objects {"code","message"} with the codes of
// [github.com/matzehuels/fontroute/pkg/errors].
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/fontroute/pkg/cache"
	"github.com/matzehuels/fontroute/pkg/catalog"
)

// DefaultLimit is the number of fallbacks returned when a request sets none.
const DefaultLimit = 16

// Options configures a [Service].
type Options struct {
	// Cache stores rendered diagrams under a "server:" key prefix. Nil
	// disables caching.
	Cache cache.Cache
	// Logger receives request and error logs. Nil uses log.Default().
	Logger *log.Logger
	// DefaultLimit caps fallback lists when a request sets no limit.
	DefaultLimit int
}

// Service is the HTTP query service for one catalog.
type Service struct {
	mu        sync.RWMutex
	cat       *catalog.Catalog
	revision  string
	corrupted bool

	cache  cache.Cache
	logger *log.Logger
	limit  int
}

// New creates a service for cat.
func New(cat *catalog.Catalog, opts Options) *Service {
	s := &Service{
		cat:      cat,
		revision: uuid.NewString(),
		cache:    opts.Cache,
		logger:   opts.Logger,
		limit:    opts.DefaultLimit,
	}
	// Scoped keeps service renders apart from CLI renders in a shared backend.
	s.cache = cache.Scoped(s.cache, "server:")
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.limit <= 0 {
		s.limit = DefaultLimit
	}
	return s
}

// Revision returns the current revision id.
func (s *Service) Revision() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Handler returns the service's router.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/fonts", func(r chi.Router) {
		r.Get("/", s.handleFonts)
		r.Get("/{font}", s.handleFont)
		r.Get("/{font}/fallbacks", s.handleFallbacks)
	})
	r.Post("/routes", s.handleAddRoute)
	r.Get("/render", s.handleRender)
	return r
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Service) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "revision", s.Revision())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
