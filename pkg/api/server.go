package api

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/blockcanvas/pkg/canvas"
)

// shutdownTimeout bounds graceful shutdown in ListenAndServe.
const shutdownTimeout = 5 * time.Second

// Server exposes one canvas over HTTP.
type Server struct {
	mu     sync.Mutex
	canvas *canvas.Canvas
	logger *log.Logger
	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a server for c.
func New(c *canvas.Canvas, opts ...Option) *Server {
	s := &Server{
		canvas: c,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/blocks", func(r chi.Router) {
		r.Get("/", s.handleBlocks)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleBlock)
			r.Get("/rows", s.handleRows)
			r.Post("/drag", s.handleDrag)
			r.Post("/drop", s.handleDrop)
		})
	})

	r.Post("/select/{id}", s.handleSelect)
	r.Post("/navigate/{direction}", s.handleNavigate)
	r.Post("/center/{id}", s.handleCenter)

	r.Route("/viewport", func(r chi.Router) {
		r.Get("/", s.handleViewport)
		r.Post("/pan", s.handlePan)
		r.Post("/release", s.handleRelease)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// withCanvas runs fn while holding the canvas lock.
func (s *Server) withCanvas(fn func(c *canvas.Canvas)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.canvas)
}
