// Package server serves a frequency table as a bar chart over HTTP.
//
// The table is fetched once when the server starts; every request renders
// from that in-memory copy through a [pipeline.Runner]. Routes:
//
//	GET /              HTML page embedding the SVG chart
//	GET /chart.svg     chart as SVG (also .png, .html, .pdf)
//	GET /data.json     the full table
//	GET /ranked.json   the ranked table
//	GET /healthz       liveness and table size
//
// Chart and ranked routes accept limit, width and height query parameters.
// Errors are JSON objects of the form {"code": "...", "error": "..."}.
package server

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/matzehuels/colorbars/pkg/freq"
	"github.com/matzehuels/colorbars/pkg/pipeline"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

const (
	requestTimeout  = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server renders charts for one table.
type Server struct {
	table    *freq.Table
	runner   *pipeline.Runner
	defaults pipeline.Options
	logger   *log.Logger
	source   string
	router   chi.Router
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

// WithDefaults sets the render options that query parameters override.
// Source and Formats are ignored.
func WithDefaults(opts pipeline.Options) Option {
	return func(s *Server) { s.defaults = opts }
}

// WithSource records where the table came from, for /healthz.
func WithSource(location string) Option {
	return func(s *Server) { s.source = location }
}

// New returns a server for table. A nil runner gets an uncached one.
func New(table *freq.Table, runner *pipeline.Runner, opts ...Option) *Server {
	if table == nil {
		table = freq.New()
	}
	s := &Server{
		table:  table,
		runner: runner,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, s.logger)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		renderError(w, r, errNotFound(r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = render.Render(w, r, ErrMethodNotAllowed(r.Method))
	})

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/data.json", s.handleData)
	r.Get("/ranked.json", s.handleRanked)
	for _, format := range []string{pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatHTML, pipeline.FormatPDF} {
		r.Get("/chart."+format, s.handleChart(format))
	}
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "entries", s.table.Len())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
