// Package diagnostics serves Prometheus metrics and pprof profiles on a
// port separate from the public API.
package diagnostics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const writeTimeout = 60 * time.Second
const readTimeout = 5 * time.Second

// Server is the diagnostics HTTP server.
type Server struct {
	httpServer *http.Server
	logger     zerolog.Logger
}

// NewServer creates a diagnostics server on port exposing the metrics gathered by g.
func NewServer(port int, g prometheus.Gatherer, logger zerolog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      NewHandler(g),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		logger: logger.With().Str("component", "diagnostics").Logger(),
	}
}

// NewHandler returns the diagnostics routes.
func NewHandler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	for _, name := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		mux.Handle("/debug/pprof/"+name, pprof.Handler(name))
	}

	return mux
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("starting diagnostics server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("diagnostics server failed: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
