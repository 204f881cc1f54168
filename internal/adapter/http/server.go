package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	geojsonadapter "github.com/couchcryptid/neo-impact-mapper/internal/adapter/geojson"
	"github.com/couchcryptid/neo-impact-mapper/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// ResultSource provides the latest pipeline result for the read endpoints.
type ResultSource interface {
	Latest() (store.Result, bool)
}

// Server exposes health, readiness, and metrics endpoints plus the latest
// report and overlay set.
type Server struct {
	httpServer *http.Server
	results    ResultSource
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics,
// /report, and /overlays routes.
func NewServer(addr string, ready ReadinessChecker, results ResultSource, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		results: results,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /report", s.handleReport)
	mux.HandleFunc("GET /overlays", s.handleOverlays)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// handleReport serves the latest textual impact report.
func (s *Server) handleReport(w http.ResponseWriter, _ *http.Request) {
	result, ok := s.results.Latest()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no cycle has completed yet"})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.Report))
}

// handleOverlays serves the latest overlay set as GeoJSON.
func (s *Server) handleOverlays(w http.ResponseWriter, _ *http.Request) {
	result, ok := s.results.Latest()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no cycle has completed yet"})
		return
	}

	fc := geojsonadapter.FeatureCollection(result.Visualizations)
	data, err := fc.MarshalJSON()
	if err != nil {
		s.logger.Error("encode overlays failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "encode overlays"})
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
