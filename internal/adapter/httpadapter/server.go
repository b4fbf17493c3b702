package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/ferry-risk-service/internal/domain"
)

// RiskService is the assessment backend the API serves.
type RiskService interface {
	sharedobs.ReadinessChecker
	Zone() string
	Periods(ctx context.Context) ([]domain.ForecastPeriod, error)
	Assess(ctx context.Context, req domain.Request) (domain.Assessment, error)
}

// Server exposes the risk API plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	svc        RiskService
	loc        *time.Location
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and the
// /v1 API routes. loc is the timezone departure dates are interpreted in.
func NewServer(addr string, svc RiskService, loc *time.Location, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		svc:    svc,
		loc:    loc,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(svc))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/periods", s.handlePeriods)
	mux.HandleFunc("GET /v1/assessment", s.handleAssessment)

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
