// Package api implements the HTTP layer for the financial report service.
// Handlers are methods on *Server. Each handler file is responsible for one
// resource group and only imports the dependencies it actually uses.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nyashahama/financial-report-backend/internal/report"
	"github.com/nyashahama/financial-report-backend/internal/store"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// Env is "production" or "development". Development echoes the request
	// origin in CORS responses so local frontends work without setup.
	Env string

	// AllowedOrigins is the Access-Control-Allow-Origin value served in
	// production, "*" by default.
	AllowedOrigins string
}

// ReportGenerator produces report content from financial facts. Satisfied by
// *report.Generator; tests inject a stub.
type ReportGenerator interface {
	Generate(ctx context.Context, facts report.FinancialFacts) report.Result
}

// ReportStore is the persistence surface the handlers need. Satisfied by
// *store.Store; tests inject an in-memory fake.
type ReportStore interface {
	Save(ctx context.Context, p store.SaveReportParams) (store.Report, error)
	List(ctx context.Context) ([]store.Report, error)
	Get(ctx context.Context, id uuidType) (store.Report, error)
	Delete(ctx context.Context, id uuidType) error
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// generator builds report content, falling back to templates when the
	// AI provider is unavailable.
	generator ReportGenerator

	// store persists saved reports.
	store ReportStore

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(generator ReportGenerator, st ReportStore, cfg Config, logger *slog.Logger) http.Handler {
	s := &Server{
		generator: generator,
		store:     st,
		cfg:       cfg,
		logger:    logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	// Generation may legitimately hold a request open for a full provider
	// call, so the cutoff sits above the provider timeout.
	r.Use(middleware.Timeout(120 * time.Second))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// ── API ───────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {

		// Generation and export are stateless; nothing is persisted.
		r.Post("/generate-report", s.handleGenerateReport)
		r.Post("/export-report", s.handleExportReport)

		// Saved reports.
		r.Route("/reports", func(r chi.Router) {
			r.Post("/", s.handleSaveReport)
			r.Get("/", s.handleListReports)
			r.Get("/{reportID}", s.handleGetReport)
			r.Delete("/{reportID}", s.handleDeleteReport)
		})
	})

	return r
}
