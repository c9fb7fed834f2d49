package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nyashahama/financial-report-backend/internal/pdf"
	"github.com/nyashahama/financial-report-backend/internal/report"
	"github.com/nyashahama/financial-report-backend/internal/store"
)

// ─── POST /api/generate-report ───────────────────────────────────────────────

// generateReportRequest carries the financial facts plus the presentation
// fields frontends send along for a later export. The numeric facts are
// pointers so a missing field can be told apart from a legitimate zero.
type generateReportRequest struct {
	CompanyName      string   `json:"company_name"`
	Revenue          *float64 `json:"revenue"`
	Profit           *float64 `json:"profit"`
	GrowthPercentage *float64 `json:"growth_percentage"`
	SectorTrends     string   `json:"sector_trends"`
	KeyMetrics       string   `json:"key_metrics"`
	Risks            string   `json:"risks"`
	Recommendations  string   `json:"recommendations"`

	// Accepted but unused here: frontends send these so the same form state
	// can be posted to generate and export without trimming keys.
	ExecutiveName string `json:"executive_name"`
	ReportTitle   string `json:"report_title"`
}

type generateReportResponse struct {
	ID                 string   `json:"id"`
	ExecutiveSummary   string   `json:"executive_summary"`
	KeyTrends          string   `json:"key_trends"`
	Risks              string   `json:"risks"`
	Recommendations    string   `json:"recommendations"`
	TopRisks           []string `json:"top_risks"`
	TopRecommendations []string `json:"top_recommendations"`
}

// handleGenerateReport runs one generation pass over the submitted facts and
// returns the narrative sections. Nothing is persisted here; the id is a
// timestamp tag for the frontend, not a database key.
//
// Generation itself cannot fail: provider problems degrade to template
// content, so the only error responses are validation ones.
func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req generateReportRequest
	if !decode(w, r, &req) {
		return
	}

	if req.Revenue == nil || req.Profit == nil || req.GrowthPercentage == nil {
		respondErr(w, http.StatusBadRequest, "revenue, profit and growth_percentage are required")
		return
	}
	if *req.Revenue < 0 {
		respondErr(w, http.StatusBadRequest, "revenue must be non-negative")
		return
	}

	companyName := req.CompanyName
	if companyName == "" {
		companyName = "Company"
	}

	facts := report.FinancialFacts{
		CompanyName:      companyName,
		Revenue:          *req.Revenue,
		Profit:           *req.Profit,
		GrowthPercentage: *req.GrowthPercentage,
		SectorTrends:     req.SectorTrends,
		KeyMetrics:       req.KeyMetrics,
		Risks:            req.Risks,
		Recommendations:  req.Recommendations,
	}

	result := s.generator.Generate(r.Context(), facts)

	s.logger.Info("report generated",
		"company", companyName,
		"source", string(result.Source),
		logField(r),
	)

	respond(w, http.StatusOK, generateReportResponse{
		ID:                 "report_" + time.Now().Format("20060102_150405"),
		ExecutiveSummary:   result.Content.ExecutiveSummary,
		KeyTrends:          result.Content.KeyTrends,
		Risks:              result.Content.Risks,
		Recommendations:    result.Content.Recommendations,
		TopRisks:           result.Content.TopRisks,
		TopRecommendations: result.Content.TopRecommendations,
	})
}

// ─── POST /api/export-report ─────────────────────────────────────────────────

// handleExportReport renders the posted payload as a PDF attachment. The
// payload is schemaless on purpose: the renderer skips whatever is absent, so
// callers can export freshly generated content, stored content, or hand-built
// maps with the same endpoint.
func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if !decode(w, r, &payload) {
		return
	}

	doc := pdf.BuildDocument(payload)

	// Render fully before touching the response so a failure can still
	// produce a clean error body instead of a truncated file.
	var buf bytes.Buffer
	if err := doc.WritePDF(&buf); err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("export report: %w", err))
		return
	}

	company := "report"
	if v, ok := payload["company_name"].(string); ok && v != "" {
		company = v
	}
	filename := fmt.Sprintf("%s_%s.pdf", company, time.Now().Format("20060102"))

	s.logger.Info("report exported",
		"filename", filename,
		"bytes", buf.Len(),
		logField(r),
	)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// ─── POST /api/reports ───────────────────────────────────────────────────────

type saveReportRequest struct {
	Title       string          `json:"title"`
	Content     json.RawMessage `json:"content"`
	CompanyName string          `json:"company_name"`
}

type saveReportResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// handleSaveReport persists a generated report. Content is stored verbatim as
// JSON and round-trips through the get endpoint untouched.
func (s *Server) handleSaveReport(w http.ResponseWriter, r *http.Request) {
	var req saveReportRequest
	if !decode(w, r, &req) {
		return
	}

	if req.Title == "" {
		respondErr(w, http.StatusBadRequest, "title is required")
		return
	}
	var contentObj map[string]json.RawMessage
	if len(req.Content) == 0 || json.Unmarshal(req.Content, &contentObj) != nil || contentObj == nil {
		respondErr(w, http.StatusBadRequest, "content must be a JSON object")
		return
	}

	saved, err := s.store.Save(r.Context(), store.SaveReportParams{
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Content:     req.Content,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("save report: %w", err))
		return
	}

	s.logger.Info("report saved",
		"report_id", saved.ID,
		"title", saved.Title,
		logField(r),
	)

	respond(w, http.StatusOK, saveReportResponse{
		ID:      saved.ID.String(),
		Message: "Report saved successfully",
	})
}

// ─── GET /api/reports ────────────────────────────────────────────────────────

// reportRecordResponse is the stored-report shape shared by the list and get
// endpoints.
type reportRecordResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	CompanyName string          `json:"company_name"`
	CreatedAt   string          `json:"created_at"`
	Content     json.RawMessage `json:"content"`
}

func toReportRecord(rep store.Report) reportRecordResponse {
	content := rep.Content
	if len(content) == 0 {
		content = json.RawMessage(`{}`)
	}
	return reportRecordResponse{
		ID:          rep.ID.String(),
		Title:       rep.Title,
		CompanyName: rep.CompanyName,
		CreatedAt:   rep.CreatedAt.UTC().Format(time.RFC3339),
		Content:     content,
	}
}

// handleListReports returns every stored report, newest first.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.store.List(r.Context())
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("list reports: %w", err))
		return
	}

	out := make([]reportRecordResponse, len(reports))
	for i, rep := range reports {
		out[i] = toReportRecord(rep)
	}
	respond(w, http.StatusOK, out)
}

// ─── GET /api/reports/{reportID} ─────────────────────────────────────────────

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := parseReportID(chi.URLParam(r, "reportID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid report id")
		return
	}

	rep, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondErr(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get report: %w", err))
		return
	}

	respond(w, http.StatusOK, toReportRecord(rep))
}

// ─── DELETE /api/reports/{reportID} ──────────────────────────────────────────

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id, err := parseReportID(chi.URLParam(r, "reportID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid report id")
		return
	}

	err = s.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondErr(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("delete report: %w", err))
		return
	}

	s.logger.Info("report deleted", "report_id", id, logField(r))
	respond(w, http.StatusOK, map[string]string{"message": "Report deleted successfully"})
}
