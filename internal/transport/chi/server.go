// Package chi exposes the recommendation engine over HTTP: three JSON
// endpoints under /api/v1 plus health and metrics.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hallyulab/dramarec/internal/domain"
	"github.com/hallyulab/dramarec/internal/domain/query/mode"
	"github.com/hallyulab/dramarec/internal/domain/query/request"
	"github.com/hallyulab/dramarec/internal/domain/query/result"
	"github.com/hallyulab/dramarec/internal/domain/record"
	healthuc "github.com/hallyulab/dramarec/internal/usecase/health"
	recommenduc "github.com/hallyulab/dramarec/internal/usecase/recommend"
)

// Recommender answers queries over the loaded snapshot (the engine, plain
// or instrumented).
type Recommender interface {
	Recommend(ctx context.Context, req *request.Request) (result.Recommendation, error)
	Records() []record.Record
	Stats() recommenduc.Stats
}

// HealthChecker reports engine readiness.
type HealthChecker interface {
	Check() healthuc.Report
}

// errorCode is the machine-readable error identifier in API responses.
type errorCode string

const (
	codeValidationFailed errorCode = "validation_failed"
	codeTitleNotFound    errorCode = "title_not_found"
	codeUnauthorized     errorCode = "unauthorized"
	codeInternalError    errorCode = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server handles the HTTP API.
type Server struct {
	engine        Recommender
	health        HealthChecker
	defaultTopK   int
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. defaultTopK fills in requests that
// do not pass top_k themselves.
func NewServer(engine Recommender, health HealthChecker, defaultTopK int, logger *zap.Logger) *Server {
	s := &Server{
		engine:      engine,
		health:      health,
		defaultTopK: defaultTopK,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrTitleNotFound, http.StatusNotFound, codeTitleNotFound),
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrQueryTooLong, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidTopK, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidMode, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidYear, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/v1/recommendations", s.GetRecommendations)
	r.Get("/api/v1/titles", s.ListTitles)
	r.Get("/api/v1/stats", s.GetStats)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// recommendationResponse is the answer envelope for GET /api/v1/recommendations.
type recommendationResponse struct {
	Mode         string               `json:"mode"`
	MatchedTitle string               `json:"matched_title,omitempty"`
	Warning      string               `json:"warning,omitempty"`
	TopK         int                  `json:"top_k"`
	Results      []recommendationItem `json:"results"`
}

// recommendationItem is one ranked hit. Score is present only in
// similarity-ranked modes; year and rating only when the catalog has them.
type recommendationItem struct {
	Title  string   `json:"title"`
	Score  *float64 `json:"score,omitempty"`
	Year   *int     `json:"year,omitempty"`
	Genre  string   `json:"genre,omitempty"`
	Rating *float64 `json:"rating,omitempty"`
}

type titleEntry struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Year  *int   `json:"year,omitempty"`
	Genre string `json:"genre,omitempty"`
}

type titleListResponse struct {
	Items []titleEntry `json:"items"`
	Total int          `json:"total"`
}

type statsResponse struct {
	Records         int `json:"records"`
	VocabularyTerms int `json:"vocabulary_terms"`
	GenreTags       int `json:"genre_tags"`
	YearMin         int `json:"year_min,omitempty"`
	YearMax         int `json:"year_max,omitempty"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// GetRecommendations handles GET /api/v1/recommendations?q=&mode=&top_k=.
func (s *Server) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	topK := s.defaultTopK
	if raw := q.Get("top_k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "top_k must be an integer")
			return
		}
		topK = n
	}

	req, err := request.New(q.Get("q"), mode.Mode(q.Get("mode")), topK)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	rec, err := s.engine.Recommend(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recommendationToDTO(rec, req.TopK()))
}

// ListTitles handles GET /api/v1/titles.
func (s *Server) ListTitles(w http.ResponseWriter, r *http.Request) {
	records := s.engine.Records()

	items := make([]titleEntry, len(records))
	for i := range records {
		rec := &records[i]
		e := titleEntry{ID: rec.ID(), Title: rec.Title(), Genre: rec.Genre()}
		if year, ok := rec.Year(); ok {
			e.Year = &year
		}
		items[i] = e
	}

	writeJSON(w, http.StatusOK, titleListResponse{Items: items, Total: len(items)})
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	st := s.engine.Stats()

	writeJSON(w, http.StatusOK, statsResponse{
		Records:         st.Records,
		VocabularyTerms: st.VocabularyTerms,
		GenreTags:       st.GenreTags,
		YearMin:         st.YearMin,
		YearMax:         st.YearMax,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check()

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func recommendationToDTO(rec result.Recommendation, topK int) recommendationResponse {
	hits := rec.Results()
	items := make([]recommendationItem, len(hits))
	for i := range hits {
		items[i] = hitToDTO(&hits[i])
	}

	resp := recommendationResponse{
		Mode:         string(rec.Mode()),
		MatchedTitle: rec.MatchedTitle(),
		TopK:         topK,
		Results:      items,
	}
	if rec.IsEmpty() {
		if rec.Mode().Scored() {
			resp.Warning = "no similar titles found"
		} else {
			resp.Warning = "no titles matched"
		}
	}
	return resp
}

func hitToDTO(hit *result.Result) recommendationItem {
	rec := hit.Record()

	item := recommendationItem{
		Title: rec.Title(),
		Genre: rec.Genre(),
	}
	if hit.Scored() {
		score := hit.Score()
		item.Score = &score
	}
	if year, ok := rec.Year(); ok {
		item.Year = &year
	}
	if rating, ok := rec.Rating(); ok {
		item.Rating = &rating
	}
	return item
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrTitleNotFound,
		domain.ErrEmptyQuery,
		domain.ErrQueryTooLong,
		domain.ErrInvalidTopK,
		domain.ErrInvalidMode,
		domain.ErrInvalidYear,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
