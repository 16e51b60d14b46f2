// Package chi is the HTTP transport: routing, request decoding, error
// mapping and response encoding for the match API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/domain"
	healthuc "github.com/hireloop/matchd/internal/usecase/health"
	scoringuc "github.com/hireloop/matchd/internal/usecase/scoring"
	usageuc "github.com/hireloop/matchd/internal/usecase/usage"
)

// maxBodyBytes caps request bodies. Resume plus job description fits
// comfortably under 1 MiB.
const maxBodyBytes = 1 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the matching pipeline over HTTP.
type Server struct {
	match         *scoringuc.Service
	usage         *usageuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	match *scoringuc.Service,
	usage *usageuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		match:  match,
		usage:  usage,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInsufficientInput, http.StatusBadRequest, codeInsufficientInput),
		sentinelHandler(domain.ErrEmbeddingQuotaExceeded,
			http.StatusPaymentRequired, codeEmbeddingQuotaExceeded),
		sentinelHandler(domain.ErrEmbeddingProviderError,
			http.StatusBadGateway, codeEmbeddingProviderError),
		sentinelHandler(domain.ErrVectorDimMismatch, http.StatusBadGateway, codeEmbeddingProviderError),
		sentinelHandler(domain.ErrEmptyVector, http.StatusBadGateway, codeEmbeddingProviderError),
	}
	return s
}

// Register mounts the API routes.
func (s *Server) Register(r chi.Router) {
	r.Post("/v1/match", s.AnalyzeMatch)
	r.Get("/v1/usage", s.GetUsage)
	r.Get("/healthz", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// AnalyzeMatch handles POST /v1/match.
func (s *Server) AnalyzeMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.TopK < 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, "top_k must not be negative")
		return
	}

	analysis, err := s.match.Analyze(r.Context(), scoringuc.Request{
		ResumeText: req.ResumeText,
		JobText:    req.JobText,
		TopK:       req.TopK,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if analysis.EmbeddingTokens > 0 {
		w.Header().Set("X-Embedding-Tokens", strconv.Itoa(analysis.EmbeddingTokens))
	}
	writeJSON(w, http.StatusOK, analysisToResponse(analysis))
}

// GetUsage handles GET /v1/usage.
func (s *Server) GetUsage(w http.ResponseWriter, r *http.Request) {
	report := s.usage.GetReport(r.Context())

	writeJSON(w, http.StatusOK, UsageResponse{
		Day:   budgetWindowToResponse(report.Day),
		Month: budgetWindowToResponse(report.Month),
		ExplainSpend: ExplainSpend{
			UsedMicroUSD:      report.ExplainUsedMicroUSD,
			RemainingMicroUSD: report.ExplainRemainingMicroUSD,
		},
	})
}

// HealthCheck handles GET /healthz.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func analysisToResponse(a *scoringuc.Analysis) MatchResponse {
	chunks := make([]ChunkMatch, len(a.TopChunks))
	for i, c := range a.TopChunks {
		chunks[i] = ChunkMatch{
			Text:  c.Text,
			Score: c.Score,
			Index: c.Index,
		}
	}

	b := a.Breakdown
	return MatchResponse{
		Score: ScoreBreakdown{
			HybridScore:     b.HybridScore,
			Verdict:         b.Verdict,
			TechnicalScore:  b.TechnicalScore,
			SemanticScore:   b.SemanticScore,
			ExperienceScore: b.ExperienceScore,
			EducationScore:  b.EducationScore,
		},
		Skills: SkillsReport{
			Matched:          emptyIfNil(b.MatchedSkills),
			Missing:          emptyIfNil(b.MissingSkills),
			MissingRequired:  b.MissingRequired,
			MissingPreferred: b.MissingPreferred,
		},
		TopChunks: chunks,
		Explanation: ExplanationBody{
			Text:        a.Explanation.Text,
			Strengths:   a.Explanation.Strengths,
			Gaps:        a.Explanation.Gaps,
			Suggestions: a.Explanation.Suggestions,
			Fallback:    a.Explanation.Fallback,
		},
		EmbeddingTokens: a.EmbeddingTokens,
	}
}

func budgetWindowToResponse(p usageuc.PeriodUsage) BudgetWindow {
	return BudgetWindow{
		PeriodStartAt:   time.UnixMilli(p.Start).UTC(),
		PeriodEndAt:     time.UnixMilli(p.End).UTC(),
		TokensLimit:     p.TokensLimit,
		TokensUsed:      p.TokensUsed,
		TokensRemaining: p.TokensRemaining,
		IsExhausted:     p.Exhausted,
	}
}

// emptyIfNil keeps skill lists as [] rather than null in JSON.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInsufficientInput,
		domain.ErrEmbeddingQuotaExceeded,
		domain.ErrEmbeddingProviderError,
		domain.ErrVectorDimMismatch,
		domain.ErrEmptyVector,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
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
