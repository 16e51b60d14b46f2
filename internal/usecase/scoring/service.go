// Package scoring runs the full resume-vs-job analysis pipeline: section
// split, keyword extraction, semantic ranking, hybrid fusion, explanation.
package scoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/domain"
	"github.com/hireloop/matchd/internal/domain/chunk"
	"github.com/hireloop/matchd/internal/domain/match"
	"github.com/hireloop/matchd/internal/domain/section"
	"github.com/hireloop/matchd/internal/domain/skills"
	"github.com/hireloop/matchd/internal/metrics"
)

// Defaults for pipeline knobs.
const (
	DefaultTopK         = 5
	DefaultMaxTopK      = 20
	DefaultSemanticTopN = 3
	DefaultMinJobChars  = 50
)

// Config holds pipeline tuning knobs. Zero values fall back to defaults.
// MaxTopK caps per-request TopK overrides, not the configured TopK.
type Config struct {
	TopK         int
	MaxTopK      int
	SemanticTopN int
	MinJobChars  int
	ChunkWords   int
	ChunkOverlap int
}

func (c Config) withDefaults() Config {
	if c.TopK <= 0 {
		c.TopK = DefaultTopK
	}
	if c.MaxTopK <= 0 {
		c.MaxTopK = DefaultMaxTopK
	}
	if c.SemanticTopN <= 0 {
		c.SemanticTopN = DefaultSemanticTopN
	}
	if c.MinJobChars <= 0 {
		c.MinJobChars = DefaultMinJobChars
	}
	if c.ChunkWords <= 0 {
		c.ChunkWords = chunk.DefaultWords
	}
	if c.ChunkOverlap <= 0 {
		c.ChunkOverlap = chunk.DefaultOverlap
	}
	return c
}

// Request carries the two texts to compare. TopK overrides the configured
// chunk count for this request when positive; values above MaxTopK are
// clamped.
type Request struct {
	ResumeText string
	JobText    string
	TopK       int
}

// Analysis is the full outcome of one resume-vs-job run.
type Analysis struct {
	Breakdown     match.Breakdown
	Keyword       match.Result
	SemanticScore float64
	TopChunks     []match.RankedChunk
	Explanation   domain.Explanation

	EmbeddingTokens int
}

// Service orchestrates the matching pipeline.
type Service struct {
	embedder  Embedder
	explainer Explainer
	cfg       Config
	logger    *zap.Logger
}

// New creates a scoring service.
func New(embedder Embedder, explainer Explainer, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		embedder:  embedder,
		explainer: explainer,
		cfg:       cfg.withDefaults(),
		logger:    logger,
	}
}

// Analyze runs the pipeline end to end.
func (s *Service) Analyze(ctx context.Context, req Request) (*Analysis, error) {
	start := time.Now()

	analysis, err := s.analyze(ctx, req)

	duration := time.Since(start)
	metrics.MatchAnalysisDuration.Observe(duration.Seconds())

	if err != nil {
		metrics.MatchAnalysesTotal.WithLabelValues("none", "error").Inc()
		return nil, err
	}

	metrics.MatchAnalysesTotal.WithLabelValues(analysis.Breakdown.Verdict, "success").Inc()
	metrics.MatchScore.Observe(analysis.Breakdown.HybridScore)

	s.logger.Info("Match analysis completed",
		zap.Duration("duration", duration),
		zap.Float64("hybrid_score", analysis.Breakdown.HybridScore),
		zap.String("verdict", analysis.Breakdown.Verdict),
		zap.Float64("semantic_score", analysis.SemanticScore),
		zap.Float64("keyword_score", analysis.Keyword.OverallKeyword),
		zap.Int("matched_skills", len(analysis.Keyword.MatchedSkills)),
		zap.Int("missing_skills", len(analysis.Keyword.MissingSkills)),
		zap.Int("embedding_tokens", analysis.EmbeddingTokens),
		zap.Bool("explanation_fallback", analysis.Explanation.Fallback),
	)

	return analysis, nil
}

func (s *Service) analyze(ctx context.Context, req Request) (*Analysis, error) {
	resumeText := strings.TrimSpace(req.ResumeText)
	jobText := strings.TrimSpace(req.JobText)

	if resumeText == "" {
		return nil, fmt.Errorf("resume text is empty: %w", domain.ErrInsufficientInput)
	}
	if len(jobText) < s.cfg.MinJobChars {
		return nil, fmt.Errorf("job description shorter than %d characters: %w",
			s.cfg.MinJobChars, domain.ErrInsufficientInput)
	}

	sections := section.Split(jobText)

	resumeSkills := skills.Extract(resumeText)
	jobSkills := skills.Extract(sections.Cleaned)

	chunks := chunk.Split(resumeText, s.cfg.ChunkWords, s.cfg.ChunkOverlap)

	batch, err := s.embedder.BatchEmbed(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("embed resume chunks: %w", err)
	}

	jobEmb, err := s.embedder.Embed(ctx, sections.Cleaned)
	if err != nil {
		return nil, fmt.Errorf("embed job text: %w", err)
	}

	topK := s.cfg.TopK
	if req.TopK > 0 {
		topK = req.TopK
		if topK > s.cfg.MaxTopK {
			topK = s.cfg.MaxTopK
		}
	}

	ranked, err := match.RankChunks(chunks, batch.Embeddings, jobEmb.Embedding, topK)
	if err != nil {
		return nil, fmt.Errorf("rank chunks: %w", err)
	}

	semantic := match.TopMean(ranked, s.cfg.SemanticTopN)
	kw := match.Keywords(resumeSkills, jobSkills, &sections)
	breakdown := match.Hybrid(semantic, kw)

	chunkTexts := make([]string, len(ranked))
	for i, rc := range ranked {
		chunkTexts[i] = rc.Text
	}
	explanation := s.explainer.Explain(ctx, breakdown, sections.Cleaned, chunkTexts)

	return &Analysis{
		Breakdown:       breakdown,
		Keyword:         kw,
		SemanticScore:   semantic,
		TopChunks:       ranked,
		Explanation:     explanation,
		EmbeddingTokens: batch.TotalTokens + jobEmb.TotalTokens,
	}, nil
}
