package scoring

import (
	"context"
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/domain"
	"github.com/hireloop/matchd/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterMatchMetrics()
	os.Exit(m.Run())
}

const sampleJob = `Requirements:
Python and SQL required for this backend services role
Experience building production data pipelines at scale

Preferred:
AWS experience nice to have`

const sampleResume = "Senior engineer with Python and AWS experience building data pipelines and reporting dashboards"

func newTestService(emb *mockEmbedder, exp *mockExplainer, cfg Config) *Service {
	return New(emb, exp, cfg, zap.NewNop())
}

func TestAnalyze_HappyPath(t *testing.T) {
	emb := &mockEmbedder{
		jobVec:    []float32{1, 0},
		jobTokens: 30,
		batchToks: 120,
	}
	exp := &mockExplainer{expl: domain.Explanation{Text: "good fit"}}
	svc := newTestService(emb, exp, Config{})

	analysis, err := svc.Analyze(context.Background(), Request{
		ResumeText: sampleResume,
		JobText:    sampleJob,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// One chunk identical to the job vector: cosine 1.0 averaged over the
	// fixed top-3 divisor.
	if math.Abs(analysis.SemanticScore-1.0/3.0) > 1e-9 {
		t.Errorf("SemanticScore = %f, want 1/3", analysis.SemanticScore)
	}

	if len(analysis.Keyword.MissingRequired) != 1 || analysis.Keyword.MissingRequired[0] != "sql" {
		t.Errorf("MissingRequired = %v, want [sql]", analysis.Keyword.MissingRequired)
	}

	if analysis.Breakdown.Verdict == "" {
		t.Error("expected a verdict")
	}
	if analysis.Explanation.Text != "good fit" {
		t.Errorf("explanation not attached: %+v", analysis.Explanation)
	}
	if analysis.EmbeddingTokens != 150 {
		t.Errorf("EmbeddingTokens = %d, want 150", analysis.EmbeddingTokens)
	}
}

func TestAnalyze_PassesCleanedJobAndTopChunksToExplainer(t *testing.T) {
	emb := &mockEmbedder{jobVec: []float32{1, 0}}
	exp := &mockExplainer{}
	svc := newTestService(emb, exp, Config{})

	analysis, err := svc.Analyze(context.Background(), Request{
		ResumeText: sampleResume,
		JobText:    sampleJob,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if exp.calls != 1 {
		t.Fatalf("expected 1 explainer call, got %d", exp.calls)
	}
	if exp.breakdown.HybridScore != analysis.Breakdown.HybridScore {
		t.Error("explainer saw a different breakdown than the result")
	}
	if !strings.Contains(exp.jobText, "Python and SQL required") {
		t.Errorf("explainer job text missing requirements: %q", exp.jobText)
	}
	if len(exp.chunks) != len(analysis.TopChunks) {
		t.Errorf("explainer got %d chunks, result has %d", len(exp.chunks), len(analysis.TopChunks))
	}
}

func TestAnalyze_RanksChunksAndAppliesTopK(t *testing.T) {
	// 9 words, window 4 with overlap 1 -> chunks start at words 0, 3, 6.
	resume := "alpha beta gamma delta epsilon zeta eta theta iota"

	emb := &mockEmbedder{
		jobVec: []float32{0.6, 0.8},
		chunkVecs: [][]float32{
			{1, 0},     // cosine 0.6
			{0, 1},     // cosine 0.8
			{0.6, 0.8}, // cosine 1.0
		},
	}
	exp := &mockExplainer{}
	svc := newTestService(emb, exp, Config{
		TopK:         2,
		SemanticTopN: 2,
		ChunkWords:   4,
		ChunkOverlap: 1,
	})

	analysis, err := svc.Analyze(context.Background(), Request{
		ResumeText: resume,
		JobText:    sampleJob,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(emb.batchTexts) != 3 {
		t.Fatalf("expected 3 chunks embedded, got %d: %v", len(emb.batchTexts), emb.batchTexts)
	}
	if len(analysis.TopChunks) != 2 {
		t.Fatalf("expected topK=2 chunks, got %d", len(analysis.TopChunks))
	}
	if analysis.TopChunks[0].Index != 2 || analysis.TopChunks[1].Index != 1 {
		t.Errorf("unexpected ranking order: %+v", analysis.TopChunks)
	}
	if math.Abs(analysis.SemanticScore-0.9) > 1e-9 {
		t.Errorf("SemanticScore = %f, want 0.9", analysis.SemanticScore)
	}
}

func TestAnalyze_RequestTopKOverridesConfig(t *testing.T) {
	resume := "alpha beta gamma delta epsilon zeta eta theta iota"

	emb := &mockEmbedder{
		jobVec: []float32{0.6, 0.8},
		chunkVecs: [][]float32{
			{1, 0},
			{0, 1},
			{0.6, 0.8},
		},
	}
	cfg := Config{
		TopK:         3,
		MaxTopK:      2,
		ChunkWords:   4,
		ChunkOverlap: 1,
	}

	t.Run("override shrinks the result", func(t *testing.T) {
		svc := newTestService(emb, &mockExplainer{}, cfg)

		analysis, err := svc.Analyze(context.Background(), Request{
			ResumeText: resume,
			JobText:    sampleJob,
			TopK:       1,
		})
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if len(analysis.TopChunks) != 1 {
			t.Fatalf("expected 1 chunk for TopK=1, got %d", len(analysis.TopChunks))
		}
		if analysis.TopChunks[0].Index != 2 {
			t.Errorf("expected the best chunk, got %+v", analysis.TopChunks[0])
		}
	})

	t.Run("override is clamped to MaxTopK", func(t *testing.T) {
		svc := newTestService(emb, &mockExplainer{}, cfg)

		analysis, err := svc.Analyze(context.Background(), Request{
			ResumeText: resume,
			JobText:    sampleJob,
			TopK:       50,
		})
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if len(analysis.TopChunks) != 2 {
			t.Fatalf("expected MaxTopK=2 chunks, got %d", len(analysis.TopChunks))
		}
	})

	t.Run("zero keeps the configured TopK", func(t *testing.T) {
		svc := newTestService(emb, &mockExplainer{}, cfg)

		analysis, err := svc.Analyze(context.Background(), Request{
			ResumeText: resume,
			JobText:    sampleJob,
		})
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if len(analysis.TopChunks) != 3 {
			t.Fatalf("expected configured TopK=3 chunks, got %d", len(analysis.TopChunks))
		}
	})
}

func TestAnalyze_EmptyResumeRejected(t *testing.T) {
	svc := newTestService(&mockEmbedder{}, &mockExplainer{}, Config{})

	_, err := svc.Analyze(context.Background(), Request{ResumeText: "   ", JobText: sampleJob})
	if !errors.Is(err, domain.ErrInsufficientInput) {
		t.Fatalf("expected ErrInsufficientInput, got %v", err)
	}
}

func TestAnalyze_ShortJobRejected(t *testing.T) {
	svc := newTestService(&mockEmbedder{}, &mockExplainer{}, Config{})

	_, err := svc.Analyze(context.Background(), Request{ResumeText: sampleResume, JobText: "too short"})
	if !errors.Is(err, domain.ErrInsufficientInput) {
		t.Fatalf("expected ErrInsufficientInput, got %v", err)
	}
}

func TestAnalyze_BatchEmbedErrorPropagates(t *testing.T) {
	emb := &mockEmbedder{batchErr: domain.ErrEmbeddingProviderError}
	svc := newTestService(emb, &mockExplainer{}, Config{})

	_, err := svc.Analyze(context.Background(), Request{ResumeText: sampleResume, JobText: sampleJob})
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestAnalyze_JobEmbedErrorPropagates(t *testing.T) {
	emb := &mockEmbedder{jobVec: []float32{1, 0}, embedErr: domain.ErrEmbeddingQuotaExceeded}
	svc := newTestService(emb, &mockExplainer{}, Config{})

	_, err := svc.Analyze(context.Background(), Request{ResumeText: sampleResume, JobText: sampleJob})
	if !errors.Is(err, domain.ErrEmbeddingQuotaExceeded) {
		t.Fatalf("expected quota error, got %v", err)
	}
}
