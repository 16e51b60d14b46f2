package scoring

import (
	"context"

	"github.com/hireloop/matchd/internal/domain"
	"github.com/hireloop/matchd/internal/domain/match"
)

type mockEmbedder struct {
	jobVec    []float32
	chunkVecs [][]float32
	jobTokens int
	batchToks int

	embedErr error
	batchErr error

	batchTexts []string
	embedText  string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.embedText = text
	if m.embedErr != nil {
		return domain.EmbeddingResult{}, m.embedErr
	}
	return domain.EmbeddingResult{Embedding: m.jobVec, TotalTokens: m.jobTokens}, nil
}

func (m *mockEmbedder) BatchEmbed(_ context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	m.batchTexts = texts
	if m.batchErr != nil {
		return domain.BatchEmbeddingResult{}, m.batchErr
	}
	vecs := m.chunkVecs
	if vecs == nil {
		vecs = make([][]float32, len(texts))
		for i := range vecs {
			vecs[i] = m.jobVec
		}
	}
	return domain.BatchEmbeddingResult{Embeddings: vecs, TotalTokens: m.batchToks}, nil
}

type mockExplainer struct {
	expl      domain.Explanation
	breakdown match.Breakdown
	jobText   string
	chunks    []string
	calls     int
}

func (m *mockExplainer) Explain(
	_ context.Context, breakdown match.Breakdown, jobText string, topChunks []string,
) domain.Explanation {
	m.calls++
	m.breakdown = breakdown
	m.jobText = jobText
	m.chunks = topChunks
	return m.expl
}
