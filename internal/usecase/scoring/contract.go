package scoring

import (
	"context"

	"github.com/hireloop/matchd/internal/domain"
	"github.com/hireloop/matchd/internal/domain/match"
)

// Embedder is the consumer interface for text vectorization (ISP).
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
	BatchEmbed(ctx context.Context, texts []string) (domain.BatchEmbeddingResult, error)
}

// Explainer turns a score breakdown into a human-readable explanation.
type Explainer interface {
	Explain(ctx context.Context, breakdown match.Breakdown, jobText string, topChunks []string) domain.Explanation
}
