package match

import (
	"fmt"
	"math"
	"sort"

	"github.com/hireloop/matchd/internal/domain"
)

// RankedChunk is one resume chunk scored against the job embedding.
type RankedChunk struct {
	Text  string
	Score float64
	Index int // position in the original chunk sequence
}

// Cosine returns the cosine similarity of two vectors. A zero-norm vector
// makes the similarity undefined and returns domain.ErrEmptyVector instead
// of a silent zero; mismatched dimensions return domain.ErrVectorDimMismatch.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", domain.ErrVectorDimMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, domain.ErrEmptyVector
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// RankChunks scores every chunk against the job embedding and returns the
// top K by similarity, descending. The sort is stable, so equal scores keep
// original chunk order and ranking stays reproducible.
func RankChunks(chunks []string, embeddings [][]float32, jobEmbedding []float32, topK int) ([]RankedChunk, error) {
	if len(chunks) != len(embeddings) {
		return nil, fmt.Errorf("chunk/embedding count mismatch: %d vs %d", len(chunks), len(embeddings))
	}

	ranked := make([]RankedChunk, len(chunks))
	for i := range chunks {
		score, err := Cosine(embeddings[i], jobEmbedding)
		if err != nil {
			return nil, fmt.Errorf("score chunk %d: %w", i, err)
		}
		ranked[i] = RankedChunk{Text: chunks[i], Score: score, Index: i}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if topK >= 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}

	return ranked, nil
}

// TopMean averages the first n ranked scores. The divisor stays n even when
// fewer chunks exist, so thin resumes dilute the semantic sub-score rather
// than inflate it.
func TopMean(ranked []RankedChunk, n int) float64 {
	if n <= 0 || len(ranked) == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < n && i < len(ranked); i++ {
		sum += ranked[i].Score
	}
	return sum / float64(n)
}
