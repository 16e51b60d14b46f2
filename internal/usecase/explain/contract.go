package explain

import (
	"context"

	"github.com/hireloop/matchd/internal/domain"
)

// Generator produces an LLM-written explanation and reports the call cost
// in micro-USD.
type Generator interface {
	Generate(ctx context.Context, req domain.ExplainRequest) (domain.Explanation, int64, error)
}

// CostStore is the persistence interface for spend counters.
type CostStore interface {
	IncrBy(ctx context.Context, key string, val int64) error
	Get(ctx context.Context, key string) (int64, error)
}
