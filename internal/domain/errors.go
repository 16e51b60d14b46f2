package domain

import "errors"

var (
	// ErrEmptyVector signals a zero-norm embedding passed to similarity.
	// Cosine similarity is undefined for zero vectors; 0 is a legitimate
	// score, so this must surface as an error rather than a silent zero.
	ErrEmptyVector = errors.New("empty embedding vector")
	// ErrInsufficientInput signals input too short or missing to score.
	ErrInsufficientInput = errors.New("insufficient input")
	// ErrVectorDimMismatch signals a chunk/job embedding dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrEmbeddingQuotaExceeded signals an exhausted embedding token budget.
	ErrEmbeddingQuotaExceeded = errors.New("embedding quota exceeded")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrExplainerUnavailable signals the explanation provider failed or is
	// not configured. Recovered locally with a fallback explanation.
	ErrExplainerUnavailable = errors.New("explainer unavailable")
	// ErrExplainBudgetExhausted signals the explanation cost budget is spent.
	ErrExplainBudgetExhausted = errors.New("explanation budget exhausted")
)
