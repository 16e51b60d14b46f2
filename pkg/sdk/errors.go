package matchd

import "github.com/hireloop/matchd/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInsufficientInput      = domain.ErrInsufficientInput
	ErrEmbeddingQuotaExceeded = domain.ErrEmbeddingQuotaExceeded
	ErrEmbeddingProviderError = domain.ErrEmbeddingProviderError
)

// errorByCode maps API error codes back to sentinels.
var errorByCode = map[string]error{
	"insufficient_input":       ErrInsufficientInput,
	"embedding_quota_exceeded": ErrEmbeddingQuotaExceeded,
	"embedding_provider_error": ErrEmbeddingProviderError,
}

// APIError is a non-2xx response from the matchd API. It wraps the matching
// sentinel error when the code is a known one.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return "matchd: " + e.Code + ": " + e.Message
}

func (e *APIError) Unwrap() error {
	return errorByCode[e.Code]
}
