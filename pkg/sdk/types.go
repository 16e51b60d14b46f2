package matchd

import "time"

// MatchRequest carries the two texts to analyze.
type MatchRequest struct {
	ResumeText string `json:"resume_text"`
	JobText    string `json:"job_text"`
}

// ScoreBreakdown is the fused score with its displayed sub-scores.
type ScoreBreakdown struct {
	HybridScore     float64 `json:"hybrid_score"`
	Verdict         string  `json:"verdict"`
	TechnicalScore  float64 `json:"technical_score"`
	SemanticScore   float64 `json:"semantic_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`
}

// SkillsReport lists matched and missing skills.
type SkillsReport struct {
	Matched          []string `json:"matched"`
	Missing          []string `json:"missing"`
	MissingRequired  []string `json:"missing_required,omitempty"`
	MissingPreferred []string `json:"missing_preferred,omitempty"`
}

// ChunkMatch is one top-ranked resume chunk.
type ChunkMatch struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
	Index int     `json:"index"`
}

// Explanation is the human-readable account of the match.
type Explanation struct {
	Text        string   `json:"text"`
	Strengths   []string `json:"strengths,omitempty"`
	Gaps        []string `json:"gaps,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Fallback    bool     `json:"fallback"`
}

// MatchResult is the full analysis result.
type MatchResult struct {
	Score           ScoreBreakdown `json:"score"`
	Skills          SkillsReport   `json:"skills"`
	TopChunks       []ChunkMatch   `json:"top_chunks"`
	Explanation     Explanation    `json:"explanation"`
	EmbeddingTokens int            `json:"embedding_tokens"`
}

// BudgetWindow reports token consumption within one budget period.
// A limit of 0 means unlimited; remaining is -1 in that case.
type BudgetWindow struct {
	PeriodStartAt   time.Time `json:"period_start_at"`
	PeriodEndAt     time.Time `json:"period_end_at"`
	TokensLimit     int64     `json:"tokens_limit"`
	TokensUsed      int64     `json:"tokens_used"`
	TokensRemaining int64     `json:"tokens_remaining"`
	IsExhausted     bool      `json:"is_exhausted"`
}

// ExplainSpend reports explanation spend in micro-dollars.
type ExplainSpend struct {
	UsedMicroUSD      int64 `json:"used_micro_usd"`
	RemainingMicroUSD int64 `json:"remaining_micro_usd"`
}

// UsageReport is the budget state of the service.
type UsageReport struct {
	Day          BudgetWindow `json:"day"`
	Month        BudgetWindow `json:"month"`
	ExplainSpend ExplainSpend `json:"explain_spend"`
}

// HealthReport is the aggregated health of the service.
type HealthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
