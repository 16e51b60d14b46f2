// Package explain turns a score breakdown into a human-readable account of
// the match, via an LLM provider when budget allows, locally otherwise.
package explain

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hireloop/matchd/internal/domain"
	"github.com/hireloop/matchd/internal/domain/match"
	"github.com/hireloop/matchd/internal/metrics"
)

const (
	fallbackMaxStrengths = 3
	fallbackMaxGaps      = 2
)

// Service generates match explanations with a local fallback.
type Service struct {
	gen    Generator
	cost   *CostTracker
	logger *zap.Logger
}

// New creates an explanation service. gen may be nil when no chat provider
// is configured; every request then uses the local fallback.
func New(gen Generator, cost *CostTracker, logger *zap.Logger) *Service {
	return &Service{
		gen:    gen,
		cost:   cost,
		logger: logger,
	}
}

// Explain produces an explanation for the given breakdown. It never fails:
// provider errors and budget exhaustion degrade to a locally built text.
func (s *Service) Explain(
	ctx context.Context, breakdown match.Breakdown, jobText string, topChunks []string,
) domain.Explanation {
	suggestions := match.Suggestions(breakdown.MissingSkills, breakdown.MatchedSkills)

	expl, ok := s.fromProvider(ctx, breakdown, jobText, topChunks)
	if !ok {
		metrics.ExplainRequestsTotal.WithLabelValues("fallback").Inc()
		expl = fallbackExplanation(breakdown)
	} else {
		metrics.ExplainRequestsTotal.WithLabelValues("llm").Inc()
	}

	expl.Suggestions = suggestions
	return expl
}

// Spend returns micro-USD used and remaining for usage reporting.
// Remaining is -1 when the budget is unlimited.
func (s *Service) Spend() (used, remaining int64) {
	if s.cost == nil {
		return 0, -1
	}
	return s.cost.Used(), s.cost.Remaining()
}

func (s *Service) fromProvider(
	ctx context.Context, breakdown match.Breakdown, jobText string, topChunks []string,
) (domain.Explanation, bool) {
	if s.gen == nil {
		return domain.Explanation{}, false
	}

	if s.cost != nil {
		if err := s.cost.Check(ctx); err != nil {
			if errors.Is(err, domain.ErrExplainBudgetExhausted) {
				s.logger.Warn("Explain budget exhausted, using fallback",
					zap.Int64("used_microusd", s.cost.Used()),
					zap.Int64("limit_microusd", s.cost.Limit()),
				)
			}
			return domain.Explanation{}, false
		}
	}

	expl, cost, err := s.gen.Generate(ctx, domain.ExplainRequest{
		JobText:    jobText,
		TopChunks:  topChunks,
		MatchScore: breakdown.HybridScore,
	})
	if err != nil {
		s.logger.Warn("Explanation provider failed, using fallback", zap.Error(err))
		return domain.Explanation{}, false
	}

	if s.cost != nil && cost > 0 {
		s.cost.Record(cost)
	}
	return expl, true
}

// fallbackExplanation builds a deterministic explanation from the breakdown
// when no provider output is available.
func fallbackExplanation(b match.Breakdown) domain.Explanation {
	text := fmt.Sprintf(
		"This candidate has a %.1f%% overall match (%s) based on resume content.",
		b.HybridScore*100, b.Verdict,
	)

	var strengths []string
	for _, skill := range b.MatchedSkills {
		if len(strengths) == fallbackMaxStrengths {
			break
		}
		strengths = append(strengths, "Demonstrated experience with "+skill)
	}
	if len(strengths) == 0 {
		strengths = []string{
			"Relevant experience found in resume",
			"Background matches role expectations",
		}
	}

	var gaps []string
	for _, skill := range b.MissingRequired {
		if len(gaps) == fallbackMaxGaps {
			break
		}
		gaps = append(gaps, "No evidence of "+skill+" in the resume")
	}
	if len(gaps) == 0 {
		gaps = []string{"Some specialized skills may need verification"}
	}

	return domain.Explanation{
		Text:      text,
		Strengths: strengths,
		Gaps:      gaps,
		Fallback:  true,
	}
}
