// Package usage reports token and spend budget state for the usage endpoint.
package usage

import (
	"context"
	"time"
)

// PeriodUsage describes token consumption within one budget window.
// Limits of 0 mean unlimited; Remaining is -1 in that case.
type PeriodUsage struct {
	Start           int64 // unix millis
	End             int64 // unix millis
	TokensLimit     int64
	TokensUsed      int64
	TokensRemaining int64
	Exhausted       bool
}

// Report aggregates embedding token budgets and explanation spend.
type Report struct {
	Day   PeriodUsage
	Month PeriodUsage

	ExplainUsedMicroUSD      int64
	ExplainRemainingMicroUSD int64
}

// Service handles usage reporting.
type Service struct {
	budget BudgetReader
	spend  SpendReader
}

// New creates a Service. Either reader can be nil (unlimited mode).
func New(budget BudgetReader, spend SpendReader) *Service {
	return &Service{budget: budget, spend: spend}
}

// GetReport builds the current usage report.
func (s *Service) GetReport(_ context.Context) Report {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	r := Report{
		Day: PeriodUsage{
			Start:           dayStart.UnixMilli(),
			End:             dayStart.Add(24 * time.Hour).UnixMilli(),
			TokensRemaining: -1,
		},
		Month: PeriodUsage{
			Start:           monthStart.UnixMilli(),
			End:             monthStart.AddDate(0, 1, 0).UnixMilli(),
			TokensRemaining: -1,
		},
		ExplainRemainingMicroUSD: -1,
	}

	if s.budget != nil {
		r.Day.TokensLimit = s.budget.DailyLimit()
		r.Day.TokensUsed = s.budget.DailyUsed()
		r.Day.TokensRemaining = s.budget.RemainingDaily()
		r.Day.Exhausted = r.Day.TokensLimit > 0 && r.Day.TokensRemaining <= 0

		r.Month.TokensLimit = s.budget.MonthlyLimit()
		r.Month.TokensUsed = s.budget.MonthlyUsed()
		r.Month.TokensRemaining = s.budget.RemainingMonthly()
		r.Month.Exhausted = r.Month.TokensLimit > 0 && r.Month.TokensRemaining <= 0
	}

	if s.spend != nil {
		r.ExplainUsedMicroUSD, r.ExplainRemainingMicroUSD = s.spend.Spend()
	}

	return r
}
