package services

import (
	"context"

	"github.com/PFTrackr/fin_tracker_app/internal/dto"
)

// AnalyticsSvcFacade derives the numeric aggregates behind every chart and
// summary widget. All methods scope to the requesting user's data, and a
// cycleID of "all" (or empty) means no cycle scoping.
type AnalyticsSvcFacade interface {
	// Summary returns income/expense totals and balance for the cycle scope.
	Summary(ctx context.Context, userID string, cycleID string) (*dto.SummaryResponse, error)

	// DailyComparison compares today's expense total against yesterday's.
	DailyComparison(ctx context.Context, userID string) (*dto.DailyComparisonResponse, error)

	// Trend returns the income-vs-expense current/previous cycle points.
	Trend(ctx context.Context, userID string, cycleID string) (*dto.TrendResponse, error)

	// CategoryBreakdown buckets cycle-scoped expenses by category.
	CategoryBreakdown(ctx context.Context, userID string, cycleID string) (*dto.CategoryBreakdownResponse, error)

	// FundProgress ranks the user's savings funds by goal progress.
	FundProgress(ctx context.Context, userID string) (*dto.FundProgressResponse, error)

	// InstallmentProjections projects remaining balances of active installments.
	InstallmentProjections(ctx context.Context, userID string) (*dto.InstallmentProjectionResponse, error)
}
