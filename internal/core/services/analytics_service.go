package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/apperrors"
	"github.com/PFTrackr/fin_tracker_app/internal/core/analytics"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/PFTrackr/fin_tracker_app/internal/core/filtering"
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
)

// analyticsService implements the AnalyticsSvcFacade interface.
// Every aggregate is derived on demand from a fresh snapshot; nothing is
// cached between calls.
type analyticsService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	categoryRepo    portsrepo.CategoryRepositoryFacade
	fundRepo        portsrepo.SavingsFundRepositoryFacade
	cycleRepo       portsrepo.BillingCycleRepositoryFacade
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	fundRepo portsrepo.SavingsFundRepositoryFacade,
	cycleRepo portsrepo.BillingCycleRepositoryFacade,
) portssvc.AnalyticsSvcFacade {
	return &analyticsService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		fundRepo:        fundRepo,
		cycleRepo:       cycleRepo,
	}
}

// Ensure analyticsService implements the AnalyticsSvcFacade interface
var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// cycleScoped loads the user's transactions narrowed to the selected cycle.
func (s *analyticsService) cycleScoped(ctx context.Context, userID, cycleID string) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	var window *filtering.DateWindow
	if cycleID != "" && cycleID != domain.CycleAll {
		cycle, err := s.cycleRepo.FindBillingCycleByID(ctx, cycleID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load billing cycle", slog.String("cycle_id", cycleID))
			return nil, fmt.Errorf("failed to load billing cycle: %w", err)
		}
		if cycle.UserID != userID {
			return nil, apperrors.ErrForbidden
		}
		window = filtering.ResolveCycleWindow(cycle, time.Now())
	}

	return filtering.Apply(txns, filtering.NewFilterState(), window), nil
}

// Summary returns income/expense totals and balance for the cycle scope.
func (s *analyticsService) Summary(ctx context.Context, userID string, cycleID string) (*dto.SummaryResponse, error) {
	txns, err := s.cycleScoped(ctx, userID, cycleID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToSummaryResponse(analytics.ComputeTotals(txns))
	return &resp, nil
}

// DailyComparison compares today's expense total against yesterday's.
func (s *analyticsService) DailyComparison(ctx context.Context, userID string) (*dto.DailyComparisonResponse, error) {
	txns, err := s.transactionRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	resp := dto.ToDailyComparisonResponse(analytics.CompareDailyExpenses(txns, time.Now()))
	return &resp, nil
}

// Trend returns the income-vs-expense current/previous cycle points.
func (s *analyticsService) Trend(ctx context.Context, userID string, cycleID string) (*dto.TrendResponse, error) {
	insights, err := s.computeInsights(ctx, userID, cycleID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToTrendResponse(analytics.ComputeIncomeExpenseTrend(insights))
	return &resp, nil
}

// computeInsights derives this-cycle and previous-cycle totals. Without a
// concrete cycle there is no "previous" to compare against, so the result is
// nil and the trend degrades to zero points.
func (s *analyticsService) computeInsights(ctx context.Context, userID, cycleID string) (*domain.CycleInsights, error) {
	if cycleID == "" || cycleID == domain.CycleAll {
		return nil, nil
	}
	cycle, err := s.cycleRepo.FindBillingCycleByID(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load billing cycle: %w", err)
	}
	if cycle.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	cycles, err := s.cycleRepo.FindBillingCyclesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load billing cycles: %w", err)
	}

	txns, err := s.transactionRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	now := time.Now()
	current := analytics.ComputeTotals(filtering.Apply(txns, filtering.NewFilterState(), filtering.ResolveCycleWindow(cycle, now)))

	insights := &domain.CycleInsights{
		CurrentIncome:   current.TotalIncome,
		CurrentExpenses: current.TotalExpenses,
	}

	if prev := previousCycle(cycles, *cycle); prev != nil {
		previous := analytics.ComputeTotals(filtering.Apply(txns, filtering.NewFilterState(), filtering.ResolveCycleWindow(prev, now)))
		insights.PreviousIncome = previous.TotalIncome
		insights.PreviousExpenses = previous.TotalExpenses
	}
	return insights, nil
}

// previousCycle finds the latest cycle starting before the given one.
func previousCycle(cycles []domain.BillingCycle, current domain.BillingCycle) *domain.BillingCycle {
	var prev *domain.BillingCycle
	for i := range cycles {
		c := &cycles[i]
		if c.CycleID == current.CycleID || !c.StartDate.Before(current.StartDate) {
			continue
		}
		if prev == nil || c.StartDate.After(prev.StartDate) {
			prev = c
		}
	}
	return prev
}

// CategoryBreakdown buckets cycle-scoped expenses by category.
func (s *analyticsService) CategoryBreakdown(ctx context.Context, userID string, cycleID string) (*dto.CategoryBreakdownResponse, error) {
	txns, err := s.cycleScoped(ctx, userID, cycleID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindCategoriesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load categories", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	resp := dto.ToCategoryBreakdownResponse(analytics.BreakdownByCategory(txns, categories))
	return &resp, nil
}

// FundProgress ranks the user's savings funds by goal progress.
func (s *analyticsService) FundProgress(ctx context.Context, userID string) (*dto.FundProgressResponse, error) {
	funds, err := s.fundRepo.FindSavingsFundsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load savings funds", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load savings funds: %w", err)
	}
	resp := dto.ToFundProgressResponse(analytics.RankFundProgress(funds))
	return &resp, nil
}

// InstallmentProjections projects remaining balances of active installments.
func (s *analyticsService) InstallmentProjections(ctx context.Context, userID string) (*dto.InstallmentProjectionResponse, error) {
	txns, err := s.transactionRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	resp := dto.ToInstallmentProjectionResponse(analytics.ProjectInstallments(txns, time.Now()))
	return &resp, nil
}
