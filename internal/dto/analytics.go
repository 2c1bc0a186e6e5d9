package dto

import (
	"github.com/PFTrackr/fin_tracker_app/internal/core/analytics"
	"github.com/shopspring/decimal"
)

// SummaryResponse carries the headline totals for the selected scope.
type SummaryResponse struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// DailyComparisonResponse compares today's expenses against yesterday's.
type DailyComparisonResponse struct {
	Today     decimal.Decimal `json:"today"`
	Yesterday decimal.Decimal `json:"yesterday"`
	HasData   bool            `json:"hasData"`
}

// TrendPointResponse is one measure of the cycle-over-cycle trend.
type TrendPointResponse struct {
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
}

// TrendResponse carries the income and expense trend points.
type TrendResponse struct {
	Income  TrendPointResponse `json:"income"`
	Expense TrendPointResponse `json:"expense"`
}

// CategoryBreakdownResponse carries the per-category expense buckets.
type CategoryBreakdownResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
}

// CategoryTotalResponse is one bucket of the category breakdown.
type CategoryTotalResponse struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
}

// FundProgressResponse carries ranked savings fund progress bars.
type FundProgressResponse struct {
	Funds []FundProgressItemResponse `json:"funds"`
}

// FundProgressItemResponse is one fund's progress.
type FundProgressItemResponse struct {
	FundID        string          `json:"fundID"`
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	Progress      float64         `json:"progress"`
	IsCompleted   bool            `json:"isCompleted"`
}

// InstallmentProjectionResponse carries remaining-balance projections.
type InstallmentProjectionResponse struct {
	Installments []InstallmentProjectionItemResponse `json:"installments"`
}

// InstallmentProjectionItemResponse is one installment purchase's projection.
type InstallmentProjectionItemResponse struct {
	TransactionID    string          `json:"transactionID"`
	Description      string          `json:"description"`
	TotalCount       int             `json:"totalCount"`
	PeriodsElapsed   int             `json:"periodsElapsed"`
	PeriodsRemaining int             `json:"periodsRemaining"`
	AmountPerPeriod  decimal.Decimal `json:"amountPerPeriod"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// ToSummaryResponse converts core totals to the response DTO
func ToSummaryResponse(t analytics.Totals) SummaryResponse {
	return SummaryResponse{
		TotalIncome:   t.TotalIncome,
		TotalExpenses: t.TotalExpenses,
		Balance:       t.Balance,
	}
}

// ToDailyComparisonResponse converts the core comparison to the response DTO
func ToDailyComparisonResponse(c analytics.DailyExpenseComparison) DailyComparisonResponse {
	return DailyComparisonResponse{
		Today:     c.Today,
		Yesterday: c.Yesterday,
		HasData:   c.HasData,
	}
}

// ToTrendResponse converts the core trend to the response DTO
func ToTrendResponse(t analytics.IncomeExpenseTrend) TrendResponse {
	return TrendResponse{
		Income:  TrendPointResponse{Current: t.Income.Current, Previous: t.Income.Previous},
		Expense: TrendPointResponse{Current: t.Expense.Current, Previous: t.Expense.Previous},
	}
}

// ToCategoryBreakdownResponse converts core buckets to the response DTO
func ToCategoryBreakdownResponse(totals []analytics.CategoryTotal) CategoryBreakdownResponse {
	categories := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		categories[i] = CategoryTotalResponse{CategoryID: t.CategoryID, Name: t.Name, Amount: t.Amount}
	}
	return CategoryBreakdownResponse{Categories: categories}
}

// ToFundProgressResponse converts ranked core progress to the response DTO
func ToFundProgressResponse(progress []analytics.FundProgress) FundProgressResponse {
	funds := make([]FundProgressItemResponse, len(progress))
	for i, p := range progress {
		funds[i] = FundProgressItemResponse{
			FundID:        p.FundID,
			Name:          p.Name,
			CurrentAmount: p.CurrentAmount,
			TargetAmount:  p.TargetAmount,
			Progress:      p.Progress,
			IsCompleted:   p.IsCompleted,
		}
	}
	return FundProgressResponse{Funds: funds}
}

// ToInstallmentProjectionResponse converts core projections to the response DTO
func ToInstallmentProjectionResponse(projections []analytics.InstallmentProjection) InstallmentProjectionResponse {
	items := make([]InstallmentProjectionItemResponse, len(projections))
	for i, p := range projections {
		items[i] = InstallmentProjectionItemResponse{
			TransactionID:    p.TransactionID,
			Description:      p.Description,
			TotalCount:       p.TotalCount,
			PeriodsElapsed:   p.PeriodsElapsed,
			PeriodsRemaining: p.PeriodsRemaining,
			AmountPerPeriod:  p.AmountPerPeriod,
			RemainingBalance: p.RemainingBalance,
		}
	}
	return InstallmentProjectionResponse{Installments: items}
}
