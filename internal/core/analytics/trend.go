package analytics

import (
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrendPoint compares one measure across the selected cycle and the one
// before it.
type TrendPoint struct {
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
}

// IncomeExpenseTrend holds the two points of the cycle-over-cycle chart.
type IncomeExpenseTrend struct {
	Income  TrendPoint `json:"income"`
	Expense TrendPoint `json:"expense"`
}

// ComputeIncomeExpenseTrend builds the trend from pre-computed cycle
// insights. Absent insights degrade to zero-valued points.
func ComputeIncomeExpenseTrend(insights *domain.CycleInsights) IncomeExpenseTrend {
	if insights == nil {
		zero := TrendPoint{Current: decimal.Zero, Previous: decimal.Zero}
		return IncomeExpenseTrend{Income: zero, Expense: zero}
	}
	return IncomeExpenseTrend{
		Income:  TrendPoint{Current: insights.CurrentIncome, Previous: insights.PreviousIncome},
		Expense: TrendPoint{Current: insights.CurrentExpenses, Previous: insights.PreviousExpenses},
	}
}
