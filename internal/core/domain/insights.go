package domain

import "github.com/shopspring/decimal"

// CycleInsights holds pre-computed income/expense totals for the selected
// cycle and the one before it. It feeds the income-vs-expense trend chart;
// when absent, the trend degrades to zero-valued points.
type CycleInsights struct {
	CurrentIncome    decimal.Decimal `json:"currentIncome"`
	PreviousIncome   decimal.Decimal `json:"previousIncome"`
	CurrentExpenses  decimal.Decimal `json:"currentExpenses"`
	PreviousExpenses decimal.Decimal `json:"previousExpenses"`
}
