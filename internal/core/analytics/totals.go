package analytics

import (
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Totals summarises a transaction sequence. Deposits and withdrawals are
// internal transfers into/out of savings funds and count toward neither
// income nor expenses.
type Totals struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// ComputeTotals sums income and expense amounts and derives the balance.
// Empty input yields zero-valued totals, never an error.
func ComputeTotals(txns []domain.Transaction) Totals {
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case domain.Income:
			totalIncome = totalIncome.Add(txn.Amount)
		case domain.Expense:
			totalExpenses = totalExpenses.Add(txn.Amount)
		}
	}
	return Totals{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Balance:       totalIncome.Sub(totalExpenses),
	}
}
