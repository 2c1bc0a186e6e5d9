package analytics_test

import (
	"testing"
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/core/analytics"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func txn(txnType domain.TransactionType, amount float64, date time.Time, categoryID string) domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-" + string(txnType),
		UserID:        "user-1",
		Type:          txnType,
		Amount:        decimal.NewFromFloat(amount),
		Date:          date,
		CategoryID:    categoryID,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestComputeTotals(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Expense, 100, day(2024, time.January, 5), "cat"),
		txn(domain.Income, 500, day(2024, time.January, 10), "cat"),
	}

	totals := analytics.ComputeTotals(txns)

	assert.True(t, decimal.NewFromInt(500).Equal(totals.TotalIncome))
	assert.True(t, decimal.NewFromInt(100).Equal(totals.TotalExpenses))
	assert.True(t, decimal.NewFromInt(400).Equal(totals.Balance))
}

func TestComputeTotals_ExcludesSavingsTransfers(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Income, 500, day(2024, time.January, 1), "cat"),
		txn(domain.Expense, 100, day(2024, time.January, 2), "cat"),
		txn(domain.Deposit, 300, day(2024, time.January, 3), "cat"),
		txn(domain.Withdrawal, 50, day(2024, time.January, 4), "cat"),
	}

	totals := analytics.ComputeTotals(txns)

	assert.True(t, decimal.NewFromInt(500).Equal(totals.TotalIncome))
	assert.True(t, decimal.NewFromInt(100).Equal(totals.TotalExpenses))
	assert.True(t, decimal.NewFromInt(400).Equal(totals.Balance))
}

func TestComputeTotals_EmptyInput(t *testing.T) {
	totals := analytics.ComputeTotals(nil)

	assert.True(t, totals.TotalIncome.IsZero())
	assert.True(t, totals.TotalExpenses.IsZero())
	assert.True(t, totals.Balance.IsZero())
}

func TestComputeTotals_BalanceInvariant(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.Income, 123.45, day(2024, time.March, 1), "cat"),
		txn(domain.Expense, 67.89, day(2024, time.March, 2), "cat"),
		txn(domain.Income, 10.01, day(2024, time.March, 3), "cat"),
	}

	totals := analytics.ComputeTotals(txns)

	assert.True(t, totals.TotalIncome.Sub(totals.TotalExpenses).Equal(totals.Balance))
}
