package analytics_test

import (
	"testing"
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/core/analytics"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catTxn(txnType domain.TransactionType, amount float64, categoryID string) domain.Transaction {
	t := txn(txnType, amount, day(2024, time.April, 1), categoryID)
	t.CategoryID = categoryID
	return t
}

func TestBreakdownByCategory(t *testing.T) {
	txns := []domain.Transaction{
		catTxn(domain.Expense, 30, "cat-food"),
		catTxn(domain.Expense, 70, "cat-rent"),
		catTxn(domain.Expense, 20, "cat-food"),
		catTxn(domain.Income, 999, "cat-salary"),
		catTxn(domain.Deposit, 100, "cat-fund"),
	}
	categories := []domain.Category{
		{CategoryID: "cat-food", Name: "Food"},
		{CategoryID: "cat-rent", Name: "Rent"},
	}

	result := analytics.BreakdownByCategory(txns, categories)

	require.Len(t, result, 2)
	assert.Equal(t, "Rent", result[0].Name)
	assert.True(t, decimal.NewFromInt(70).Equal(result[0].Amount))
	assert.Equal(t, "Food", result[1].Name)
	assert.True(t, decimal.NewFromInt(50).Equal(result[1].Amount))
}

func TestBreakdownByCategory_FallsBackToRawIDForDeletedCategory(t *testing.T) {
	txns := []domain.Transaction{
		catTxn(domain.Expense, 10, "cat-gone"),
	}

	result := analytics.BreakdownByCategory(txns, nil)

	require.Len(t, result, 1)
	assert.Equal(t, "cat-gone", result[0].Name)
	assert.Equal(t, "cat-gone", result[0].CategoryID)
}

func TestBreakdownByCategory_EmptyInput(t *testing.T) {
	assert.Empty(t, analytics.BreakdownByCategory(nil, nil))
}
