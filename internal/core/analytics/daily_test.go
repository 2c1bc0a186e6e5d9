package analytics_test

import (
	"testing"
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/core/analytics"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompareDailyExpenses(t *testing.T) {
	now := time.Date(2024, time.June, 15, 14, 0, 0, 0, time.Local)
	txns := []domain.Transaction{
		txn(domain.Expense, 30, time.Date(2024, time.June, 15, 9, 0, 0, 0, time.Local), "cat"),
		txn(domain.Expense, 20, time.Date(2024, time.June, 15, 22, 30, 0, 0, time.Local), "cat"),
		txn(domain.Expense, 45, time.Date(2024, time.June, 14, 12, 0, 0, 0, time.Local), "cat"),
		txn(domain.Expense, 99, time.Date(2024, time.June, 13, 12, 0, 0, 0, time.Local), "cat"),
		txn(domain.Income, 500, time.Date(2024, time.June, 15, 10, 0, 0, 0, time.Local), "cat"),
	}

	cmp := analytics.CompareDailyExpenses(txns, now)

	assert.True(t, decimal.NewFromInt(50).Equal(cmp.Today))
	assert.True(t, decimal.NewFromInt(45).Equal(cmp.Yesterday))
	assert.True(t, cmp.HasData)
}

func TestCompareDailyExpenses_ZeroFillsMissingDay(t *testing.T) {
	now := time.Date(2024, time.June, 15, 14, 0, 0, 0, time.Local)
	txns := []domain.Transaction{
		txn(domain.Expense, 45, time.Date(2024, time.June, 14, 12, 0, 0, 0, time.Local), "cat"),
	}

	cmp := analytics.CompareDailyExpenses(txns, now)

	assert.True(t, cmp.Today.IsZero())
	assert.True(t, decimal.NewFromInt(45).Equal(cmp.Yesterday))
	assert.True(t, cmp.HasData)
}

func TestCompareDailyExpenses_NoDataWhenBothDaysEmpty(t *testing.T) {
	now := time.Date(2024, time.June, 15, 14, 0, 0, 0, time.Local)
	txns := []domain.Transaction{
		txn(domain.Expense, 99, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local), "cat"),
	}

	cmp := analytics.CompareDailyExpenses(txns, now)

	assert.True(t, cmp.Today.IsZero())
	assert.True(t, cmp.Yesterday.IsZero())
	assert.False(t, cmp.HasData)
}
