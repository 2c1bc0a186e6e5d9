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

func installmentTxn(id string, date time.Time, totalCount int, perPeriod float64) domain.Transaction {
	t := txn(domain.Expense, perPeriod*float64(totalCount), date, "cat")
	t.TransactionID = id
	t.Installments = &domain.InstallmentInfo{
		TotalCount:      totalCount,
		AmountPerPeriod: decimal.NewFromFloat(perPeriod),
	}
	return t
}

func TestProjectInstallments(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	txns := []domain.Transaction{
		// Bought mid-March, 12 periods of 100: 3 elapsed by mid-June.
		installmentTxn("tv", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local), 12, 100),
		txn(domain.Expense, 50, now, "cat"), // no installment info, skipped
	}

	result := analytics.ProjectInstallments(txns, now)

	require.Len(t, result, 1)
	proj := result[0]
	assert.Equal(t, "tv", proj.TransactionID)
	assert.Equal(t, 3, proj.PeriodsElapsed)
	assert.Equal(t, 9, proj.PeriodsRemaining)
	assert.True(t, decimal.NewFromInt(900).Equal(proj.RemainingBalance))
}

func TestProjectInstallments_DayOfMonthNotReachedYet(t *testing.T) {
	now := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.Local)
	txns := []domain.Transaction{
		installmentTxn("phone", time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local), 6, 50),
	}

	result := analytics.ProjectInstallments(txns, now)

	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].PeriodsElapsed)
	assert.Equal(t, 4, result[0].PeriodsRemaining)
}

func TestProjectInstallments_FullyPaidExcluded(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	txns := []domain.Transaction{
		installmentTxn("old", time.Date(2023, time.January, 1, 0, 0, 0, 0, time.Local), 3, 10),
	}

	assert.Empty(t, analytics.ProjectInstallments(txns, now))
}

func TestProjectInstallments_FutureDatedPurchaseHasNothingElapsed(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	txns := []domain.Transaction{
		installmentTxn("preorder", time.Date(2024, time.August, 1, 0, 0, 0, 0, time.Local), 4, 25),
	}

	result := analytics.ProjectInstallments(txns, now)

	require.Len(t, result, 1)
	assert.Equal(t, 0, result[0].PeriodsElapsed)
	assert.Equal(t, 4, result[0].PeriodsRemaining)
	assert.True(t, decimal.NewFromInt(100).Equal(result[0].RemainingBalance))
}
