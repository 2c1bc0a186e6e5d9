package analytics_test

import (
	"testing"

	"github.com/PFTrackr/fin_tracker_app/internal/core/analytics"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeIncomeExpenseTrend(t *testing.T) {
	insights := &domain.CycleInsights{
		CurrentIncome:    decimal.NewFromInt(1200),
		PreviousIncome:   decimal.NewFromInt(1000),
		CurrentExpenses:  decimal.NewFromInt(800),
		PreviousExpenses: decimal.NewFromInt(950),
	}

	trend := analytics.ComputeIncomeExpenseTrend(insights)

	assert.True(t, decimal.NewFromInt(1200).Equal(trend.Income.Current))
	assert.True(t, decimal.NewFromInt(1000).Equal(trend.Income.Previous))
	assert.True(t, decimal.NewFromInt(800).Equal(trend.Expense.Current))
	assert.True(t, decimal.NewFromInt(950).Equal(trend.Expense.Previous))
}

func TestComputeIncomeExpenseTrend_MissingInsightsDefaultsToZero(t *testing.T) {
	trend := analytics.ComputeIncomeExpenseTrend(nil)

	assert.True(t, trend.Income.Current.IsZero())
	assert.True(t, trend.Income.Previous.IsZero())
	assert.True(t, trend.Expense.Current.IsZero())
	assert.True(t, trend.Expense.Previous.IsZero())
}
