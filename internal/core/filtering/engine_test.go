package filtering_test

import (
	"testing"
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/PFTrackr/fin_tracker_app/internal/core/filtering"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id string, txnType domain.TransactionType, amount float64, date time.Time, description, categoryID string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		UserID:        "user-1",
		Type:          txnType,
		Amount:        decimal.NewFromFloat(amount),
		Date:          date,
		Description:   description,
		CategoryID:    categoryID,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestApply_NoFiltersReturnsAllSortedByDateDescending(t *testing.T) {
	txns := []domain.Transaction{
		txn("a", domain.Expense, 100, day(2024, time.January, 5), "groceries", "cat-food"),
		txn("b", domain.Income, 500, day(2024, time.January, 10), "salary", "cat-salary"),
		txn("c", domain.Expense, 50, day(2024, time.February, 1), "bus", "cat-transport"),
	}

	result := filtering.Apply(txns, filtering.NewFilterState(), nil)

	require.Len(t, result, 3)
	assert.Equal(t, "c", result[0].TransactionID)
	assert.Equal(t, "b", result[1].TransactionID)
	assert.Equal(t, "a", result[2].TransactionID)
}

func TestApply_StableOrderOnEqualDates(t *testing.T) {
	sameDay := day(2024, time.March, 3)
	txns := []domain.Transaction{
		txn("first", domain.Expense, 10, sameDay, "one", "cat"),
		txn("second", domain.Expense, 20, sameDay, "two", "cat"),
		txn("third", domain.Expense, 30, sameDay, "three", "cat"),
	}

	result := filtering.Apply(txns, filtering.NewFilterState(), nil)

	require.Len(t, result, 3)
	assert.Equal(t, "first", result[0].TransactionID)
	assert.Equal(t, "second", result[1].TransactionID)
	assert.Equal(t, "third", result[2].TransactionID)
}

func TestApply_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	txns := []domain.Transaction{
		txn("a", domain.Expense, 3, day(2024, time.May, 1), "Café con leche", "cat"),
		txn("b", domain.Expense, 40, day(2024, time.May, 2), "Supermercado", "cat"),
	}

	state := filtering.NewFilterState().WithSearchTerm("café")
	result := filtering.Apply(txns, state, nil)

	require.Len(t, result, 1)
	assert.Equal(t, "a", result[0].TransactionID)
}

func TestApply_SearchIgnoresDiacritics(t *testing.T) {
	// An unaccented term must find accented descriptions, in either direction.
	txns := []domain.Transaction{
		txn("a", domain.Expense, 3, day(2024, time.May, 1), "Café con leche", "cat"),
		txn("b", domain.Expense, 40, day(2024, time.May, 2), "Supermercado", "cat"),
	}

	result := filtering.Apply(txns, filtering.NewFilterState().WithSearchTerm("cafe"), nil)
	require.Len(t, result, 1)
	assert.Equal(t, "a", result[0].TransactionID)

	txns[0].Description = "Cafe con leche"
	result = filtering.Apply(txns, filtering.NewFilterState().WithSearchTerm("café"), nil)
	require.Len(t, result, 1)
	assert.Equal(t, "a", result[0].TransactionID)
}

func TestApply_TypeSavingsMatchesDepositsAndWithdrawals(t *testing.T) {
	txns := []domain.Transaction{
		txn("dep", domain.Deposit, 100, day(2024, time.May, 1), "to vacation fund", "cat"),
		txn("wit", domain.Withdrawal, 50, day(2024, time.May, 2), "from vacation fund", "cat"),
		txn("exp", domain.Expense, 20, day(2024, time.May, 3), "coffee", "cat"),
		txn("inc", domain.Income, 900, day(2024, time.May, 4), "salary", "cat"),
	}

	result := filtering.Apply(txns, filtering.NewFilterState().WithType(filtering.TypeSavings), nil)

	require.Len(t, result, 2)
	assert.Equal(t, "wit", result[0].TransactionID)
	assert.Equal(t, "dep", result[1].TransactionID)
}

func TestApply_ExplicitEmptyCategorySetMatchesNothing(t *testing.T) {
	// An explicit empty selection is passed through literally; it is not a
	// shorthand for "all". Easy to confuse in the UI, covered here on purpose.
	txns := []domain.Transaction{
		txn("a", domain.Expense, 10, day(2024, time.May, 1), "coffee", "cat-food"),
	}

	result := filtering.Apply(txns, filtering.NewFilterState().WithCategories([]string{}), nil)
	assert.Empty(t, result)

	result = filtering.Apply(txns, filtering.NewFilterState().WithCategories(nil), nil)
	assert.Len(t, result, 1)
}

func TestApply_CategoryMembership(t *testing.T) {
	txns := []domain.Transaction{
		txn("a", domain.Expense, 10, day(2024, time.May, 1), "coffee", "cat-food"),
		txn("b", domain.Expense, 20, day(2024, time.May, 2), "bus", "cat-transport"),
		txn("c", domain.Expense, 30, day(2024, time.May, 3), "cinema", "cat-leisure"),
	}

	state := filtering.NewFilterState().WithCategories([]string{"cat-food", "cat-leisure"})
	result := filtering.Apply(txns, state, nil)

	require.Len(t, result, 2)
	assert.Equal(t, "c", result[0].TransactionID)
	assert.Equal(t, "a", result[1].TransactionID)
}

func TestApply_DateRangeBoundsAreInclusiveWholeDays(t *testing.T) {
	txns := []domain.Transaction{
		txn("before", domain.Expense, 1, time.Date(2024, time.May, 9, 23, 59, 0, 0, time.Local), "x", "cat"),
		txn("fromEdge", domain.Expense, 2, time.Date(2024, time.May, 10, 0, 0, 0, 0, time.Local), "x", "cat"),
		txn("toEdge", domain.Expense, 3, time.Date(2024, time.May, 12, 23, 59, 59, 0, time.Local), "x", "cat"),
		txn("after", domain.Expense, 4, time.Date(2024, time.May, 13, 0, 0, 0, 0, time.Local), "x", "cat"),
	}

	state := filtering.NewFilterState().WithDateRange(&filtering.DateRange{
		From: day(2024, time.May, 10),
		To:   day(2024, time.May, 12),
	})
	result := filtering.Apply(txns, state, nil)

	require.Len(t, result, 2)
	assert.Equal(t, "toEdge", result[0].TransactionID)
	assert.Equal(t, "fromEdge", result[1].TransactionID)
}

func TestApply_OpenEndedDateRange(t *testing.T) {
	txns := []domain.Transaction{
		txn("old", domain.Expense, 1, day(2024, time.January, 1), "x", "cat"),
		txn("new", domain.Expense, 2, day(2024, time.June, 1), "x", "cat"),
	}

	fromOnly := filtering.NewFilterState().WithDateRange(&filtering.DateRange{From: day(2024, time.March, 1)})
	result := filtering.Apply(txns, fromOnly, nil)
	require.Len(t, result, 1)
	assert.Equal(t, "new", result[0].TransactionID)

	toOnly := filtering.NewFilterState().WithDateRange(&filtering.DateRange{To: day(2024, time.March, 1)})
	result = filtering.Apply(txns, toOnly, nil)
	require.Len(t, result, 1)
	assert.Equal(t, "old", result[0].TransactionID)
}

func TestApply_CycleWindowScoping(t *testing.T) {
	txns := []domain.Transaction{
		txn("a", domain.Expense, 100, day(2024, time.January, 5), "groceries", "cat"),
		txn("b", domain.Income, 500, day(2024, time.January, 10), "salary", "cat"),
		txn("c", domain.Expense, 50, day(2024, time.February, 1), "bus", "cat"),
	}
	end := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)
	cycle := &domain.BillingCycle{
		CycleID:   "cycle-jan",
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local),
		EndDate:   &end,
	}
	window := filtering.ResolveCycleWindow(cycle, time.Now())

	result := filtering.Apply(txns, filtering.NewFilterState(), window)

	require.Len(t, result, 2)
	assert.Equal(t, "b", result[0].TransactionID)
	assert.Equal(t, "a", result[1].TransactionID)
}

func TestApply_Idempotent(t *testing.T) {
	txns := []domain.Transaction{
		txn("a", domain.Expense, 10, day(2024, time.May, 1), "coffee to go", "cat-food"),
		txn("b", domain.Income, 20, day(2024, time.May, 2), "refund coffee", "cat-food"),
		txn("c", domain.Expense, 30, day(2024, time.May, 3), "bus", "cat-transport"),
	}
	state := filtering.NewFilterState().WithSearchTerm("coffee")

	once := filtering.Apply(txns, state, nil)
	twice := filtering.Apply(once, state, nil)

	assert.Equal(t, once, twice)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	txns := []domain.Transaction{
		txn("a", domain.Expense, 1, day(2024, time.May, 1), "x", "cat"),
		txn("b", domain.Expense, 2, day(2024, time.May, 2), "x", "cat"),
	}

	_ = filtering.Apply(txns, filtering.NewFilterState(), nil)

	assert.Equal(t, "a", txns[0].TransactionID)
	assert.Equal(t, "b", txns[1].TransactionID)
}
