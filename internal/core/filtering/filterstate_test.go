package filtering_test

import (
	"testing"
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/core/filtering"
	"github.com/stretchr/testify/assert"
)

func TestFilterState_SettersReplaceExactlyOneField(t *testing.T) {
	base := filtering.NewFilterState().
		WithSearchTerm("rent").
		WithType(filtering.TypeExpense).
		WithCategories([]string{"cat-home"})

	updated := base.WithSearchTerm("food")

	assert.Equal(t, "food", updated.SearchTerm)
	assert.Equal(t, filtering.TypeExpense, updated.SelectedType)
	assert.Equal(t, map[string]bool{"cat-home": true}, updated.Categories)
	// The original snapshot is untouched; updates are value-semantics copies.
	assert.Equal(t, "rent", base.SearchTerm)
}

func TestFilterState_ClearResetsToDefaults(t *testing.T) {
	state := filtering.NewFilterState().
		WithSearchTerm("rent").
		WithType(filtering.TypeSavings).
		WithCategories([]string{"cat-a"}).
		WithDateRange(&filtering.DateRange{From: time.Now()})

	cleared := state.Clear()

	assert.Equal(t, "", cleared.SearchTerm)
	assert.Equal(t, filtering.TypeAll, cleared.SelectedType)
	assert.Nil(t, cleared.Categories)
	assert.Nil(t, cleared.DateRange)
	assert.False(t, cleared.IsActive())
}

func TestFilterState_IsActive(t *testing.T) {
	tests := []struct {
		name   string
		state  filtering.FilterState
		active bool
	}{
		{"defaults", filtering.NewFilterState(), false},
		{"search term", filtering.NewFilterState().WithSearchTerm("x"), true},
		{"type selection", filtering.NewFilterState().WithType(filtering.TypeIncome), true},
		{"explicit categories", filtering.NewFilterState().WithCategories([]string{"cat"}), true},
		// An explicit empty set filters (it matches nothing) but does not
		// count as "active"; it mirrors how the selection widget reports it.
		{"explicit empty categories", filtering.NewFilterState().WithCategories([]string{}), false},
		{"date range with from", filtering.NewFilterState().WithDateRange(&filtering.DateRange{From: time.Now()}), true},
		{"date range without from", filtering.NewFilterState().WithDateRange(&filtering.DateRange{To: time.Now()}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.active, tt.state.IsActive())
		})
	}
}
