package filtering

import "time"

// TypeFilter selects which transaction types a list view shows.
type TypeFilter string

const (
	TypeAll     TypeFilter = "all"
	TypeIncome  TypeFilter = "income"
	TypeExpense TypeFilter = "expense"
	TypeSavings TypeFilter = "savings" // Matches both deposits and withdrawals
)

// DateRange is an optional explicit date filter. Either bound may be zero,
// meaning no constraint on that side. From is interpreted at local midnight,
// To at local end of day; both inclusive.
type DateRange struct {
	From time.Time
	To   time.Time
}

// FilterState holds the user-selected filter predicate set for one view.
// The zero value of each field means "no constraint", except Categories:
// a nil Categories map means "all", while a non-nil empty map is an explicit
// empty selection and matches nothing. The selection is passed through
// literally, never coerced to "all".
type FilterState struct {
	SearchTerm   string
	SelectedType TypeFilter
	Categories   map[string]bool // nil = all; keys are selected category IDs
	DateRange    *DateRange
}

// NewFilterState returns a filter state with every field at its default.
func NewFilterState() FilterState {
	return FilterState{SelectedType: TypeAll}
}

// WithSearchTerm returns a copy with only the search term replaced.
func (f FilterState) WithSearchTerm(term string) FilterState {
	f.SearchTerm = term
	return f
}

// WithType returns a copy with only the type selection replaced.
func (f FilterState) WithType(t TypeFilter) FilterState {
	f.SelectedType = t
	return f
}

// WithCategories returns a copy with only the category selection replaced.
// Pass nil to select all categories.
func (f FilterState) WithCategories(ids []string) FilterState {
	if ids == nil {
		f.Categories = nil
		return f
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	f.Categories = set
	return f
}

// WithDateRange returns a copy with only the date range replaced.
func (f FilterState) WithDateRange(r *DateRange) FilterState {
	f.DateRange = r
	return f
}

// Clear resets all filter fields to their defaults.
func (f FilterState) Clear() FilterState {
	return NewFilterState()
}

// IsActive reports whether any filter diverges from its default: a non-empty
// search term, a type other than "all", an explicit non-empty category
// selection, or a date range with a From bound.
func (f FilterState) IsActive() bool {
	if f.SearchTerm != "" {
		return true
	}
	if f.SelectedType != "" && f.SelectedType != TypeAll {
		return true
	}
	if f.Categories != nil && len(f.Categories) > 0 {
		return true
	}
	if f.DateRange != nil && !f.DateRange.From.IsZero() {
		return true
	}
	return false
}
