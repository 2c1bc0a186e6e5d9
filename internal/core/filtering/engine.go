package filtering

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
)

// Apply filters a transaction collection against a filter state snapshot and
// an optional cycle window, then sorts the result by date descending. Ties
// keep their original relative order (stable sort; no secondary key is
// defined). The input slice is never modified; Apply is a pure function.
func Apply(txns []domain.Transaction, state FilterState, window *DateWindow) []domain.Transaction {
	result := make([]domain.Transaction, 0, len(txns))
	search := normalizeSearchText(state.SearchTerm)
	for _, txn := range txns {
		if !matchesSearch(txn, search) {
			continue
		}
		if !matchesType(txn, state.SelectedType) {
			continue
		}
		if !matchesCategory(txn, state.Categories) {
			continue
		}
		if !matchesDateRange(txn, state.DateRange) {
			continue
		}
		if window != nil && !window.Contains(txn.Date) {
			continue
		}
		result = append(result, txn)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}

// matchesSearch does a substring match on the normalized description, so
// "cafe" finds "Café con leche". An empty term matches everything. The term
// must already be normalized.
func matchesSearch(txn domain.Transaction, normTerm string) bool {
	if normTerm == "" {
		return true
	}
	return strings.Contains(normalizeSearchText(txn.Description), normTerm)
}

// normalizeSearchText lowercases and strips combining diacritical marks, so
// accented and unaccented spellings compare equal.
func normalizeSearchText(s string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

func matchesType(txn domain.Transaction, selected TypeFilter) bool {
	switch selected {
	case "", TypeAll:
		return true
	case TypeIncome:
		return txn.Type == domain.Income
	case TypeExpense:
		return txn.Type == domain.Expense
	case TypeSavings:
		return txn.IsSavingsTransfer()
	default:
		return false
	}
}

// matchesCategory passes the selection through literally: nil means all,
// while a non-nil empty set matches nothing. Callers that want "no category
// filter" must pass nil, not an empty set.
func matchesCategory(txn domain.Transaction, selected map[string]bool) bool {
	if selected == nil {
		return true
	}
	return selected[txn.CategoryID]
}

// matchesDateRange checks the explicit date filter: From is anchored at local
// midnight, To at local end of day, both bounds inclusive. An absent bound
// imposes no constraint on its side.
func matchesDateRange(txn domain.Transaction, r *DateRange) bool {
	if r == nil {
		return true
	}
	if !r.From.IsZero() {
		if txn.Date.Before(startOfDay(r.From)) {
			return false
		}
	}
	if !r.To.IsZero() {
		if txn.Date.After(endOfDay(r.To)) {
			return false
		}
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
