package analytics

import (
	"sort"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotal is one bucket of the expense breakdown chart.
type CategoryTotal struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
}

// BreakdownByCategory groups expense transactions by category and sums the
// amounts per group, largest first. Category names come from the reference
// lookup; a bucket whose category was deleted falls back to the raw ID.
func BreakdownByCategory(txns []domain.Transaction, categories []domain.Category) []CategoryTotal {
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.CategoryID] = cat.Name
	}

	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0) // first-appearance order keeps the result deterministic
	for _, txn := range txns {
		if txn.Type != domain.Expense {
			continue
		}
		if _, seen := sums[txn.CategoryID]; !seen {
			order = append(order, txn.CategoryID)
		}
		sums[txn.CategoryID] = sums[txn.CategoryID].Add(txn.Amount)
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		name, ok := names[id]
		if !ok {
			name = id
		}
		result = append(result, CategoryTotal{CategoryID: id, Name: name, Amount: sums[id]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount.GreaterThan(result[j].Amount)
	})
	return result
}
