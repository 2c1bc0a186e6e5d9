package analytics

import (
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DailyExpenseComparison holds expense sums for today and yesterday.
// HasData is false when both buckets are zero, so the caller can show a
// "no data" state instead of an all-zero bar.
type DailyExpenseComparison struct {
	Today     decimal.Decimal `json:"today"`
	Yesterday decimal.Decimal `json:"yesterday"`
	HasData   bool            `json:"hasData"`
}

// CompareDailyExpenses sums expense amounts dated today and yesterday.
// Day boundaries follow the calendar day in now's location; missing days
// zero-fill. Cross-timezone viewers may see a record land in an unexpected
// bucket; that follows the viewer's local clock on purpose.
func CompareDailyExpenses(txns []domain.Transaction, now time.Time) DailyExpenseComparison {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	tomorrowStart := todayStart.AddDate(0, 0, 1)

	today := decimal.Zero
	yesterday := decimal.Zero
	for _, txn := range txns {
		if txn.Type != domain.Expense {
			continue
		}
		d := txn.Date.In(now.Location())
		switch {
		case !d.Before(todayStart) && d.Before(tomorrowStart):
			today = today.Add(txn.Amount)
		case !d.Before(yesterdayStart) && d.Before(todayStart):
			yesterday = yesterday.Add(txn.Amount)
		}
	}

	return DailyExpenseComparison{
		Today:     today,
		Yesterday: yesterday,
		HasData:   !today.IsZero() || !yesterday.IsZero(),
	}
}
