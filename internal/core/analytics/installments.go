package analytics

import (
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InstallmentProjection describes the remaining balance of one installment
// purchase as of a reference instant.
type InstallmentProjection struct {
	TransactionID    string          `json:"transactionID"`
	Description      string          `json:"description"`
	TotalCount       int             `json:"totalCount"`
	PeriodsElapsed   int             `json:"periodsElapsed"`
	PeriodsRemaining int             `json:"periodsRemaining"`
	AmountPerPeriod  decimal.Decimal `json:"amountPerPeriod"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// ProjectInstallments projects the remaining balance of every active
// installment-bearing transaction. Periods are calendar months counted from
// the purchase date; installments past their end contribute zero and are
// omitted from the result.
func ProjectInstallments(txns []domain.Transaction, now time.Time) []InstallmentProjection {
	result := make([]InstallmentProjection, 0)
	for _, txn := range txns {
		info := txn.Installments
		if info == nil || info.TotalCount < 1 {
			continue
		}
		elapsed := monthsBetween(txn.Date, now)
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed >= info.TotalCount {
			continue // fully paid
		}
		remaining := info.TotalCount - elapsed
		result = append(result, InstallmentProjection{
			TransactionID:    txn.TransactionID,
			Description:      txn.Description,
			TotalCount:       info.TotalCount,
			PeriodsElapsed:   elapsed,
			PeriodsRemaining: remaining,
			AmountPerPeriod:  info.AmountPerPeriod,
			RemainingBalance: info.AmountPerPeriod.Mul(decimal.NewFromInt(int64(remaining))),
		})
	}
	return result
}

// monthsBetween counts whole calendar months from a to b, adjusting down when
// the day of month in b has not reached the day in a yet.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}
