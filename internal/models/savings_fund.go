package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsFund represents a row of the savings_funds table.
type SavingsFund struct {
	FundID        string          `db:"fund_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	TargetDate    *time.Time      `db:"target_date"`
	AuditFields
}
