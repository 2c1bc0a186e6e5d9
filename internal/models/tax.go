package models

import "github.com/shopspring/decimal"

// RecurringTax represents a row of the recurring_taxes table.
type RecurringTax struct {
	TaxID  string          `db:"tax_id"`
	UserID string          `db:"user_id"`
	Name   string          `db:"name"`
	Amount decimal.Decimal `db:"amount"`
	DueDay int             `db:"due_day"`
	AuditFields
}
