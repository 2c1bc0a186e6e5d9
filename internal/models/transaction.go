package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row of the transactions table.
// Installment columns are null for ordinary records.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	Type            string          `db:"type"` // INCOME, EXPENSE, DEPOSIT, WITHDRAWAL
	Amount          decimal.Decimal `db:"amount"`
	Date            time.Time       `db:"date"`
	Description     string          `db:"description"`
	CategoryID      string          `db:"category_id"`
	PaymentMethodID sql.NullString  `db:"payment_method_id"`

	InstallmentCount     sql.NullInt32       `db:"installment_count"`
	InstallmentPerPeriod decimal.NullDecimal `db:"installment_per_period"`

	AuditFields
}
