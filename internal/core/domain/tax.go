package domain

import "github.com/shopspring/decimal"

// RecurringTax is a fixed obligation due every month on a given day.
type RecurringTax struct {
	TaxID  string          `json:"taxID"`  // Primary Key (e.g., UUID)
	UserID string          `json:"userID"` // FK -> User.userID (Not Null)
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	DueDay int             `json:"dueDay"` // Day of month the tax is due (1-31)
	AuditFields
}
