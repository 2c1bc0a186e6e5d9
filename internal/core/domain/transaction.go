package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a financial record.
type TransactionType string

const (
	Income     TransactionType = "INCOME"
	Expense    TransactionType = "EXPENSE"
	Deposit    TransactionType = "DEPOSIT"    // Transfer into a savings fund
	Withdrawal TransactionType = "WITHDRAWAL" // Transfer out of a savings fund
)

// InstallmentInfo describes a purchase whose cost is spread over several
// monthly periods.
type InstallmentInfo struct {
	TotalCount      int             `json:"totalCount"`      // Number of periods (Not Null, >= 1)
	AmountPerPeriod decimal.Decimal `json:"amountPerPeriod"` // Charge per period
}

// Transaction represents a single financial record owned by one user.
// Deposits and withdrawals are internal transfers against savings funds and
// are excluded from income/expense totals.
type Transaction struct {
	TransactionID   string           `json:"transactionID"`             // Primary Key (e.g., UUID)
	UserID          string           `json:"userID"`                    // FK -> User.userID (Not Null)
	Type            TransactionType  `json:"type"`                      // INCOME, EXPENSE, DEPOSIT or WITHDRAWAL
	Amount          decimal.Decimal  `json:"amount"`                    // Non-negative; precise decimal type
	Date            time.Time        `json:"date"`                      // Instant the record applies to
	Description     string           `json:"description"`               // Free text, search target
	CategoryID      string           `json:"categoryID"`                // FK -> Category.categoryID
	PaymentMethodID *string          `json:"paymentMethodID,omitempty"` // Nullable
	Installments    *InstallmentInfo `json:"installments,omitempty"`    // Present only for installment purchases
	AuditFields
}

// IsSavingsTransfer reports whether the transaction moves money into or out
// of a savings fund rather than representing income or expense.
func (t Transaction) IsSavingsTransfer() bool {
	return t.Type == Deposit || t.Type == Withdrawal
}
