package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsFund is a named savings goal with a target amount.
// CurrentAmount may exceed TargetAmount (completed state) and is never
// negative by construction; that is enforced by the mutation path, not here.
type SavingsFund struct {
	FundID        string          `json:"fundID"` // Primary Key (e.g., UUID)
	UserID        string          `json:"userID"` // FK -> User.userID (Not Null)
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`        // Must be > 0 for progress views
	TargetDate    *time.Time      `json:"targetDate,omitempty"` // Nullable
	AuditFields
}
