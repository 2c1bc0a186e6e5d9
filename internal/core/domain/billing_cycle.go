package domain

import "time"

// CycleAll is the sentinel cycle ID meaning "no cycle scoping".
const CycleAll = "all"

// BillingCycle bounds which transactions count toward a given set of totals.
// A nil EndDate means the cycle is currently open and extends to now.
type BillingCycle struct {
	CycleID   string     `json:"cycleID"` // Primary Key (e.g., UUID) or the "all" sentinel
	UserID    string     `json:"userID"`  // FK -> User.userID (Not Null)
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"` // Nullable; absent while the cycle is open
	AuditFields
}

// IsOpen reports whether the cycle has no end date yet.
func (c BillingCycle) IsOpen() bool {
	return c.EndDate == nil
}
