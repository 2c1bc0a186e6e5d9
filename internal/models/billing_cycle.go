package models

import "time"

// BillingCycle represents a row of the billing_cycles table.
type BillingCycle struct {
	CycleID   string     `db:"cycle_id"`
	UserID    string     `db:"user_id"`
	Name      string     `db:"name"`
	StartDate time.Time  `db:"start_date"`
	EndDate   *time.Time `db:"end_date"` // Null while the cycle is open
	AuditFields
}
