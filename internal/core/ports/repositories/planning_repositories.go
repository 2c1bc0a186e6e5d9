package repositories

import (
	"context"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillingCycleRepositoryFacade defines operations for billing cycle data
type BillingCycleRepositoryFacade interface {
	// FindBillingCycleByID retrieves a specific billing cycle by its ID.
	FindBillingCycleByID(ctx context.Context, cycleID string) (*domain.BillingCycle, error)

	// FindBillingCyclesByUser retrieves all billing cycles owned by a user,
	// most recent start date first.
	FindBillingCyclesByUser(ctx context.Context, userID string) ([]domain.BillingCycle, error)

	// SaveBillingCycle persists a new billing cycle.
	SaveBillingCycle(ctx context.Context, cycle domain.BillingCycle) error

	// UpdateBillingCycle updates an existing billing cycle.
	UpdateBillingCycle(ctx context.Context, cycle domain.BillingCycle) error

	// DeleteBillingCycle removes a billing cycle permanently.
	DeleteBillingCycle(ctx context.Context, cycleID string) error
}

// SavingsFundRepositoryFacade defines operations for savings fund data
type SavingsFundRepositoryFacade interface {
	// FindSavingsFundByID retrieves a specific savings fund by its ID.
	FindSavingsFundByID(ctx context.Context, fundID string) (*domain.SavingsFund, error)

	// FindSavingsFundsByUser retrieves all savings funds owned by a user.
	FindSavingsFundsByUser(ctx context.Context, userID string) ([]domain.SavingsFund, error)

	// SaveSavingsFund persists a new savings fund.
	SaveSavingsFund(ctx context.Context, fund domain.SavingsFund) error

	// UpdateSavingsFund updates an existing savings fund.
	UpdateSavingsFund(ctx context.Context, fund domain.SavingsFund) error

	// AdjustSavingsFundAmount applies a signed delta to a fund's current amount.
	AdjustSavingsFundAmount(ctx context.Context, fundID string, delta decimal.Decimal) error

	// DeleteSavingsFund removes a savings fund permanently.
	DeleteSavingsFund(ctx context.Context, fundID string) error
}

// RecurringTaxRepositoryFacade defines operations for recurring tax data
type RecurringTaxRepositoryFacade interface {
	// FindRecurringTaxByID retrieves a specific recurring tax by its ID.
	FindRecurringTaxByID(ctx context.Context, taxID string) (*domain.RecurringTax, error)

	// FindRecurringTaxesByUser retrieves all recurring taxes owned by a user.
	FindRecurringTaxesByUser(ctx context.Context, userID string) ([]domain.RecurringTax, error)

	// SaveRecurringTax persists a new recurring tax.
	SaveRecurringTax(ctx context.Context, tax domain.RecurringTax) error

	// UpdateRecurringTax updates an existing recurring tax.
	UpdateRecurringTax(ctx context.Context, tax domain.RecurringTax) error

	// DeleteRecurringTax removes a recurring tax permanently.
	DeleteRecurringTax(ctx context.Context, taxID string) error
}
