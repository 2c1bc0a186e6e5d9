package services

import (
	"context"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
)

// BillingCycleSvcFacade defines operations on billing cycles
type BillingCycleSvcFacade interface {
	// CreateBillingCycle opens a new billing cycle for the user.
	CreateBillingCycle(ctx context.Context, userID string, req dto.CreateBillingCycleRequest) (*domain.BillingCycle, error)

	// GetBillingCycleByID retrieves a cycle owned by the requesting user.
	// The "all" sentinel resolves to nil without a storage lookup.
	GetBillingCycleByID(ctx context.Context, cycleID string, requestingUserID string) (*domain.BillingCycle, error)

	// ListBillingCycles retrieves all cycles owned by the user.
	ListBillingCycles(ctx context.Context, userID string) ([]domain.BillingCycle, error)

	// UpdateBillingCycle updates a cycle owned by the requesting user.
	UpdateBillingCycle(ctx context.Context, cycleID string, req dto.UpdateBillingCycleRequest, requestingUserID string) (*domain.BillingCycle, error)

	// DeleteBillingCycle removes a cycle owned by the requesting user.
	DeleteBillingCycle(ctx context.Context, cycleID string, requestingUserID string) error
}

// SavingsFundSvcFacade defines operations on savings funds
type SavingsFundSvcFacade interface {
	// CreateSavingsFund creates a new savings goal for the user.
	CreateSavingsFund(ctx context.Context, userID string, req dto.CreateSavingsFundRequest) (*domain.SavingsFund, error)

	// ListSavingsFunds retrieves all funds owned by the user.
	ListSavingsFunds(ctx context.Context, userID string) ([]domain.SavingsFund, error)

	// UpdateSavingsFund updates a fund owned by the requesting user.
	UpdateSavingsFund(ctx context.Context, fundID string, req dto.UpdateSavingsFundRequest, requestingUserID string) (*domain.SavingsFund, error)

	// Deposit moves money into a fund, recording a DEPOSIT transaction.
	Deposit(ctx context.Context, fundID string, req dto.FundTransferRequest, requestingUserID string) (*domain.SavingsFund, error)

	// Withdraw moves money out of a fund, recording a WITHDRAWAL transaction.
	Withdraw(ctx context.Context, fundID string, req dto.FundTransferRequest, requestingUserID string) (*domain.SavingsFund, error)

	// DeleteSavingsFund removes a fund owned by the requesting user.
	DeleteSavingsFund(ctx context.Context, fundID string, requestingUserID string) error
}

// RecurringTaxSvcFacade defines operations on recurring taxes
type RecurringTaxSvcFacade interface {
	// CreateRecurringTax creates a new recurring tax for the user.
	CreateRecurringTax(ctx context.Context, userID string, req dto.CreateRecurringTaxRequest) (*domain.RecurringTax, error)

	// ListRecurringTaxes retrieves all recurring taxes owned by the user.
	ListRecurringTaxes(ctx context.Context, userID string) ([]domain.RecurringTax, error)

	// UpdateRecurringTax updates a tax owned by the requesting user.
	UpdateRecurringTax(ctx context.Context, taxID string, req dto.UpdateRecurringTaxRequest, requestingUserID string) (*domain.RecurringTax, error)

	// DeleteRecurringTax removes a tax owned by the requesting user.
	DeleteRecurringTax(ctx context.Context, taxID string, requestingUserID string) error
}
