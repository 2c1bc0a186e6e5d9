package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/apperrors"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
	"github.com/google/uuid"
)

// billingCycleService implements the BillingCycleSvcFacade interface
type billingCycleService struct {
	BaseService
	cycleRepo portsrepo.BillingCycleRepositoryFacade
}

// NewBillingCycleService creates a new billing cycle service
func NewBillingCycleService(cycleRepo portsrepo.BillingCycleRepositoryFacade) portssvc.BillingCycleSvcFacade {
	return &billingCycleService{cycleRepo: cycleRepo}
}

// Ensure billingCycleService implements the BillingCycleSvcFacade interface
var _ portssvc.BillingCycleSvcFacade = (*billingCycleService)(nil)

// CreateBillingCycle opens a new billing cycle for the user.
func (s *billingCycleService) CreateBillingCycle(ctx context.Context, userID string, req dto.CreateBillingCycleRequest) (*domain.BillingCycle, error) {
	if req.EndDate != nil && !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", apperrors.ErrValidation)
	}
	now := time.Now()
	cycle := domain.BillingCycle{
		CycleID:   uuid.NewString(),
		UserID:    userID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.cycleRepo.SaveBillingCycle(ctx, cycle); err != nil {
		s.LogError(ctx, err, "Failed to save billing cycle", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save billing cycle: %w", err)
	}
	return &cycle, nil
}

// GetBillingCycleByID retrieves a cycle and enforces ownership.
// The "all" sentinel means no scoping and resolves to nil without a lookup.
func (s *billingCycleService) GetBillingCycleByID(ctx context.Context, cycleID string, requestingUserID string) (*domain.BillingCycle, error) {
	if cycleID == "" || cycleID == domain.CycleAll {
		return nil, nil
	}
	cycle, err := s.cycleRepo.FindBillingCycleByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, cycle.UserID, requestingUserID); err != nil {
		return nil, err
	}
	return cycle, nil
}

// ListBillingCycles retrieves all cycles owned by the user, most recent first.
func (s *billingCycleService) ListBillingCycles(ctx context.Context, userID string) ([]domain.BillingCycle, error) {
	cycles, err := s.cycleRepo.FindBillingCyclesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list billing cycles", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list billing cycles: %w", err)
	}
	return cycles, nil
}

// UpdateBillingCycle applies a partial update to a cycle the user owns.
// Setting EndDate closes an open cycle.
func (s *billingCycleService) UpdateBillingCycle(ctx context.Context, cycleID string, req dto.UpdateBillingCycleRequest, requestingUserID string) (*domain.BillingCycle, error) {
	cycle, err := s.cycleRepo.FindBillingCycleByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, cycle.UserID, requestingUserID); err != nil {
		return nil, err
	}
	if req.Name != nil {
		cycle.Name = *req.Name
	}
	if req.StartDate != nil {
		cycle.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		cycle.EndDate = req.EndDate
	}
	if cycle.EndDate != nil && !cycle.EndDate.After(cycle.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", apperrors.ErrValidation)
	}
	cycle.LastUpdatedAt = time.Now()
	cycle.LastUpdatedBy = requestingUserID

	if err := s.cycleRepo.UpdateBillingCycle(ctx, *cycle); err != nil {
		s.LogError(ctx, err, "Failed to update billing cycle", slog.String("cycle_id", cycleID))
		return nil, fmt.Errorf("failed to update billing cycle: %w", err)
	}
	return cycle, nil
}

// DeleteBillingCycle removes a cycle the user owns. Transactions that fell
// inside it are untouched; they simply revert to the unscoped view.
func (s *billingCycleService) DeleteBillingCycle(ctx context.Context, cycleID string, requestingUserID string) error {
	if cycleID == domain.CycleAll {
		return fmt.Errorf("%w: the %q cycle cannot be deleted", apperrors.ErrValidation, domain.CycleAll)
	}
	cycle, err := s.cycleRepo.FindBillingCycleByID(ctx, cycleID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeOwner(ctx, cycle.UserID, requestingUserID); err != nil {
		return err
	}
	if err := s.cycleRepo.DeleteBillingCycle(ctx, cycleID); err != nil {
		s.LogError(ctx, err, "Failed to delete billing cycle", slog.String("cycle_id", cycleID))
		return fmt.Errorf("failed to delete billing cycle: %w", err)
	}
	return nil
}
