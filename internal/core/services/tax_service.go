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
	"github.com/shopspring/decimal"
)

// taxService implements the RecurringTaxSvcFacade interface
type taxService struct {
	BaseService
	taxRepo portsrepo.RecurringTaxRepositoryFacade
}

// NewTaxService creates a new recurring tax service
func NewTaxService(taxRepo portsrepo.RecurringTaxRepositoryFacade) portssvc.RecurringTaxSvcFacade {
	return &taxService{taxRepo: taxRepo}
}

// Ensure taxService implements the RecurringTaxSvcFacade interface
var _ portssvc.RecurringTaxSvcFacade = (*taxService)(nil)

// CreateRecurringTax creates a new monthly obligation for the user.
func (s *taxService) CreateRecurringTax(ctx context.Context, userID string, req dto.CreateRecurringTaxRequest) (*domain.RecurringTax, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: tax amount must be positive", apperrors.ErrValidation)
	}
	now := time.Now()
	tax := domain.RecurringTax{
		TaxID:  uuid.NewString(),
		UserID: userID,
		Name:   req.Name,
		Amount: req.Amount,
		DueDay: req.DueDay,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.taxRepo.SaveRecurringTax(ctx, tax); err != nil {
		s.LogError(ctx, err, "Failed to save recurring tax", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save recurring tax: %w", err)
	}
	return &tax, nil
}

// ListRecurringTaxes retrieves all recurring taxes owned by the user.
func (s *taxService) ListRecurringTaxes(ctx context.Context, userID string) ([]domain.RecurringTax, error) {
	taxes, err := s.taxRepo.FindRecurringTaxesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring taxes", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list recurring taxes: %w", err)
	}
	return taxes, nil
}

// UpdateRecurringTax applies a partial update to a tax the user owns.
func (s *taxService) UpdateRecurringTax(ctx context.Context, taxID string, req dto.UpdateRecurringTaxRequest, requestingUserID string) (*domain.RecurringTax, error) {
	tax, err := s.taxRepo.FindRecurringTaxByID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, tax.UserID, requestingUserID); err != nil {
		return nil, err
	}
	if req.Name != nil {
		tax.Name = *req.Name
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: tax amount must be positive", apperrors.ErrValidation)
		}
		tax.Amount = *req.Amount
	}
	if req.DueDay != nil {
		if *req.DueDay < 1 || *req.DueDay > 31 {
			return nil, fmt.Errorf("%w: due day must be between 1 and 31", apperrors.ErrValidation)
		}
		tax.DueDay = *req.DueDay
	}
	tax.LastUpdatedAt = time.Now()
	tax.LastUpdatedBy = requestingUserID

	if err := s.taxRepo.UpdateRecurringTax(ctx, *tax); err != nil {
		s.LogError(ctx, err, "Failed to update recurring tax", slog.String("tax_id", taxID))
		return nil, fmt.Errorf("failed to update recurring tax: %w", err)
	}
	return tax, nil
}

// DeleteRecurringTax removes a tax the user owns.
func (s *taxService) DeleteRecurringTax(ctx context.Context, taxID string, requestingUserID string) error {
	tax, err := s.taxRepo.FindRecurringTaxByID(ctx, taxID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeOwner(ctx, tax.UserID, requestingUserID); err != nil {
		return err
	}
	if err := s.taxRepo.DeleteRecurringTax(ctx, taxID); err != nil {
		s.LogError(ctx, err, "Failed to delete recurring tax", slog.String("tax_id", taxID))
		return fmt.Errorf("failed to delete recurring tax: %w", err)
	}
	return nil
}
