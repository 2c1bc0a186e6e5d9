package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
	"github.com/google/uuid"
)

// paymentMethodService implements the PaymentMethodSvcFacade interface
type paymentMethodService struct {
	BaseService
	methodRepo portsrepo.PaymentMethodRepositoryFacade
}

// NewPaymentMethodService creates a new payment method service
func NewPaymentMethodService(methodRepo portsrepo.PaymentMethodRepositoryFacade) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{methodRepo: methodRepo}
}

// Ensure paymentMethodService implements the PaymentMethodSvcFacade interface
var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)

// CreatePaymentMethod creates a new payment method for the user.
func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, userID string, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error) {
	now := time.Now()
	method := domain.PaymentMethod{
		PaymentMethodID: uuid.NewString(),
		UserID:          userID,
		Name:            req.Name,
		Icon:            req.Icon,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.methodRepo.SavePaymentMethod(ctx, method); err != nil {
		s.LogError(ctx, err, "Failed to save payment method", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save payment method: %w", err)
	}
	return &method, nil
}

// ListPaymentMethods retrieves all payment methods owned by the user.
func (s *paymentMethodService) ListPaymentMethods(ctx context.Context, userID string) ([]domain.PaymentMethod, error) {
	methods, err := s.methodRepo.FindPaymentMethodsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment methods", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

// UpdatePaymentMethod applies a partial update to a payment method the user owns.
func (s *paymentMethodService) UpdatePaymentMethod(ctx context.Context, paymentMethodID string, req dto.UpdatePaymentMethodRequest, requestingUserID string) (*domain.PaymentMethod, error) {
	method, err := s.methodRepo.FindPaymentMethodByID(ctx, paymentMethodID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, method.UserID, requestingUserID); err != nil {
		return nil, err
	}
	if req.Name != nil {
		method.Name = *req.Name
	}
	if req.Icon != nil {
		method.Icon = *req.Icon
	}
	method.LastUpdatedAt = time.Now()
	method.LastUpdatedBy = requestingUserID

	if err := s.methodRepo.UpdatePaymentMethod(ctx, *method); err != nil {
		s.LogError(ctx, err, "Failed to update payment method", slog.String("payment_method_id", paymentMethodID))
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}
	return method, nil
}

// DeletePaymentMethod removes a payment method the user owns.
func (s *paymentMethodService) DeletePaymentMethod(ctx context.Context, paymentMethodID string, requestingUserID string) error {
	method, err := s.methodRepo.FindPaymentMethodByID(ctx, paymentMethodID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeOwner(ctx, method.UserID, requestingUserID); err != nil {
		return err
	}
	if err := s.methodRepo.DeletePaymentMethod(ctx, paymentMethodID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment method", slog.String("payment_method_id", paymentMethodID))
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	return nil
}
