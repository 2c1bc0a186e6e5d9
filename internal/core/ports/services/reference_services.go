package services

import (
	"context"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
)

// CategorySvcFacade defines operations on category reference data
type CategorySvcFacade interface {
	// CreateCategory creates a new category for the user.
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves a category owned by the requesting user.
	GetCategoryByID(ctx context.Context, categoryID string, requestingUserID string) (*domain.Category, error)

	// ListCategories retrieves all categories owned by the user.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// UpdateCategory updates a category owned by the requesting user.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error)

	// DeleteCategory removes a category owned by the requesting user.
	DeleteCategory(ctx context.Context, categoryID string, requestingUserID string) error
}

// PaymentMethodSvcFacade defines operations on payment method reference data
type PaymentMethodSvcFacade interface {
	// CreatePaymentMethod creates a new payment method for the user.
	CreatePaymentMethod(ctx context.Context, userID string, req dto.CreatePaymentMethodRequest) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves all payment methods owned by the user.
	ListPaymentMethods(ctx context.Context, userID string) ([]domain.PaymentMethod, error)

	// UpdatePaymentMethod updates a payment method owned by the requesting user.
	UpdatePaymentMethod(ctx context.Context, paymentMethodID string, req dto.UpdatePaymentMethodRequest, requestingUserID string) (*domain.PaymentMethod, error)

	// DeletePaymentMethod removes a payment method owned by the requesting user.
	DeletePaymentMethod(ctx context.Context, paymentMethodID string, requestingUserID string) error
}
