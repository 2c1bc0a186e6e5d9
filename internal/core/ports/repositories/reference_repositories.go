package repositories

import (
	"context"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
)

// CategoryRepositoryFacade defines operations for category reference data
type CategoryRepositoryFacade interface {
	// FindCategoryByID retrieves a specific category by its ID.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoriesByUser retrieves all categories owned by a user.
	FindCategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error)

	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category permanently.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// PaymentMethodRepositoryFacade defines operations for payment method reference data
type PaymentMethodRepositoryFacade interface {
	// FindPaymentMethodByID retrieves a specific payment method by its ID.
	FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*domain.PaymentMethod, error)

	// FindPaymentMethodsByUser retrieves all payment methods owned by a user.
	FindPaymentMethodsByUser(ctx context.Context, userID string) ([]domain.PaymentMethod, error)

	// SavePaymentMethod persists a new payment method.
	SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error

	// UpdatePaymentMethod updates an existing payment method.
	UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error

	// DeletePaymentMethod removes a payment method permanently.
	DeletePaymentMethod(ctx context.Context, paymentMethodID string) error
}
