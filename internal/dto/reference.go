package dto

import "github.com/PFTrackr/fin_tracker_app/internal/core/domain"

// CreateCategoryRequest defines the data required to create a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

// CategoryResponse is the public shape of a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
}

// ToCategoryResponse converts a domain Category to a CategoryResponse DTO
func ToCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{CategoryID: c.CategoryID, Name: c.Name, Icon: c.Icon}
}

// ToCategoryResponseSlice converts a slice of domain Categories to DTOs
func ToCategoryResponseSlice(cs []domain.Category) []CategoryResponse {
	resp := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		resp[i] = ToCategoryResponse(c)
	}
	return resp
}

// CreatePaymentMethodRequest defines the data required to create a payment method.
type CreatePaymentMethodRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

// UpdatePaymentMethodRequest defines the data allowed for updating a payment method.
type UpdatePaymentMethodRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

// PaymentMethodResponse is the public shape of a payment method.
type PaymentMethodResponse struct {
	PaymentMethodID string `json:"paymentMethodID"`
	Name            string `json:"name"`
	Icon            string `json:"icon"`
}

// ToPaymentMethodResponse converts a domain PaymentMethod to a DTO
func ToPaymentMethodResponse(m domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{PaymentMethodID: m.PaymentMethodID, Name: m.Name, Icon: m.Icon}
}

// ToPaymentMethodResponseSlice converts a slice of domain PaymentMethods to DTOs
func ToPaymentMethodResponseSlice(ms []domain.PaymentMethod) []PaymentMethodResponse {
	resp := make([]PaymentMethodResponse, len(ms))
	for i, m := range ms {
		resp[i] = ToPaymentMethodResponse(m)
	}
	return resp
}
