package models

// Category represents a row of the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	UserID     string `db:"user_id"`
	Name       string `db:"name"`
	Icon       string `db:"icon"`
	AuditFields
}

// PaymentMethod represents a row of the payment_methods table.
type PaymentMethod struct {
	PaymentMethodID string `db:"payment_method_id"`
	UserID          string `db:"user_id"`
	Name            string `db:"name"`
	Icon            string `db:"icon"`
	AuditFields
}
