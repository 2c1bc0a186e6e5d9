package domain

// Category is a user-defined grouping for transactions.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (e.g., UUID)
	UserID     string `json:"userID"`     // FK -> User.userID (Not Null)
	Name       string `json:"name"`
	Icon       string `json:"icon"` // Optional icon identifier for presentation
	AuditFields
}

// PaymentMethod is a user-defined means of payment (card, cash, wallet...).
type PaymentMethod struct {
	PaymentMethodID string `json:"paymentMethodID"` // Primary Key (e.g., UUID)
	UserID          string `json:"userID"`          // FK -> User.userID (Not Null)
	Name            string `json:"name"`
	Icon            string `json:"icon"`
	AuditFields
}
