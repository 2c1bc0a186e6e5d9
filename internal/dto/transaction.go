package dto

import (
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data required to record a transaction.
type CreateTransactionRequest struct {
	Type            string          `json:"type" binding:"required,oneof=INCOME EXPENSE DEPOSIT WITHDRAWAL"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Date            time.Time       `json:"date" binding:"required"`
	Description     string          `json:"description"`
	CategoryID      string          `json:"categoryID" binding:"required"`
	PaymentMethodID *string         `json:"paymentMethodID"`

	// Installment purchase fields; both present or both absent.
	InstallmentCount     *int             `json:"installmentCount"`
	InstallmentPerPeriod *decimal.Decimal `json:"installmentPerPeriod"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateTransactionRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	Date            *time.Time       `json:"date"`
	Description     *string          `json:"description"`
	CategoryID      *string          `json:"categoryID"`
	PaymentMethodID *string          `json:"paymentMethodID"`
}

// EmptyCategorySelection marks a categories parameter that was sent but
// selects nothing. It filters to an empty result instead of being ignored.
const EmptyCategorySelection = "none"

// ListTransactionsParams defines query parameters for the transaction list.
// Category IDs arrive comma-separated; an empty but present parameter is an
// explicit empty selection and matches nothing.
type ListTransactionsParams struct {
	Search     string `form:"search"`
	Type       string `form:"type,default=all" binding:"omitempty,oneof=all income expense savings"`
	Categories string `form:"categories"`
	From       string `form:"from"` // YYYY-MM-DD
	To         string `form:"to"`   // YYYY-MM-DD
	CycleID    string `form:"cycleID,default=all"`
	Page       int    `form:"page,default=1"`
	PerPage    int    `form:"perPage,default=10"`
}

// TransactionResponse is the public shape of a transaction.
type TransactionResponse struct {
	TransactionID   string           `json:"transactionID"`
	Type            string           `json:"type"`
	Amount          decimal.Decimal  `json:"amount"`
	Date            time.Time        `json:"date"`
	Description     string           `json:"description"`
	CategoryID      string           `json:"categoryID"`
	PaymentMethodID *string          `json:"paymentMethodID,omitempty"`
	Installments    *InstallmentInfo `json:"installments,omitempty"`
}

// InstallmentInfo mirrors the installment fields of a transaction.
type InstallmentInfo struct {
	TotalCount      int             `json:"totalCount"`
	AmountPerPeriod decimal.Decimal `json:"amountPerPeriod"`
}

// ListTransactionsResponse carries one page of transactions plus page metadata.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	CurrentPage  int                   `json:"currentPage"`
	TotalPages   int                   `json:"totalPages"`
	ItemsPerPage int                   `json:"itemsPerPage"`
	TotalItems   int                   `json:"totalItems"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:   txn.TransactionID,
		Type:            string(txn.Type),
		Amount:          txn.Amount,
		Date:            txn.Date,
		Description:     txn.Description,
		CategoryID:      txn.CategoryID,
		PaymentMethodID: txn.PaymentMethodID,
	}
	if txn.Installments != nil {
		resp.Installments = &InstallmentInfo{
			TotalCount:      txn.Installments.TotalCount,
			AmountPerPeriod: txn.Installments.AmountPerPeriod,
		}
	}
	return resp
}

// ToTransactionResponseSlice converts a slice of domain Transactions to DTOs
func ToTransactionResponseSlice(txns []domain.Transaction) []TransactionResponse {
	resp := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		resp[i] = ToTransactionResponse(txn)
	}
	return resp
}
