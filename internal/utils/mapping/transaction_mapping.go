package mapping

import (
	"database/sql"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/PFTrackr/fin_tracker_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		Date:          d.Date,
		Description:   d.Description,
		CategoryID:    d.CategoryID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.PaymentMethodID != nil {
		m.PaymentMethodID = sql.NullString{String: *d.PaymentMethodID, Valid: true}
	}
	if d.Installments != nil {
		m.InstallmentCount = sql.NullInt32{Int32: int32(d.Installments.TotalCount), Valid: true}
		m.InstallmentPerPeriod = decimal.NullDecimal{Decimal: d.Installments.AmountPerPeriod, Valid: true}
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Date:          m.Date,
		Description:   m.Description,
		CategoryID:    m.CategoryID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.PaymentMethodID.Valid {
		d.PaymentMethodID = &m.PaymentMethodID.String
	}
	if m.InstallmentCount.Valid && m.InstallmentPerPeriod.Valid {
		d.Installments = &domain.InstallmentInfo{
			TotalCount:      int(m.InstallmentCount.Int32),
			AmountPerPeriod: m.InstallmentPerPeriod.Decimal,
		}
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
