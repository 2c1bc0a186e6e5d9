package mapping

import (
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/PFTrackr/fin_tracker_app/internal/models"
)

// ToModelBillingCycle converts a domain BillingCycle to a model BillingCycle
func ToModelBillingCycle(d domain.BillingCycle) models.BillingCycle {
	return models.BillingCycle{
		CycleID:     d.CycleID,
		UserID:      d.UserID,
		Name:        d.Name,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBillingCycle converts a model BillingCycle to a domain BillingCycle
func ToDomainBillingCycle(m models.BillingCycle) domain.BillingCycle {
	return domain.BillingCycle{
		CycleID:     m.CycleID,
		UserID:      m.UserID,
		Name:        m.Name,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBillingCycleSlice converts a slice of model BillingCycles to a slice of domain BillingCycles
func ToDomainBillingCycleSlice(ms []models.BillingCycle) []domain.BillingCycle {
	ds := make([]domain.BillingCycle, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBillingCycle(m)
	}
	return ds
}

// ToModelSavingsFund converts a domain SavingsFund to a model SavingsFund
func ToModelSavingsFund(d domain.SavingsFund) models.SavingsFund {
	return models.SavingsFund{
		FundID:        d.FundID,
		UserID:        d.UserID,
		Name:          d.Name,
		CurrentAmount: d.CurrentAmount,
		TargetAmount:  d.TargetAmount,
		TargetDate:    d.TargetDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSavingsFund converts a model SavingsFund to a domain SavingsFund
func ToDomainSavingsFund(m models.SavingsFund) domain.SavingsFund {
	return domain.SavingsFund{
		FundID:        m.FundID,
		UserID:        m.UserID,
		Name:          m.Name,
		CurrentAmount: m.CurrentAmount,
		TargetAmount:  m.TargetAmount,
		TargetDate:    m.TargetDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSavingsFundSlice converts a slice of model SavingsFunds to a slice of domain SavingsFunds
func ToDomainSavingsFundSlice(ms []models.SavingsFund) []domain.SavingsFund {
	ds := make([]domain.SavingsFund, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSavingsFund(m)
	}
	return ds
}

// ToModelRecurringTax converts a domain RecurringTax to a model RecurringTax
func ToModelRecurringTax(d domain.RecurringTax) models.RecurringTax {
	return models.RecurringTax{
		TaxID:       d.TaxID,
		UserID:      d.UserID,
		Name:        d.Name,
		Amount:      d.Amount,
		DueDay:      d.DueDay,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecurringTax converts a model RecurringTax to a domain RecurringTax
func ToDomainRecurringTax(m models.RecurringTax) domain.RecurringTax {
	return domain.RecurringTax{
		TaxID:       m.TaxID,
		UserID:      m.UserID,
		Name:        m.Name,
		Amount:      m.Amount,
		DueDay:      m.DueDay,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRecurringTaxSlice converts a slice of model RecurringTaxes to a slice of domain RecurringTaxes
func ToDomainRecurringTaxSlice(ms []models.RecurringTax) []domain.RecurringTax {
	ds := make([]domain.RecurringTax, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecurringTax(m)
	}
	return ds
}
