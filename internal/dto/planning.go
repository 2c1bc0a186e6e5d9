package dto

import (
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBillingCycleRequest defines the data required to open a billing cycle.
type CreateBillingCycleRequest struct {
	Name      string     `json:"name" binding:"required"`
	StartDate time.Time  `json:"startDate" binding:"required"`
	EndDate   *time.Time `json:"endDate"`
}

// UpdateBillingCycleRequest defines the data allowed for updating a cycle.
type UpdateBillingCycleRequest struct {
	Name      *string    `json:"name"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// BillingCycleResponse is the public shape of a billing cycle.
type BillingCycleResponse struct {
	CycleID   string     `json:"cycleID"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	IsOpen    bool       `json:"isOpen"`
}

// ToBillingCycleResponse converts a domain BillingCycle to a DTO
func ToBillingCycleResponse(c domain.BillingCycle) BillingCycleResponse {
	return BillingCycleResponse{
		CycleID:   c.CycleID,
		Name:      c.Name,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		IsOpen:    c.IsOpen(),
	}
}

// ToBillingCycleResponseSlice converts a slice of domain BillingCycles to DTOs
func ToBillingCycleResponseSlice(cs []domain.BillingCycle) []BillingCycleResponse {
	resp := make([]BillingCycleResponse, len(cs))
	for i, c := range cs {
		resp[i] = ToBillingCycleResponse(c)
	}
	return resp
}

// CreateSavingsFundRequest defines the data required to create a savings fund.
type CreateSavingsFundRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	TargetDate   *time.Time      `json:"targetDate"`
}

// UpdateSavingsFundRequest defines the data allowed for updating a fund.
type UpdateSavingsFundRequest struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	TargetDate   *time.Time       `json:"targetDate"`
}

// FundTransferRequest moves money into or out of a savings fund.
type FundTransferRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// SavingsFundResponse is the public shape of a savings fund.
type SavingsFundResponse struct {
	FundID        string          `json:"fundID"`
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	TargetDate    *time.Time      `json:"targetDate,omitempty"`
}

// ToSavingsFundResponse converts a domain SavingsFund to a DTO
func ToSavingsFundResponse(f domain.SavingsFund) SavingsFundResponse {
	return SavingsFundResponse{
		FundID:        f.FundID,
		Name:          f.Name,
		CurrentAmount: f.CurrentAmount,
		TargetAmount:  f.TargetAmount,
		TargetDate:    f.TargetDate,
	}
}

// ToSavingsFundResponseSlice converts a slice of domain SavingsFunds to DTOs
func ToSavingsFundResponseSlice(fs []domain.SavingsFund) []SavingsFundResponse {
	resp := make([]SavingsFundResponse, len(fs))
	for i, f := range fs {
		resp[i] = ToSavingsFundResponse(f)
	}
	return resp
}

// CreateRecurringTaxRequest defines the data required to create a recurring tax.
type CreateRecurringTaxRequest struct {
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	DueDay int             `json:"dueDay" binding:"required,min=1,max=31"`
}

// UpdateRecurringTaxRequest defines the data allowed for updating a tax.
type UpdateRecurringTaxRequest struct {
	Name   *string          `json:"name"`
	Amount *decimal.Decimal `json:"amount"`
	DueDay *int             `json:"dueDay"`
}

// RecurringTaxResponse is the public shape of a recurring tax.
type RecurringTaxResponse struct {
	TaxID  string          `json:"taxID"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	DueDay int             `json:"dueDay"`
}

// ToRecurringTaxResponse converts a domain RecurringTax to a DTO
func ToRecurringTaxResponse(t domain.RecurringTax) RecurringTaxResponse {
	return RecurringTaxResponse{TaxID: t.TaxID, Name: t.Name, Amount: t.Amount, DueDay: t.DueDay}
}

// ToRecurringTaxResponseSlice converts a slice of domain RecurringTaxes to DTOs
func ToRecurringTaxResponseSlice(ts []domain.RecurringTax) []RecurringTaxResponse {
	resp := make([]RecurringTaxResponse, len(ts))
	for i, t := range ts {
		resp[i] = ToRecurringTaxResponse(t)
	}
	return resp
}
