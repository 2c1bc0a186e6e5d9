package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/apperrors"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// savingsFundService implements the SavingsFundSvcFacade interface
type savingsFundService struct {
	BaseService
	fundRepo        portsrepo.SavingsFundRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewSavingsFundService creates a new savings fund service
func NewSavingsFundService(fundRepo portsrepo.SavingsFundRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.SavingsFundSvcFacade {
	return &savingsFundService{fundRepo: fundRepo, transactionRepo: transactionRepo}
}

// Ensure savingsFundService implements the SavingsFundSvcFacade interface
var _ portssvc.SavingsFundSvcFacade = (*savingsFundService)(nil)

// CreateSavingsFund creates a new savings goal starting at zero.
func (s *savingsFundService) CreateSavingsFund(ctx context.Context, userID string, req dto.CreateSavingsFundRequest) (*domain.SavingsFund, error) {
	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}
	now := time.Now()
	fund := domain.SavingsFund{
		FundID:        uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		CurrentAmount: decimal.Zero,
		TargetAmount:  req.TargetAmount,
		TargetDate:    req.TargetDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.fundRepo.SaveSavingsFund(ctx, fund); err != nil {
		s.LogError(ctx, err, "Failed to save savings fund", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save savings fund: %w", err)
	}
	return &fund, nil
}

// ListSavingsFunds retrieves all funds owned by the user.
func (s *savingsFundService) ListSavingsFunds(ctx context.Context, userID string) ([]domain.SavingsFund, error) {
	funds, err := s.fundRepo.FindSavingsFundsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list savings funds", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list savings funds: %w", err)
	}
	return funds, nil
}

// UpdateSavingsFund applies a partial update to a fund the user owns.
// The current amount is only moved through Deposit and Withdraw.
func (s *savingsFundService) UpdateSavingsFund(ctx context.Context, fundID string, req dto.UpdateSavingsFundRequest, requestingUserID string) (*domain.SavingsFund, error) {
	fund, err := s.ownedFund(ctx, fundID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		fund.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
		}
		fund.TargetAmount = *req.TargetAmount
	}
	if req.TargetDate != nil {
		fund.TargetDate = req.TargetDate
	}
	fund.LastUpdatedAt = time.Now()
	fund.LastUpdatedBy = requestingUserID

	if err := s.fundRepo.UpdateSavingsFund(ctx, *fund); err != nil {
		s.LogError(ctx, err, "Failed to update savings fund", slog.String("fund_id", fundID))
		return nil, fmt.Errorf("failed to update savings fund: %w", err)
	}
	return fund, nil
}

// Deposit moves money into a fund and records a DEPOSIT transaction so the
// transfer shows up in the user's history without touching income totals.
func (s *savingsFundService) Deposit(ctx context.Context, fundID string, req dto.FundTransferRequest, requestingUserID string) (*domain.SavingsFund, error) {
	return s.transfer(ctx, fundID, req, requestingUserID, domain.Deposit)
}

// Withdraw moves money out of a fund, recording a WITHDRAWAL transaction.
// The fund balance can never go negative.
func (s *savingsFundService) Withdraw(ctx context.Context, fundID string, req dto.FundTransferRequest, requestingUserID string) (*domain.SavingsFund, error) {
	return s.transfer(ctx, fundID, req, requestingUserID, domain.Withdrawal)
}

func (s *savingsFundService) transfer(ctx context.Context, fundID string, req dto.FundTransferRequest, requestingUserID string, txnType domain.TransactionType) (*domain.SavingsFund, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	fund, err := s.ownedFund(ctx, fundID, requestingUserID)
	if err != nil {
		return nil, err
	}

	delta := req.Amount
	if txnType == domain.Withdrawal {
		if req.Amount.GreaterThan(fund.CurrentAmount) {
			return nil, fmt.Errorf("%w: withdrawal exceeds fund balance", apperrors.ErrValidation)
		}
		delta = req.Amount.Neg()
	}
	if err := s.fundRepo.AdjustSavingsFundAmount(ctx, fundID, delta); err != nil {
		s.LogError(ctx, err, "Failed to adjust savings fund amount", slog.String("fund_id", fundID))
		return nil, fmt.Errorf("failed to adjust savings fund amount: %w", err)
	}
	fund.CurrentAmount = fund.CurrentAmount.Add(delta)

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	description := req.Description
	if description == "" {
		verb := "Deposit to"
		if txnType == domain.Withdrawal {
			verb = "Withdrawal from"
		}
		description = fmt.Sprintf("%s %s", verb, fund.Name)
	}
	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        requestingUserID,
		Type:          txnType,
		Amount:        req.Amount,
		Date:          date,
		Description:   description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to record fund transfer transaction", slog.String("fund_id", fundID))
		return nil, fmt.Errorf("failed to record fund transfer: %w", err)
	}
	s.LogInfo(ctx, "Recorded fund transfer",
		slog.String("fund_id", fundID),
		slog.String("type", string(txnType)),
		slog.String("amount", req.Amount.String()))
	return fund, nil
}

// DeleteSavingsFund removes a fund the user owns. Transfer transactions that
// referenced it are kept as plain history.
func (s *savingsFundService) DeleteSavingsFund(ctx context.Context, fundID string, requestingUserID string) error {
	if _, err := s.ownedFund(ctx, fundID, requestingUserID); err != nil {
		return err
	}
	if err := s.fundRepo.DeleteSavingsFund(ctx, fundID); err != nil {
		s.LogError(ctx, err, "Failed to delete savings fund", slog.String("fund_id", fundID))
		return fmt.Errorf("failed to delete savings fund: %w", err)
	}
	return nil
}

func (s *savingsFundService) ownedFund(ctx context.Context, fundID string, requestingUserID string) (*domain.SavingsFund, error) {
	fund, err := s.fundRepo.FindSavingsFundByID(ctx, fundID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, fund.UserID, requestingUserID); err != nil {
		return nil, err
	}
	return fund, nil
}
