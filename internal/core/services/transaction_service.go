package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PFTrackr/fin_tracker_app/internal/apperrors"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	"github.com/PFTrackr/fin_tracker_app/internal/core/filtering"
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
	"github.com/PFTrackr/fin_tracker_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const dateParamLayout = "2006-01-02"

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	cycleRepo       portsrepo.BillingCycleRepositoryFacade
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, cycleRepo portsrepo.BillingCycleRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		cycleRepo:       cycleRepo,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// GetTransactionByID retrieves a transaction and enforces ownership.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, txn.UserID, requestingUserID); err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions fetches the user's full collection, resolves the selected
// cycle into a date window, applies the filter/sort engine and slices one
// page. Filtering and sorting are deliberately in-memory: the repository
// supplies an unordered snapshot and the core stays a pure function of it.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	txns, err := s.transactionRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	window, err := s.resolveWindow(ctx, userID, params.CycleID)
	if err != nil {
		return nil, err
	}

	state, err := filterStateFromParams(params)
	if err != nil {
		return nil, err
	}

	filtered := filtering.Apply(txns, state, window)

	paginator := pagination.New(params.PerPage)
	paginator = paginator.GoTo(params.Page, len(filtered))
	page := pagination.Slice(filtered, paginator)

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponseSlice(page),
		CurrentPage:  paginator.CurrentPage,
		TotalPages:   paginator.TotalPages(len(filtered)),
		ItemsPerPage: paginator.ItemsPerPage,
		TotalItems:   len(filtered),
	}, nil
}

// resolveWindow loads the selected cycle and resolves it to a date window.
// The "all" sentinel (or empty) skips the storage lookup entirely.
func (s *transactionService) resolveWindow(ctx context.Context, userID, cycleID string) (*filtering.DateWindow, error) {
	if cycleID == "" || cycleID == domain.CycleAll {
		return nil, nil
	}
	cycle, err := s.cycleRepo.FindBillingCycleByID(ctx, cycleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load billing cycle", slog.String("cycle_id", cycleID))
		return nil, fmt.Errorf("failed to load billing cycle: %w", err)
	}
	if cycle.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return filtering.ResolveCycleWindow(cycle, time.Now()), nil
}

// filterStateFromParams maps list query parameters onto a core filter state.
func filterStateFromParams(params dto.ListTransactionsParams) (filtering.FilterState, error) {
	state := filtering.NewFilterState().
		WithSearchTerm(params.Search).
		WithType(filtering.TypeFilter(params.Type))

	if params.Categories != "" {
		state = state.WithCategories(splitCategoryParam(params.Categories))
	}

	if params.From != "" || params.To != "" {
		var r filtering.DateRange
		if params.From != "" {
			from, err := time.ParseInLocation(dateParamLayout, params.From, time.Local)
			if err != nil {
				return state, fmt.Errorf("%w: invalid from date %q", apperrors.ErrValidation, params.From)
			}
			r.From = from
		}
		if params.To != "" {
			to, err := time.ParseInLocation(dateParamLayout, params.To, time.Local)
			if err != nil {
				return state, fmt.Errorf("%w: invalid to date %q", apperrors.ErrValidation, params.To)
			}
			r.To = to
		}
		state = state.WithDateRange(&r)
	}
	return state, nil
}

// splitCategoryParam splits a comma-separated ID list. The explicit empty
// selection yields an empty (non-nil) set that matches nothing.
func splitCategoryParam(raw string) []string {
	if raw == dto.EmptyCategorySelection {
		return []string{}
	}
	ids := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

// CreateTransaction records a new transaction for the user.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		Type:            domain.TransactionType(req.Type),
		Amount:          req.Amount,
		Date:            req.Date,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		PaymentMethodID: req.PaymentMethodID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.InstallmentCount != nil && req.InstallmentPerPeriod != nil {
		if *req.InstallmentCount < 1 {
			return nil, fmt.Errorf("%w: installment count must be at least 1", apperrors.ErrValidation)
		}
		txn.Installments = &domain.InstallmentInfo{
			TotalCount:      *req.InstallmentCount,
			AmountPerPeriod: *req.InstallmentPerPeriod,
		}
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// UpdateTransaction applies a partial update to a transaction the user owns.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, txn.UserID, requestingUserID); err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}
	if req.PaymentMethodID != nil {
		txn.PaymentMethodID = req.PaymentMethodID
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = requestingUserID

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

// DeleteTransaction removes a transaction the user owns.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, requestingUserID string) error {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeOwner(ctx, txn.UserID, requestingUserID); err != nil {
		return err
	}
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
