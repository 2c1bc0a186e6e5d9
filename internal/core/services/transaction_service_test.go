package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/PFTrackr/fin_tracker_app/internal/apperrors"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/core/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock BillingCycleRepository ---
type MockBillingCycleRepository struct {
	mock.Mock
}

func (m *MockBillingCycleRepository) FindBillingCycleByID(ctx context.Context, cycleID string) (*domain.BillingCycle, error) {
	args := m.Called(ctx, cycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingCycle), args.Error(1)
}

func (m *MockBillingCycleRepository) FindBillingCyclesByUser(ctx context.Context, userID string) ([]domain.BillingCycle, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillingCycle), args.Error(1)
}

func (m *MockBillingCycleRepository) SaveBillingCycle(ctx context.Context, cycle domain.BillingCycle) error {
	args := m.Called(ctx, cycle)
	return args.Error(0)
}

func (m *MockBillingCycleRepository) UpdateBillingCycle(ctx context.Context, cycle domain.BillingCycle) error {
	args := m.Called(ctx, cycle)
	return args.Error(0)
}

func (m *MockBillingCycleRepository) DeleteBillingCycle(ctx context.Context, cycleID string) error {
	args := m.Called(ctx, cycleID)
	return args.Error(0)
}

var _ portsrepo.BillingCycleRepositoryFacade = (*MockBillingCycleRepository)(nil)

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo   *MockTransactionRepository
	mockCycleRepo *MockBillingCycleRepository
	service       portssvc.TransactionSvcFacade
	ctx           context.Context
	userID        string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCycleRepo = new(MockBillingCycleRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockCycleRepo)
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) expenseOn(day time.Time, amount int64, description string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(amount),
		Date:          day,
		Description:   description,
		CategoryID:    "cat-groceries",
	}
}

func (suite *TransactionServiceTestSuite) TestListTransactions_FiltersByTypeAndSearch() {
	now := time.Now()
	txns := []domain.Transaction{
		suite.expenseOn(now, 50, "Weekly groceries"),
		suite.expenseOn(now.Add(-time.Hour), 20, "Bus ticket"),
		{
			TransactionID: uuid.NewString(),
			UserID:        suite.userID,
			Type:          domain.Income,
			Amount:        decimal.NewFromInt(1000),
			Date:          now,
			Description:   "Salary",
			CategoryID:    "cat-income",
		},
	}
	suite.mockTxnRepo.On("FindTransactionsByUser", suite.ctx, suite.userID).Return(txns, nil).Once()

	resp, err := suite.service.ListTransactions(suite.ctx, suite.userID, dto.ListTransactionsParams{
		Search:  "groceries",
		Type:    "EXPENSE",
		CycleID: "all",
		Page:    1,
		PerPage: 10,
	})

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Transactions, 1)
	suite.Equal("Weekly groceries", resp.Transactions[0].Description)
	suite.Equal(1, resp.TotalItems)
	suite.Equal(1, resp.TotalPages)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockCycleRepo.AssertNotCalled(suite.T(), "FindBillingCycleByID")
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PaginationMetadata() {
	now := time.Now()
	txns := make([]domain.Transaction, 0, 25)
	for i := 0; i < 25; i++ {
		txns = append(txns, suite.expenseOn(now.Add(-time.Duration(i)*time.Hour), int64(i+1), "Item"))
	}
	suite.mockTxnRepo.On("FindTransactionsByUser", suite.ctx, suite.userID).Return(txns, nil).Once()

	resp, err := suite.service.ListTransactions(suite.ctx, suite.userID, dto.ListTransactionsParams{
		Type:    "all",
		CycleID: "all",
		Page:    3,
		PerPage: 10,
	})

	suite.NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(3, resp.CurrentPage)
	suite.Equal(3, resp.TotalPages)
	suite.Equal(25, resp.TotalItems)
	suite.Len(resp.Transactions, 5)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_CycleOwnedByOtherUserIsForbidden() {
	cycleID := uuid.NewString()
	suite.mockTxnRepo.On("FindTransactionsByUser", suite.ctx, suite.userID).Return([]domain.Transaction{}, nil).Once()
	suite.mockCycleRepo.On("FindBillingCycleByID", suite.ctx, cycleID).Return(&domain.BillingCycle{
		CycleID:   cycleID,
		UserID:    uuid.NewString(),
		StartDate: time.Now().AddDate(0, -1, 0),
	}, nil).Once()

	resp, err := suite.service.ListTransactions(suite.ctx, suite.userID, dto.ListTransactionsParams{
		Type:    "all",
		CycleID: cycleID,
		Page:    1,
		PerPage: 10,
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidFromDate() {
	suite.mockTxnRepo.On("FindTransactionsByUser", suite.ctx, suite.userID).Return([]domain.Transaction{}, nil).Once()

	resp, err := suite.service.ListTransactions(suite.ctx, suite.userID, dto.ListTransactionsParams{
		Type:    "all",
		CycleID: "all",
		From:    "31-12-2025",
		Page:    1,
		PerPage: 10,
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	req := dto.CreateTransactionRequest{
		Type:       "EXPENSE",
		Amount:     decimal.NewFromInt(42),
		Date:       time.Now(),
		CategoryID: "cat-groceries",
	}
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == suite.userID &&
			txn.Type == domain.Expense &&
			txn.Amount.Equal(decimal.NewFromInt(42)) &&
			txn.TransactionID != ""
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.userID, req)

	suite.NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(suite.userID, txn.CreatedBy)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmountRejected() {
	req := dto.CreateTransactionRequest{
		Type:       "EXPENSE",
		Amount:     decimal.NewFromInt(-5),
		Date:       time.Now(),
		CategoryID: "cat-groceries",
	}

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.userID, req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_OtherUsersTransactionIsForbidden() {
	txnID := uuid.NewString()
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, txnID).Return(&domain.Transaction{
		TransactionID: txnID,
		UserID:        uuid.NewString(),
	}, nil).Once()

	txn, err := suite.service.GetTransactionByID(suite.ctx, txnID, suite.userID)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	txnID := uuid.NewString()
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, txnID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(suite.ctx, txnID, suite.userID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction")
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
