package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/PFTrackr/fin_tracker_app/internal/apperrors"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/core/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
)

// --- Mock SavingsFundRepository ---
type MockSavingsFundRepository struct {
	mock.Mock
}

func (m *MockSavingsFundRepository) FindSavingsFundByID(ctx context.Context, fundID string) (*domain.SavingsFund, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingsFund), args.Error(1)
}

func (m *MockSavingsFundRepository) FindSavingsFundsByUser(ctx context.Context, userID string) ([]domain.SavingsFund, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavingsFund), args.Error(1)
}

func (m *MockSavingsFundRepository) SaveSavingsFund(ctx context.Context, fund domain.SavingsFund) error {
	args := m.Called(ctx, fund)
	return args.Error(0)
}

func (m *MockSavingsFundRepository) UpdateSavingsFund(ctx context.Context, fund domain.SavingsFund) error {
	args := m.Called(ctx, fund)
	return args.Error(0)
}

func (m *MockSavingsFundRepository) AdjustSavingsFundAmount(ctx context.Context, fundID string, delta decimal.Decimal) error {
	args := m.Called(ctx, fundID, delta)
	return args.Error(0)
}

func (m *MockSavingsFundRepository) DeleteSavingsFund(ctx context.Context, fundID string) error {
	args := m.Called(ctx, fundID)
	return args.Error(0)
}

var _ portsrepo.SavingsFundRepositoryFacade = (*MockSavingsFundRepository)(nil)

// --- Test Suite ---
type SavingsFundServiceTestSuite struct {
	suite.Suite
	mockFundRepo *MockSavingsFundRepository
	mockTxnRepo  *MockTransactionRepository
	service      portssvc.SavingsFundSvcFacade
	ctx          context.Context
	userID       string
}

func (suite *SavingsFundServiceTestSuite) SetupTest() {
	suite.mockFundRepo = new(MockSavingsFundRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewSavingsFundService(suite.mockFundRepo, suite.mockTxnRepo)
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
}

func (suite *SavingsFundServiceTestSuite) fund(current int64) *domain.SavingsFund {
	return &domain.SavingsFund{
		FundID:        uuid.NewString(),
		UserID:        suite.userID,
		Name:          "Vacation",
		CurrentAmount: decimal.NewFromInt(current),
		TargetAmount:  decimal.NewFromInt(1000),
	}
}

func (suite *SavingsFundServiceTestSuite) TestCreateSavingsFund_StartsAtZero() {
	req := dto.CreateSavingsFundRequest{
		Name:         "Vacation",
		TargetAmount: decimal.NewFromInt(1000),
	}
	suite.mockFundRepo.On("SaveSavingsFund", suite.ctx, mock.MatchedBy(func(f domain.SavingsFund) bool {
		return f.UserID == suite.userID && f.CurrentAmount.IsZero() && f.TargetAmount.Equal(decimal.NewFromInt(1000))
	})).Return(nil).Once()

	fund, err := suite.service.CreateSavingsFund(suite.ctx, suite.userID, req)

	suite.NoError(err)
	suite.Require().NotNil(fund)
	suite.True(fund.CurrentAmount.IsZero())
	suite.mockFundRepo.AssertExpectations(suite.T())
}

func (suite *SavingsFundServiceTestSuite) TestCreateSavingsFund_NonPositiveTargetRejected() {
	req := dto.CreateSavingsFundRequest{Name: "Vacation", TargetAmount: decimal.Zero}

	fund, err := suite.service.CreateSavingsFund(suite.ctx, suite.userID, req)

	suite.Nil(fund)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SavingsFundServiceTestSuite) TestDeposit_AdjustsBalanceAndRecordsTransaction() {
	existing := suite.fund(100)
	suite.mockFundRepo.On("FindSavingsFundByID", suite.ctx, existing.FundID).Return(existing, nil).Once()
	suite.mockFundRepo.On("AdjustSavingsFundAmount", suite.ctx, existing.FundID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(40))
	})).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Deposit &&
			txn.UserID == suite.userID &&
			txn.Amount.Equal(decimal.NewFromInt(40)) &&
			txn.Description == "Deposit to Vacation"
	})).Return(nil).Once()

	fund, err := suite.service.Deposit(suite.ctx, existing.FundID, dto.FundTransferRequest{
		Amount: decimal.NewFromInt(40),
	}, suite.userID)

	suite.NoError(err)
	suite.Require().NotNil(fund)
	suite.True(fund.CurrentAmount.Equal(decimal.NewFromInt(140)))
	suite.mockFundRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *SavingsFundServiceTestSuite) TestWithdraw_NegatesDelta() {
	existing := suite.fund(100)
	suite.mockFundRepo.On("FindSavingsFundByID", suite.ctx, existing.FundID).Return(existing, nil).Once()
	suite.mockFundRepo.On("AdjustSavingsFundAmount", suite.ctx, existing.FundID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(-30))
	})).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Withdrawal && txn.Amount.Equal(decimal.NewFromInt(30))
	})).Return(nil).Once()

	fund, err := suite.service.Withdraw(suite.ctx, existing.FundID, dto.FundTransferRequest{
		Amount: decimal.NewFromInt(30),
		Date:   time.Now(),
	}, suite.userID)

	suite.NoError(err)
	suite.Require().NotNil(fund)
	suite.True(fund.CurrentAmount.Equal(decimal.NewFromInt(70)))
}

func (suite *SavingsFundServiceTestSuite) TestWithdraw_OverdraftRejected() {
	existing := suite.fund(20)
	suite.mockFundRepo.On("FindSavingsFundByID", suite.ctx, existing.FundID).Return(existing, nil).Once()

	fund, err := suite.service.Withdraw(suite.ctx, existing.FundID, dto.FundTransferRequest{
		Amount: decimal.NewFromInt(50),
	}, suite.userID)

	suite.Nil(fund)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockFundRepo.AssertNotCalled(suite.T(), "AdjustSavingsFundAmount")
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *SavingsFundServiceTestSuite) TestDeposit_NonPositiveAmountRejected() {
	fund, err := suite.service.Deposit(suite.ctx, uuid.NewString(), dto.FundTransferRequest{
		Amount: decimal.Zero,
	}, suite.userID)

	suite.Nil(fund)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockFundRepo.AssertNotCalled(suite.T(), "FindSavingsFundByID")
}

func (suite *SavingsFundServiceTestSuite) TestDeposit_OtherUsersFundIsForbidden() {
	existing := suite.fund(100)
	existing.UserID = uuid.NewString()
	suite.mockFundRepo.On("FindSavingsFundByID", suite.ctx, existing.FundID).Return(existing, nil).Once()

	fund, err := suite.service.Deposit(suite.ctx, existing.FundID, dto.FundTransferRequest{
		Amount: decimal.NewFromInt(10),
	}, suite.userID)

	suite.Nil(fund)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestSavingsFundService(t *testing.T) {
	suite.Run(t, new(SavingsFundServiceTestSuite))
}
