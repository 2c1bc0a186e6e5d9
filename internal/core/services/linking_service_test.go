package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/PFTrackr/fin_tracker_app/internal/apperrors"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	portsrepo "github.com/PFTrackr/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/core/services"
)

// --- Mock LinkingRepository ---
type MockLinkingRepository struct {
	mock.Mock
}

func (m *MockLinkingRepository) SaveLinkingCode(ctx context.Context, code domain.LinkingCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockLinkingRepository) FindLinkingCode(ctx context.Context, code string) (*domain.LinkingCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkingCode), args.Error(1)
}

func (m *MockLinkingRepository) MarkLinkingCodeRedeemed(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockLinkingRepository) SaveChannelLink(ctx context.Context, link domain.ChannelLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockLinkingRepository) FindChannelLink(ctx context.Context, userID, channel string) (*domain.ChannelLink, error) {
	args := m.Called(ctx, userID, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChannelLink), args.Error(1)
}

var _ portsrepo.LinkingRepositoryFacade = (*MockLinkingRepository)(nil)

// --- Test Suite ---
type LinkingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLinkingRepository
	service  portssvc.LinkingSvcFacade
	ctx      context.Context
	userID   string
}

func (suite *LinkingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLinkingRepository)
	suite.service = services.NewLinkingService(suite.mockRepo)
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
}

func (suite *LinkingServiceTestSuite) TestIssueCode_Success() {
	suite.mockRepo.On("SaveLinkingCode", suite.ctx, mock.MatchedBy(func(c domain.LinkingCode) bool {
		return c.UserID == suite.userID &&
			c.Channel == "telegram" &&
			c.Code != "" &&
			c.ExpiresAt.After(time.Now())
	})).Return(nil).Once()

	code, err := suite.service.IssueCode(suite.ctx, suite.userID, "telegram")

	suite.NoError(err)
	suite.Require().NotNil(code)
	suite.NotEmpty(code.Code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LinkingServiceTestSuite) TestIssueCode_MissingChannelRejected() {
	code, err := suite.service.IssueCode(suite.ctx, suite.userID, "")

	suite.Nil(code)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveLinkingCode")
}

func (suite *LinkingServiceTestSuite) TestRedeemCode_Success() {
	issued := &domain.LinkingCode{
		Code:      "abc123",
		UserID:    suite.userID,
		Channel:   "telegram",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	suite.mockRepo.On("FindLinkingCode", suite.ctx, "abc123").Return(issued, nil).Once()
	suite.mockRepo.On("MarkLinkingCodeRedeemed", suite.ctx, "abc123").Return(nil).Once()
	suite.mockRepo.On("SaveChannelLink", suite.ctx, mock.MatchedBy(func(l domain.ChannelLink) bool {
		return l.UserID == suite.userID && l.Channel == "telegram" && l.ChannelAccountID == "tg-42"
	})).Return(nil).Once()

	link, err := suite.service.RedeemCode(suite.ctx, "abc123", "tg-42")

	suite.NoError(err)
	suite.Require().NotNil(link)
	suite.Equal("tg-42", link.ChannelAccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LinkingServiceTestSuite) TestRedeemCode_UnknownCode() {
	suite.mockRepo.On("FindLinkingCode", suite.ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	link, err := suite.service.RedeemCode(suite.ctx, "nope", "tg-42")

	suite.Nil(link)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LinkingServiceTestSuite) TestRedeemCode_ExpiredCode() {
	issued := &domain.LinkingCode{
		Code:      "old",
		UserID:    suite.userID,
		Channel:   "telegram",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	suite.mockRepo.On("FindLinkingCode", suite.ctx, "old").Return(issued, nil).Once()

	link, err := suite.service.RedeemCode(suite.ctx, "old", "tg-42")

	suite.Nil(link)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkLinkingCodeRedeemed")
}

func (suite *LinkingServiceTestSuite) TestRedeemCode_AlreadyRedeemed() {
	redeemedAt := time.Now().Add(-time.Minute)
	issued := &domain.LinkingCode{
		Code:       "used",
		UserID:     suite.userID,
		Channel:    "telegram",
		ExpiresAt:  time.Now().Add(5 * time.Minute),
		RedeemedAt: &redeemedAt,
	}
	suite.mockRepo.On("FindLinkingCode", suite.ctx, "used").Return(issued, nil).Once()

	link, err := suite.service.RedeemCode(suite.ctx, "used", "tg-42")

	suite.Nil(link)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveChannelLink")
}

func (suite *LinkingServiceTestSuite) TestIsLinked_NotFoundMeansFalse() {
	suite.mockRepo.On("FindChannelLink", suite.ctx, suite.userID, "telegram").Return(nil, apperrors.ErrNotFound).Once()

	linked, err := suite.service.IsLinked(suite.ctx, suite.userID, "telegram")

	suite.NoError(err)
	suite.False(linked)
}

func TestLinkingService(t *testing.T) {
	suite.Run(t, new(LinkingServiceTestSuite))
}
