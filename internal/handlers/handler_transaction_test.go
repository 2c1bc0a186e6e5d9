package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/PFTrackr/fin_tracker_app/internal/apperrors"
	"github.com/PFTrackr/fin_tracker_app/internal/core/domain"
	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
	"github.com/PFTrackr/fin_tracker_app/internal/middleware"
)

const testUserID = "5de193cf-30e9-4f2e-9a62-6a0ac476b0eb"

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string, requestingUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, requestingUserID string) error {
	args := m.Called(ctx, transactionID, requestingUserID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fta-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerTransactionRoutes(v1, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) authedRequest(method, url string, body *string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, jsonBody(*body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_PassesFiltersThrough() {
	expected := &dto.ListTransactionsResponse{
		Transactions: []dto.TransactionResponse{
			{
				TransactionID: uuid.NewString(),
				Type:          "EXPENSE",
				Amount:        decimal.NewFromInt(12),
				Date:          time.Now(),
				Description:   "Coffee",
				CategoryID:    "cat-food",
			},
		},
		CurrentPage:  2,
		TotalPages:   4,
		ItemsPerPage: 5,
		TotalItems:   18,
	}
	suite.mockService.On("ListTransactions",
		mock.Anything,
		testUserID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Search == "coffee" && p.Type == "EXPENSE" && p.CycleID == "all" && p.Page == 2 && p.PerPage == 5
		}),
	).Return(expected, nil).Once()

	url := "/api/v1/transactions?search=coffee&type=EXPENSE&page=2&perPage=5"
	w := suite.authedRequest(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(expected.TotalItems, got.TotalItems)
	suite.Len(got.Transactions, 1)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_ExplicitEmptyCategories() {
	suite.mockService.On("ListTransactions",
		mock.Anything,
		testUserID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Categories == dto.EmptyCategorySelection
		}),
	).Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/transactions?categories=", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_UnknownTypeRejected() {
	w := suite.authedRequest(http.MethodGet, "/api/v1/transactions?type=gift", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	txnID := uuid.NewString()
	suite.mockService.On("CreateTransaction",
		mock.Anything,
		testUserID,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.Type == "EXPENSE" && req.Amount.Equal(decimal.NewFromInt(25))
		}),
	).Return(&domain.Transaction{
		TransactionID: txnID,
		UserID:        testUserID,
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(25),
		Date:          time.Now(),
		CategoryID:    "cat-food",
	}, nil).Once()

	body := fmt.Sprintf(`{"type":"EXPENSE","amount":25,"date":%q,"categoryID":"cat-food"}`, time.Now().Format(time.RFC3339))
	w := suite.authedRequest(http.MethodPost, "/api/v1/transactions", &body)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(txnID, got.TransactionID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidBody() {
	body := `{"type":"GIFT","amount":25}`
	w := suite.authedRequest(http.MethodPost, "/api/v1/transactions", &body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	txnID := uuid.NewString()
	suite.mockService.On("GetTransactionByID", mock.Anything, txnID, testUserID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/transactions/"+txnID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Forbidden() {
	txnID := uuid.NewString()
	suite.mockService.On("DeleteTransaction", mock.Anything, txnID, testUserID).
		Return(apperrors.ErrForbidden).Once()

	w := suite.authedRequest(http.MethodDelete, "/api/v1/transactions/"+txnID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
