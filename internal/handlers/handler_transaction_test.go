package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/handlers"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	token       string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())

	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))
	suite.mockService = new(MockTransactionService)
	suite.token = generateTestToken("alice")

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (suite *TransactionHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validTransactionBody() map[string]any {
	return map[string]any{
		"date":        "2026-01-20",
		"amount":      "42.50",
		"categoryId":  "c1",
		"description": "Almoço",
		"type":        "expense",
	}
}

func (suite *TransactionHandlerTestSuite) TestListTransactions() {
	txns := []domain.Transaction{
		{ID: "t1", Date: "2026-01-20", Amount: decimal.NewFromInt(10), CategoryID: "c1", Description: "Café", Type: domain.Expense},
	}
	suite.mockService.On("ListTransactions", mock.Anything, "alice").Return(txns).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("t1", body[0].ID)
	suite.Equal("expense", body[0].Type)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Committed() {
	suite.mockService.On("CreateTransaction", mock.Anything, "alice", mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
		return r.Amount.Equal(decimal.RequireFromString("42.5")) && r.Type == domain.Expense
	})).Return(&domain.Transaction{
		ID: "t9", Date: "2026-01-20", Amount: decimal.RequireFromString("42.5"), CategoryID: "c1", Description: "Almoço", Type: domain.Expense,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", validTransactionBody())

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.TransactionMutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.Committed, body.SyncStatus)
	suite.Equal("t9", body.Transaction.ID)
	suite.Empty(body.Error)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_StoreFailureReportsFailedStatus() {
	rejected := &domain.Transaction{ID: "t9", Date: "2026-01-20", Amount: decimal.NewFromInt(42), CategoryID: "c1", Description: "Almoço", Type: domain.Expense}
	suite.mockService.On("CreateTransaction", mock.Anything, "alice", mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(rejected, fmt.Errorf("%w: connection refused", apperrors.ErrPersistence)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", validTransactionBody())

	suite.Equal(http.StatusBadGateway, w.Code)
	var body dto.TransactionMutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.Failed, body.SyncStatus)
	suite.Equal("t9", body.Transaction.ID)
	suite.Contains(body.Error, "connection refused")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_BindingErrors() {
	tests := []struct {
		name   string
		mutate func(b map[string]any)
	}{
		{name: "bad type", mutate: func(b map[string]any) { b["type"] = "transfer" }},
		{name: "bad date", mutate: func(b map[string]any) { b["date"] = "20/01/2026" }},
		{name: "missing description", mutate: func(b map[string]any) { delete(b, "description") }},
		{name: "missing category", mutate: func(b map[string]any) { b["categoryId"] = "" }},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			body := validTransactionBody()
			tt.mutate(body)

			w := suite.do(http.MethodPost, "/api/v1/transactions", body)

			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ServiceValidationError() {
	suite.mockService.On("CreateTransaction", mock.Anything, "alice", mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, fmt.Errorf("%w: category c1 is for income transactions", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", validTransactionBody())

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "income transactions")
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NotFound() {
	suite.mockService.On("UpdateTransaction", mock.Anything, "alice", "t404", mock.AnythingOfType("dto.UpdateTransactionRequest")).
		Return(&domain.Transaction{ID: "t404"}, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/v1/transactions/t404", validTransactionBody())

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction() {
	suite.mockService.On("DeleteTransaction", mock.Anything, "alice", "t1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/transactions/t1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.DeleteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(dto.DeleteResponse{SyncStatus: domain.Committed, ID: "t1"}, body)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_StoreFailure() {
	suite.mockService.On("DeleteTransaction", mock.Anything, "alice", "t1").
		Return(fmt.Errorf("%w: %v", apperrors.ErrPersistence, errors.New("timeout"))).Once()

	w := suite.do(http.MethodDelete, "/api/v1/transactions/t1", nil)

	suite.Equal(http.StatusBadGateway, w.Code)
	var body dto.DeleteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.Failed, body.SyncStatus)
}

func (suite *TransactionHandlerTestSuite) TestRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}
