package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// generateTestToken creates a signed JWT for the given user.
func generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "expense-tracker-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string) []domain.Transaction {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Transaction)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context, userID string) []domain.Category {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Category)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock SubcategoryService ---
type MockSubcategoryService struct {
	mock.Mock
}

func (m *MockSubcategoryService) ListSubcategories(ctx context.Context, userID string) []domain.Subcategory {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Subcategory)
}

func (m *MockSubcategoryService) CreateSubcategory(ctx context.Context, userID string, req dto.CreateSubcategoryRequest) (*domain.Subcategory, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subcategory), args.Error(1)
}

func (m *MockSubcategoryService) DeleteSubcategory(ctx context.Context, userID string, subcategoryID string) error {
	args := m.Called(ctx, userID, subcategoryID)
	return args.Error(0)
}

var _ portssvc.SubcategorySvcFacade = (*MockSubcategoryService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetDashboardStats(ctx context.Context, userID string) domain.DashboardStats {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.DashboardStats)
}

func (m *MockReportingService) GetExpensesByCategory(ctx context.Context, userID string) []domain.CategoryTotal {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.CategoryTotal)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock AdviceService ---
type MockAdviceService struct {
	mock.Mock
}

func (m *MockAdviceService) GetAdvice(ctx context.Context, userID string) string {
	args := m.Called(ctx, userID)
	return args.String(0)
}

func (m *MockAdviceService) IsEnabled() bool {
	return m.Called().Bool(0)
}

var _ portssvc.AdviceSvcFacade = (*MockAdviceService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAuthService) GetSession(ctx context.Context, username string) dto.SessionResponse {
	args := m.Called(ctx, username)
	return args.Get(0).(dto.SessionResponse)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock WorkspaceService ---
type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) LoadWorkspace(ctx context.Context, userID string) (*domain.Workspace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

var _ portssvc.WorkspaceSvcFacade = (*MockWorkspaceService)(nil)

// --- Mock DataService ---
type MockDataService struct {
	mock.Mock
}

func (m *MockDataService) ResetData(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

var _ portssvc.DataSvcFacade = (*MockDataService)(nil)
