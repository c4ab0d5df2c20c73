package services_test

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	args := m.Called(ctx, userID, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	args := m.Called(ctx, userID, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteAllTransactions(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockCategoryRepository is a mock type for the CategoryRepositoryFacade interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, userID string, category domain.Category) error {
	args := m.Called(ctx, userID, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteAllCategories(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockSubcategoryRepository is a mock type for the SubcategoryRepositoryFacade interface
type MockSubcategoryRepository struct {
	mock.Mock
}

func (m *MockSubcategoryRepository) ListSubcategories(ctx context.Context, userID string) ([]domain.Subcategory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subcategory), args.Error(1)
}

func (m *MockSubcategoryRepository) SaveSubcategory(ctx context.Context, userID string, subcategory domain.Subcategory) error {
	args := m.Called(ctx, userID, subcategory)
	return args.Error(0)
}

func (m *MockSubcategoryRepository) DeleteSubcategory(ctx context.Context, userID string, subcategoryID string) error {
	args := m.Called(ctx, userID, subcategoryID)
	return args.Error(0)
}

func (m *MockSubcategoryRepository) DeleteAllSubcategories(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockSessionRepository is a mock type for the SessionRepository interface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveLastUser(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockSessionRepository) FindLastUser(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) ClearLastUser(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPublisher records published change events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event domain.ChangeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockAdvisor is a mock type for the Advisor port
type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) Advise(ctx context.Context, transactions []domain.Transaction, categories []domain.Category) string {
	args := m.Called(ctx, transactions, categories)
	return args.String(0)
}

func (m *MockAdvisor) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func eventMatching(entity domain.Entity, op domain.ChangeOp, id string) any {
	return mock.MatchedBy(func(e domain.ChangeEvent) bool {
		return e.Entity == entity && e.Op == op && e.ID == id
	})
}
