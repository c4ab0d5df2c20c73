package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	txnRepo       *MockTransactionRepository
	catRepo       *MockCategoryRepository
	subRepo       *MockSubcategoryRepository
	publisher     *MockPublisher
	categories    portssvc.CategorySvcFacade
	subcategories portssvc.SubcategorySvcFacade
	ctx           context.Context
	userID        string
}

func (suite *CategoryServiceTestSuite) build(options ...services.CategoryServiceOption) {
	options = append(options, services.WithCategoryPublisher(suite.publisher))
	suite.categories = services.NewCategoryService(suite.catRepo, suite.txnRepo, options...)
	suite.subcategories = services.NewSubcategoryService(suite.subRepo, suite.categories, suite.txnRepo, options...)
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.txnRepo = new(MockTransactionRepository)
	suite.catRepo = new(MockCategoryRepository)
	suite.subRepo = new(MockSubcategoryRepository)
	suite.publisher = new(MockPublisher)
	suite.ctx = context.Background()
	suite.userID = "alice"
	suite.build()
}

func (suite *CategoryServiceTestSuite) TearDownTest() {
	suite.txnRepo.AssertExpectations(suite.T())
	suite.catRepo.AssertExpectations(suite.T())
	suite.subRepo.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (suite *CategoryServiceTestSuite) TestListCategories_ReadFailureYieldsDefaults() {
	suite.catRepo.On("ListCategories", suite.ctx, suite.userID).Return(nil, errors.New("permission denied")).Once()

	got := suite.categories.ListCategories(suite.ctx, suite.userID)

	suite.Equal(domain.DefaultCategories(), got)
}

func (suite *CategoryServiceTestSuite) TestListCategories_EmptyStaysEmptyWithoutFallback() {
	suite.catRepo.On("ListCategories", suite.ctx, suite.userID).Return([]domain.Category{}, nil).Once()

	got := suite.categories.ListCategories(suite.ctx, suite.userID)

	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *CategoryServiceTestSuite) TestListCategories_EmptyServesDefaultsWithoutWriting() {
	suite.build(services.WithDefaultsOnEmpty(true))
	suite.catRepo.On("ListCategories", suite.ctx, suite.userID).Return([]domain.Category{}, nil).Once()

	got := suite.categories.ListCategories(suite.ctx, suite.userID)

	suite.Len(got, 7)
	suite.catRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestListCategories_SeedsDefaults() {
	suite.build(services.WithDefaultsOnEmpty(true), services.WithSeedDefaults(true))
	suite.catRepo.On("ListCategories", suite.ctx, suite.userID).Return([]domain.Category{}, nil).Once()
	suite.catRepo.On("SaveCategory", suite.ctx, suite.userID, mock.AnythingOfType("domain.Category")).Return(nil).Times(7)

	got := suite.categories.ListCategories(suite.ctx, suite.userID)

	suite.Len(got, 7)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	suite.catRepo.On("SaveCategory", suite.ctx, suite.userID, domain.Category{ID: "c8", Name: "Pets", Type: domain.Expense}).Return(nil).Once()
	suite.publisher.On("Publish", suite.ctx, eventMatching(domain.EntityCategory, domain.OpCreate, "c8")).Return(nil).Once()

	cat, err := suite.categories.CreateCategory(suite.ctx, suite.userID, dto.CreateCategoryRequest{ID: "c8", Name: " Pets ", Type: domain.Expense})

	suite.Require().NoError(err)
	suite.Equal("Pets", cat.Name)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_RejectsBlankName() {
	cat, err := suite.categories.CreateCategory(suite.ctx, suite.userID, dto.CreateCategoryRequest{Name: "   ", Type: domain.Expense})

	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(cat)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_StoreRejects() {
	suite.catRepo.On("SaveCategory", suite.ctx, suite.userID, mock.AnythingOfType("domain.Category")).Return(errors.New("disk full")).Once()

	cat, err := suite.categories.CreateCategory(suite.ctx, suite.userID, dto.CreateCategoryRequest{Name: "Pets", Type: domain.Expense})

	suite.True(errors.Is(err, apperrors.ErrPersistence))
	suite.Require().NotNil(cat)
	suite.NotEmpty(cat.ID)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_RejectedWhileReferenced() {
	suite.catRepo.On("ListCategories", suite.ctx, suite.userID).Return(domain.DefaultCategories(), nil).Once()
	suite.txnRepo.On("ListTransactions", suite.ctx, suite.userID).Return([]domain.Transaction{
		{ID: "t1", Date: "2026-01-10", Amount: decimal.NewFromInt(30), CategoryID: "c1", Description: "Mercado", Type: domain.Expense},
	}, nil).Once()

	err := suite.categories.DeleteCategory(suite.ctx, suite.userID, "c1")

	suite.True(errors.Is(err, apperrors.ErrInUse))
	suite.catRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Unreferenced() {
	suite.catRepo.On("ListCategories", suite.ctx, suite.userID).Return(domain.DefaultCategories(), nil).Once()
	suite.txnRepo.On("ListTransactions", suite.ctx, suite.userID).Return([]domain.Transaction{
		{ID: "t1", CategoryID: "c2"},
	}, nil).Once()
	suite.catRepo.On("DeleteCategory", suite.ctx, suite.userID, "c1").Return(nil).Once()
	suite.publisher.On("Publish", suite.ctx, eventMatching(domain.EntityCategory, domain.OpDelete, "c1")).Return(nil).Once()

	suite.NoError(suite.categories.DeleteCategory(suite.ctx, suite.userID, "c1"))
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Unknown() {
	suite.catRepo.On("ListCategories", suite.ctx, suite.userID).Return(domain.DefaultCategories(), nil).Once()

	err := suite.categories.DeleteCategory(suite.ctx, suite.userID, "nope")

	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_UsageCheckFailure() {
	suite.catRepo.On("ListCategories", suite.ctx, suite.userID).Return(domain.DefaultCategories(), nil).Once()
	suite.txnRepo.On("ListTransactions", suite.ctx, suite.userID).Return(nil, errors.New("network")).Once()

	err := suite.categories.DeleteCategory(suite.ctx, suite.userID, "c1")

	suite.True(errors.Is(err, apperrors.ErrPersistence))
}

func (suite *CategoryServiceTestSuite) TestCreateSubcategory_ParentMustExist() {
	suite.catRepo.On("ListCategories", suite.ctx, suite.userID).Return(domain.DefaultCategories(), nil).Once()

	sub, err := suite.subcategories.CreateSubcategory(suite.ctx, suite.userID, dto.CreateSubcategoryRequest{ParentID: "c42", Name: "Ração"})

	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(sub)
}

func (suite *CategoryServiceTestSuite) TestCreateSubcategory_Success() {
	suite.catRepo.On("ListCategories", suite.ctx, suite.userID).Return(domain.DefaultCategories(), nil).Once()
	suite.subRepo.On("SaveSubcategory", suite.ctx, suite.userID, mock.MatchedBy(func(s domain.Subcategory) bool {
		return s.ParentID == "c5" && s.Name == "Cinema" && s.ID != ""
	})).Return(nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.AnythingOfType("domain.ChangeEvent")).Return(nil).Once()

	sub, err := suite.subcategories.CreateSubcategory(suite.ctx, suite.userID, dto.CreateSubcategoryRequest{ParentID: "c5", Name: "Cinema"})

	suite.Require().NoError(err)
	suite.Equal("c5", sub.ParentID)
}

func (suite *CategoryServiceTestSuite) TestDeleteSubcategory_RejectedWhileReferenced() {
	suite.subRepo.On("ListSubcategories", suite.ctx, suite.userID).Return(domain.DefaultSubcategories(), nil).Once()
	suite.txnRepo.On("ListTransactions", suite.ctx, suite.userID).Return([]domain.Transaction{
		{ID: "t1", CategoryID: "c1", SubcategoryID: "s2"},
	}, nil).Once()

	err := suite.subcategories.DeleteSubcategory(suite.ctx, suite.userID, "s2")

	suite.True(errors.Is(err, apperrors.ErrInUse))
}

func (suite *CategoryServiceTestSuite) TestDeleteSubcategory_Success() {
	suite.subRepo.On("ListSubcategories", suite.ctx, suite.userID).Return(domain.DefaultSubcategories(), nil).Once()
	suite.txnRepo.On("ListTransactions", suite.ctx, suite.userID).Return([]domain.Transaction{}, nil).Once()
	suite.subRepo.On("DeleteSubcategory", suite.ctx, suite.userID, "s3").Return(nil).Once()
	suite.publisher.On("Publish", suite.ctx, eventMatching(domain.EntitySubcategory, domain.OpDelete, "s3")).Return(nil).Once()

	suite.NoError(suite.subcategories.DeleteSubcategory(suite.ctx, suite.userID, "s3"))
}

func (suite *CategoryServiceTestSuite) TestListSubcategories_ReadFailureYieldsDefaults() {
	suite.subRepo.On("ListSubcategories", suite.ctx, suite.userID).Return(nil, errors.New("boom")).Once()

	suite.Equal(domain.DefaultSubcategories(), suite.subcategories.ListSubcategories(suite.ctx, suite.userID))
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_ReadFailureIsPersistence() {
	suite.catRepo.On("ListCategories", suite.ctx, suite.userID).Return(nil, errors.New("network")).Once()

	err := suite.categories.DeleteCategory(suite.ctx, suite.userID, "c1")

	suite.True(errors.Is(err, apperrors.ErrPersistence))
	suite.catRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything, mock.Anything)
}
