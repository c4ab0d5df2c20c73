package handlers_test

import (
	"bytes"
	"encoding/json"
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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	categorySvc    *MockCategoryService
	subcategorySvc *MockSubcategoryService
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())

	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))
	suite.categorySvc = new(MockCategoryService)
	suite.subcategorySvc = new(MockSubcategoryService)

	handlers.RegisterCategoryRoutes(suite.router.Group("/api/v1"), suite.categorySvc, suite.subcategorySvc)
}

func (suite *CategoryHandlerTestSuite) TearDownTest() {
	suite.categorySvc.AssertExpectations(suite.T())
	suite.subcategorySvc.AssertExpectations(suite.T())
}

func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (suite *CategoryHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+generateTestToken("alice"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CategoryHandlerTestSuite) TestListCategories() {
	suite.categorySvc.On("ListCategories", mock.Anything, "alice").Return(domain.DefaultCategories()).Once()

	w := suite.do(http.MethodGet, "/api/v1/categories", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 7)
	suite.Equal(dto.CategoryResponse{ID: "c6", Name: "Salário", Type: "income"}, body[5])
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory() {
	req := dto.CreateCategoryRequest{Name: "Pets", Type: domain.Expense}
	suite.categorySvc.On("CreateCategory", mock.Anything, "alice", req).
		Return(&domain.Category{ID: "c8", Name: "Pets", Type: domain.Expense}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/categories", req)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.CategoryMutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.Committed, body.SyncStatus)
	suite.Equal("c8", body.Category.ID)
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_InvalidType() {
	w := suite.do(http.MethodPost, "/api/v1/categories", map[string]string{"name": "Pets", "type": "other"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_InUse() {
	suite.categorySvc.On("DeleteCategory", mock.Anything, "alice", "c1").
		Return(fmt.Errorf("category c1 is referenced by transaction t1: %w", apperrors.ErrInUse)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/categories/c1", nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "referenced by transaction t1")
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_NotFound() {
	suite.categorySvc.On("DeleteCategory", mock.Anything, "alice", "zz").Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/categories/zz", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestCreateSubcategory_StoreFailure() {
	req := dto.CreateSubcategoryRequest{ParentID: "c5", Name: "Cinema"}
	suite.subcategorySvc.On("CreateSubcategory", mock.Anything, "alice", req).
		Return(&domain.Subcategory{ID: "s7", ParentID: "c5", Name: "Cinema"}, fmt.Errorf("%w: disk full", apperrors.ErrPersistence)).Once()

	w := suite.do(http.MethodPost, "/api/v1/subcategories", req)

	suite.Equal(http.StatusBadGateway, w.Code)
	var body dto.SubcategoryMutationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.Failed, body.SyncStatus)
	suite.Equal("s7", body.Subcategory.ID)
}

func (suite *CategoryHandlerTestSuite) TestListAndDeleteSubcategories() {
	suite.subcategorySvc.On("ListSubcategories", mock.Anything, "alice").Return(domain.DefaultSubcategories()).Once()
	suite.subcategorySvc.On("DeleteSubcategory", mock.Anything, "alice", "s1").Return(nil).Once()

	list := suite.do(http.MethodGet, "/api/v1/subcategories", nil)
	del := suite.do(http.MethodDelete, "/api/v1/subcategories/s1", nil)

	suite.Equal(http.StatusOK, list.Code)
	suite.Contains(list.Body.String(), `"parentId":"c1"`)
	suite.Equal(http.StatusOK, del.Code)
}
