package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// CategoryReaderSvc defines read operations for category data
type CategoryReaderSvc interface {
	// ListCategories returns the user's categories, or the defaults when none
	// are stored or the store cannot be read.
	ListCategories(ctx context.Context, userID string) []domain.Category
}

// CategoryWriterSvc defines write operations for category data
type CategoryWriterSvc interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	// DeleteCategory fails with apperrors.ErrInUse while any transaction references the category.
	DeleteCategory(ctx context.Context, userID string, categoryID string) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}

// SubcategoryReaderSvc defines read operations for subcategory data
type SubcategoryReaderSvc interface {
	ListSubcategories(ctx context.Context, userID string) []domain.Subcategory
}

// SubcategoryWriterSvc defines write operations for subcategory data
type SubcategoryWriterSvc interface {
	CreateSubcategory(ctx context.Context, userID string, req dto.CreateSubcategoryRequest) (*domain.Subcategory, error)
	DeleteSubcategory(ctx context.Context, userID string, subcategoryID string) error
}

// SubcategorySvcFacade combines all subcategory-related service interfaces
type SubcategorySvcFacade interface {
	SubcategoryReaderSvc
	SubcategoryWriterSvc
}
