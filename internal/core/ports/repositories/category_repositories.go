package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// ListCategories retrieves the stored categories of a user.
	// An empty result means the user has none stored.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	SaveCategory(ctx context.Context, userID string, category domain.Category) error
	// DeleteCategory removes the category and every subcategory whose parent it is.
	DeleteCategory(ctx context.Context, userID string, categoryID string) error
	DeleteAllCategories(ctx context.Context, userID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}

// SubcategoryReader defines read operations for subcategory data
type SubcategoryReader interface {
	ListSubcategories(ctx context.Context, userID string) ([]domain.Subcategory, error)
}

// SubcategoryWriter defines write operations for subcategory data
type SubcategoryWriter interface {
	SaveSubcategory(ctx context.Context, userID string, subcategory domain.Subcategory) error
	DeleteSubcategory(ctx context.Context, userID string, subcategoryID string) error
	DeleteAllSubcategories(ctx context.Context, userID string) error
}

// SubcategoryRepositoryFacade combines all subcategory-related repository interfaces
type SubcategoryRepositoryFacade interface {
	SubcategoryReader
	SubcategoryWriter
}
