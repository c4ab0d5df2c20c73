package dto

import "github.com/SscSPs/expense_tracker/internal/core/domain"

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	ID   string                 `json:"id" binding:"omitempty,max=64"`
	Name string                 `json:"name" binding:"required,max=100"`
	Type domain.TransactionType `json:"type" binding:"required,txtype"`
}

// CreateSubcategoryRequest defines the data needed to create a subcategory.
type CreateSubcategoryRequest struct {
	ID       string `json:"id" binding:"omitempty,max=64"`
	ParentID string `json:"parentId" binding:"required"`
	Name     string `json:"name" binding:"required,max=100"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type SubcategoryResponse struct {
	ID       string `json:"id"`
	ParentID string `json:"parentId"`
	Name     string `json:"name"`
}

// CategoryMutationResponse reports the outcome of a category write.
type CategoryMutationResponse struct {
	SyncStatus domain.SyncStatus `json:"syncStatus"`
	Category   CategoryResponse  `json:"category"`
	Error      string            `json:"error,omitempty"`
}

// SubcategoryMutationResponse reports the outcome of a subcategory write.
type SubcategoryMutationResponse struct {
	SyncStatus  domain.SyncStatus   `json:"syncStatus"`
	Subcategory SubcategoryResponse `json:"subcategory"`
	Error       string              `json:"error,omitempty"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Type: string(c.Type)}
}

func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}

func ToSubcategoryResponse(s *domain.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{ID: s.ID, ParentID: s.ParentID, Name: s.Name}
}

func ToListSubcategoryResponse(subcategories []domain.Subcategory) []SubcategoryResponse {
	res := make([]SubcategoryResponse, len(subcategories))
	for i := range subcategories {
		res[i] = ToSubcategoryResponse(&subcategories[i])
	}
	return res
}
