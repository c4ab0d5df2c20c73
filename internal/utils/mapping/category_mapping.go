package mapping

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
)

func ToModelCategory(userID string, d domain.Category) models.Category {
	return models.Category{
		UserID:     userID,
		CategoryID: d.ID,
		Name:       d.Name,
		TxnType:    string(d.Type),
	}
}

func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		ID:   m.CategoryID,
		Name: m.Name,
		Type: domain.TransactionType(m.TxnType),
	}
}

func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}

func ToModelSubcategory(userID string, d domain.Subcategory) models.Subcategory {
	return models.Subcategory{
		UserID:        userID,
		SubcategoryID: d.ID,
		ParentID:      d.ParentID,
		Name:          d.Name,
	}
}

func ToDomainSubcategory(m models.Subcategory) domain.Subcategory {
	return domain.Subcategory{
		ID:       m.SubcategoryID,
		ParentID: m.ParentID,
		Name:     m.Name,
	}
}

func ToDomainSubcategorySlice(ms []models.Subcategory) []domain.Subcategory {
	ds := make([]domain.Subcategory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSubcategory(m)
	}
	return ds
}
