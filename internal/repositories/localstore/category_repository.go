package localstore

import (
	"context"
	"encoding/json"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

type categoryRepository struct {
	store *Store
}

var _ portsrepo.CategoryRepositoryFacade = (*categoryRepository)(nil)

// ListCategories returns the default set while the user's key is absent.
func (r *categoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return loadList(ctx, r.store, categoriesKey(userID), domain.DefaultCategories)
}

func (r *categoryRepository) SaveCategory(ctx context.Context, userID string, category domain.Category) error {
	return updateList(ctx, r.store, categoriesKey(userID), domain.DefaultCategories, func(raw []json.RawMessage) ([]json.RawMessage, error) {
		return appendUnique(raw, category.ID, category)
	})
}

// DeleteCategory drops the category, then every subcategory under it.
func (r *categoryRepository) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	err := updateList(ctx, r.store, categoriesKey(userID), domain.DefaultCategories, func(raw []json.RawMessage) ([]json.RawMessage, error) {
		out, _ := removeWhere(raw, func(e json.RawMessage) bool { return elementID(e) == categoryID })
		return out, nil
	})
	if err != nil {
		return err
	}
	return updateList(ctx, r.store, subcategoriesKey(userID), domain.DefaultSubcategories, func(raw []json.RawMessage) ([]json.RawMessage, error) {
		out, _ := removeWhere(raw, func(e json.RawMessage) bool { return parentID(e) == categoryID })
		return out, nil
	})
}

func (r *categoryRepository) DeleteAllCategories(ctx context.Context, userID string) error {
	return r.store.Remove(ctx, categoriesKey(userID))
}

type subcategoryRepository struct {
	store *Store
}

var _ portsrepo.SubcategoryRepositoryFacade = (*subcategoryRepository)(nil)

func (r *subcategoryRepository) ListSubcategories(ctx context.Context, userID string) ([]domain.Subcategory, error) {
	return loadList(ctx, r.store, subcategoriesKey(userID), domain.DefaultSubcategories)
}

func (r *subcategoryRepository) SaveSubcategory(ctx context.Context, userID string, subcategory domain.Subcategory) error {
	return updateList(ctx, r.store, subcategoriesKey(userID), domain.DefaultSubcategories, func(raw []json.RawMessage) ([]json.RawMessage, error) {
		return appendUnique(raw, subcategory.ID, subcategory)
	})
}

func (r *subcategoryRepository) DeleteSubcategory(ctx context.Context, userID string, subcategoryID string) error {
	return updateList(ctx, r.store, subcategoriesKey(userID), domain.DefaultSubcategories, func(raw []json.RawMessage) ([]json.RawMessage, error) {
		out, _ := removeWhere(raw, func(e json.RawMessage) bool { return elementID(e) == subcategoryID })
		return out, nil
	})
}

func (r *subcategoryRepository) DeleteAllSubcategories(ctx context.Context, userID string) error {
	return r.store.Remove(ctx, subcategoriesKey(userID))
}

func parentID(raw json.RawMessage) string {
	var probe struct {
		ParentID string `json:"parentId"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ParentID
}
