package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/google/uuid"
)

// CategoryServiceOption is a functional option for configuring the category
// and subcategory services
type CategoryServiceOption func(*categoryOptions)

type categoryOptions struct {
	publisher      portssvc.ChangePublisher
	defaultOnEmpty bool
	seedDefaults   bool
	locks          *ReferenceLocks
	subcategories  portsrepo.SubcategoryRepositoryFacade
}

// WithCategoryPublisher sets where committed category changes are announced.
func WithCategoryPublisher(p portssvc.ChangePublisher) CategoryServiceOption {
	return func(o *categoryOptions) {
		o.publisher = p
	}
}

// WithDefaultsOnEmpty makes an empty stored set read as the default set.
// Stores that already fall back for a missing key leave this off.
func WithDefaultsOnEmpty(enabled bool) CategoryServiceOption {
	return func(o *categoryOptions) {
		o.defaultOnEmpty = enabled
	}
}

// WithSeedDefaults writes the default set back to the store the first time it
// is served in place of an empty one.
func WithSeedDefaults(enabled bool) CategoryServiceOption {
	return func(o *categoryOptions) {
		o.seedDefaults = enabled
	}
}

// WithReferenceLocks shares the reference locks with the transaction service.
func WithReferenceLocks(l *ReferenceLocks) CategoryServiceOption {
	return func(o *categoryOptions) {
		o.locks = l
	}
}

// WithSubcategoryStore lets a category delete keep the default subcategories of
// the remaining categories when it has to store the defaults first.
func WithSubcategoryStore(repo portsrepo.SubcategoryRepositoryFacade) CategoryServiceOption {
	return func(o *categoryOptions) {
		o.subcategories = repo
	}
}

func applyCategoryOptions(options []CategoryServiceOption) categoryOptions {
	var o categoryOptions
	for _, option := range options {
		option(&o)
	}
	if o.locks == nil {
		o.locks = NewReferenceLocks()
	}
	return o
}

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	txnRepo      portsrepo.TransactionReader
	opts         categoryOptions
}

// NewCategoryService creates a new category service. The transaction reader is
// used to refuse removing categories that transactions still point at.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, txnRepo portsrepo.TransactionReader, options ...CategoryServiceOption) portssvc.CategorySvcFacade {
	opts := applyCategoryOptions(options)
	return &categoryService{
		BaseService:  BaseService{Publisher: opts.publisher},
		categoryRepo: repo,
		txnRepo:      txnRepo,
		opts:         opts,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, userID string) []domain.Category {
	categories, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load categories, returning defaults", slog.String("user_id", userID))
		return domain.DefaultCategories()
	}
	if len(categories) > 0 {
		return categories
	}
	if !s.opts.defaultOnEmpty {
		return []domain.Category{}
	}

	defaults := domain.DefaultCategories()
	if s.opts.seedDefaults {
		s.seed(ctx, userID, defaults)
	}
	return defaults
}

func (s *categoryService) seed(ctx context.Context, userID string, defaults []domain.Category) {
	for _, c := range defaults {
		if err := s.categoryRepo.SaveCategory(ctx, userID, c); err != nil {
			s.LogError(ctx, err, "Failed to seed default category", slog.String("category_id", c.ID))
			return
		}
	}
	s.LogInfo(ctx, "Seeded default categories", slog.String("user_id", userID))
}

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("category name is required")
	}
	if !req.Type.IsValid() {
		return nil, validationError("invalid category type %q", req.Type)
	}
	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = uuid.NewString()
	}
	category := domain.Category{ID: id, Name: name, Type: req.Type}

	unlock := s.opts.locks.Lock(userID)
	defer unlock()

	if s.opts.defaultOnEmpty {
		// The first stored row would hide the defaults the user sees.
		if err := s.storeDefaultsIfEmpty(ctx, userID, ""); err != nil {
			s.LogError(ctx, err, "Failed to store default categories", slog.String("category_id", category.ID))
			return &category, writeError(err)
		}
	}

	if err := s.categoryRepo.SaveCategory(ctx, userID, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.ID))
		return &category, writeError(err)
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.ID))
	s.Notify(ctx, userID, domain.EntityCategory, domain.OpCreate, category.ID)
	return &category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	unlock := s.opts.locks.Lock(userID)
	defer unlock()

	stored, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load categories for delete", slog.String("category_id", categoryID))
		return fmt.Errorf("%w: loading categories: %v", apperrors.ErrPersistence, err)
	}
	defaulted := len(stored) == 0 && s.opts.defaultOnEmpty
	visible := stored
	if defaulted {
		visible = domain.DefaultCategories()
	}
	if _, ok := domain.FindCategory(visible, categoryID); !ok {
		return fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}

	txns, err := s.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check category usage", slog.String("category_id", categoryID))
		return fmt.Errorf("%w: checking category usage: %v", apperrors.ErrPersistence, err)
	}
	for _, t := range txns {
		if t.CategoryID == categoryID {
			return fmt.Errorf("category %s is referenced by transaction %s: %w", categoryID, t.ID, apperrors.ErrInUse)
		}
	}

	// Defaults served for an empty store are not rows; store the rest of
	// them or the delete would match nothing.
	if defaulted {
		if err := s.storeDefaults(ctx, userID, categoryID); err != nil {
			s.LogError(ctx, err, "Failed to store default categories", slog.String("category_id", categoryID))
			return writeError(err)
		}
	}

	if err := s.categoryRepo.DeleteCategory(ctx, userID, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return writeError(err)
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	s.Notify(ctx, userID, domain.EntityCategory, domain.OpDelete, categoryID)
	return nil
}

// storeDefaultsIfEmpty stores the defaults when nothing is stored yet.
func (s *categoryService) storeDefaultsIfEmpty(ctx context.Context, userID string, skipID string) error {
	stored, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}
	if len(stored) > 0 {
		return nil
	}
	return s.storeDefaults(ctx, userID, skipID)
}

// storeDefaults writes the default categories except skipID. Default
// subcategories are written too when none are stored, minus the children
// of skipID.
func (s *categoryService) storeDefaults(ctx context.Context, userID string, skipID string) error {
	for _, c := range domain.DefaultCategories() {
		if c.ID == skipID {
			continue
		}
		if err := s.categoryRepo.SaveCategory(ctx, userID, c); err != nil {
			return err
		}
	}
	if s.opts.subcategories == nil || skipID == "" {
		return nil
	}

	subs, err := s.opts.subcategories.ListSubcategories(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading subcategories: %w", err)
	}
	if len(subs) > 0 {
		return nil
	}
	for _, sub := range domain.DefaultSubcategories() {
		if sub.ParentID == skipID {
			continue
		}
		if err := s.opts.subcategories.SaveSubcategory(ctx, userID, sub); err != nil {
			return err
		}
	}
	return nil
}

// subcategoryService implements the SubcategorySvcFacade interface
type subcategoryService struct {
	BaseService
	subcategoryRepo portsrepo.SubcategoryRepositoryFacade
	categories      portssvc.CategoryReaderSvc
	txnRepo         portsrepo.TransactionReader
	opts            categoryOptions
}

// NewSubcategoryService creates a new subcategory service. Parents are resolved
// through the category reader so default categories count as existing.
func NewSubcategoryService(
	repo portsrepo.SubcategoryRepositoryFacade,
	categories portssvc.CategoryReaderSvc,
	txnRepo portsrepo.TransactionReader,
	options ...CategoryServiceOption,
) portssvc.SubcategorySvcFacade {
	opts := applyCategoryOptions(options)
	return &subcategoryService{
		BaseService:     BaseService{Publisher: opts.publisher},
		subcategoryRepo: repo,
		categories:      categories,
		txnRepo:         txnRepo,
		opts:            opts,
	}
}

var _ portssvc.SubcategorySvcFacade = (*subcategoryService)(nil)

func (s *subcategoryService) ListSubcategories(ctx context.Context, userID string) []domain.Subcategory {
	subcategories, err := s.subcategoryRepo.ListSubcategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load subcategories, returning defaults", slog.String("user_id", userID))
		return domain.DefaultSubcategories()
	}
	if len(subcategories) > 0 {
		return subcategories
	}
	if !s.opts.defaultOnEmpty {
		return []domain.Subcategory{}
	}

	defaults := domain.DefaultSubcategories()
	if s.opts.seedDefaults {
		for _, sub := range defaults {
			if err := s.subcategoryRepo.SaveSubcategory(ctx, userID, sub); err != nil {
				s.LogError(ctx, err, "Failed to seed default subcategory", slog.String("subcategory_id", sub.ID))
				return defaults
			}
		}
		s.LogInfo(ctx, "Seeded default subcategories", slog.String("user_id", userID))
	}
	return defaults
}

func (s *subcategoryService) CreateSubcategory(ctx context.Context, userID string, req dto.CreateSubcategoryRequest) (*domain.Subcategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("subcategory name is required")
	}

	unlock := s.opts.locks.Lock(userID)
	defer unlock()

	if _, ok := domain.FindCategory(s.categories.ListCategories(ctx, userID), req.ParentID); !ok {
		return nil, validationError("parent category %s does not exist", req.ParentID)
	}
	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = uuid.NewString()
	}
	sub := domain.Subcategory{ID: id, ParentID: req.ParentID, Name: name}

	if s.opts.defaultOnEmpty {
		if err := s.storeDefaultsIfEmpty(ctx, userID, ""); err != nil {
			s.LogError(ctx, err, "Failed to store default subcategories", slog.String("subcategory_id", sub.ID))
			return &sub, writeError(err)
		}
	}

	if err := s.subcategoryRepo.SaveSubcategory(ctx, userID, sub); err != nil {
		s.LogError(ctx, err, "Failed to save subcategory", slog.String("subcategory_id", sub.ID))
		return &sub, writeError(err)
	}

	s.LogInfo(ctx, "Subcategory created", slog.String("subcategory_id", sub.ID), slog.String("parent_id", sub.ParentID))
	s.Notify(ctx, userID, domain.EntitySubcategory, domain.OpCreate, sub.ID)
	return &sub, nil
}

func (s *subcategoryService) DeleteSubcategory(ctx context.Context, userID string, subcategoryID string) error {
	unlock := s.opts.locks.Lock(userID)
	defer unlock()

	stored, err := s.subcategoryRepo.ListSubcategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load subcategories for delete", slog.String("subcategory_id", subcategoryID))
		return fmt.Errorf("%w: loading subcategories: %v", apperrors.ErrPersistence, err)
	}
	defaulted := len(stored) == 0 && s.opts.defaultOnEmpty
	visible := stored
	if defaulted {
		visible = domain.DefaultSubcategories()
	}
	if _, ok := domain.FindSubcategory(visible, subcategoryID); !ok {
		return fmt.Errorf("subcategory %s: %w", subcategoryID, apperrors.ErrNotFound)
	}

	txns, err := s.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check subcategory usage", slog.String("subcategory_id", subcategoryID))
		return fmt.Errorf("%w: checking subcategory usage: %v", apperrors.ErrPersistence, err)
	}
	for _, t := range txns {
		if t.SubcategoryID == subcategoryID {
			return fmt.Errorf("subcategory %s is referenced by transaction %s: %w", subcategoryID, t.ID, apperrors.ErrInUse)
		}
	}

	if defaulted {
		if err := s.storeDefaults(ctx, userID, subcategoryID); err != nil {
			s.LogError(ctx, err, "Failed to store default subcategories", slog.String("subcategory_id", subcategoryID))
			return writeError(err)
		}
	}

	if err := s.subcategoryRepo.DeleteSubcategory(ctx, userID, subcategoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete subcategory", slog.String("subcategory_id", subcategoryID))
		return writeError(err)
	}

	s.LogInfo(ctx, "Subcategory deleted", slog.String("subcategory_id", subcategoryID))
	s.Notify(ctx, userID, domain.EntitySubcategory, domain.OpDelete, subcategoryID)
	return nil
}

func (s *subcategoryService) storeDefaultsIfEmpty(ctx context.Context, userID string, skipID string) error {
	stored, err := s.subcategoryRepo.ListSubcategories(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading subcategories: %w", err)
	}
	if len(stored) > 0 {
		return nil
	}
	return s.storeDefaults(ctx, userID, skipID)
}

// storeDefaults writes the default subcategories except skipID.
func (s *subcategoryService) storeDefaults(ctx context.Context, userID string, skipID string) error {
	for _, sub := range domain.DefaultSubcategories() {
		if sub.ID == skipID {
			continue
		}
		if err := s.subcategoryRepo.SaveSubcategory(ctx, userID, sub); err != nil {
			return err
		}
	}
	return nil
}
