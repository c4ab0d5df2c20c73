package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `
		SELECT user_id, id, name, txn_type, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY created_at, id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelCats, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		var c models.Category
		err := row.Scan(&c.UserID, &c.CategoryID, &c.Name, &c.TxnType, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Category{}, nil
		}
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	return mapping.ToDomainCategorySlice(modelCats), nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, userID string, category domain.Category) error {
	m := mapping.ToModelCategory(userID, category)
	query := `INSERT INTO categories (user_id, id, name, txn_type) VALUES ($1, $2, $3, $4);`
	if _, err := r.Pool.Exec(ctx, query, m.UserID, m.CategoryID, m.Name, m.TxnType); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, m.CategoryID)
		}
		return fmt.Errorf("failed to insert category %s: %w", m.CategoryID, err)
	}
	return nil
}

// DeleteCategory removes the category and its subcategories in one database transaction.
// Deleting an ID that is not stored is not an error.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, userID string, categoryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM subcategories WHERE user_id = $1 AND parent_id = $2;`, userID, categoryID); err != nil {
		return fmt.Errorf("failed to delete subcategories of category %s: %w", categoryID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM categories WHERE user_id = $1 AND id = $2;`, userID, categoryID); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxCategoryRepository) DeleteAllCategories(ctx context.Context, userID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete categories of user %s: %w", userID, err)
	}
	return nil
}
