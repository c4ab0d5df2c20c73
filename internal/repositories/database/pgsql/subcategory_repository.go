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

type PgxSubcategoryRepository struct {
	BaseRepository
}

func newPgxSubcategoryRepository(pool *pgxpool.Pool) *PgxSubcategoryRepository {
	return &PgxSubcategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SubcategoryRepositoryFacade = (*PgxSubcategoryRepository)(nil)

func (r *PgxSubcategoryRepository) ListSubcategories(ctx context.Context, userID string) ([]domain.Subcategory, error) {
	query := `
		SELECT user_id, id, parent_id, name, created_at
		FROM subcategories
		WHERE user_id = $1
		ORDER BY created_at, id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subcategories for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelSubs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Subcategory, error) {
		var s models.Subcategory
		err := row.Scan(&s.UserID, &s.SubcategoryID, &s.ParentID, &s.Name, &s.CreatedAt)
		return s, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Subcategory{}, nil
		}
		return nil, fmt.Errorf("failed to scan subcategories: %w", err)
	}

	return mapping.ToDomainSubcategorySlice(modelSubs), nil
}

func (r *PgxSubcategoryRepository) SaveSubcategory(ctx context.Context, userID string, subcategory domain.Subcategory) error {
	m := mapping.ToModelSubcategory(userID, subcategory)
	query := `INSERT INTO subcategories (user_id, id, parent_id, name) VALUES ($1, $2, $3, $4);`
	if _, err := r.Pool.Exec(ctx, query, m.UserID, m.SubcategoryID, m.ParentID, m.Name); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: subcategory with ID %s already exists", apperrors.ErrDuplicate, m.SubcategoryID)
		}
		return fmt.Errorf("failed to insert subcategory %s: %w", m.SubcategoryID, err)
	}
	return nil
}

func (r *PgxSubcategoryRepository) DeleteSubcategory(ctx context.Context, userID string, subcategoryID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM subcategories WHERE user_id = $1 AND id = $2;`, userID, subcategoryID); err != nil {
		return fmt.Errorf("failed to delete subcategory %s: %w", subcategoryID, err)
	}
	return nil
}

func (r *PgxSubcategoryRepository) DeleteAllSubcategories(ctx context.Context, userID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM subcategories WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete subcategories of user %s: %w", userID, err)
	}
	return nil
}
