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

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// ListTransactions retrieves a user's transactions in insertion order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT user_id, id, txn_date, amount, category_id, subcategory_id, description, txn_type, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at, id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var t models.Transaction
		err := row.Scan(
			&t.UserID,
			&t.TransactionID,
			&t.TxnDate,
			&t.Amount,
			&t.CategoryID,
			&t.SubcategoryID,
			&t.Description,
			&t.TxnType,
			&t.CreatedAt,
		)
		return t, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	m, err := mapping.ToModelTransaction(userID, txn)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	query := `
		INSERT INTO transactions (user_id, id, txn_date, amount, category_id, subcategory_id, description, txn_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.UserID,
		m.TransactionID,
		m.TxnDate,
		m.Amount,
		m.CategoryID,
		m.SubcategoryID,
		m.Description,
		m.TxnType,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// UpdateTransaction replaces the editable columns of a stored transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	m, err := mapping.ToModelTransaction(userID, txn)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	query := `
		UPDATE transactions
		SET txn_date = $3, amount = $4, category_id = $5, subcategory_id = $6, description = $7, txn_type = $8
		WHERE user_id = $1 AND id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.TransactionID,
		m.TxnDate,
		m.Amount,
		m.CategoryID,
		m.SubcategoryID,
		m.Description,
		m.TxnType,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes one transaction of a user.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1 AND id = $2;`, userID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAllTransactions removes every transaction of a user.
func (r *PgxTransactionRepository) DeleteAllTransactions(ctx context.Context, userID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete transactions of user %s: %w", userID, err)
	}
	return nil
}
