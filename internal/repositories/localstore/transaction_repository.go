package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

type transactionRepository struct {
	store *Store
}

func newTransactionRepository(store *Store) *transactionRepository {
	return &transactionRepository{store: store}
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func (r *transactionRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return loadList[domain.Transaction](ctx, r.store, transactionsKey(userID), nil)
}

func (r *transactionRepository) SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	return updateList[domain.Transaction](ctx, r.store, transactionsKey(userID), nil, func(raw []json.RawMessage) ([]json.RawMessage, error) {
		return appendUnique(raw, txn.ID, txn)
	})
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	return updateList[domain.Transaction](ctx, r.store, transactionsKey(userID), nil, func(raw []json.RawMessage) ([]json.RawMessage, error) {
		idx := indexOf(raw, txn.ID)
		if idx < 0 {
			return nil, apperrors.ErrNotFound
		}
		encoded, err := json.Marshal(txn)
		if err != nil {
			return nil, fmt.Errorf("encode transaction %s: %w", txn.ID, err)
		}
		raw[idx] = encoded
		return raw, nil
	})
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	return updateList[domain.Transaction](ctx, r.store, transactionsKey(userID), nil, func(raw []json.RawMessage) ([]json.RawMessage, error) {
		out, removed := removeWhere(raw, func(e json.RawMessage) bool { return elementID(e) == transactionID })
		if removed == 0 {
			return nil, apperrors.ErrNotFound
		}
		return out, nil
	})
}

func (r *transactionRepository) DeleteAllTransactions(ctx context.Context, userID string) error {
	return r.store.Remove(ctx, transactionsKey(userID))
}
