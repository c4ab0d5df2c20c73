package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactions retrieves every transaction of a user in insertion order.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) error

	// UpdateTransaction replaces the stored transaction with the same ID.
	UpdateTransaction(ctx context.Context, userID string, txn domain.Transaction) error

	// DeleteTransaction removes a single transaction.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error

	// DeleteAllTransactions removes every transaction of a user.
	DeleteAllTransactions(ctx context.Context, userID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
