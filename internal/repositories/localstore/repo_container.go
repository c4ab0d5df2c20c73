package localstore

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the local-mode repositories over one store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Mode:            domain.LocalMode,
		TransactionRepo: newTransactionRepository(store),
		CategoryRepo:    &categoryRepository{store: store},
		SubcategoryRepo: &subcategoryRepository{store: store},
		SessionRepo:     &sessionRepository{store: store},
	}
}
