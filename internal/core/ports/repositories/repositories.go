package repositories

import "github.com/SscSPs/expense_tracker/internal/core/domain"

// RepositoryProvider holds all repository interfaces needed by services.
// Every repository in a provider is backed by the same storage mode.
type RepositoryProvider struct {
	Mode            domain.StorageMode
	TransactionRepo TransactionRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	SubcategoryRepo SubcategoryRepositoryFacade
	SessionRepo     SessionRepository
}
