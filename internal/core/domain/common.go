package domain

// TransactionType tags money movements and the categories they belong to.
type TransactionType string

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Expense || t == Income
}

// StorageMode identifies which persistence backend serves the entities.
type StorageMode string

const (
	RemoteMode StorageMode = "remote"
	LocalMode  StorageMode = "local"
)

// SyncStatus tells the client whether a mutation reached the store.
type SyncStatus string

const (
	Committed SyncStatus = "committed"
	Failed    SyncStatus = "failed"
)
