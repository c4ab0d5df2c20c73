package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo       portsrepo.TransactionRepositoryFacade
	categories    portssvc.CategoryReaderSvc
	subcategories portssvc.SubcategoryReaderSvc
	locks         *ReferenceLocks
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionPublisher sets where committed transaction changes are announced.
func WithTransactionPublisher(p portssvc.ChangePublisher) TransactionServiceOption {
	return func(s *transactionService) {
		s.Publisher = p
	}
}

// WithTransactionLocks shares the reference locks with the category services so
// a transaction cannot be written against a category being deleted.
func WithTransactionLocks(l *ReferenceLocks) TransactionServiceOption {
	return func(s *transactionService) {
		s.locks = l
	}
}

// NewTransactionService creates a new transaction service. The category readers
// are used to check that a transaction points at a category of its own type.
func NewTransactionService(
	repo portsrepo.TransactionRepositoryFacade,
	categories portssvc.CategoryReaderSvc,
	subcategories portssvc.SubcategoryReaderSvc,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:       repo,
		categories:    categories,
		subcategories: subcategories,
		locks:         NewReferenceLocks(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, userID string) []domain.Transaction {
	txns, err := s.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions, returning empty list", slog.String("user_id", userID))
		return []domain.Transaction{}
	}
	if txns == nil {
		return []domain.Transaction{}
	}
	return txns
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = uuid.NewString()
	}
	txn := domain.Transaction{
		ID:            id,
		Date:          req.Date,
		Amount:        req.Amount,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Description:   strings.TrimSpace(req.Description),
		Type:          req.Type,
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if err := s.validate(ctx, userID, txn); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, userID, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.ID))
		return &txn, writeError(err)
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.ID))
	s.Notify(ctx, userID, domain.EntityTransaction, domain.OpCreate, txn.ID)
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn := domain.Transaction{
		ID:            transactionID,
		Date:          req.Date,
		Amount:        req.Amount,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Description:   strings.TrimSpace(req.Description),
		Type:          req.Type,
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if err := s.validate(ctx, userID, txn); err != nil {
		return nil, err
	}

	if err := s.txnRepo.UpdateTransaction(ctx, userID, txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", txn.ID))
		return &txn, writeError(err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", txn.ID))
	s.Notify(ctx, userID, domain.EntityTransaction, domain.OpUpdate, txn.ID)
	return &txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return writeError(err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	s.Notify(ctx, userID, domain.EntityTransaction, domain.OpDelete, transactionID)
	return nil
}

// validate checks the transaction fields and that its category resolves to one
// of the same type, with the subcategory (if any) under it.
func (s *transactionService) validate(ctx context.Context, userID string, txn domain.Transaction) error {
	if err := txn.Validate(); err != nil {
		return validationError("%v", err)
	}

	cat, ok := domain.FindCategory(s.categories.ListCategories(ctx, userID), txn.CategoryID)
	if !ok {
		return validationError("category %s does not exist", txn.CategoryID)
	}
	if cat.Type != txn.Type {
		return validationError("category %s is for %s transactions, not %s", cat.ID, cat.Type, txn.Type)
	}

	if txn.SubcategoryID == "" {
		return nil
	}
	sub, ok := domain.FindSubcategory(s.subcategories.ListSubcategories(ctx, userID), txn.SubcategoryID)
	if !ok {
		return validationError("subcategory %s does not exist", txn.SubcategoryID)
	}
	if sub.ParentID != cat.ID {
		return validationError("subcategory %s does not belong to category %s", sub.ID, cat.ID)
	}
	return nil
}
