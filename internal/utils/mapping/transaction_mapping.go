package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction owned by userID.
func ToModelTransaction(userID string, d domain.Transaction) (models.Transaction, error) {
	txnDate, err := time.Parse(domain.DateLayout, d.Date)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid transaction date %q: %w", d.Date, err)
	}
	var subcategoryID *string
	if d.SubcategoryID != "" {
		s := d.SubcategoryID
		subcategoryID = &s
	}
	return models.Transaction{
		UserID:        userID,
		TransactionID: d.ID,
		TxnDate:       txnDate,
		Amount:        d.Amount,
		CategoryID:    d.CategoryID,
		SubcategoryID: subcategoryID,
		Description:   d.Description,
		TxnType:       string(d.Type),
	}, nil
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		ID:          m.TransactionID,
		Date:        m.TxnDate.Format(domain.DateLayout),
		Amount:      m.Amount,
		CategoryID:  m.CategoryID,
		Description: m.Description,
		Type:        domain.TransactionType(m.TxnType),
	}
	if m.SubcategoryID != nil {
		d.SubcategoryID = *m.SubcategoryID
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
