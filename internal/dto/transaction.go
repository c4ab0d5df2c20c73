package dto

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// ID is optional; clients that track entities optimistically may supply their own.
type CreateTransactionRequest struct {
	ID            string                 `json:"id" binding:"omitempty,max=64"`
	Date          string                 `json:"date" binding:"required,isodate"`
	Amount        decimal.Decimal        `json:"amount" swaggertype:"string" example:"42.50"`
	CategoryID    string                 `json:"categoryId" binding:"required"`
	SubcategoryID string                 `json:"subcategoryId"`
	Description   string                 `json:"description" binding:"required,max=255"`
	Type          domain.TransactionType `json:"type" binding:"required,txtype"`
}

// UpdateTransactionRequest replaces every editable field of a transaction.
type UpdateTransactionRequest struct {
	Date          string                 `json:"date" binding:"required,isodate"`
	Amount        decimal.Decimal        `json:"amount" swaggertype:"string" example:"42.50"`
	CategoryID    string                 `json:"categoryId" binding:"required"`
	SubcategoryID string                 `json:"subcategoryId"`
	Description   string                 `json:"description" binding:"required,max=255"`
	Type          domain.TransactionType `json:"type" binding:"required,txtype"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string"`
	CategoryID    string          `json:"categoryId"`
	SubcategoryID string          `json:"subcategoryId"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
}

// TransactionMutationResponse reports the outcome of a transaction write.
type TransactionMutationResponse struct {
	SyncStatus  domain.SyncStatus   `json:"syncStatus"`
	Transaction TransactionResponse `json:"transaction"`
	Error       string              `json:"error,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Date:          t.Date,
		Amount:        t.Amount,
		CategoryID:    t.CategoryID,
		SubcategoryID: t.SubcategoryID,
		Description:   t.Description,
		Type:          string(t.Type),
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to TransactionResponse DTOs
func ToListTransactionResponse(transactions []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		res[i] = ToTransactionResponse(&transactions[i])
	}
	return res
}
