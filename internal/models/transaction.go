package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	UserID        string          `json:"userID"`        // Part of primary key
	TransactionID string          `json:"transactionID"` // Part of primary key
	TxnDate       time.Time       `json:"txnDate"`       // DATE column
	Amount        decimal.Decimal `json:"amount"`        // NUMERIC, always positive
	CategoryID    string          `json:"categoryID"`
	SubcategoryID *string         `json:"subcategoryID"` // Nullable
	Description   string          `json:"description"`
	TxnType       string          `json:"txnType"` // expense or income
	CreatedAt     time.Time       `json:"createdAt"`
}
