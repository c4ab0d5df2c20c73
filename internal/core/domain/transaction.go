package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format used for transaction dates.
const DateLayout = "2006-01-02"

// Transaction is a single dated, categorized money movement.
type Transaction struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"` // YYYY-MM-DD, no time component
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    string          `json:"categoryId"`
	SubcategoryID string          `json:"subcategoryId"` // empty when not set
	Description   string          `json:"description"`
	Type          TransactionType `json:"type"`
}

// CalendarDay splits Date into numeric year, month and day.
// ok is false only when a component is missing or not a number; the values are
// not range checked.
func (t Transaction) CalendarDay() (year, month, day int, ok bool) {
	parts := strings.Split(t.Date, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}

// Validate checks the fields a transaction needs before it can be stored.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return fmt.Errorf("transaction date %q must be in YYYY-MM-DD format", t.Date)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive")
	}
	if strings.TrimSpace(t.CategoryID) == "" {
		return fmt.Errorf("category ID is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("description is required")
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("invalid transaction type %q", t.Type)
	}
	return nil
}
