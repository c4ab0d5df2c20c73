package domain_test

import (
	"testing"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_CalendarDay(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantYear  int
		wantMonth int
		wantDay   int
		wantOK    bool
	}{
		{name: "valid date", date: "2026-01-20", wantYear: 2026, wantMonth: 1, wantDay: 20, wantOK: true},
		{name: "empty date", date: "", wantOK: false},
		{name: "non numeric month", date: "2026-ab-20", wantOK: false},
		{name: "missing day", date: "2026-01", wantOK: false},
		{name: "month out of range is still numeric", date: "2026-13-01", wantYear: 2026, wantMonth: 13, wantDay: 1, wantOK: true},
		{name: "timestamp instead of day", date: "2026-01-20T10:00:00Z", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d, ok := domain.Transaction{Date: tt.date}.CalendarDay()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantYear, y)
				assert.Equal(t, tt.wantMonth, m)
				assert.Equal(t, tt.wantDay, d)
			}
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	valid := domain.Transaction{
		ID:          "t1",
		Date:        "2026-01-20",
		Amount:      decimal.NewFromInt(5000),
		CategoryID:  "c6",
		Description: "Salário Mensal",
		Type:        domain.Income,
	}

	tests := []struct {
		name    string
		mutate  func(tx *domain.Transaction)
		wantErr string
	}{
		{name: "valid transaction", mutate: func(tx *domain.Transaction) {}},
		{name: "missing ID", mutate: func(tx *domain.Transaction) { tx.ID = "" }, wantErr: "transaction ID is required"},
		{name: "bad date", mutate: func(tx *domain.Transaction) { tx.Date = "20/01/2026" }, wantErr: "YYYY-MM-DD"},
		{name: "month out of range", mutate: func(tx *domain.Transaction) { tx.Date = "2026-13-01" }, wantErr: "YYYY-MM-DD"},
		{name: "day out of range", mutate: func(tx *domain.Transaction) { tx.Date = "2026-02-30" }, wantErr: "YYYY-MM-DD"},
		{name: "zero amount", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.Zero }, wantErr: "amount must be positive"},
		{name: "negative amount", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.NewFromInt(-3) }, wantErr: "amount must be positive"},
		{name: "missing category", mutate: func(tx *domain.Transaction) { tx.CategoryID = " " }, wantErr: "category ID is required"},
		{name: "missing description", mutate: func(tx *domain.Transaction) { tx.Description = "" }, wantErr: "description is required"},
		{name: "unknown type", mutate: func(tx *domain.Transaction) { tx.Type = "transfer" }, wantErr: "invalid transaction type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDefaults_AreFreshCopies(t *testing.T) {
	first := domain.DefaultCategories()
	first[0].Name = "changed"

	second := domain.DefaultCategories()
	assert.Equal(t, "Alimentação", second[0].Name)
	assert.Len(t, second, 7)
	assert.Len(t, domain.DefaultSubcategories(), 6)

	for _, sub := range domain.DefaultSubcategories() {
		_, ok := domain.FindCategory(second, sub.ParentID)
		assert.True(t, ok, "default subcategory %s must point at a default category", sub.ID)
	}
}
