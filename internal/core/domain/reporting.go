package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats is the derived, non-persisted summary shown on the dashboard.
type DashboardStats struct {
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"` // current calendar month
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`   // current calendar month
	Balance         decimal.Decimal `json:"balance"`         // all-time income minus expenses
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
}

// Entity names the persisted collections.
type Entity string

const (
	EntityTransaction Entity = "transaction"
	EntityCategory    Entity = "category"
	EntitySubcategory Entity = "subcategory"
	EntityAll         Entity = "all"
)

// ChangeOp is the kind of mutation recorded in a ChangeEvent.
type ChangeOp string

const (
	OpCreate ChangeOp = "create"
	OpUpdate ChangeOp = "update"
	OpDelete ChangeOp = "delete"
	OpReset  ChangeOp = "reset"
)

// ChangeEvent describes a committed mutation.
type ChangeEvent struct {
	User      string    `json:"user"`
	Entity    Entity    `json:"entity"`
	Op        ChangeOp  `json:"op"`
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Workspace is the full per-user data set loaded at session start.
type Workspace struct {
	Transactions  []Transaction
	Categories    []Category
	Subcategories []Subcategory
	Stats         DashboardStats
}
