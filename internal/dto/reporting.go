package dto

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse carries the raw figures and their two-decimal display form.
type DashboardStatsResponse struct {
	TotalExpenses   decimal.Decimal   `json:"totalExpenses" swaggertype:"string"`
	MonthlyExpenses decimal.Decimal   `json:"monthlyExpenses" swaggertype:"string"`
	MonthlyIncome   decimal.Decimal   `json:"monthlyIncome" swaggertype:"string"`
	Balance         decimal.Decimal   `json:"balance" swaggertype:"string"`
	Formatted       map[string]string `json:"formatted"`
}

// CategoryTotalResponse is one slice of the expenses-by-category chart.
type CategoryTotalResponse struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string"`
}

// AdviceResponse wraps the generated advice text (markdown).
type AdviceResponse struct {
	Advice string `json:"advice"`
}

// ToDashboardStatsResponse converts domain.DashboardStats to its DTO
func ToDashboardStatsResponse(s domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalExpenses:   s.TotalExpenses,
		MonthlyExpenses: s.MonthlyExpenses,
		MonthlyIncome:   s.MonthlyIncome,
		Balance:         s.Balance,
		Formatted: map[string]string{
			"totalExpenses":   accounting.FormatAmount(s.TotalExpenses),
			"monthlyExpenses": accounting.FormatAmount(s.MonthlyExpenses),
			"monthlyIncome":   accounting.FormatAmount(s.MonthlyIncome),
			"balance":         accounting.FormatAmount(s.Balance),
		},
	}
}

func ToListCategoryTotalResponse(totals []domain.CategoryTotal) []CategoryTotalResponse {
	res := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		res[i] = CategoryTotalResponse{CategoryID: t.CategoryID, Name: t.Name, Amount: t.Amount}
	}
	return res
}
