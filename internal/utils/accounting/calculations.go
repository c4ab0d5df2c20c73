package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeDashboardStats derives the dashboard figures from a transaction list.
// Monthly figures cover the calendar month and year of now. Only transactions
// whose date has a missing or non-numeric component are skipped.
func ComputeDashboardStats(transactions []domain.Transaction, now time.Time) domain.DashboardStats {
	stats := domain.DashboardStats{
		TotalExpenses:   decimal.Zero,
		MonthlyExpenses: decimal.Zero,
		MonthlyIncome:   decimal.Zero,
		Balance:         decimal.Zero,
	}
	currentYear, currentMonth := now.Year(), int(now.Month())

	for _, txn := range transactions {
		year, month, _, ok := txn.CalendarDay()
		if !ok {
			continue
		}
		isCurrentMonth := year == currentYear && month == currentMonth

		switch txn.Type {
		case domain.Expense:
			stats.TotalExpenses = stats.TotalExpenses.Add(txn.Amount)
			stats.Balance = stats.Balance.Sub(txn.Amount)
			if isCurrentMonth {
				stats.MonthlyExpenses = stats.MonthlyExpenses.Add(txn.Amount)
			}
		case domain.Income:
			stats.Balance = stats.Balance.Add(txn.Amount)
			if isCurrentMonth {
				stats.MonthlyIncome = stats.MonthlyIncome.Add(txn.Amount)
			}
		}
	}

	return stats
}

// ExpensesByCategory sums expense amounts per expense category.
// Categories with no spending are dropped; the rest are sorted by amount, largest first.
func ExpensesByCategory(transactions []domain.Transaction, categories []domain.Category) []domain.CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if txn.Type != domain.Expense {
			continue
		}
		sums[txn.CategoryID] = sums[txn.CategoryID].Add(txn.Amount)
	}

	totals := make([]domain.CategoryTotal, 0, len(categories))
	for _, cat := range categories {
		if cat.Type != domain.Expense {
			continue
		}
		amount, ok := sums[cat.ID]
		if !ok || !amount.IsPositive() {
			continue
		}
		totals = append(totals, domain.CategoryTotal{CategoryID: cat.ID, Name: cat.Name, Amount: amount})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		if !totals[i].Amount.Equal(totals[j].Amount) {
			return totals[i].Amount.GreaterThan(totals[j].Amount)
		}
		return totals[i].Name < totals[j].Name
	})
	return totals
}

// FormatAmount renders an amount with two decimal places, e.g. 12.3 -> "12.30".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
