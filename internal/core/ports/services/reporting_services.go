package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// ReportingSvcFacade defines the derived, read-only views over a user's transactions.
type ReportingSvcFacade interface {
	GetDashboardStats(ctx context.Context, userID string) domain.DashboardStats
	GetExpensesByCategory(ctx context.Context, userID string) []domain.CategoryTotal
}

// AdviceSvcFacade produces financial advice for a user.
type AdviceSvcFacade interface {
	// GetAdvice always returns displayable text; failures become fallback messages.
	GetAdvice(ctx context.Context, userID string) string
	IsEnabled() bool
}

// Advisor is the outbound port to the language model.
type Advisor interface {
	Advise(ctx context.Context, transactions []domain.Transaction, categories []domain.Category) string
	Enabled() bool
}

// ChangePublisher announces committed mutations to interested parties.
type ChangePublisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
}
