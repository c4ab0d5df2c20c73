package services

import (
	"context"
	"log/slog"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

type adviceService struct {
	BaseService
	advisor      portssvc.Advisor
	transactions portssvc.TransactionReaderSvc
	categories   portssvc.CategoryReaderSvc
}

// NewAdviceService creates the service that asks the advisor about a user's spending.
func NewAdviceService(advisor portssvc.Advisor, transactions portssvc.TransactionReaderSvc, categories portssvc.CategoryReaderSvc) portssvc.AdviceSvcFacade {
	return &adviceService{
		advisor:      advisor,
		transactions: transactions,
		categories:   categories,
	}
}

var _ portssvc.AdviceSvcFacade = (*adviceService)(nil)

func (s *adviceService) GetAdvice(ctx context.Context, userID string) string {
	txns := s.transactions.ListTransactions(ctx, userID)
	s.LogDebug(ctx, "Requesting financial advice", slog.String("user_id", userID), slog.Int("transactions", len(txns)))
	return s.advisor.Advise(ctx, txns, s.categories.ListCategories(ctx, userID))
}

func (s *adviceService) IsEnabled() bool {
	return s.advisor.Enabled()
}
