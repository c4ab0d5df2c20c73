package services

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
)

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithClock overrides the time source that decides the current month.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

type reportingService struct {
	BaseService
	transactions portssvc.TransactionReaderSvc
	categories   portssvc.CategoryReaderSvc
	now          func() time.Time
}

// NewReportingService creates the service behind the dashboard views.
func NewReportingService(transactions portssvc.TransactionReaderSvc, categories portssvc.CategoryReaderSvc, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		transactions: transactions,
		categories:   categories,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDashboardStats(ctx context.Context, userID string) domain.DashboardStats {
	return accounting.ComputeDashboardStats(s.transactions.ListTransactions(ctx, userID), s.now())
}

func (s *reportingService) GetExpensesByCategory(ctx context.Context, userID string) []domain.CategoryTotal {
	txns := s.transactions.ListTransactions(ctx, userID)
	return accounting.ExpensesByCategory(txns, s.categories.ListCategories(ctx, userID))
}
