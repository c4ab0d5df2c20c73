package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

type workspaceService struct {
	BaseService
	transactions  portssvc.TransactionReaderSvc
	categories    portssvc.CategoryReaderSvc
	subcategories portssvc.SubcategoryReaderSvc
	now           func() time.Time
}

// NewWorkspaceService creates the service that loads a user's full data set.
func NewWorkspaceService(
	transactions portssvc.TransactionReaderSvc,
	categories portssvc.CategoryReaderSvc,
	subcategories portssvc.SubcategoryReaderSvc,
) portssvc.WorkspaceSvcFacade {
	return &workspaceService{
		transactions:  transactions,
		categories:    categories,
		subcategories: subcategories,
		now:           time.Now,
	}
}

var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

// LoadWorkspace reads the three collections concurrently. Each read degrades
// on its own, so the only error is a cancelled context.
func (s *workspaceService) LoadWorkspace(ctx context.Context, userID string) (*domain.Workspace, error) {
	ws := &domain.Workspace{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ws.Transactions = s.transactions.ListTransactions(gctx, userID)
		return gctx.Err()
	})
	g.Go(func() error {
		ws.Categories = s.categories.ListCategories(gctx, userID)
		return gctx.Err()
	})
	g.Go(func() error {
		ws.Subcategories = s.subcategories.ListSubcategories(gctx, userID)
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Workspace load aborted", slog.String("user_id", userID))
		return nil, err
	}

	ws.Stats = accounting.ComputeDashboardStats(ws.Transactions, s.now())
	return ws, nil
}
