package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

type dataService struct {
	BaseService
	repos *portsrepo.RepositoryProvider
}

// NewDataService creates the service for bulk data operations.
func NewDataService(repos *portsrepo.RepositoryProvider, publisher portssvc.ChangePublisher) portssvc.DataSvcFacade {
	return &dataService{
		BaseService: BaseService{Publisher: publisher},
		repos:       repos,
	}
}

var _ portssvc.DataSvcFacade = (*dataService)(nil)

// ResetData attempts every removal even when an earlier one fails.
// Subcategories go before categories.
func (s *dataService) ResetData(ctx context.Context, userID string) error {
	var errs []error
	if err := s.repos.TransactionRepo.DeleteAllTransactions(ctx, userID); err != nil {
		errs = append(errs, err)
	}
	if err := s.repos.SubcategoryRepo.DeleteAllSubcategories(ctx, userID); err != nil {
		errs = append(errs, err)
	}
	if err := s.repos.CategoryRepo.DeleteAllCategories(ctx, userID); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		s.LogError(ctx, err, "Failed to reset user data", slog.String("user_id", userID))
		return writeError(err)
	}

	s.LogInfo(ctx, "User data reset", slog.String("user_id", userID))
	s.Notify(ctx, userID, domain.EntityAll, domain.OpReset, "")
	return nil
}
