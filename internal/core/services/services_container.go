package services

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
)

// NewServiceContainer wires every service on top of one repository provider.
func NewServiceContainer(
	cfg *config.Config,
	repos *portsrepo.RepositoryProvider,
	advisor portssvc.Advisor,
	publisher portssvc.ChangePublisher,
) *portssvc.ServiceContainer {
	locks := NewReferenceLocks()
	categoryOpts := []CategoryServiceOption{
		WithCategoryPublisher(publisher),
		WithReferenceLocks(locks),
		// The local store already serves defaults for a missing key; an
		// explicitly emptied list stays empty there.
		WithDefaultsOnEmpty(repos.Mode == domain.RemoteMode),
		WithSeedDefaults(cfg.SeedDefaults),
	}

	categorySvc := NewCategoryService(repos.CategoryRepo, repos.TransactionRepo,
		append(categoryOpts, WithSubcategoryStore(repos.SubcategoryRepo))...)
	subcategorySvc := NewSubcategoryService(repos.SubcategoryRepo, categorySvc, repos.TransactionRepo, categoryOpts...)
	transactionSvc := NewTransactionService(repos.TransactionRepo, categorySvc, subcategorySvc,
		WithTransactionPublisher(publisher), WithTransactionLocks(locks))
	adviceSvc := NewAdviceService(advisor, transactionSvc, categorySvc)

	tokens := TokenConfig{
		Secret: cfg.JWTSecret,
		Expiry: cfg.JWTExpiryDuration,
		Issuer: cfg.JWTIssuer,
	}

	return &portssvc.ServiceContainer{
		Transaction: transactionSvc,
		Category:    categorySvc,
		Subcategory: subcategorySvc,
		Reporting:   NewReportingService(transactionSvc, categorySvc),
		Advice:      adviceSvc,
		Auth:        NewAuthService(repos.SessionRepo, tokens, repos.Mode, adviceSvc),
		Workspace:   NewWorkspaceService(transactionSvc, categorySvc, subcategorySvc),
		Data:        NewDataService(repos, publisher),
	}
}
