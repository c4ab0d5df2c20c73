package services

// ServiceContainer holds instances of all the application services.
// It is the entry point the handlers use for service functionality.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Category    CategorySvcFacade
	Subcategory SubcategorySvcFacade
	Reporting   ReportingSvcFacade
	Advice      AdviceSvcFacade
	Auth        AuthSvcFacade
	Workspace   WorkspaceSvcFacade
	Data        DataSvcFacade
}
