package services

// ServiceContainer holds instances of all the application services.
// It is built once in the composition root and handed to the handlers;
// there is no ambient singleton.
type ServiceContainer struct {
	Item        ItemSvcFacade
	Transaction TransactionSvcFacade
	Reporting   ReportingService
	User        UserSvcFacade
}
