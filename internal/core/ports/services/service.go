package services

// ServiceContainer holds instances of all the application services.
// It is handed to the HTTP handlers.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Journal   JournalSvcFacade
	Ledger    LedgerSvcFacade
	Reporting ReportingService
	Sequence  SequenceSvc
}
