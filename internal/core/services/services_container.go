package services

import (
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The account registry and sequence generator come first; the engine drives both.
	container.Account = NewAccountService(repos.AccountRepo, repos.UnitOfWork)
	container.Sequence = NewSequenceService()

	container.Journal = NewJournalService(
		repos.UnitOfWork,
		repos.JournalRepo,
		container.Account,
		container.Sequence,
		WithDesignatedAccounts(cfg.DesignatedAccounts),
		WithPostingRetry(cfg.PostingMaxAttempts, cfg.PostingRetryBackoff),
		WithJournalLocation(cfg.LedgerLocation),
	)
	container.Ledger = NewLedgerService(repos.UnitOfWork, WithLedgerLocation(cfg.LedgerLocation))
	container.Reporting = NewReportingService(repos.UnitOfWork, WithReportingLocation(cfg.LedgerLocation))

	return container
}
