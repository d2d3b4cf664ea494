package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// The standalone repositories run each call on its own; the UnitOfWork hands
// out transaction-bound copies of them.
type RepositoryProvider struct {
	AccountRepo  AccountRepositoryFacade
	JournalRepo  JournalRepositoryFacade
	SequenceRepo SequenceRepository
	LedgerRepo   LedgerReader
	UnitOfWork   UnitOfWork
}
