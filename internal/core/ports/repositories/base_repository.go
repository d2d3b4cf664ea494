package repositories

import "context"

// TxRepositories is the set of repositories bound to one unit of work.
// Everything done through them commits or rolls back together.
type TxRepositories struct {
	Accounts  AccountRepositoryFacade
	Journals  JournalRepositoryFacade
	Sequences SequenceRepository
	Ledger    LedgerReader
}

// UnitOfWork runs functions inside a storage transaction.
type UnitOfWork interface {
	// Do runs fn in a read-write transaction. The transaction commits when fn
	// returns nil and rolls back otherwise.
	Do(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error

	// ReadSnapshot runs fn against a consistent read-only snapshot.
	ReadSnapshot(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
