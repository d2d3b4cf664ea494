package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds pool-backed repositories and a unit of work
// whose writers wait at most lockTimeout for a row lock.
func NewRepositoryProvider(dbPool *pgxpool.Pool, lockTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		JournalRepo:  newPgxJournalRepository(dbPool),
		SequenceRepo: newPgxSequenceRepository(dbPool),
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		UnitOfWork:   NewUnitOfWork(dbPool, lockTimeout),
	}
}
