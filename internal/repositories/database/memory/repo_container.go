package memory

import (
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to one in-memory store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	standalone := view{store: store}
	return portsrepo.RepositoryProvider{
		AccountRepo:  &accountRepository{view: standalone},
		JournalRepo:  &journalRepository{view: standalone},
		SequenceRepo: &sequenceRepository{view: standalone},
		LedgerRepo:   &ledgerRepository{view: standalone},
		UnitOfWork:   NewUnitOfWork(store),
	}
}
