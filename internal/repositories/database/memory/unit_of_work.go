package memory

import (
	"context"

	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
)

// unitOfWork serialises writers on the store lock. A failed Do restores the
// state captured before fn ran.
type unitOfWork struct {
	store *Store
}

// NewUnitOfWork creates a unit of work over the store.
func NewUnitOfWork(store *Store) portsrepo.UnitOfWork {
	return &unitOfWork{store: store}
}

func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	saved := u.store.state.snapshot()
	defer func() {
		if p := recover(); p != nil {
			u.store.state = saved
			panic(p)
		}
		if err != nil {
			u.store.state = saved
		}
	}()

	return fn(ctx, txRepositories(view{store: u.store, held: true}))
}

func (u *unitOfWork) ReadSnapshot(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	return fn(ctx, txRepositories(view{store: u.store, held: true, readOnly: true}))
}

func txRepositories(v view) portsrepo.TxRepositories {
	return portsrepo.TxRepositories{
		Accounts:  &accountRepository{view: v},
		Journals:  &journalRepository{view: v},
		Sequences: &sequenceRepository{view: v},
		Ledger:    &ledgerRepository{view: v},
	}
}
