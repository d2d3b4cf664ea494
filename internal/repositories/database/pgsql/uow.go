package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type unitOfWork struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

// NewUnitOfWork creates a unit of work over the pool. lockTimeout bounds how
// long a statement in Do waits for a row lock; zero leaves the server default.
func NewUnitOfWork(pool *pgxpool.Pool, lockTimeout time.Duration) portsrepo.UnitOfWork {
	return &unitOfWork{pool: pool, lockTimeout: lockTimeout}
}

func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, true, fn)
}

// ReadSnapshot runs fn in a REPEATABLE READ READ ONLY transaction, so every
// query inside it sees the same committed state without blocking writers.
func (u *unitOfWork) ReadSnapshot(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, false, fn)
}

func (u *unitOfWork) run(ctx context.Context, opts pgx.TxOptions, write bool, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	tx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "Failed to roll back transaction", slog.String("error", rbErr.Error()))
		}
	}()

	if write && u.lockTimeout > 0 {
		// SET cannot take bind parameters.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.lockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return apperrors.NewAppError(500, "failed to set lock timeout", err)
		}
	}

	if err := fn(ctx, newTxRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return mapError("commit transaction", err)
	}
	return nil
}

func newTxRepositories(db querier) portsrepo.TxRepositories {
	return portsrepo.TxRepositories{
		Accounts:  newPgxAccountRepository(db),
		Journals:  newPgxJournalRepository(db),
		Sequences: newPgxSequenceRepository(db),
		Ledger:    newPgxLedgerRepository(db),
	}
}
