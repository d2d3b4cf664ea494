package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the ledger reacts to.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// Constraints whose violation means another writer got there first.
const (
	constraintEntryNumber = "journal_entries_entry_number_key"
	constraintReversal    = "journal_entries_one_reversal_idx"
)

// mapError translates driver errors into application sentinels. The original
// error stays in the chain.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		switch pgErr.ConstraintName {
		case constraintEntryNumber, constraintReversal:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrConcurrency, err)
		}
		return fmt.Errorf("%s: %w: %w", op, apperrors.ErrDuplicate, err)
	case codeForeignKeyViolation:
		return fmt.Errorf("%s: %w: %w", op, apperrors.ErrNotFound, err)
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return fmt.Errorf("%s: %w: %w", op, apperrors.ErrConcurrency, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
