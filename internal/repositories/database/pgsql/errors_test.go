package pgsql

import (
	"errors"
	"testing"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, apperrors.ErrNotFound},
		{"account code taken", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "accounts_code_key"}, apperrors.ErrDuplicate},
		{"entry number collision", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: constraintEntryNumber}, apperrors.ErrConcurrency},
		{"second reversal", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: constraintReversal}, apperrors.ErrConcurrency},
		{"missing account", &pgconn.PgError{Code: codeForeignKeyViolation}, apperrors.ErrNotFound},
		{"lock timeout", &pgconn.PgError{Code: codeLockNotAvailable}, apperrors.ErrConcurrency},
		{"serialization", &pgconn.PgError{Code: codeSerializationFailure}, apperrors.ErrConcurrency},
		{"deadlock", &pgconn.PgError{Code: codeDeadlockDetected}, apperrors.ErrConcurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError("op", tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "driver error stays in the chain")
		})
	}
}

func TestMapError_Passthrough(t *testing.T) {
	assert.NoError(t, mapError("op", nil))

	plain := errors.New("connection reset")
	got := mapError("save entry", plain)
	assert.ErrorIs(t, got, plain)
	assert.False(t, apperrors.IsRetryable(got))
	assert.False(t, apperrors.IsClientError(got))

	syntax := mapError("op", &pgconn.PgError{Code: "42601"})
	assert.False(t, apperrors.IsRetryable(syntax))
}

func TestWhereClause(t *testing.T) {
	var w whereClause
	assert.Equal(t, "", w.String())

	w.add("e.transaction_type = ?", "SALE")
	w.add("l.account_id = ?", "acc-1")
	assert.Equal(t, " WHERE e.transaction_type = $1 AND l.account_id = $2", w.String())
	assert.Len(t, w.args, 2)
}
