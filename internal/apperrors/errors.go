package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnbalancedEntry indicates that a journal entry's debit and credit totals differ.
// It always travels together with ErrValidation.
var ErrUnbalancedEntry = errors.New("journal entry is not balanced")

// ErrState indicates the request is well-formed but conflicts with the current
// state of the ledger (inactive account, missing designated account, already reversed).
var ErrState = errors.New("invalid state for operation")

// ErrConcurrency indicates contention with another writer. Callers may retry.
var ErrConcurrency = errors.New("concurrent modification")

// ErrInternalInconsistency indicates the ledger failed one of its own invariants.
// The current operation must abort and must not be retried automatically.
var ErrInternalInconsistency = errors.New("internal ledger inconsistency")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// UnbalancedEntryError reports the two totals of a rejected entry.
type UnbalancedEntryError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry is not balanced: total debit %s, total credit %s",
		e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2))
}

// Unwrap lets errors.Is match both ErrUnbalancedEntry and ErrValidation.
func (e *UnbalancedEntryError) Unwrap() []error {
	return []error{ErrUnbalancedEntry, ErrValidation}
}

// NewUnbalancedEntryError creates an UnbalancedEntryError.
func NewUnbalancedEntryError(totalDebit, totalCredit decimal.Decimal) *UnbalancedEntryError {
	return &UnbalancedEntryError{TotalDebit: totalDebit, TotalCredit: totalCredit}
}

// IsRetryable reports whether the operation that produced err may be retried as-is.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrency)
}

// IsClientError reports whether err was caused by the caller's request.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrState) ||
		errors.Is(err, ErrDuplicate)
}
