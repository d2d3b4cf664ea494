package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// LedgerReader holds the read-side aggregations over persisted entries and lines.
type LedgerReader interface {
	// ListEntriesByTransactionDate lists entries in the range ordered by transaction date, then creation time.
	ListEntriesByTransactionDate(ctx context.Context, dateRange domain.DateRange) ([]domain.JournalEntry, error)

	// ListEntriesCreatedBetween lists entries with from <= created_at < to ordered by creation time.
	ListEntriesCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error)

	// ListLinesByAccount lists an account's lines in the range ordered by transaction date, then creation time.
	ListLinesByAccount(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.LedgerLine, error)

	// SumLinesByAccountBefore totals an account's lines dated strictly before the given date.
	SumLinesByAccountBefore(ctx context.Context, accountID string, before time.Time) (domain.SideTotals, error)

	// SumLinesUpTo totals every account's lines dated on or before asOf, keyed by account ID.
	SumLinesUpTo(ctx context.Context, asOf time.Time) (map[string]domain.SideTotals, error)

	// HasEntriesAfter reports whether any entry is dated after the given day.
	HasEntriesAfter(ctx context.Context, day time.Time) (bool, error)

	// LastTransactionDate returns the latest transaction date posted to the account, or nil.
	LastTransactionDate(ctx context.Context, accountID string) (*time.Time, error)
}
