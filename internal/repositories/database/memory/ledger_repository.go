package memory

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type ledgerRepository struct {
	view
}

var _ portsrepo.LedgerReader = (*ledgerRepository)(nil)

func (r *ledgerRepository) ListEntriesByTransactionDate(ctx context.Context, dateRange domain.DateRange) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	err := r.read(ctx, func(st *state) error {
		entries = st.chronological(func(e domain.JournalEntry) bool {
			return dateRange.Contains(e.TransactionDate)
		})
		return nil
	})
	return entries, err
}

func (r *ledgerRepository) ListEntriesCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	err := r.read(ctx, func(st *state) error {
		for _, id := range st.order {
			e := st.entries[id]
			if !e.CreatedAt.Before(from) && e.CreatedAt.Before(to) {
				entries = append(entries, st.resolve(e))
			}
		}
		return nil
	})
	return entries, err
}

func (r *ledgerRepository) ListLinesByAccount(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.LedgerLine, error) {
	var lines []domain.LedgerLine
	err := r.read(ctx, func(st *state) error {
		entries := st.chronological(func(e domain.JournalEntry) bool {
			return dateRange.Contains(e.TransactionDate) && touchesAccount(e, accountID)
		})
		for _, e := range entries {
			for _, line := range e.Lines {
				if line.AccountID != accountID {
					continue
				}
				lines = append(lines, domain.LedgerLine{
					JournalLine:      line,
					EntryNumber:      e.EntryNumber,
					TransactionType:  e.TransactionType,
					TransactionDate:  e.TransactionDate,
					EntryDescription: e.Description,
					EntryCreatedAt:   e.CreatedAt,
				})
			}
		}
		return nil
	})
	return lines, err
}

func (r *ledgerRepository) SumLinesByAccountBefore(ctx context.Context, accountID string, before time.Time) (domain.SideTotals, error) {
	cutoff := domain.DateOf(before)
	totals := domain.SideTotals{Debit: decimal.Zero, Credit: decimal.Zero}
	err := r.read(ctx, func(st *state) error {
		for _, e := range st.entries {
			if !e.TransactionDate.Before(cutoff) {
				continue
			}
			for _, line := range e.Lines {
				if line.AccountID == accountID {
					totals = totals.Add(line.Side, line.Amount)
				}
			}
		}
		return nil
	})
	return totals, err
}

func (r *ledgerRepository) SumLinesUpTo(ctx context.Context, asOf time.Time) (map[string]domain.SideTotals, error) {
	cutoff := domain.DateOf(asOf)
	sums := make(map[string]domain.SideTotals)
	err := r.read(ctx, func(st *state) error {
		for _, e := range st.entries {
			if e.TransactionDate.After(cutoff) {
				continue
			}
			for _, line := range e.Lines {
				totals, ok := sums[line.AccountID]
				if !ok {
					totals = domain.SideTotals{Debit: decimal.Zero, Credit: decimal.Zero}
				}
				sums[line.AccountID] = totals.Add(line.Side, line.Amount)
			}
		}
		return nil
	})
	return sums, err
}

func (r *ledgerRepository) HasEntriesAfter(ctx context.Context, day time.Time) (bool, error) {
	var found bool
	err := r.read(ctx, func(st *state) error {
		for _, e := range st.entries {
			if e.TransactionDate.After(day) {
				found = true
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *ledgerRepository) LastTransactionDate(ctx context.Context, accountID string) (*time.Time, error) {
	var last *time.Time
	err := r.read(ctx, func(st *state) error {
		for _, e := range st.entries {
			if !touchesAccount(e, accountID) {
				continue
			}
			if last == nil || e.TransactionDate.After(*last) {
				d := e.TransactionDate
				last = &d
			}
		}
		return nil
	})
	return last, err
}
