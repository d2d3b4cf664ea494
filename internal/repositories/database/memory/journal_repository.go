package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
)

type journalRepository struct {
	view
}

var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

func (r *journalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	var found domain.JournalEntry
	err := r.read(ctx, func(st *state) error {
		entry, ok := st.entries[entryID]
		if !ok {
			return fmt.Errorf("journal entry %s: %w", entryID, apperrors.ErrNotFound)
		}
		found = st.resolve(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *journalRepository) CountEntriesByNumber(ctx context.Context, entryNumber string) (int, error) {
	count := 0
	err := r.read(ctx, func(st *state) error {
		for _, entry := range st.entries {
			if entry.EntryNumber == entryNumber {
				count++
			}
		}
		return nil
	})
	return count, err
}

func (r *journalRepository) FindReversalOf(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	var found *domain.JournalEntry
	err := r.read(ctx, func(st *state) error {
		for _, id := range st.order {
			entry := st.entries[id]
			if entry.IsReversal() && entry.ReferenceID == entryID {
				resolved := st.resolve(entry)
				found = &resolved
				return nil
			}
		}
		return fmt.Errorf("reversal of %s: %w", entryID, apperrors.ErrNotFound)
	})
	return found, err
}

func (r *journalRepository) ListJournalEntries(ctx context.Context, filter domain.JournalFilter, limit int, offset int) ([]domain.JournalEntry, int, error) {
	var matched []domain.JournalEntry
	err := r.read(ctx, func(st *state) error {
		matched = st.chronological(func(e domain.JournalEntry) bool {
			if filter.TransactionType != "" && e.TransactionType != filter.TransactionType {
				return false
			}
			if !filter.DateRange.Contains(e.TransactionDate) {
				return false
			}
			return filter.AccountID == "" || touchesAccount(e, filter.AccountID)
		})
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	// newest first
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}

	total := len(matched)
	if offset < 0 || offset >= total {
		return []domain.JournalEntry{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

// SaveJournalEntry rejects a reused entry number or a second reversal of the
// same entry the way the database's unique indexes do.
func (r *journalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	return r.write(ctx, func(st *state) error {
		for _, existing := range st.entries {
			if existing.EntryNumber == entry.EntryNumber {
				return fmt.Errorf("entry number %s already used: %w", entry.EntryNumber, apperrors.ErrConcurrency)
			}
			if entry.IsReversal() && existing.IsReversal() && existing.ReferenceID == entry.ReferenceID {
				return fmt.Errorf("entry %s already reversed: %w", entry.ReferenceID, apperrors.ErrConcurrency)
			}
		}
		for _, line := range entry.Lines {
			if _, ok := st.accounts[line.AccountID]; !ok {
				return fmt.Errorf("line references account %s: %w", line.AccountID, apperrors.ErrNotFound)
			}
		}
		entry.Lines = append([]domain.JournalLine(nil), entry.Lines...)
		st.entries[entry.EntryID] = entry
		st.order = append(st.order, entry.EntryID)
		return nil
	})
}
