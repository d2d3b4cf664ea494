package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// JournalReader defines read operations for journal data.
// Returned entries always carry their lines with account references resolved.
type JournalReader interface {
	// FindJournalEntryByID retrieves a specific entry by its unique identifier.
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// CountEntriesByNumber counts persisted entries carrying entryNumber.
	CountEntriesByNumber(ctx context.Context, entryNumber string) (int, error)

	// FindReversalOf returns the entry reversing entryID, or apperrors.ErrNotFound.
	FindReversalOf(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries returns one page of entries matching filter, newest transaction
	// date first, plus the total number of matches.
	ListJournalEntries(ctx context.Context, filter domain.JournalFilter, limit int, offset int) ([]domain.JournalEntry, int, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournalEntry persists an entry header and all of its lines.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
