package services

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// LedgerReaderSvc defines read-only queries over posted entries.
type LedgerReaderSvc interface {
	GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context, filter domain.JournalFilter, page int, pageSize int) (*domain.JournalEntryPage, error)
	GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error)
}

// LedgerBookSvc produces the classic ledger books.
type LedgerBookSvc interface {
	AccountStatement(ctx context.Context, accountID string, dateRange domain.DateRange) (*domain.AccountStatement, error)
	GeneralLedger(ctx context.Context, dateRange domain.DateRange) ([]domain.JournalEntry, error)
	AccountLedger(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.LedgerLine, error)
	DayBook(ctx context.Context, day time.Time) ([]domain.JournalEntry, error)
}

// LedgerSvcFacade combines all ledger query interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerBookSvc
}
