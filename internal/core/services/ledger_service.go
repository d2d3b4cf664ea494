package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/utils/accounting"
	"github.com/SscSPs/bookkeeping_core/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// ledgerService answers read-only questions about posted entries.
// Every multi-step query runs inside one read snapshot.
type ledgerService struct {
	BaseService
	uow      portsrepo.UnitOfWork
	location *time.Location
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerLocation sets the time zone that bounds a day book day.
func WithLedgerLocation(loc *time.Location) LedgerServiceOption {
	return func(s *ledgerService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithLedgerClock overrides the clock that decides the default day book day.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates the ledger query service.
func NewLedgerService(uow portsrepo.UnitOfWork, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		uow:      uow,
		location: time.UTC,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetJournalEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	if entryID == "" {
		return nil, fmt.Errorf("%w: entry ID is required", apperrors.ErrValidation)
	}
	var entry *domain.JournalEntry
	err := s.uow.ReadSnapshot(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		var err error
		entry, err = repos.Journals.FindJournalEntryByID(ctx, entryID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get journal entry %s: %w", entryID, err)
	}
	return entry, nil
}

func (s *ledgerService) ListJournalEntries(ctx context.Context, filter domain.JournalFilter, page int, pageSize int) (*domain.JournalEntryPage, error) {
	if filter.TransactionType != "" && !filter.TransactionType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type '%s'", apperrors.ErrValidation, filter.TransactionType)
	}
	if err := validateRange(filter.DateRange); err != nil {
		return nil, err
	}
	p := pagination.NewPage(page, pageSize)

	var (
		entries []domain.JournalEntry
		total   int
	)
	err := s.uow.ReadSnapshot(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		var err error
		entries, total, err = repos.Journals.ListJournalEntries(ctx, filter, p.Size, p.Offset())
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries",
			slog.Int("page", p.Number),
			slog.Int("page_size", p.Size))
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return &domain.JournalEntryPage{
		Entries:    entries,
		Total:      total,
		Page:       p.Number,
		PageSize:   p.Size,
		TotalPages: p.TotalPages(total),
	}, nil
}

func (s *ledgerService) GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	var result *domain.AccountBalance
	err := s.uow.ReadSnapshot(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		account, err := repos.Accounts.FindAccountByID(ctx, accountID)
		if err != nil {
			return err
		}
		last, err := repos.Ledger.LastTransactionDate(ctx, accountID)
		if err != nil {
			return err
		}
		result = &domain.AccountBalance{
			Account:             *account,
			Balance:             account.Balance,
			LastTransactionDate: last,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get balance of account %s: %w", accountID, err)
	}
	return result, nil
}

// AccountStatement lists an account's lines in the range with a running balance.
// The opening balance replays every line dated before the range; the closing
// balance is the account's live balance.
func (s *ledgerService) AccountStatement(ctx context.Context, accountID string, dateRange domain.DateRange) (*domain.AccountStatement, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	if err := validateRange(dateRange); err != nil {
		return nil, err
	}

	var statement *domain.AccountStatement
	err := s.uow.ReadSnapshot(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		account, err := repos.Accounts.FindAccountByID(ctx, accountID)
		if err != nil {
			return err
		}

		opening := decimal.Zero
		if !dateRange.From.IsZero() {
			prior, err := repos.Ledger.SumLinesByAccountBefore(ctx, accountID, domain.DateOf(dateRange.From))
			if err != nil {
				return err
			}
			if opening, err = accounting.ReplayBalance(account.AccountType, prior); err != nil {
				return err
			}
		}

		lines, err := repos.Ledger.ListLinesByAccount(ctx, accountID, dateRange)
		if err != nil {
			return err
		}

		running := opening
		statementLines := make([]domain.StatementLine, 0, len(lines))
		for _, line := range lines {
			delta, err := accounting.Delta(account.AccountType, line.Side, line.Amount)
			if err != nil {
				return err
			}
			running = running.Add(delta)
			statementLines = append(statementLines, domain.StatementLine{LedgerLine: line, RunningBalance: running})
		}

		statement = &domain.AccountStatement{
			Account:        *account,
			Range:          dateRange,
			OpeningBalance: opening,
			ClosingBalance: account.Balance,
			Lines:          statementLines,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("account statement for %s: %w", accountID, err)
	}

	s.LogDebug(ctx, "Account statement generated",
		slog.String("account_id", accountID),
		slog.Int("line_count", len(statement.Lines)))
	return statement, nil
}

func (s *ledgerService) GeneralLedger(ctx context.Context, dateRange domain.DateRange) ([]domain.JournalEntry, error) {
	if err := validateRange(dateRange); err != nil {
		return nil, err
	}
	var entries []domain.JournalEntry
	err := s.uow.ReadSnapshot(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		var err error
		entries, err = repos.Ledger.ListEntriesByTransactionDate(ctx, dateRange)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to build general ledger")
		return nil, fmt.Errorf("general ledger: %w", err)
	}
	return entries, nil
}

func (s *ledgerService) AccountLedger(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.LedgerLine, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	if err := validateRange(dateRange); err != nil {
		return nil, err
	}
	var lines []domain.LedgerLine
	err := s.uow.ReadSnapshot(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if _, err := repos.Accounts.FindAccountByID(ctx, accountID); err != nil {
			return err
		}
		var err error
		lines, err = repos.Ledger.ListLinesByAccount(ctx, accountID, dateRange)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("account ledger for %s: %w", accountID, err)
	}
	return lines, nil
}

// DayBook lists the entries created during the given calendar day in the ledger's time zone.
func (s *ledgerService) DayBook(ctx context.Context, day time.Time) ([]domain.JournalEntry, error) {
	if day.IsZero() {
		day = s.Now()
	}
	y, m, d := day.In(s.location).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, s.location)
	end := start.AddDate(0, 0, 1)

	var entries []domain.JournalEntry
	err := s.uow.ReadSnapshot(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		var err error
		entries, err = repos.Ledger.ListEntriesCreatedBetween(ctx, start.UTC(), end.UTC())
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to build day book", slog.String("day", start.Format(time.DateOnly)))
		return nil, fmt.Errorf("day book for %s: %w", start.Format(time.DateOnly), err)
	}
	return entries, nil
}

func validateRange(r domain.DateRange) error {
	if !r.From.IsZero() && !r.To.IsZero() && domain.DateOf(r.From).After(domain.DateOf(r.To)) {
		return fmt.Errorf("%w: start date %s is after end date %s",
			apperrors.ErrValidation, r.From.Format(time.DateOnly), r.To.Format(time.DateOnly))
	}
	return nil
}
