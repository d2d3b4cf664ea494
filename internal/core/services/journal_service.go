package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/utils/accounting"
)

const (
	defaultPostingAttempts = 3
	defaultRetryBackoff    = 25 * time.Millisecond
)

// journalService is the journal engine.
type journalService struct {
	BaseService
	uow          portsrepo.UnitOfWork
	journalRepo  portsrepo.JournalReader
	accountSvc   portssvc.AccountSvcFacade
	sequenceSvc  portssvc.SequenceSvc
	designated   domain.DesignatedAccounts
	maxAttempts  int
	retryBackoff time.Duration
	location     *time.Location
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithDesignatedAccounts sets the accounts used by the built-in postings.
func WithDesignatedAccounts(accounts domain.DesignatedAccounts) JournalServiceOption {
	return func(s *journalService) {
		s.designated = accounts
	}
}

// WithPostingRetry bounds how often contention is retried and how long to wait between tries.
func WithPostingRetry(maxAttempts int, backoff time.Duration) JournalServiceOption {
	return func(s *journalService) {
		if maxAttempts > 0 {
			s.maxAttempts = maxAttempts
		}
		if backoff >= 0 {
			s.retryBackoff = backoff
		}
	}
}

// WithJournalLocation sets the time zone that decides "today" for undated entries.
func WithJournalLocation(loc *time.Location) JournalServiceOption {
	return func(s *journalService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithJournalClock overrides the clock used for timestamps and default dates.
func WithJournalClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates the journal engine.
func NewJournalService(
	uow portsrepo.UnitOfWork,
	journalRepo portsrepo.JournalReader,
	accountSvc portssvc.AccountSvcFacade,
	sequenceSvc portssvc.SequenceSvc,
	options ...JournalServiceOption,
) portssvc.JournalSvcFacade {
	svc := &journalService{
		uow:          uow,
		journalRepo:  journalRepo,
		accountSvc:   accountSvc,
		sequenceSvc:  sequenceSvc,
		maxAttempts:  defaultPostingAttempts,
		retryBackoff: defaultRetryBackoff,
		location:     time.UTC,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// postingGuard runs inside the posting transaction before anything is written.
type postingGuard func(ctx context.Context, repos portsrepo.TxRepositories) error

func (s *journalService) CreateJournalEntry(ctx context.Context, req domain.JournalRequest, actorID string) (*domain.JournalEntry, error) {
	if req.ReferenceType == domain.ReferenceTypeReversal {
		return nil, fmt.Errorf("%w: reference type %s is reserved for reversals", apperrors.ErrValidation, domain.ReferenceTypeReversal)
	}
	return s.postWithRetry(ctx, req, actorID, nil)
}

func (s *journalService) ReverseJournalEntry(ctx context.Context, entryID string, actorID string) (*domain.JournalEntry, error) {
	if entryID == "" {
		return nil, fmt.Errorf("%w: entry ID is required", apperrors.ErrValidation)
	}
	original, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("find entry %s to reverse: %w", entryID, err)
	}
	if original.IsReversal() {
		return nil, fmt.Errorf("%w: entry %s is itself a reversal", apperrors.ErrState, original.EntryNumber)
	}

	lines := make([]domain.JournalLineRequest, len(original.Lines))
	for i, line := range original.Lines {
		lines[i] = domain.JournalLineRequest{
			AccountID:   line.AccountID,
			Side:        line.Side.Opposite(),
			Amount:      line.Amount,
			Description: line.Description,
		}
	}
	req := domain.JournalRequest{
		TransactionType: original.TransactionType,
		Description:     fmt.Sprintf("Reversal of Journal: %s", original.EntryNumber),
		Lines:           lines,
		ReferenceID:     original.EntryID,
		ReferenceType:   domain.ReferenceTypeReversal,
	}

	notYetReversed := func(ctx context.Context, repos portsrepo.TxRepositories) error {
		existing, err := repos.Journals.FindReversalOf(ctx, original.EntryID)
		if err == nil {
			return fmt.Errorf("%w: entry %s was already reversed by %s", apperrors.ErrState, original.EntryNumber, existing.EntryNumber)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("check existing reversal of %s: %w", original.EntryNumber, err)
		}
		return nil
	}

	reversal, err := s.postWithRetry(ctx, req, actorID, notYetReversed)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("original_entry", original.EntryNumber),
		slog.String("reversal_entry", reversal.EntryNumber))
	return reversal, nil
}

// postWithRetry retries contention failures a bounded number of times.
// Every other error is returned on first sight.
func (s *journalService) postWithRetry(ctx context.Context, req domain.JournalRequest, actorID string, guard postingGuard) (*domain.JournalEntry, error) {
	for attempt := 1; ; attempt++ {
		entry, err := s.createEntry(ctx, req, actorID, guard)
		if err == nil {
			return entry, nil
		}
		if !apperrors.IsRetryable(err) || attempt >= s.maxAttempts {
			if apperrors.IsRetryable(err) {
				s.LogError(ctx, err, "Journal posting contention persisted after retries", slog.Int("attempts", attempt))
			}
			return nil, err
		}

		s.LogWarn(ctx, "Journal posting hit contention, retrying",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.retryBackoff * time.Duration(attempt)):
		}
	}
}

// createEntry is a single posting attempt.
func (s *journalService) createEntry(ctx context.Context, req domain.JournalRequest, actorID string, guard postingGuard) (*domain.JournalEntry, error) {
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor identity is required", apperrors.ErrValidation)
	}
	if !req.TransactionType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type '%s'", apperrors.ErrValidation, req.TransactionType)
	}
	totals, err := accounting.ValidateLines(req.Lines)
	if err != nil {
		return nil, err
	}

	transactionDate := req.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = s.Now().In(s.location)
	}
	transactionDate = domain.DateOf(transactionDate)

	accountIDs := distinctAccountIDs(req.Lines)
	for _, id := range accountIDs {
		account, err := s.accountSvc.GetAccount(ctx, id)
		if err != nil {
			return nil, err
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s (%s) is inactive", apperrors.ErrState, account.Code, id)
		}
	}

	var posted *domain.JournalEntry
	err = s.uow.Do(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if guard != nil {
			if err := guard(ctx, repos); err != nil {
				return err
			}
		}

		locked, err := repos.Accounts.LockAccountsForUpdate(ctx, accountIDs)
		if err != nil {
			return fmt.Errorf("lock posting accounts: %w", err)
		}
		for _, id := range accountIDs {
			account, ok := locked[id]
			if !ok {
				return fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
			}
			if !account.IsActive {
				return fmt.Errorf("%w: account %s (%s) is inactive", apperrors.ErrState, account.Code, id)
			}
		}

		entryNumber, err := s.sequenceSvc.NextEntryNumber(ctx, repos, transactionDate)
		if err != nil {
			return err
		}

		entry := s.buildEntry(req, actorID, entryNumber, transactionDate, totals, locked)
		if err := repos.Journals.SaveJournalEntry(ctx, entry); err != nil {
			return fmt.Errorf("save journal entry %s: %w", entryNumber, err)
		}

		for _, line := range entry.Lines {
			delta, err := accounting.Delta(line.AccountType, line.Side, line.Amount)
			if err != nil {
				return err
			}
			if _, err := s.accountSvc.ApplyBalanceDeltaInTx(ctx, repos, line.AccountID, delta, actorID); err != nil {
				return err
			}
		}

		persisted, err := repos.Journals.FindJournalEntryByID(ctx, entry.EntryID)
		if err != nil {
			return fmt.Errorf("read back journal entry %s: %w", entryNumber, err)
		}
		if err := s.verifyPersisted(ctx, repos, persisted, len(req.Lines)); err != nil {
			s.LogError(ctx, err, "Persisted journal entry failed verification", slog.String("entry_number", entryNumber))
			return err
		}
		posted = persisted
		return nil
	})
	if err != nil {
		if !apperrors.IsClientError(err) && !apperrors.IsRetryable(err) {
			s.LogError(ctx, err, "Failed to post journal entry", slog.String("transaction_type", string(req.TransactionType)))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", posted.EntryID),
		slog.String("entry_number", posted.EntryNumber),
		slog.String("total_amount", posted.TotalAmount.StringFixed(2)))
	return posted, nil
}

func (s *journalService) buildEntry(
	req domain.JournalRequest,
	actorID, entryNumber string,
	transactionDate time.Time,
	totals domain.SideTotals,
	accounts map[string]domain.Account,
) domain.JournalEntry {
	now := s.Now()
	entryID := uuid.NewString()
	lines := make([]domain.JournalLine, len(req.Lines))
	for i, l := range req.Lines {
		account := accounts[l.AccountID]
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   l.AccountID,
			Side:        l.Side,
			Amount:      l.Amount,
			Description: l.Description,
			LineOrder:   i + 1,
			CreatedAt:   now,
			AccountCode: account.Code,
			AccountName: account.Name,
			AccountType: account.AccountType,
		}
	}
	return domain.JournalEntry{
		EntryID:         entryID,
		EntryNumber:     entryNumber,
		TransactionType: req.TransactionType,
		Description:     req.Description,
		TransactionDate: transactionDate,
		TotalAmount:     totals.Debit,
		ReferenceID:     req.ReferenceID,
		ReferenceType:   req.ReferenceType,
		Lines:           lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
}

// verifyPersisted re-checks the stored entry before the transaction commits.
func (s *journalService) verifyPersisted(ctx context.Context, repos portsrepo.TxRepositories, entry *domain.JournalEntry, wantLines int) error {
	if len(entry.Lines) != wantLines {
		return fmt.Errorf("%w: entry %s stored %d lines, expected %d",
			apperrors.ErrInternalInconsistency, entry.EntryNumber, len(entry.Lines), wantLines)
	}
	totals := entry.Totals()
	if err := accounting.CheckBalanced(totals); err != nil {
		return fmt.Errorf("%w: entry %s does not balance on read-back: %v",
			apperrors.ErrInternalInconsistency, entry.EntryNumber, err)
	}
	if !entry.TotalAmount.Equal(totals.Debit) {
		return fmt.Errorf("%w: entry %s total %s differs from debit total %s",
			apperrors.ErrInternalInconsistency, entry.EntryNumber, entry.TotalAmount, totals.Debit)
	}
	count, err := repos.Journals.CountEntriesByNumber(ctx, entry.EntryNumber)
	if err != nil {
		return fmt.Errorf("count entries numbered %s: %w", entry.EntryNumber, err)
	}
	if count != 1 {
		return fmt.Errorf("%w: entry number %s is used by %d entries",
			apperrors.ErrInternalInconsistency, entry.EntryNumber, count)
	}
	return nil
}

// distinctAccountIDs returns the referenced account IDs in ascending order,
// which is also the order rows are locked in.
func distinctAccountIDs(lines []domain.JournalLineRequest) []string {
	seen := make(map[string]struct{}, len(lines))
	result := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountID]; !ok {
			seen[l.AccountID] = struct{}{}
			result = append(result, l.AccountID)
		}
	}
	sort.Strings(result)
	return result
}
