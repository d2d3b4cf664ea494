package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	uow      portsrepo.UnitOfWork
	location *time.Location
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingLocation sets the time zone that decides which day "today" is.
func WithReportingLocation(loc *time.Location) ReportingServiceOption {
	return func(s *reportingService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithReportingClock overrides the clock used to decide "today".
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(uow portsrepo.UnitOfWork, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		uow:      uow,
		location: time.UTC,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance projects each account's balance into the debit or credit column.
// When no entry is dated after asOf the live balances are used; otherwise every
// line up to and including asOf is replayed through the polarity table, so
// forward-dated entries stay out of the report.
// Inactive accounts are listed only while they still carry a balance.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error) {
	today := domain.DateOf(s.Now().In(s.location))
	day := today
	if !asOf.IsZero() {
		day = domain.DateOf(asOf)
	}
	var historical bool

	var report *domain.TrialBalance
	err := s.uow.ReadSnapshot(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		accounts, err := repos.Accounts.ListAccounts(ctx, portsrepo.AccountFilter{})
		if err != nil {
			return err
		}

		if historical, err = repos.Ledger.HasEntriesAfter(ctx, day); err != nil {
			return err
		}
		var sums map[string]domain.SideTotals
		if historical {
			if sums, err = repos.Ledger.SumLinesUpTo(ctx, day); err != nil {
				return err
			}
		}

		report = &domain.TrialBalance{
			AsOf:         day,
			Rows:         make([]domain.TrialBalanceRow, 0, len(accounts)),
			TotalDebits:  decimal.Zero,
			TotalCredits: decimal.Zero,
		}
		for _, account := range accounts {
			balance := account.Balance
			if historical {
				if balance, err = accounting.ReplayBalance(account.AccountType, sums[account.AccountID]); err != nil {
					return err
				}
			}
			if !account.IsActive && balance.IsZero() {
				continue
			}

			debit, credit, err := accounting.ProjectTrialBalance(account.AccountType, balance)
			if err != nil {
				return err
			}
			report.Rows = append(report.Rows, domain.TrialBalanceRow{
				AccountID:   account.AccountID,
				AccountCode: account.Code,
				AccountName: account.Name,
				AccountType: account.AccountType,
				Debit:       debit,
				Credit:      credit,
			})
			report.TotalDebits = report.TotalDebits.Add(debit)
			report.TotalCredits = report.TotalCredits.Add(credit)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to build trial balance", slog.String("asOf", day.Format(time.DateOnly)))
		return nil, fmt.Errorf("trial balance as of %s: %w", day.Format(time.DateOnly), err)
	}

	sort.Slice(report.Rows, func(i, j int) bool { return report.Rows[i].AccountCode < report.Rows[j].AccountCode })
	report.IsBalanced = accounting.IsBalanced(report.TotalDebits, report.TotalCredits)
	if !report.IsBalanced {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("asOf", day.Format(time.DateOnly)),
			slog.String("total_debits", report.TotalDebits.StringFixed(2)),
			slog.String("total_credits", report.TotalCredits.StringFixed(2)))
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("asOf", day.Format(time.DateOnly)),
		slog.Bool("historical", historical),
		slog.Int("row_count", len(report.Rows)))
	return report, nil
}
