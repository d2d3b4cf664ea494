package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/core/services"
	"github.com/SscSPs/bookkeeping_core/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const actor = "user-1"

// fixedNow is the clock every service in the fixture reads.
var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// MockUnitOfWork fails Do with whatever the expectation returns and otherwise
// runs the function on the wrapped unit of work.
type MockUnitOfWork struct {
	mock.Mock
	inner portsrepo.UnitOfWork
}

var _ portsrepo.UnitOfWork = (*MockUnitOfWork)(nil)

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return m.inner.Do(ctx, fn)
}

func (m *MockUnitOfWork) ReadSnapshot(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	return m.inner.ReadSnapshot(ctx, fn)
}

// LedgerFixture wires the real services over a fresh in-memory store with the
// default chart seeded.
type LedgerFixture struct {
	suite.Suite
	ctx      context.Context
	repos    portsrepo.RepositoryProvider
	accounts portssvc.AccountSvcFacade
	journal  portssvc.JournalSvcFacade
	ledger   portssvc.LedgerSvcFacade
	reports  portssvc.ReportingService
	chart    map[string]domain.Account // by code
	clock    time.Time
}

func (f *LedgerFixture) SetupTest() {
	f.ctx = context.Background()
	f.clock = fixedNow
	f.repos = memory.NewRepositoryProvider(memory.NewStore())
	now := func() time.Time { return f.clock }

	f.accounts = services.NewAccountService(f.repos.AccountRepo, f.repos.UnitOfWork, services.WithAccountClock(now))
	seeded, err := f.accounts.SeedDefaultChart(f.ctx, "system")
	f.Require().NoError(err)
	f.Require().Len(seeded, len(domain.DefaultChartOfAccounts))

	f.chart = make(map[string]domain.Account, len(seeded))
	for _, a := range seeded {
		f.chart[a.Code] = a
	}

	f.journal = f.newJournal(f.repos.UnitOfWork, domain.DesignatedAccounts{}.FillFromChart(seeded))
	f.ledger = services.NewLedgerService(f.repos.UnitOfWork, services.WithLedgerClock(now))
	f.reports = services.NewReportingService(f.repos.UnitOfWork, services.WithReportingClock(now))
}

func (f *LedgerFixture) newJournal(uow portsrepo.UnitOfWork, designated domain.DesignatedAccounts) portssvc.JournalSvcFacade {
	return services.NewJournalService(
		uow,
		f.repos.JournalRepo,
		f.accounts,
		services.NewSequenceService(),
		services.WithDesignatedAccounts(designated),
		services.WithPostingRetry(3, 0),
		services.WithJournalClock(func() time.Time { return f.clock }),
	)
}

func (f *LedgerFixture) id(code string) string {
	return f.chart[code].AccountID
}

func (f *LedgerFixture) balance(code string) decimal.Decimal {
	acc, err := f.accounts.GetAccount(f.ctx, f.id(code))
	f.Require().NoError(err)
	return acc.Balance
}

func (f *LedgerFixture) post(debitCode, creditCode, amount string, date time.Time) *domain.JournalEntry {
	entry, err := f.journal.CreateJournalEntry(f.ctx, domain.JournalRequest{
		TransactionType: domain.TransactionSale,
		Description:     "test entry",
		TransactionDate: date,
		Lines: []domain.JournalLineRequest{
			{AccountID: f.id(debitCode), Side: domain.Debit, Amount: dec(amount)},
			{AccountID: f.id(creditCode), Side: domain.Credit, Amount: dec(amount)},
		},
	}, actor)
	f.Require().NoError(err)
	return entry
}

func (f *LedgerFixture) assertBalance(code, want string) {
	got := f.balance(code)
	f.True(got.Equal(dec(want)), "account %s: want %s, got %s", code, want, got)
}
