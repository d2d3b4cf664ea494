package services_test

import (
	"math"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	LedgerFixture
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestAccountStatementRunningBalance() {
	s.post("1000", "3000", "100", day(2024, 3, 1))
	s.post("6000", "1000", "30", day(2024, 3, 5))
	s.post("1000", "4000", "20", day(2024, 3, 10))
	s.post("1000", "4000", "5", day(2024, 3, 12))

	st, err := s.ledger.AccountStatement(s.ctx, s.id("1000"), domain.DateRange{From: day(2024, 3, 3), To: day(2024, 3, 10)})
	s.Require().NoError(err)

	s.True(st.OpeningBalance.Equal(dec("100")), st.OpeningBalance.String())
	s.Require().Len(st.Lines, 2)
	s.True(st.Lines[0].RunningBalance.Equal(dec("70")))
	s.True(st.Lines[1].RunningBalance.Equal(dec("90")))
	s.True(st.ClosingBalance.Equal(dec("95")), "closing balance is the live balance")
	s.Equal("Cash", st.Account.Name)
}

func (s *LedgerServiceTestSuite) TestAccountStatementWithoutStartHasZeroOpening() {
	s.post("1000", "3000", "100", day(2024, 3, 1))

	st, err := s.ledger.AccountStatement(s.ctx, s.id("1000"), domain.DateRange{})
	s.Require().NoError(err)
	s.True(st.OpeningBalance.IsZero())
	s.Len(st.Lines, 1)

	_, err = s.ledger.AccountStatement(s.ctx, s.id("1000"), domain.DateRange{From: day(2024, 3, 2), To: day(2024, 3, 1)})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.ledger.AccountStatement(s.ctx, "missing", domain.DateRange{})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestListJournalEntries() {
	first := s.post("1000", "4000", "10", day(2024, 3, 1))
	second := s.post("6000", "1000", "3", day(2024, 3, 2))
	third := s.post("1000", "3000", "50", day(2024, 3, 3))

	page, err := s.ledger.ListJournalEntries(s.ctx, domain.JournalFilter{}, 1, 2)
	s.Require().NoError(err)
	s.Equal(3, page.Total)
	s.Equal(2, page.TotalPages)
	s.Require().Len(page.Entries, 2)
	s.Equal(third.EntryID, page.Entries[0].EntryID, "newest transaction date first")
	s.Equal(second.EntryID, page.Entries[1].EntryID)
	s.Len(page.Entries[0].Lines, 2)

	page, err = s.ledger.ListJournalEntries(s.ctx, domain.JournalFilter{}, 2, 2)
	s.Require().NoError(err)
	s.Require().Len(page.Entries, 1)
	s.Equal(first.EntryID, page.Entries[0].EntryID)

	page, err = s.ledger.ListJournalEntries(s.ctx, domain.JournalFilter{AccountID: s.id("6000")}, 1, 10)
	s.Require().NoError(err)
	s.Equal(1, page.Total)

	page, err = s.ledger.ListJournalEntries(s.ctx, domain.JournalFilter{DateRange: domain.DateRange{From: day(2024, 3, 2)}}, 1, 10)
	s.Require().NoError(err)
	s.Equal(2, page.Total)

	page, err = s.ledger.ListJournalEntries(s.ctx, domain.JournalFilter{TransactionType: domain.TransactionClosing}, 1, 10)
	s.Require().NoError(err)
	s.NotNil(page.Entries)
	s.Empty(page.Entries)

	_, err = s.ledger.ListJournalEntries(s.ctx, domain.JournalFilter{TransactionType: "GIFT"}, 1, 10)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestListJournalEntriesFarPastTheEnd() {
	s.post("1000", "4000", "10", day(2024, 3, 1))

	page, err := s.ledger.ListJournalEntries(s.ctx, domain.JournalFilter{}, math.MaxInt/50+2, 50)
	s.Require().NoError(err)
	s.Equal(1, page.Total)
	s.Empty(page.Entries)
}

func (s *LedgerServiceTestSuite) TestGetJournalEntry() {
	posted := s.post("1000", "4000", "10", day(2024, 3, 1))

	got, err := s.ledger.GetJournalEntry(s.ctx, posted.EntryID)
	s.Require().NoError(err)
	s.Equal(posted.EntryNumber, got.EntryNumber)
	s.Len(got.Lines, 2)

	_, err = s.ledger.GetJournalEntry(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestGetAccountBalance() {
	bal, err := s.ledger.GetAccountBalance(s.ctx, s.id("1000"))
	s.Require().NoError(err)
	s.True(bal.Balance.IsZero())
	s.Nil(bal.LastTransactionDate)

	s.post("1000", "4000", "10", day(2024, 3, 1))
	s.post("1000", "4000", "10", day(2024, 3, 9))
	s.post("1000", "4000", "10", day(2024, 3, 4))

	bal, err = s.ledger.GetAccountBalance(s.ctx, s.id("1000"))
	s.Require().NoError(err)
	s.True(bal.Balance.Equal(dec("30")))
	s.Require().NotNil(bal.LastTransactionDate)
	s.True(bal.LastTransactionDate.Equal(day(2024, 3, 9)))
}

func (s *LedgerServiceTestSuite) TestGeneralAndAccountLedger() {
	late := s.post("1000", "4000", "10", day(2024, 3, 9))
	early := s.post("6000", "1000", "4", day(2024, 3, 2))

	entries, err := s.ledger.GeneralLedger(s.ctx, domain.DateRange{})
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(early.EntryID, entries[0].EntryID, "oldest transaction date first")
	s.Equal(late.EntryID, entries[1].EntryID)

	entries, err = s.ledger.GeneralLedger(s.ctx, domain.DateRange{To: day(2024, 3, 5)})
	s.Require().NoError(err)
	s.Len(entries, 1)

	lines, err := s.ledger.AccountLedger(s.ctx, s.id("1000"), domain.DateRange{})
	s.Require().NoError(err)
	s.Require().Len(lines, 2)
	s.Equal(domain.Credit, lines[0].Side)
	s.Equal(early.EntryNumber, lines[0].EntryNumber)

	_, err = s.ledger.AccountLedger(s.ctx, "missing", domain.DateRange{})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestDayBookUsesRecordingDay() {
	s.post("1000", "4000", "10", day(2024, 3, 1))

	s.clock = fixedNow.AddDate(0, 0, 1)
	backdated := s.post("1000", "4000", "10", day(2024, 3, 2))

	today, err := s.ledger.DayBook(s.ctx, time.Time{})
	s.Require().NoError(err)
	s.Require().Len(today, 1)
	s.Equal(backdated.EntryID, today[0].EntryID)

	yesterday, err := s.ledger.DayBook(s.ctx, day(2024, 3, 15))
	s.Require().NoError(err)
	s.Len(yesterday, 1)

	none, err := s.ledger.DayBook(s.ctx, day(2024, 3, 1))
	s.Require().NoError(err)
	s.Empty(none)
}
