package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	LedgerFixture
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) row(tb *domain.TrialBalance, code string) (domain.TrialBalanceRow, bool) {
	for _, r := range tb.Rows {
		if r.AccountCode == code {
			return r, true
		}
	}
	return domain.TrialBalanceRow{}, false
}

func (s *ReportingServiceTestSuite) TestLiveTrialBalance() {
	s.post("1000", "3000", "1000", day(2024, 3, 1))
	s.post("6000", "1000", "150", day(2024, 3, 2))
	s.post("1000", "4000", "400", day(2024, 3, 3))
	s.post("2000", "1000", "600", day(2024, 3, 4))

	tb, err := s.reports.TrialBalance(s.ctx, time.Time{})
	s.Require().NoError(err)
	s.Equal(day(2024, 3, 15), tb.AsOf)
	s.True(tb.IsBalanced)
	s.True(tb.TotalDebits.Equal(tb.TotalCredits))

	cash, ok := s.row(tb, "1000")
	s.Require().True(ok)
	s.True(cash.Debit.Equal(dec("650")))
	s.True(cash.Credit.IsZero())

	payable, ok := s.row(tb, "2000")
	s.Require().True(ok)
	s.True(payable.Debit.Equal(dec("600")), "a debit-balance liability lands in the debit column")
	s.True(payable.Credit.IsZero())

	for i := 1; i < len(tb.Rows); i++ {
		s.Less(tb.Rows[i-1].AccountCode, tb.Rows[i].AccountCode)
	}
}

func (s *ReportingServiceTestSuite) TestHistoricalTrialBalanceReplaysLines() {
	s.post("1000", "4000", "100", day(2024, 3, 1))
	s.post("1000", "4000", "50", day(2024, 3, 5))

	tb, err := s.reports.TrialBalance(s.ctx, day(2024, 3, 4))
	s.Require().NoError(err)
	s.True(tb.IsBalanced)
	s.True(tb.TotalDebits.Equal(dec("100")), tb.TotalDebits.String())

	sales, ok := s.row(tb, "4000")
	s.Require().True(ok)
	s.True(sales.Credit.Equal(dec("100")))

	live, err := s.reports.TrialBalance(s.ctx, day(2024, 3, 20))
	s.Require().NoError(err)
	s.True(live.TotalDebits.Equal(dec("150")), "future dates read live balances")
}

func (s *ReportingServiceTestSuite) TestForwardDatedEntriesStayOutOfTodaysReport() {
	s.post("1000", "4000", "100", day(2024, 3, 10))
	s.post("1000", "4000", "40", day(2024, 3, 20))

	tb, err := s.reports.TrialBalance(s.ctx, time.Time{})
	s.Require().NoError(err)
	s.Equal(day(2024, 3, 15), tb.AsOf)
	s.True(tb.IsBalanced)
	s.True(tb.TotalDebits.Equal(dec("100")), tb.TotalDebits.String())

	s.assertBalance("1000", "140")

	later, err := s.reports.TrialBalance(s.ctx, day(2024, 3, 20))
	s.Require().NoError(err)
	s.True(later.TotalDebits.Equal(dec("140")))
}

func (s *ReportingServiceTestSuite) TestInactiveAccountsListedOnlyWithBalance() {
	s.post("1000", "2000", "25", day(2024, 3, 1))
	s.Require().NoError(s.accounts.DeactivateAccount(s.ctx, s.id("2000"), actor))
	s.Require().NoError(s.accounts.DeactivateAccount(s.ctx, s.id("1200"), actor))

	tb, err := s.reports.TrialBalance(s.ctx, time.Time{})
	s.Require().NoError(err)

	_, ok := s.row(tb, "2000")
	s.True(ok, "inactive account with a balance stays visible")
	_, ok = s.row(tb, "1200")
	s.False(ok, "inactive zero-balance account is hidden")
	_, ok = s.row(tb, "5000")
	s.True(ok, "active zero-balance accounts are listed")
}
