package services_test

import (
	"testing"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	LedgerFixture
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestCreateAccount() {
	acc, err := s.accounts.CreateAccount(s.ctx, dto.CreateAccountRequest{
		Code:        "1300",
		Name:        "Petty Cash",
		AccountType: domain.Asset,
	}, actor)
	s.Require().NoError(err)
	s.NotEmpty(acc.AccountID)
	s.True(acc.Balance.IsZero())
	s.True(acc.IsActive)
	s.Equal(actor, acc.CreatedBy)
	s.Equal(fixedNow, acc.CreatedAt)

	got, err := s.accounts.GetAccount(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.Equal("Petty Cash", got.Name)
}

func (s *AccountServiceTestSuite) TestCreateAccountRejectsBadInput() {
	_, err := s.accounts.CreateAccount(s.ctx, dto.CreateAccountRequest{Code: "7000", Name: "Gifts", AccountType: "REVENUE"}, actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.accounts.CreateAccount(s.ctx, dto.CreateAccountRequest{Code: "1000", Name: "Other Cash", AccountType: domain.Asset}, actor)
	s.ErrorIs(err, apperrors.ErrDuplicate, "code taken")

	_, err = s.accounts.CreateAccount(s.ctx, dto.CreateAccountRequest{Code: "1999", Name: "Cash", AccountType: domain.Asset}, actor)
	s.ErrorIs(err, apperrors.ErrDuplicate, "name taken")
}

func (s *AccountServiceTestSuite) TestListActiveAccounts() {
	all, err := s.accounts.ListActiveAccounts(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, len(domain.DefaultChartOfAccounts))

	s.Require().NoError(s.accounts.DeactivateAccount(s.ctx, s.id("5000"), actor))
	expenses, err := s.accounts.ListActiveAccounts(s.ctx, domain.Expense)
	s.Require().NoError(err)
	s.Require().Len(expenses, 1)
	s.Equal("6000", expenses[0].Code)
}

func (s *AccountServiceTestSuite) TestDeactivateIsIdempotentAndFreezesBalance() {
	s.post("1200", "1000", "40", day(2024, 3, 1))

	s.Require().NoError(s.accounts.DeactivateAccount(s.ctx, s.id("1200"), actor))
	s.Require().NoError(s.accounts.DeactivateAccount(s.ctx, s.id("1200"), actor))

	acc, err := s.accounts.GetAccount(s.ctx, s.id("1200"))
	s.Require().NoError(err)
	s.False(acc.IsActive)
	s.True(acc.Balance.Equal(dec("40")))

	s.ErrorIs(s.accounts.DeactivateAccount(s.ctx, "missing", actor), apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestSeedDefaultChartSkipsExistingCodes() {
	created, err := s.accounts.SeedDefaultChart(s.ctx, "system")
	s.Require().NoError(err)
	s.Empty(created)
}

func (s *AccountServiceTestSuite) TestApplyBalanceDelta() {
	acc, err := s.accounts.ApplyBalanceDelta(s.ctx, s.id("1000"), dec("12.34"), actor)
	s.Require().NoError(err)
	s.True(acc.Balance.Equal(dec("12.34")))

	acc, err = s.accounts.ApplyBalanceDelta(s.ctx, s.id("1000"), dec("-2.34"), actor)
	s.Require().NoError(err)
	s.True(acc.Balance.Equal(dec("10")))

	_, err = s.accounts.ApplyBalanceDelta(s.ctx, "missing", dec("1"), actor)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestUpdateAccount() {
	name := "  Petty Cash  "
	desc := "Till float"
	acc, err := s.accounts.UpdateAccount(s.ctx, s.id("1000"), dto.UpdateAccountRequest{Name: &name, Description: &desc}, "editor")
	s.Require().NoError(err)
	s.Equal("Petty Cash", acc.Name)
	s.Equal("Till float", acc.Description)
	s.Equal("1000", acc.Code, "fields left out stay as they were")
	s.Equal("editor", acc.LastUpdatedBy)

	got, err := s.accounts.GetAccount(s.ctx, s.id("1000"))
	s.Require().NoError(err)
	s.Equal("Petty Cash", got.Name)

	code := "1010"
	acc, err = s.accounts.UpdateAccount(s.ctx, s.id("1000"), dto.UpdateAccountRequest{Code: &code}, actor)
	s.Require().NoError(err)
	s.Equal("1010", acc.Code)
}

func (s *AccountServiceTestSuite) TestUpdateAccountRejectsCollisionsAndBadInput() {
	taken := "1100"
	_, err := s.accounts.UpdateAccount(s.ctx, s.id("1000"), dto.UpdateAccountRequest{Code: &taken}, actor)
	s.ErrorIs(err, apperrors.ErrDuplicate)

	takenName := "Inventory"
	_, err = s.accounts.UpdateAccount(s.ctx, s.id("1000"), dto.UpdateAccountRequest{Name: &takenName}, actor)
	s.ErrorIs(err, apperrors.ErrDuplicate)

	blank := "   "
	_, err = s.accounts.UpdateAccount(s.ctx, s.id("1000"), dto.UpdateAccountRequest{Name: &blank}, actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	bogus := domain.AccountType("REVENUE")
	_, err = s.accounts.UpdateAccount(s.ctx, s.id("1000"), dto.UpdateAccountRequest{AccountType: &bogus}, actor)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.accounts.UpdateAccount(s.ctx, "missing", dto.UpdateAccountRequest{Name: &takenName}, actor)
	s.ErrorIs(err, apperrors.ErrNotFound)

	got, err := s.accounts.GetAccount(s.ctx, s.id("1000"))
	s.Require().NoError(err)
	s.Equal("Cash", got.Name, "failed updates leave the account untouched")
}

func (s *AccountServiceTestSuite) TestAccountTypeFixedOncePosted() {
	liability := domain.Liability
	acc, err := s.accounts.UpdateAccount(s.ctx, s.id("1200"), dto.UpdateAccountRequest{AccountType: &liability}, actor)
	s.Require().NoError(err)
	s.Equal(domain.Liability, acc.AccountType, "an account without postings may change type")

	s.post("1000", "4000", "10", day(2024, 3, 1))
	_, err = s.accounts.UpdateAccount(s.ctx, s.id("1000"), dto.UpdateAccountRequest{AccountType: &liability}, actor)
	s.ErrorIs(err, apperrors.ErrState)

	asset := domain.Asset
	name := "Till"
	acc, err = s.accounts.UpdateAccount(s.ctx, s.id("1000"), dto.UpdateAccountRequest{AccountType: &asset, Name: &name}, actor)
	s.Require().NoError(err, "restating the current type is not a change")
	s.Equal("Till", acc.Name)
	s.True(acc.Balance.Equal(dec("10")))
}
