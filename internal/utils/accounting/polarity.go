package accounting

import (
	"fmt"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// polarity holds the sign a debit or credit carries for each account category.
//
//	ASSET, EXPENSE:             debit +, credit -
//	LIABILITY, EQUITY, INCOME:  debit -, credit +
var polarity = map[domain.AccountType]map[domain.EntrySide]int64{
	domain.Asset:     {domain.Debit: 1, domain.Credit: -1},
	domain.Expense:   {domain.Debit: 1, domain.Credit: -1},
	domain.Liability: {domain.Debit: -1, domain.Credit: 1},
	domain.Equity:    {domain.Debit: -1, domain.Credit: 1},
	domain.Income:    {domain.Debit: -1, domain.Credit: 1},
}

// Delta returns the signed balance change a line of amount on side causes on an
// account of the given type. It is the only place debit/credit sign rules live.
func Delta(accountType domain.AccountType, side domain.EntrySide, amount decimal.Decimal) (decimal.Decimal, error) {
	sides, ok := polarity[accountType]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown account type '%s'", apperrors.ErrValidation, accountType)
	}
	sign, ok := sides[side]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown entry side '%s'", apperrors.ErrValidation, side)
	}
	return amount.Mul(decimal.NewFromInt(sign)), nil
}

// NormalSide returns the side that increases balances of the given account type.
func NormalSide(accountType domain.AccountType) (domain.EntrySide, error) {
	d, err := Delta(accountType, domain.Debit, decimal.NewFromInt(1))
	if err != nil {
		return "", err
	}
	if d.IsPositive() {
		return domain.Debit, nil
	}
	return domain.Credit, nil
}

// ReplayBalance computes the balance produced by applying the given side totals
// to an account that started at zero.
func ReplayBalance(accountType domain.AccountType, totals domain.SideTotals) (decimal.Decimal, error) {
	debit, err := Delta(accountType, domain.Debit, totals.Debit)
	if err != nil {
		return decimal.Zero, err
	}
	credit, err := Delta(accountType, domain.Credit, totals.Credit)
	if err != nil {
		return decimal.Zero, err
	}
	return debit.Add(credit), nil
}

// ProjectTrialBalance places a balance into the debit or credit column.
// A non-negative balance goes to the account type's normal side, a negative one
// goes to the opposite side as an absolute value.
func ProjectTrialBalance(accountType domain.AccountType, balance decimal.Decimal) (debit, credit decimal.Decimal, err error) {
	normal, err := NormalSide(accountType)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	side := normal
	if balance.IsNegative() {
		side = normal.Opposite()
	}
	if side == domain.Debit {
		return balance.Abs(), decimal.Zero, nil
	}
	return decimal.Zero, balance.Abs(), nil
}
