package accounting

import (
	"fmt"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit difference an entry may carry.
var BalanceTolerance = decimal.RequireFromString("0.01")

// MinLines is the minimum number of lines in a journal entry.
const MinLines = 2

// ValidateLines checks line count, sides and amounts, then the debit/credit
// balance. It returns the per-side totals of a valid line set.
func ValidateLines(lines []domain.JournalLineRequest) (domain.SideTotals, error) {
	totals := domain.SideTotals{Debit: decimal.Zero, Credit: decimal.Zero}
	if len(lines) < MinLines {
		return totals, fmt.Errorf("%w: journal entry must have at least %d lines, got %d", apperrors.ErrValidation, MinLines, len(lines))
	}

	for i, line := range lines {
		if line.AccountID == "" {
			return totals, fmt.Errorf("%w: line %d has no account", apperrors.ErrValidation, i+1)
		}
		if !line.Side.IsValid() {
			return totals, fmt.Errorf("%w: line %d has invalid side '%s'", apperrors.ErrValidation, i+1, line.Side)
		}
		if !line.Amount.IsPositive() {
			return totals, fmt.Errorf("%w: line %d amount must be positive, got %s", apperrors.ErrValidation, i+1, line.Amount)
		}
		if !line.Amount.Equal(line.Amount.Round(2)) {
			return totals, fmt.Errorf("%w: line %d amount %s has more than 2 decimal places", apperrors.ErrValidation, i+1, line.Amount)
		}
		totals = totals.Add(line.Side, line.Amount)
	}

	if err := CheckBalanced(totals); err != nil {
		return totals, err
	}
	return totals, nil
}

// CheckBalanced rejects totals whose difference exceeds BalanceTolerance.
func CheckBalanced(totals domain.SideTotals) error {
	if totals.Debit.Sub(totals.Credit).Abs().GreaterThan(BalanceTolerance) {
		return apperrors.NewUnbalancedEntryError(totals.Debit, totals.Credit)
	}
	return nil
}

// IsBalanced reports whether two report totals agree to within BalanceTolerance.
func IsBalanced(totalDebits, totalCredits decimal.Decimal) bool {
	return totalDebits.Sub(totalCredits).Abs().LessThan(BalanceTolerance)
}
