package accounting

import (
	"testing"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDelta(t *testing.T) {
	amount := d("100")
	tests := []struct {
		accountType domain.AccountType
		side        domain.EntrySide
		want        string
	}{
		{domain.Asset, domain.Debit, "100"},
		{domain.Asset, domain.Credit, "-100"},
		{domain.Expense, domain.Debit, "100"},
		{domain.Expense, domain.Credit, "-100"},
		{domain.Liability, domain.Debit, "-100"},
		{domain.Liability, domain.Credit, "100"},
		{domain.Equity, domain.Debit, "-100"},
		{domain.Equity, domain.Credit, "100"},
		{domain.Income, domain.Debit, "-100"},
		{domain.Income, domain.Credit, "100"},
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType)+"_"+string(tt.side), func(t *testing.T) {
			got, err := Delta(tt.accountType, tt.side, amount)
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestDelta_Unknown(t *testing.T) {
	_, err := Delta(domain.AccountType("REVENUE"), domain.Debit, d("1"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = Delta(domain.Asset, domain.EntrySide("BOTH"), d("1"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNormalSide(t *testing.T) {
	for accountType, want := range map[domain.AccountType]domain.EntrySide{
		domain.Asset:     domain.Debit,
		domain.Expense:   domain.Debit,
		domain.Liability: domain.Credit,
		domain.Equity:    domain.Credit,
		domain.Income:    domain.Credit,
	} {
		got, err := NormalSide(accountType)
		require.NoError(t, err)
		assert.Equal(t, want, got, accountType)
	}
}

func TestReplayBalance(t *testing.T) {
	totals := domain.SideTotals{Debit: d("250.50"), Credit: d("100.25")}

	asset, err := ReplayBalance(domain.Asset, totals)
	require.NoError(t, err)
	assert.True(t, asset.Equal(d("150.25")), asset.String())

	liability, err := ReplayBalance(domain.Liability, totals)
	require.NoError(t, err)
	assert.True(t, liability.Equal(d("-150.25")), liability.String())
}

func TestProjectTrialBalance(t *testing.T) {
	tests := []struct {
		name        string
		accountType domain.AccountType
		balance     string
		debit       string
		credit      string
	}{
		{"positive asset to debit", domain.Asset, "100", "100", "0"},
		{"negative asset to credit", domain.Asset, "-40", "0", "40"},
		{"positive expense to debit", domain.Expense, "12.50", "12.50", "0"},
		{"positive income to credit", domain.Income, "100", "0", "100"},
		{"negative income to debit", domain.Income, "-5", "5", "0"},
		{"positive liability to credit", domain.Liability, "50", "0", "50"},
		{"negative equity to debit", domain.Equity, "-50", "50", "0"},
		{"zero stays zero", domain.Equity, "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debit, credit, err := ProjectTrialBalance(tt.accountType, d(tt.balance))
			require.NoError(t, err)
			assert.True(t, debit.Equal(d(tt.debit)), "debit %s", debit)
			assert.True(t, credit.Equal(d(tt.credit)), "credit %s", credit)
		})
	}
}

func TestValidateLines(t *testing.T) {
	cashDebit := domain.JournalLineRequest{AccountID: "cash", Side: domain.Debit, Amount: d("100")}
	salesCredit := domain.JournalLineRequest{AccountID: "sales", Side: domain.Credit, Amount: d("100")}

	totals, err := ValidateLines([]domain.JournalLineRequest{cashDebit, salesCredit})
	require.NoError(t, err)
	assert.True(t, totals.Debit.Equal(d("100")))
	assert.True(t, totals.Credit.Equal(d("100")))

	_, err = ValidateLines(nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = ValidateLines([]domain.JournalLineRequest{cashDebit})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	zero := salesCredit
	zero.Amount = decimal.Zero
	_, err = ValidateLines([]domain.JournalLineRequest{cashDebit, zero})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	fractional := salesCredit
	fractional.Amount = d("99.995")
	_, err = ValidateLines([]domain.JournalLineRequest{cashDebit, fractional})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	noAccount := salesCredit
	noAccount.AccountID = ""
	_, err = ValidateLines([]domain.JournalLineRequest{cashDebit, noAccount})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateLines_Unbalanced(t *testing.T) {
	_, err := ValidateLines([]domain.JournalLineRequest{
		{AccountID: "cash", Side: domain.Debit, Amount: d("100")},
		{AccountID: "sales", Side: domain.Credit, Amount: d("90")},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnbalancedEntry)
	var unbalanced *apperrors.UnbalancedEntryError
	require.ErrorAs(t, err, &unbalanced)
	assert.True(t, unbalanced.TotalDebit.Equal(d("100")))
	assert.True(t, unbalanced.TotalCredit.Equal(d("90")))
}

func TestCheckBalanced_Tolerance(t *testing.T) {
	assert.NoError(t, CheckBalanced(domain.SideTotals{Debit: d("100.01"), Credit: d("100")}))
	assert.Error(t, CheckBalanced(domain.SideTotals{Debit: d("100.02"), Credit: d("100")}))

	assert.True(t, IsBalanced(d("100.005"), d("100")))
	assert.False(t, IsBalanced(d("100.01"), d("100")))
}
