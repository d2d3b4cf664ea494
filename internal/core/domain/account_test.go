package domain_test

import (
	"testing"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDesignatedAccounts_FillFromChart(t *testing.T) {
	chart := []domain.Account{
		{AccountID: "cash", Code: domain.DefaultCashCode},
		{AccountID: "sales", Code: domain.DefaultSalesCode},
		{AccountID: "ar", Code: domain.DefaultReceivableCode},
	}

	got := domain.DesignatedAccounts{SalesAccountID: "configured"}.FillFromChart(chart)

	assert.Equal(t, "cash", got.CashAccountID)
	assert.Equal(t, "configured", got.SalesAccountID, "configured roles are kept")
	assert.Equal(t, "ar", got.ReceivableAccountID)
	assert.Empty(t, got.AdjustmentAccountID, "no 9999 account in the chart")
}

func TestAccountType_IsValid(t *testing.T) {
	for _, at := range []domain.AccountType{domain.Asset, domain.Liability, domain.Equity, domain.Income, domain.Expense} {
		assert.True(t, at.IsValid(), at)
	}
	assert.False(t, domain.AccountType("REVENUE").IsValid())
}
