package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five account categories.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account represents a ledger account.
// Balance is only ever written through the account registry's balance primitive.
type Account struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Description string          `json:"description"`
	Balance     decimal.Decimal `json:"balance"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// AccountBalance is a point-in-time view of an account's running balance.
type AccountBalance struct {
	Account             Account         `json:"account"`
	Balance             decimal.Decimal `json:"balance"`
	LastTransactionDate *time.Time      `json:"lastTransactionDate,omitempty"`
}

// DesignatedAccounts maps posting roles to concrete account IDs.
// An empty ID means the role is not configured.
type DesignatedAccounts struct {
	CashAccountID       string
	SalesAccountID      string
	ReceivableAccountID string
	AdjustmentAccountID string
}

// ChartEntry describes an account in a default chart of accounts.
type ChartEntry struct {
	Code        string
	Name        string
	AccountType AccountType
	Description string
}

// DefaultChartOfAccounts is the chart provisioned by SeedDefaultChart.
var DefaultChartOfAccounts = []ChartEntry{
	{Code: "1000", Name: "Cash", AccountType: Asset, Description: "Cash on hand"},
	{Code: "1100", Name: "Accounts Receivable", AccountType: Asset, Description: "Money owed by customers"},
	{Code: "1200", Name: "Inventory", AccountType: Asset, Description: "Products in stock"},
	{Code: "2000", Name: "Accounts Payable", AccountType: Liability, Description: "Money owed to suppliers"},
	{Code: "3000", Name: "Owner's Equity", AccountType: Equity, Description: "Owner's investment in business"},
	{Code: "4000", Name: "Sales Revenue", AccountType: Income, Description: "Revenue from sales"},
	{Code: "5000", Name: "Cost of Goods Sold", AccountType: Expense, Description: "Direct cost of products sold"},
	{Code: "6000", Name: "Operating Expenses", AccountType: Expense, Description: "General business expenses"},
	{Code: "9999", Name: "Suspense", AccountType: Equity, Description: "Balancing leg for manual adjustments"},
}

// Default chart codes that back the posting roles.
const (
	DefaultCashCode       = "1000"
	DefaultReceivableCode = "1100"
	DefaultSalesCode      = "4000"
	DefaultAdjustmentCode = "9999"
)

// FillFromChart returns d with every unset role bound to the account carrying
// the role's default chart code, when such an account is present.
func (d DesignatedAccounts) FillFromChart(accounts []Account) DesignatedAccounts {
	byCode := make(map[string]string, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a.AccountID
	}
	fill := func(id *string, code string) {
		if *id == "" {
			*id = byCode[code]
		}
	}
	fill(&d.CashAccountID, DefaultCashCode)
	fill(&d.ReceivableAccountID, DefaultReceivableCode)
	fill(&d.SalesAccountID, DefaultSalesCode)
	fill(&d.AdjustmentAccountID, DefaultAdjustmentCode)
	return d
}
