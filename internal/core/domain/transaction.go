package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide indicates whether a journal line is a Debit or a Credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// IsValid reports whether s is Debit or Credit.
func (s EntrySide) IsValid() bool {
	return s == Debit || s == Credit
}

// Opposite returns the other side.
func (s EntrySide) Opposite() EntrySide {
	if s == Debit {
		return Credit
	}
	return Debit
}

// JournalLine is a single debit or credit against one account.
// The Account* fields are resolved from the accounts table on read.
type JournalLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	Side        EntrySide       `json:"side"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	LineOrder   int             `json:"lineOrder"`
	CreatedAt   time.Time       `json:"createdAt"`

	AccountCode string      `json:"accountCode"`
	AccountName string      `json:"accountName"`
	AccountType AccountType `json:"accountType"`
}

// LedgerLine is a journal line together with its entry header, as listed in an account ledger.
type LedgerLine struct {
	JournalLine
	EntryNumber      string          `json:"entryNumber"`
	TransactionType  TransactionType `json:"transactionType"`
	TransactionDate  time.Time       `json:"transactionDate"`
	EntryDescription string          `json:"entryDescription"`
	EntryCreatedAt   time.Time       `json:"entryCreatedAt"`
}

// SideTotals sums line amounts per side.
type SideTotals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Add accumulates amount on the given side.
func (t SideTotals) Add(side EntrySide, amount decimal.Decimal) SideTotals {
	if side == Debit {
		t.Debit = t.Debit.Add(amount)
	} else {
		t.Credit = t.Credit.Add(amount)
	}
	return t
}
