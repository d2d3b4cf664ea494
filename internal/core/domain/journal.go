package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType categorises the business event behind a journal entry.
type TransactionType string

const (
	TransactionSale           TransactionType = "SALE"
	TransactionPurchase       TransactionType = "PURCHASE"
	TransactionPayment        TransactionType = "PAYMENT"
	TransactionReceipt        TransactionType = "RECEIPT"
	TransactionAdjustment     TransactionType = "ADJUSTMENT"
	TransactionOpeningBalance TransactionType = "OPENING_BALANCE"
	TransactionClosing        TransactionType = "CLOSING"
	TransactionExpense        TransactionType = "EXPENSE"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionSale, TransactionPurchase, TransactionPayment, TransactionReceipt,
		TransactionAdjustment, TransactionOpeningBalance, TransactionClosing, TransactionExpense:
		return true
	}
	return false
}

// Reference types written by the built-in postings.
const (
	ReferenceTypeSale     = "sale"
	ReferenceTypeExpense  = "expense"
	ReferenceTypeReversal = "REVERSAL"
)

// JournalEntry is an immutable, balanced record of a financial event.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`
	EntryNumber     string          `json:"entryNumber"`
	TransactionType TransactionType `json:"transactionType"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ReferenceID     string          `json:"referenceID,omitempty"`
	ReferenceType   string          `json:"referenceType,omitempty"`
	Lines           []JournalLine   `json:"lines"`
	AuditFields
}

// IsReversal reports whether the entry reverses another entry.
func (e JournalEntry) IsReversal() bool {
	return e.ReferenceType == ReferenceTypeReversal && e.ReferenceID != ""
}

// Totals sums the entry's lines per side.
func (e JournalEntry) Totals() SideTotals {
	totals := SideTotals{Debit: decimal.Zero, Credit: decimal.Zero}
	for _, line := range e.Lines {
		totals = totals.Add(line.Side, line.Amount)
	}
	return totals
}

// JournalLineRequest is one requested line of a new entry.
type JournalLineRequest struct {
	AccountID   string
	Side        EntrySide
	Amount      decimal.Decimal
	Description string
}

// JournalRequest is the input to the journal engine.
type JournalRequest struct {
	TransactionType TransactionType
	Description     string
	TransactionDate time.Time
	Lines           []JournalLineRequest
	ReferenceID     string
	ReferenceType   string
}

// JournalFilter narrows a journal listing. Zero values do not filter.
type JournalFilter struct {
	TransactionType TransactionType
	DateRange       DateRange
	AccountID       string
}

// JournalEntryPage is one page of a journal listing.
type JournalEntryPage struct {
	Entries    []JournalEntry `json:"entries"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}
