package dto

import (
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	IsBalanced bool `json:"isBalanced"`
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf:       tb.AsOf.Format(DateLayout),
		Rows:       make([]TrialBalanceRowResponse, len(tb.Rows)),
		IsBalanced: tb.IsBalanced,
	}
	for i, row := range tb.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}
	response.Totals.Debit = tb.TotalDebits
	response.Totals.Credit = tb.TotalCredits
	return response
}

// LedgerLineResponse is one line of an account ledger or statement.
type LedgerLineResponse struct {
	EntryID         string           `json:"entryID"`
	EntryNumber     string           `json:"entryNumber"`
	TransactionType string           `json:"transactionType"`
	TransactionDate string           `json:"transactionDate"`
	Description     string           `json:"description"`
	Side            string           `json:"side"`
	Amount          decimal.Decimal  `json:"amount"`
	RunningBalance  *decimal.Decimal `json:"runningBalance,omitempty"`
}

// ToLedgerLineResponse converts a domain.LedgerLine to its DTO.
func ToLedgerLineResponse(l *domain.LedgerLine) LedgerLineResponse {
	description := l.Description
	if description == "" {
		description = l.EntryDescription
	}
	return LedgerLineResponse{
		EntryID:         l.EntryID,
		EntryNumber:     l.EntryNumber,
		TransactionType: string(l.TransactionType),
		TransactionDate: l.TransactionDate.Format(DateLayout),
		Description:     description,
		Side:            string(l.Side),
		Amount:          l.Amount,
	}
}

// ToLedgerLineResponses converts a slice of ledger lines.
func ToLedgerLineResponses(lines []domain.LedgerLine) []LedgerLineResponse {
	res := make([]LedgerLineResponse, len(lines))
	for i := range lines {
		res[i] = ToLedgerLineResponse(&lines[i])
	}
	return res
}

// AccountStatementResponse represents an account statement.
type AccountStatementResponse struct {
	Account        AccountResponse      `json:"account"`
	StartDate      string               `json:"startDate,omitempty"`
	EndDate        string               `json:"endDate,omitempty"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	ClosingBalance decimal.Decimal      `json:"closingBalance"`
	Lines          []LedgerLineResponse `json:"lines"`
}

// ToAccountStatementResponse converts a domain statement to its DTO.
func ToAccountStatementResponse(s *domain.AccountStatement) AccountStatementResponse {
	res := AccountStatementResponse{
		Account:        ToAccountResponse(&s.Account),
		OpeningBalance: s.OpeningBalance,
		ClosingBalance: s.ClosingBalance,
		Lines:          make([]LedgerLineResponse, len(s.Lines)),
	}
	if !s.Range.From.IsZero() {
		res.StartDate = s.Range.From.Format(DateLayout)
	}
	if !s.Range.To.IsZero() {
		res.EndDate = s.Range.To.Format(DateLayout)
	}
	for i := range s.Lines {
		line := ToLedgerLineResponse(&s.Lines[i].LedgerLine)
		running := s.Lines[i].RunningBalance
		line.RunningBalance = &running
		res.Lines[i] = line
	}
	return res
}
