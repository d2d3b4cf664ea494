package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one line of a CreateJournalEntryRequest.
type JournalLineRequest struct {
	AccountID   string           `json:"accountId" binding:"required"`
	Side        domain.EntrySide `json:"side" binding:"required,oneof=DEBIT CREDIT"`
	Amount      decimal.Decimal  `json:"amount"`
	Description string           `json:"description"`
}

// CreateJournalEntryRequest defines the payload for posting a journal entry.
type CreateJournalEntryRequest struct {
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=SALE PURCHASE PAYMENT RECEIPT ADJUSTMENT OPENING_BALANCE CLOSING EXPENSE"`
	Description     string                 `json:"description" binding:"max=500"`
	TransactionDate string                 `json:"transactionDate"`
	Lines           []JournalLineRequest   `json:"lines" binding:"required,dive"`
	ReferenceID     string                 `json:"referenceId"`
	ReferenceType   string                 `json:"referenceType"`
}

// ToDomain converts the request into a journal engine request.
func (r CreateJournalEntryRequest) ToDomain() (domain.JournalRequest, error) {
	date, err := ParseDate("transactionDate", r.TransactionDate)
	if err != nil {
		return domain.JournalRequest{}, err
	}
	lines := make([]domain.JournalLineRequest, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.JournalLineRequest{
			AccountID:   l.AccountID,
			Side:        l.Side,
			Amount:      l.Amount,
			Description: l.Description,
		}
	}
	return domain.JournalRequest{
		TransactionType: r.TransactionType,
		Description:     r.Description,
		TransactionDate: date,
		Lines:           lines,
		ReferenceID:     r.ReferenceID,
		ReferenceType:   r.ReferenceType,
	}, nil
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Side        string          `json:"side"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID         string                `json:"entryID"`
	EntryNumber     string                `json:"entryNumber"`
	TransactionType string                `json:"transactionType"`
	Description     string                `json:"description"`
	TransactionDate string                `json:"transactionDate"`
	TotalAmount     decimal.Decimal       `json:"totalAmount"`
	ReferenceID     string                `json:"referenceID,omitempty"`
	ReferenceType   string                `json:"referenceType,omitempty"`
	Lines           []JournalLineResponse `json:"lines"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
}

// ToJournalLineResponse converts a domain.JournalLine to its DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:      l.LineID,
		AccountID:   l.AccountID,
		AccountCode: l.AccountCode,
		AccountName: l.AccountName,
		AccountType: string(l.AccountType),
		Side:        string(l.Side),
		Amount:      l.Amount,
		Description: l.Description,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i := range e.Lines {
		lines[i] = ToJournalLineResponse(&e.Lines[i])
	}
	return JournalEntryResponse{
		EntryID:         e.EntryID,
		EntryNumber:     e.EntryNumber,
		TransactionType: string(e.TransactionType),
		Description:     e.Description,
		TransactionDate: e.TransactionDate.Format(DateLayout),
		TotalAmount:     e.TotalAmount,
		ReferenceID:     e.ReferenceID,
		ReferenceType:   e.ReferenceType,
		Lines:           lines,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
}

// ToJournalEntryResponses converts a slice of entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}

// ListJournalEntriesParams defines the query parameters for listing entries.
type ListJournalEntriesParams struct {
	Page            int                    `form:"page"`
	PageSize        int                    `form:"pageSize"`
	TransactionType domain.TransactionType `form:"transactionType"`
	StartDate       string                 `form:"startDate"`
	EndDate         string                 `form:"endDate"`
	AccountID       string                 `form:"accountId"`
}

// ListJournalEntriesResponse is one page of journal entries.
type ListJournalEntriesResponse struct {
	Entries    []JournalEntryResponse `json:"entries"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	TotalPages int                    `json:"totalPages"`
}

// ToListJournalEntriesResponse converts a domain page to its DTO.
func ToListJournalEntriesResponse(p *domain.JournalEntryPage) ListJournalEntriesResponse {
	return ListJournalEntriesResponse{
		Entries:    ToJournalEntryResponses(p.Entries),
		Total:      p.Total,
		Page:       p.Page,
		TotalPages: p.TotalPages,
	}
}
