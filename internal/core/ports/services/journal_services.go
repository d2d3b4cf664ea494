package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// JournalWriterSvc is the journal engine's write path.
type JournalWriterSvc interface {
	// CreateJournalEntry validates, numbers and posts an entry. Contention is
	// retried a bounded number of times before apperrors.ErrConcurrency is returned.
	CreateJournalEntry(ctx context.Context, req domain.JournalRequest, actorID string) (*domain.JournalEntry, error)

	// ReverseJournalEntry posts a new entry that cancels entryID.
	ReverseJournalEntry(ctx context.Context, entryID string, actorID string) (*domain.JournalEntry, error)
}

// JournalPostingSvc builds common line sets and posts them through the engine.
type JournalPostingSvc interface {
	RecordSale(ctx context.Context, req domain.SaleRequest, actorID string) (*domain.JournalEntry, error)
	RecordPayment(ctx context.Context, req domain.PaymentRequest, actorID string) (*domain.JournalEntry, error)
	RecordAdjustment(ctx context.Context, req domain.AdjustmentRequest, actorID string) (*domain.JournalEntry, error)
	RecordExpense(ctx context.Context, req domain.ExpenseRequest, actorID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalWriterSvc
	JournalPostingSvc
}
