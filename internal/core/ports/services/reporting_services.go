package services

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// ReportingService defines the interface for financial reports
type ReportingService interface {
	// TrialBalance reports balances as of the end of asOf. A zero asOf means now.
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error)
}
