package services

import (
	"context"
	"time"

	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
)

// SequenceSvc mints entry numbers.
type SequenceSvc interface {
	// NextEntryNumber allocates the next JE-YYYYMMDD-NNNN number for the date
	// inside the caller's unit of work.
	NextEntryNumber(ctx context.Context, repos portsrepo.TxRepositories, transactionDate time.Time) (string, error)
}
