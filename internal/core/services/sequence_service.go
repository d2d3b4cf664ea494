package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
)

const (
	entryNumberPrefix     = "JE"
	entryNumberDateLayout = "20060102"
)

// FormatEntryNumber renders JE-YYYYMMDD-NNNN. Sequences past 9999 widen the last group.
func FormatEntryNumber(transactionDate time.Time, seq int) string {
	return fmt.Sprintf("%s-%s-%04d", entryNumberPrefix, domain.DateOf(transactionDate).Format(entryNumberDateLayout), seq)
}

// ParseEntryNumber splits an entry number into its date and sequence.
func ParseEntryNumber(entryNumber string) (time.Time, int, error) {
	parts := strings.Split(entryNumber, "-")
	if len(parts) != 3 || parts[0] != entryNumberPrefix {
		return time.Time{}, 0, fmt.Errorf("%w: malformed entry number '%s'", apperrors.ErrValidation, entryNumber)
	}
	date, err := time.Parse(entryNumberDateLayout, parts[1])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: malformed entry number date '%s'", apperrors.ErrValidation, parts[1])
	}
	seq, err := strconv.Atoi(parts[2])
	if err != nil || seq < 1 || len(parts[2]) < 4 {
		return time.Time{}, 0, fmt.Errorf("%w: malformed entry number sequence '%s'", apperrors.ErrValidation, parts[2])
	}
	return date, seq, nil
}

type sequenceService struct {
	BaseService
}

// NewSequenceService creates the entry number generator.
func NewSequenceService() portssvc.SequenceSvc {
	return &sequenceService{}
}

var _ portssvc.SequenceSvc = (*sequenceService)(nil)

func (s *sequenceService) NextEntryNumber(ctx context.Context, repos portsrepo.TxRepositories, transactionDate time.Time) (string, error) {
	day := domain.DateOf(transactionDate)
	seq, err := repos.Sequences.NextSequenceValue(ctx, day)
	if err != nil {
		return "", fmt.Errorf("allocate entry number for %s: %w", day.Format(time.DateOnly), err)
	}
	if seq < 1 {
		return "", fmt.Errorf("%w: sequence for %s returned %d", apperrors.ErrInternalInconsistency, day.Format(time.DateOnly), seq)
	}
	return FormatEntryNumber(day, seq), nil
}
