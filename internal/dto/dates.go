package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses an optional YYYY-MM-DD value. An empty string yields the zero time.
func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be formatted as YYYY-MM-DD, got '%s'", apperrors.ErrValidation, field, value)
	}
	return t, nil
}

// ParseDateRange parses optional from/to bounds and rejects inverted ranges.
func ParseDateRange(from, to string) (domain.DateRange, error) {
	start, err := ParseDate("startDate", from)
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := ParseDate("endDate", to)
	if err != nil {
		return domain.DateRange{}, err
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return domain.DateRange{}, fmt.Errorf("%w: endDate %s is before startDate %s", apperrors.ErrValidation, to, from)
	}
	return domain.DateRange{From: start, To: end}, nil
}
