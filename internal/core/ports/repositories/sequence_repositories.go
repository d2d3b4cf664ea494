package repositories

import (
	"context"
	"time"
)

// SequenceRepository allocates date-scoped counters.
type SequenceRepository interface {
	// NextSequenceValue increments and returns the counter for the calendar date of day.
	// The first call for a date returns 1. The counter row stays locked until the
	// surrounding unit of work ends.
	NextSequenceValue(ctx context.Context, day time.Time) (int, error)
}
