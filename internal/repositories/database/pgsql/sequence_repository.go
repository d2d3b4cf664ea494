package pgsql

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(db querier) *PgxSequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextSequenceValue upserts the day's counter row. The row lock taken by the
// upsert serialises concurrent postings on the same date until commit.
func (r *PgxSequenceRepository) NextSequenceValue(ctx context.Context, day time.Time) (int, error) {
	query := `
		INSERT INTO journal_sequences (seq_date, last_value)
		VALUES ($1, 1)
		ON CONFLICT (seq_date) DO UPDATE SET last_value = journal_sequences.last_value + 1
		RETURNING last_value;
	`
	var next int
	if err := r.db.QueryRow(ctx, query, dateArg(day)).Scan(&next); err != nil {
		return 0, mapError(fmt.Sprintf("next sequence value for %s", day.Format(time.DateOnly)), err)
	}
	return next, nil
}
