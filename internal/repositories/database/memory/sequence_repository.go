package memory

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
)

type sequenceRepository struct {
	view
}

var _ portsrepo.SequenceRepository = (*sequenceRepository)(nil)

func (r *sequenceRepository) NextSequenceValue(ctx context.Context, day time.Time) (int, error) {
	key := domain.DateOf(day).Format(time.DateOnly)
	var next int
	err := r.write(ctx, func(st *state) error {
		st.sequences[key]++
		next = st.sequences[key]
		return nil
	})
	return next, err
}
