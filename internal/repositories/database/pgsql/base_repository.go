package pgsql

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the part of pgxpool.Pool and pgx.Tx the repositories use, so the
// same repository code runs standalone or inside a unit of work.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db querier
}

// whereClause accumulates SQL conditions with positional arguments.
type whereClause struct {
	conds []string
	args  []any
}

func (w *whereClause) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", placeholder(len(w.args))))
}

// addRaw adds a condition without arguments.
func (w *whereClause) addRaw(cond string) {
	w.conds = append(w.conds, cond)
}

// addDateRange restricts a DATE column to an inclusive range. Zero bounds are open.
func (w *whereClause) addDateRange(column string, r domain.DateRange) {
	if !r.From.IsZero() {
		w.add(column+" >= ?", dateArg(r.From))
	}
	if !r.To.IsZero() {
		w.add(column+" <= ?", dateArg(r.To))
	}
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// dateArg passes a calendar date to a DATE column.
func dateArg(t time.Time) time.Time {
	return domain.DateOf(t)
}

// nullIfEmpty maps "" to SQL NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
