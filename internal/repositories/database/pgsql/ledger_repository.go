package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(db querier) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.LedgerReader = (*PgxLedgerRepository)(nil)

const sideSums = `
	COALESCE(SUM(l.amount) FILTER (WHERE l.side = 'DEBIT'), 0),
	COALESCE(SUM(l.amount) FILTER (WHERE l.side = 'CREDIT'), 0)`

func (r *PgxLedgerRepository) ListEntriesByTransactionDate(ctx context.Context, dateRange domain.DateRange) ([]domain.JournalEntry, error) {
	var where whereClause
	where.addDateRange("e.transaction_date", dateRange)
	query := `SELECT ` + entryColumns + ` FROM journal_entries e` + where.String() +
		` ORDER BY e.transaction_date, e.created_at, e.entry_number;`
	return r.queryEntries(ctx, "list entries by transaction date", query, where.args...)
}

func (r *PgxLedgerRepository) ListEntriesCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries e
		WHERE e.created_at >= $1 AND e.created_at < $2
		ORDER BY e.created_at, e.entry_number;
	`
	return r.queryEntries(ctx, "list entries created between", query, from, to)
}

func (r *PgxLedgerRepository) ListLinesByAccount(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.LedgerLine, error) {
	var where whereClause
	where.add("l.account_id = ?", accountID)
	where.addDateRange("e.transaction_date", dateRange)
	query := `
		SELECT ` + lineColumns + `, e.entry_number, e.transaction_type, e.transaction_date, e.description, e.created_at
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id` + where.String() + `
		ORDER BY e.transaction_date, e.created_at, e.entry_number, l.line_order;
	`
	rows, err := r.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, mapError("list lines by account", err)
	}
	defer rows.Close()

	var lines []domain.LedgerLine
	for rows.Next() {
		var ll domain.LedgerLine
		if err := rows.Scan(
			&ll.LineID,
			&ll.EntryID,
			&ll.AccountID,
			&ll.Side,
			&ll.Amount,
			&ll.Description,
			&ll.LineOrder,
			&ll.CreatedAt,
			&ll.AccountCode,
			&ll.AccountName,
			&ll.AccountType,
			&ll.EntryNumber,
			&ll.TransactionType,
			&ll.TransactionDate,
			&ll.EntryDescription,
			&ll.EntryCreatedAt,
		); err != nil {
			return nil, mapError("scan ledger line", err)
		}
		lines = append(lines, ll)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("iterate ledger lines", err)
	}
	return lines, nil
}

func (r *PgxLedgerRepository) SumLinesByAccountBefore(ctx context.Context, accountID string, before time.Time) (domain.SideTotals, error) {
	query := `
		SELECT ` + sideSums + `
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE l.account_id = $1 AND e.transaction_date < $2;
	`
	var totals domain.SideTotals
	if err := r.db.QueryRow(ctx, query, accountID, dateArg(before)).Scan(&totals.Debit, &totals.Credit); err != nil {
		return domain.SideTotals{}, mapError(fmt.Sprintf("sum lines of account %s", accountID), err)
	}
	return totals, nil
}

func (r *PgxLedgerRepository) SumLinesUpTo(ctx context.Context, asOf time.Time) (map[string]domain.SideTotals, error) {
	query := `
		SELECT l.account_id, ` + sideSums + `
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.transaction_date <= $1
		GROUP BY l.account_id;
	`
	rows, err := r.db.Query(ctx, query, dateArg(asOf))
	if err != nil {
		return nil, mapError("sum lines up to date", err)
	}
	defer rows.Close()

	sums := make(map[string]domain.SideTotals)
	for rows.Next() {
		var (
			accountID     string
			debit, credit decimal.Decimal
		)
		if err := rows.Scan(&accountID, &debit, &credit); err != nil {
			return nil, mapError("scan line sums", err)
		}
		sums[accountID] = domain.SideTotals{Debit: debit, Credit: credit}
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("iterate line sums", err)
	}
	return sums, nil
}

func (r *PgxLedgerRepository) HasEntriesAfter(ctx context.Context, day time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE transaction_date > $1);`
	var found bool
	if err := r.db.QueryRow(ctx, query, day).Scan(&found); err != nil {
		return false, mapError("check entries after "+day.Format(time.DateOnly), err)
	}
	return found, nil
}

func (r *PgxLedgerRepository) LastTransactionDate(ctx context.Context, accountID string) (*time.Time, error) {
	query := `
		SELECT MAX(e.transaction_date)
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE l.account_id = $1;
	`
	var last *time.Time
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&last); err != nil {
		return nil, mapError(fmt.Sprintf("last transaction date of account %s", accountID), err)
	}
	return last, nil
}
