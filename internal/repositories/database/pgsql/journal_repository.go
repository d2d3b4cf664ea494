package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

const entryColumns = `e.entry_id, e.entry_number, e.transaction_type, e.description, e.transaction_date,
	e.total_amount, COALESCE(e.reference_id, ''), COALESCE(e.reference_type, ''),
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by`

const lineColumns = `l.line_id, l.entry_id, l.account_id, l.side, l.amount, l.description, l.line_order,
	l.created_at, a.code, a.name, a.account_type`

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(db querier) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.EntryID,
		&e.EntryNumber,
		&e.TransactionType,
		&e.Description,
		&e.TransactionDate,
		&e.TotalAmount,
		&e.ReferenceID,
		&e.ReferenceType,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

func scanLine(row pgx.Row) (domain.JournalLine, error) {
	var l domain.JournalLine
	err := row.Scan(
		&l.LineID,
		&l.EntryID,
		&l.AccountID,
		&l.Side,
		&l.Amount,
		&l.Description,
		&l.LineOrder,
		&l.CreatedAt,
		&l.AccountCode,
		&l.AccountName,
		&l.AccountType,
	)
	return l, err
}

// queryEntries runs a header query and attaches each entry's resolved lines.
func (r *BaseRepository) queryEntries(ctx context.Context, op, query string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(op, err)
	}
	var entries []domain.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			rows.Close()
			return nil, mapError(op, err)
		}
		entries = append(entries, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	if len(entries) == 0 {
		return entries, nil
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
	}
	lines, err := r.linesByEntryIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Lines = lines[entries[i].EntryID]
	}
	return entries, nil
}

func (r *BaseRepository) linesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM journal_entry_lines l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.entry_id = ANY($1)
		ORDER BY l.entry_id, l.line_order;
	`
	rows, err := r.db.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, mapError("load journal lines", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, mapError("scan journal line", err)
		}
		result[l.EntryID] = append(result[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("iterate journal lines", err)
	}
	return result, nil
}

func (r *PgxJournalRepository) findOne(ctx context.Context, op, query string, args ...any) (*domain.JournalEntry, error) {
	entries, err := r.queryEntries(ctx, op, query, args...)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, mapError(op, pgx.ErrNoRows)
	}
	return &entries[0], nil
}

func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries e WHERE e.entry_id = $1;`
	return r.findOne(ctx, fmt.Sprintf("find journal entry %s", entryID), query, entryID)
}

func (r *PgxJournalRepository) CountEntriesByNumber(ctx context.Context, entryNumber string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM journal_entries WHERE entry_number = $1;`, entryNumber).Scan(&count)
	if err != nil {
		return 0, mapError("count entries by number", err)
	}
	return count, nil
}

func (r *PgxJournalRepository) FindReversalOf(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries e
		WHERE e.reference_type = $1 AND e.reference_id = $2;
	`
	return r.findOne(ctx, fmt.Sprintf("find reversal of %s", entryID), query, domain.ReferenceTypeReversal, entryID)
}

func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, filter domain.JournalFilter, limit int, offset int) ([]domain.JournalEntry, int, error) {
	var where whereClause
	if filter.TransactionType != "" {
		where.add("e.transaction_type = ?", filter.TransactionType)
	}
	where.addDateRange("e.transaction_date", filter.DateRange)
	if filter.AccountID != "" {
		where.add("EXISTS (SELECT 1 FROM journal_entry_lines fl WHERE fl.entry_id = e.entry_id AND fl.account_id = ?)", filter.AccountID)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM journal_entries e` + where.String() + `;`
	if err := r.db.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, mapError("count journal entries", err)
	}
	if total == 0 || offset >= total {
		return []domain.JournalEntry{}, total, nil
	}

	args := append(append([]any{}, where.args...), limit, offset)
	query := `SELECT ` + entryColumns + ` FROM journal_entries e` + where.String() +
		` ORDER BY e.transaction_date DESC, e.created_at DESC, e.entry_number DESC` +
		` LIMIT ` + placeholder(len(where.args)+1) + ` OFFSET ` + placeholder(len(where.args)+2) + `;`
	entries, err := r.queryEntries(ctx, "list journal entries", query, args...)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// SaveJournalEntry inserts the header and its lines. Lines are sent as one batch.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	headerQuery := `
		INSERT INTO journal_entries (
			entry_id, entry_number, transaction_type, description, transaction_date, total_amount,
			reference_id, reference_type, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.db.Exec(ctx, headerQuery,
		entry.EntryID,
		entry.EntryNumber,
		entry.TransactionType,
		entry.Description,
		dateArg(entry.TransactionDate),
		entry.TotalAmount,
		nullIfEmpty(entry.ReferenceID),
		nullIfEmpty(entry.ReferenceType),
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return mapError(fmt.Sprintf("insert journal entry %s", entry.EntryNumber), err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (line_id, entry_id, account_id, side, amount, description, line_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, l := range entry.Lines {
		batch.Queue(lineQuery, l.LineID, entry.EntryID, l.AccountID, l.Side, l.Amount, l.Description, l.LineOrder, l.CreatedAt)
	}
	br := r.db.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapError(fmt.Sprintf("insert lines of journal entry %s", entry.EntryNumber), err)
	}
	return nil
}
