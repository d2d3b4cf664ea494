package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, code, name, account_type, description, balance, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(db querier) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{db: db}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.AccountID,
		&a.Code,
		&a.Name,
		&a.AccountType,
		&a.Description,
		&a.Balance,
		&a.IsActive,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	return a, err
}

func (r *PgxAccountRepository) collect(ctx context.Context, op, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(op, err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, mapError(op, err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	return accounts, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		account.AccountID,
		account.Code,
		account.Name,
		account.AccountType,
		account.Description,
		account.Balance,
		account.IsActive,
		account.CreatedAt,
		account.CreatedBy,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	return mapError(fmt.Sprintf("save account %s", account.Code), err)
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	a, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, mapError(fmt.Sprintf("find account %s", accountID), err)
	}
	return &a, nil
}

func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`
	accounts, err := r.collect(ctx, "find accounts by ids", query, accountIDs)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		result[a.AccountID] = a
	}
	return result, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	var where whereClause
	if filter.ActiveOnly {
		where.addRaw("is_active")
	}
	if filter.AccountType != "" {
		where.add("account_type = ?", filter.AccountType)
	}
	query := `SELECT ` + accountColumns + ` FROM accounts` + where.String() + ` ORDER BY name;`
	return r.collect(ctx, "list accounts", query, where.args...)
}

// UpdateAccount leaves balance and active status alone; those have their own paths.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET code = $2, name = $3, account_type = $4, description = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		account.AccountID,
		account.Code,
		account.Name,
		account.AccountType,
		account.Description,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return mapError(fmt.Sprintf("update account %s", account.AccountID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update account %s: %w", account.AccountID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, accountID, now, userID)
	if err != nil {
		return mapError(fmt.Sprintf("deactivate account %s", accountID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deactivate account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}

// LockAccountsForUpdate takes row locks in account ID order so that two
// postings touching the same accounts cannot deadlock each other.
func (r *PgxAccountRepository) LockAccountsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1) ORDER BY account_id FOR UPDATE;`
	accounts, err := r.collect(ctx, "lock accounts", query, accountIDs)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		result[a.AccountID] = a
	}
	return result, nil
}

// AddToBalance applies delta with a single atomic UPDATE.
func (r *PgxAccountRepository) AddToBalance(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1
		RETURNING ` + accountColumns + `;
	`
	a, err := scanAccount(r.db.QueryRow(ctx, query, accountID, delta, now, userID))
	if err != nil {
		return nil, mapError(fmt.Sprintf("update balance of account %s", accountID), err)
	}
	return &a, nil
}
