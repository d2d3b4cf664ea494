package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountFilter narrows account listings. Zero values do not filter.
type AccountFilter struct {
	AccountType domain.AccountType
	ActiveOnly  bool
}

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing IDs are absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts lists accounts ordered by name.
	ListAccounts(ctx context.Context, filter AccountFilter) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A taken code or name yields apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount rewrites the code, name, type and description of an existing
	// account. A taken code or name yields apperrors.ErrDuplicate.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountBalanceWriter holds the balance primitives. Only the account registry calls them.
type AccountBalanceWriter interface {
	// LockAccountsForUpdate locks the given accounts, in ascending ID order, until the
	// surrounding unit of work ends.
	LockAccountsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// AddToBalance atomically adds delta to the account balance and returns the updated account.
	AddToBalance(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceWriter
}
