package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves a specific account by its ID.
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// ListActiveAccounts lists active accounts ordered by name, optionally of one type.
	ListActiveAccounts(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error)
}

// AccountWriterSvc defines account provisioning operations
type AccountWriterSvc interface {
	// CreateAccount provisions a new account with a zero balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount changes code, name, description or type. The type is fixed
	// once any journal line references the account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive, freezing its balance.
	DeactivateAccount(ctx context.Context, accountID string, userID string) error

	// SeedDefaultChart creates the default chart of accounts, skipping codes that exist.
	SeedDefaultChart(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountBalanceSvc is the only sanctioned way to change an account balance.
type AccountBalanceSvc interface {
	// ApplyBalanceDelta adds a signed delta to the balance in its own unit of work.
	ApplyBalanceDelta(ctx context.Context, accountID string, delta decimal.Decimal, userID string) (*domain.Account, error)

	// ApplyBalanceDeltaInTx adds a signed delta using the caller's unit of work.
	ApplyBalanceDeltaInTx(ctx context.Context, repos portsrepo.TxRepositories, accountID string, delta decimal.Decimal, userID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountBalanceSvc
}
