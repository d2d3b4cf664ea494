package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type accountRepository struct {
	view
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	var found domain.Account
	err := r.read(ctx, func(st *state) error {
		account, ok := st.accounts[accountID]
		if !ok {
			return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		found = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *accountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	err := r.read(ctx, func(st *state) error {
		for _, id := range accountIDs {
			if account, ok := st.accounts[id]; ok {
				result[id] = account
			}
		}
		return nil
	})
	return result, err
}

func (r *accountRepository) ListAccounts(ctx context.Context, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	var result []domain.Account
	err := r.read(ctx, func(st *state) error {
		for _, account := range st.accounts {
			if filter.ActiveOnly && !account.IsActive {
				continue
			}
			if filter.AccountType != "" && account.AccountType != filter.AccountType {
				continue
			}
			result = append(result, account)
		}
		return nil
	})
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, err
}

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return r.write(ctx, func(st *state) error {
		if _, ok := st.accounts[account.AccountID]; ok {
			return fmt.Errorf("account id %s: %w", account.AccountID, apperrors.ErrDuplicate)
		}
		for _, existing := range st.accounts {
			if existing.Code == account.Code {
				return fmt.Errorf("account code %s: %w", account.Code, apperrors.ErrDuplicate)
			}
			if existing.Name == account.Name {
				return fmt.Errorf("account name %s: %w", account.Name, apperrors.ErrDuplicate)
			}
		}
		st.accounts[account.AccountID] = account
		return nil
	})
}

func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return r.write(ctx, func(st *state) error {
		current, ok := st.accounts[account.AccountID]
		if !ok {
			return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrNotFound)
		}
		for id, existing := range st.accounts {
			if id == account.AccountID {
				continue
			}
			if existing.Code == account.Code {
				return fmt.Errorf("account code %s: %w", account.Code, apperrors.ErrDuplicate)
			}
			if existing.Name == account.Name {
				return fmt.Errorf("account name %s: %w", account.Name, apperrors.ErrDuplicate)
			}
		}
		current.Code = account.Code
		current.Name = account.Name
		current.AccountType = account.AccountType
		current.Description = account.Description
		current.LastUpdatedAt = account.LastUpdatedAt
		current.LastUpdatedBy = account.LastUpdatedBy
		st.accounts[account.AccountID] = current
		return nil
	})
}

func (r *accountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	return r.write(ctx, func(st *state) error {
		account, ok := st.accounts[accountID]
		if !ok {
			return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		account.IsActive = false
		account.LastUpdatedAt = now
		account.LastUpdatedBy = userID
		st.accounts[accountID] = account
		return nil
	})
}

// LockAccountsForUpdate returns the accounts. Inside a unit of work the store's
// exclusive lock is already held, which covers every row.
func (r *accountRepository) LockAccountsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if r.readOnly {
		return nil, errReadOnly
	}
	return r.FindAccountsByIDs(ctx, accountIDs)
}

func (r *accountRepository) AddToBalance(ctx context.Context, accountID string, delta decimal.Decimal, userID string, now time.Time) (*domain.Account, error) {
	var updated domain.Account
	err := r.write(ctx, func(st *state) error {
		account, ok := st.accounts[accountID]
		if !ok {
			return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		account.Balance = account.Balance.Add(delta)
		account.LastUpdatedAt = now
		account.LastUpdatedBy = userID
		st.accounts[accountID] = account
		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
