package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService is the account registry.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	uow         portsrepo.UnitOfWork
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountClock overrides the clock used for audit timestamps.
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.now = now
	}
}

// NewAccountService creates the account registry.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, uow portsrepo.UnitOfWork, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
		uow:         uow,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get account", slog.String("account_id", accountID))
		}
		return nil, fmt.Errorf("get account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) ListActiveAccounts(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	if accountType != "" && !accountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type '%s'", apperrors.ErrValidation, accountType)
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, portsrepo.AccountFilter{AccountType: accountType, ActiveOnly: true})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("account_type", string(accountType)))
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	req.Code = strings.TrimSpace(req.Code)
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		AccountType: req.AccountType,
		Description: req.Description,
		Balance:     decimal.Zero,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Account code or name already taken", slog.String("code", req.Code), slog.String("name", req.Name))
		} else {
			s.LogError(ctx, err, "Failed to save account", slog.String("code", req.Code))
		}
		return nil, fmt.Errorf("create account %s: %w", req.Code, err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		req.Code = &code
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var updated domain.Account
	err := s.uow.Do(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		locked, err := repos.Accounts.LockAccountsForUpdate(ctx, []string{accountID})
		if err != nil {
			return fmt.Errorf("lock account %s: %w", accountID, err)
		}
		account, ok := locked[accountID]
		if !ok {
			return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}

		if req.AccountType != nil && *req.AccountType != account.AccountType {
			last, err := repos.Ledger.LastTransactionDate(ctx, accountID)
			if err != nil {
				return fmt.Errorf("check postings of account %s: %w", accountID, err)
			}
			if last != nil {
				return fmt.Errorf("%w: account %s already has postings, its type cannot change", apperrors.ErrState, account.Code)
			}
			account.AccountType = *req.AccountType
		}
		if req.Code != nil {
			account.Code = *req.Code
		}
		if req.Name != nil {
			account.Name = *req.Name
		}
		if req.Description != nil {
			account.Description = *req.Description
		}
		account.LastUpdatedAt = s.Now()
		account.LastUpdatedBy = userID

		if err := repos.Accounts.UpdateAccount(ctx, account); err != nil {
			return fmt.Errorf("update account %s: %w", accountID, err)
		}
		updated = account
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Account code or name already taken", slog.String("account_id", accountID))
		} else if !apperrors.IsClientError(err) {
			s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account updated",
		slog.String("account_id", updated.AccountID),
		slog.String("code", updated.Code))
	return &updated, nil
}

// DeactivateAccount is idempotent. Deactivation takes the same row lock as
// postings, so an entry in flight either lands before it or is rejected.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	if accountID == "" {
		return fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	return s.uow.Do(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		locked, err := repos.Accounts.LockAccountsForUpdate(ctx, []string{accountID})
		if err != nil {
			return fmt.Errorf("lock account %s: %w", accountID, err)
		}
		account, ok := locked[accountID]
		if !ok {
			return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		if !account.IsActive {
			return nil
		}
		if err := repos.Accounts.DeactivateAccount(ctx, accountID, userID, s.Now()); err != nil {
			return fmt.Errorf("deactivate account %s: %w", accountID, err)
		}
		s.LogInfo(ctx, "Account deactivated",
			slog.String("account_id", accountID),
			slog.String("frozen_balance", account.Balance.StringFixed(2)))
		return nil
	})
}

func (s *accountService) SeedDefaultChart(ctx context.Context, userID string) ([]domain.Account, error) {
	existing, err := s.accountRepo.ListAccounts(ctx, portsrepo.AccountFilter{})
	if err != nil {
		return nil, fmt.Errorf("list accounts for seeding: %w", err)
	}
	codes := make(map[string]bool, len(existing))
	for _, acc := range existing {
		codes[acc.Code] = true
	}

	var created []domain.Account
	for _, entry := range domain.DefaultChartOfAccounts {
		if codes[entry.Code] {
			continue
		}
		account, err := s.CreateAccount(ctx, dto.CreateAccountRequest{
			Code:        entry.Code,
			Name:        entry.Name,
			AccountType: entry.AccountType,
			Description: entry.Description,
		}, userID)
		if err != nil {
			return created, err
		}
		created = append(created, *account)
	}
	sort.Slice(created, func(i, j int) bool { return created[i].Code < created[j].Code })
	s.LogInfo(ctx, "Default chart of accounts seeded", slog.Int("created", len(created)))
	return created, nil
}

func (s *accountService) ApplyBalanceDelta(ctx context.Context, accountID string, delta decimal.Decimal, userID string) (*domain.Account, error) {
	var updated *domain.Account
	err := s.uow.Do(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		var err error
		updated, err = s.ApplyBalanceDeltaInTx(ctx, repos, accountID, delta, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *accountService) ApplyBalanceDeltaInTx(ctx context.Context, repos portsrepo.TxRepositories, accountID string, delta decimal.Decimal, userID string) (*domain.Account, error) {
	updated, err := repos.Accounts.AddToBalance(ctx, accountID, delta, userID, s.Now())
	if err != nil {
		return nil, fmt.Errorf("apply balance delta to account %s: %w", accountID, err)
	}
	s.LogDebug(ctx, "Balance delta applied",
		slog.String("account_id", accountID),
		slog.String("delta", delta.StringFixed(2)),
		slog.String("balance", updated.Balance.StringFixed(2)))
	return updated, nil
}
