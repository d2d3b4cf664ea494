package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code        string             `json:"code" binding:"required,max=20" validate:"required,max=20"`
	Name        string             `json:"name" binding:"required,max=100" validate:"required,max=100"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE" validate:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	Description string             `json:"description" validate:"max=500"`
}

// Validate checks the request for callers that did not come through gin binding.
func (r CreateAccountRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Code        *string             `json:"code" binding:"omitnil,min=1,max=20" validate:"omitnil,min=1,max=20"`
	Name        *string             `json:"name" binding:"omitnil,min=1,max=100" validate:"omitnil,min=1,max=100"`
	AccountType *domain.AccountType `json:"accountType" binding:"omitnil,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE" validate:"omitnil,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	Description *string             `json:"description" binding:"omitnil,max=500" validate:"omitnil,max=500"`
}

// Validate checks the request for callers that did not come through gin binding.
func (r UpdateAccountRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Code          string             `json:"code"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	Description   string             `json:"description"`
	Balance       decimal.Decimal    `json:"balance"`
	IsActive      bool               `json:"isActive"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Code:          acc.Code,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		Description:   acc.Description,
		Balance:       acc.Balance,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	AccountType domain.AccountType `form:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID           string          `json:"accountID"`
	AccountName         string          `json:"accountName"`
	Balance             decimal.Decimal `json:"balance"`
	LastTransactionDate *string         `json:"lastTransactionDate"`
}

// ToAccountBalanceResponse converts a domain.AccountBalance to its DTO.
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	res := AccountBalanceResponse{
		AccountID:   b.Account.AccountID,
		AccountName: b.Account.Name,
		Balance:     b.Balance,
	}
	if b.LastTransactionDate != nil {
		s := b.LastTransactionDate.Format(DateLayout)
		res.LastTransactionDate = &s
	}
	return res
}
