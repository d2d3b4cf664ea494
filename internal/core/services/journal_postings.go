package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
)

// designatedAccount resolves a configured posting role to an active account.
func (s *journalService) designatedAccount(ctx context.Context, role, accountID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: no %s account is configured", apperrors.ErrState, role)
	}
	account, err := s.accountSvc.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: configured %s account %s does not exist", apperrors.ErrState, role, accountID)
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: configured %s account %s is inactive", apperrors.ErrState, role, account.Code)
	}
	return account, nil
}

// RecordSale debits cash for what was paid and credits sales for the full
// amount. An unpaid remainder is debited to receivables; an overpayment is
// credited back to cash as change.
func (s *journalService) RecordSale(ctx context.Context, req domain.SaleRequest, actorID string) (*domain.JournalEntry, error) {
	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: sale total must be positive", apperrors.ErrValidation)
	}
	if req.PaidAmount.IsNegative() {
		return nil, fmt.Errorf("%w: paid amount cannot be negative", apperrors.ErrValidation)
	}

	sales, err := s.designatedAccount(ctx, "sales", s.designated.SalesAccountID)
	if err != nil {
		return nil, err
	}

	var lines []domain.JournalLineRequest
	var cash *domain.Account
	if req.PaidAmount.IsPositive() {
		if cash, err = s.designatedAccount(ctx, "cash", s.designated.CashAccountID); err != nil {
			return nil, err
		}
		lines = append(lines, domain.JournalLineRequest{
			AccountID:   cash.AccountID,
			Side:        domain.Debit,
			Amount:      req.PaidAmount,
			Description: "Cash received",
		})
	}
	if shortfall := req.TotalAmount.Sub(req.PaidAmount); shortfall.IsPositive() {
		receivable, err := s.designatedAccount(ctx, "receivable", s.designated.ReceivableAccountID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.JournalLineRequest{
			AccountID:   receivable.AccountID,
			Side:        domain.Debit,
			Amount:      shortfall,
			Description: "Amount due from customer",
		})
	}
	lines = append(lines, domain.JournalLineRequest{
		AccountID:   sales.AccountID,
		Side:        domain.Credit,
		Amount:      req.TotalAmount,
		Description: "Sales revenue",
	})
	if change := req.PaidAmount.Sub(req.TotalAmount); change.IsPositive() {
		lines = append(lines, domain.JournalLineRequest{
			AccountID:   cash.AccountID,
			Side:        domain.Credit,
			Amount:      change,
			Description: "Change given to customer",
		})
	}

	description := "Sale"
	if req.SaleID != "" {
		description = fmt.Sprintf("Sale %s", req.SaleID)
	}
	return s.CreateJournalEntry(ctx, domain.JournalRequest{
		TransactionType: domain.TransactionSale,
		Description:     description,
		TransactionDate: req.TransactionDate,
		Lines:           lines,
		ReferenceID:     req.SaleID,
		ReferenceType:   domain.ReferenceTypeSale,
	}, actorID)
}

// RecordPayment debits the receiving account and credits the paying one.
func (s *journalService) RecordPayment(ctx context.Context, req domain.PaymentRequest, actorID string) (*domain.JournalEntry, error) {
	if req.FromAccountID == "" || req.ToAccountID == "" {
		return nil, fmt.Errorf("%w: both payment accounts are required", apperrors.ErrValidation)
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: payment source and destination must differ", apperrors.ErrValidation)
	}
	return s.CreateJournalEntry(ctx, domain.JournalRequest{
		TransactionType: domain.TransactionPayment,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
		Lines: []domain.JournalLineRequest{
			{AccountID: req.ToAccountID, Side: domain.Debit, Amount: req.Amount, Description: req.Description},
			{AccountID: req.FromAccountID, Side: domain.Credit, Amount: req.Amount, Description: req.Description},
		},
	}, actorID)
}

// RecordAdjustment posts amount on the requested side of the account and the
// opposite side of the adjustment account.
func (s *journalService) RecordAdjustment(ctx context.Context, req domain.AdjustmentRequest, actorID string) (*domain.JournalEntry, error) {
	if !req.Side.IsValid() {
		return nil, fmt.Errorf("%w: unknown entry side '%s'", apperrors.ErrValidation, req.Side)
	}
	adjustment, err := s.designatedAccount(ctx, "adjustment", s.designated.AdjustmentAccountID)
	if err != nil {
		return nil, err
	}
	if adjustment.AccountID == req.AccountID {
		return nil, fmt.Errorf("%w: cannot adjust the adjustment account against itself", apperrors.ErrValidation)
	}
	return s.CreateJournalEntry(ctx, domain.JournalRequest{
		TransactionType: domain.TransactionAdjustment,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
		Lines: []domain.JournalLineRequest{
			{AccountID: req.AccountID, Side: req.Side, Amount: req.Amount, Description: req.Description},
			{AccountID: adjustment.AccountID, Side: req.Side.Opposite(), Amount: req.Amount, Description: req.Description},
		},
	}, actorID)
}

// RecordExpense debits an expense account and credits cash.
func (s *journalService) RecordExpense(ctx context.Context, req domain.ExpenseRequest, actorID string) (*domain.JournalEntry, error) {
	if req.ExpenseAccountID == "" {
		return nil, fmt.Errorf("%w: expense account is required", apperrors.ErrValidation)
	}
	expense, err := s.accountSvc.GetAccount(ctx, req.ExpenseAccountID)
	if err != nil {
		return nil, err
	}
	if expense.AccountType != domain.Expense {
		return nil, fmt.Errorf("%w: account %s is %s, not %s",
			apperrors.ErrValidation, expense.Code, expense.AccountType, domain.Expense)
	}
	cash, err := s.designatedAccount(ctx, "cash", s.designated.CashAccountID)
	if err != nil {
		return nil, err
	}

	referenceType := ""
	if req.ReferenceID != "" {
		referenceType = domain.ReferenceTypeExpense
	}
	return s.CreateJournalEntry(ctx, domain.JournalRequest{
		TransactionType: domain.TransactionExpense,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
		Lines: []domain.JournalLineRequest{
			{AccountID: expense.AccountID, Side: domain.Debit, Amount: req.Amount, Description: req.Description},
			{AccountID: cash.AccountID, Side: domain.Credit, Amount: req.Amount, Description: req.Description},
		},
		ReferenceID:   req.ReferenceID,
		ReferenceType: referenceType,
	}, actorID)
}
