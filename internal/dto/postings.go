package dto

import (
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest moves money between two accounts.
type RecordPaymentRequest struct {
	FromAccountID   string          `json:"fromAccountId" binding:"required"`
	ToAccountID     string          `json:"toAccountId" binding:"required,nefield=FromAccountID"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description" binding:"max=500"`
	TransactionDate string          `json:"transactionDate"`
}

// ToDomain converts the request.
func (r RecordPaymentRequest) ToDomain() (domain.PaymentRequest, error) {
	date, err := ParseDate("transactionDate", r.TransactionDate)
	if err != nil {
		return domain.PaymentRequest{}, err
	}
	return domain.PaymentRequest{
		FromAccountID:   r.FromAccountID,
		ToAccountID:     r.ToAccountID,
		Amount:          r.Amount,
		Description:     r.Description,
		TransactionDate: date,
	}, nil
}

// RecordAdjustmentRequest posts a correction against the adjustment account.
type RecordAdjustmentRequest struct {
	AccountID       string           `json:"accountId" binding:"required"`
	Amount          decimal.Decimal  `json:"amount"`
	Side            domain.EntrySide `json:"side" binding:"required,oneof=DEBIT CREDIT"`
	Description     string           `json:"description" binding:"max=500"`
	TransactionDate string           `json:"transactionDate"`
}

// ToDomain converts the request.
func (r RecordAdjustmentRequest) ToDomain() (domain.AdjustmentRequest, error) {
	date, err := ParseDate("transactionDate", r.TransactionDate)
	if err != nil {
		return domain.AdjustmentRequest{}, err
	}
	return domain.AdjustmentRequest{
		AccountID:       r.AccountID,
		Amount:          r.Amount,
		Side:            r.Side,
		Description:     r.Description,
		TransactionDate: date,
	}, nil
}

// RecordSaleRequest posts a cash sale.
type RecordSaleRequest struct {
	SaleID          string          `json:"saleId" binding:"required"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	TransactionDate string          `json:"transactionDate"`
}

// ToDomain converts the request.
func (r RecordSaleRequest) ToDomain() (domain.SaleRequest, error) {
	date, err := ParseDate("transactionDate", r.TransactionDate)
	if err != nil {
		return domain.SaleRequest{}, err
	}
	return domain.SaleRequest{
		SaleID:          r.SaleID,
		TotalAmount:     r.TotalAmount,
		PaidAmount:      r.PaidAmount,
		TransactionDate: date,
	}, nil
}

// RecordExpenseRequest posts an expense paid from cash.
type RecordExpenseRequest struct {
	ExpenseAccountID string          `json:"expenseAccountId" binding:"required"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description" binding:"required,max=500"`
	TransactionDate  string          `json:"transactionDate"`
	ReferenceID      string          `json:"referenceId"`
}

// ToDomain converts the request.
func (r RecordExpenseRequest) ToDomain() (domain.ExpenseRequest, error) {
	date, err := ParseDate("transactionDate", r.TransactionDate)
	if err != nil {
		return domain.ExpenseRequest{}, err
	}
	return domain.ExpenseRequest{
		ExpenseAccountID: r.ExpenseAccountID,
		Amount:           r.Amount,
		Description:      r.Description,
		TransactionDate:  date,
		ReferenceID:      r.ReferenceID,
	}, nil
}
