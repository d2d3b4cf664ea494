package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRequest records a sale paid fully or partly in cash.
type SaleRequest struct {
	SaleID          string
	TotalAmount     decimal.Decimal
	PaidAmount      decimal.Decimal
	TransactionDate time.Time
}

// PaymentRequest moves an amount from one account to another.
type PaymentRequest struct {
	FromAccountID   string
	ToAccountID     string
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
}

// AdjustmentRequest posts a one-sided correction balanced against the adjustment account.
type AdjustmentRequest struct {
	AccountID       string
	Amount          decimal.Decimal
	Side            EntrySide
	Description     string
	TransactionDate time.Time
}

// ExpenseRequest records an expense paid from cash.
type ExpenseRequest struct {
	ExpenseAccountID string
	Amount           decimal.Decimal
	Description      string
	TransactionDate  time.Time
	ReferenceID      string
}
