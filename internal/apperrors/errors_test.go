package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUnbalancedEntryErrorMatchesSentinels(t *testing.T) {
	err := fmt.Errorf("create entry: %w", NewUnbalancedEntryError(decimal.NewFromInt(100), decimal.NewFromInt(90)))

	assert.ErrorIs(t, err, ErrUnbalancedEntry)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrState)

	var unbalanced *UnbalancedEntryError
	if assert.ErrorAs(t, err, &unbalanced) {
		assert.True(t, unbalanced.TotalDebit.Equal(decimal.NewFromInt(100)))
		assert.True(t, unbalanced.TotalCredit.Equal(decimal.NewFromInt(90)))
	}
	assert.Contains(t, err.Error(), "100.00")
	assert.Contains(t, err.Error(), "90.00")
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAppError(500, "failed to begin transaction", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to begin transaction: connection refused", err.Error())
	assert.Equal(t, "no cause", NewAppError(500, "no cause", nil).Error())
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
		client    bool
	}{
		{"validation", fmt.Errorf("%w: amount must be positive", ErrValidation), false, true},
		{"not found", fmt.Errorf("account x: %w", ErrNotFound), false, true},
		{"state", fmt.Errorf("account x inactive: %w", ErrState), false, true},
		{"duplicate", ErrDuplicate, false, true},
		{"concurrency", fmt.Errorf("lock timeout: %w", ErrConcurrency), true, false},
		{"inconsistency", ErrInternalInconsistency, false, false},
		{"plain", errors.New("boom"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
			assert.Equal(t, tt.client, IsClientError(tt.err))
		})
	}
}
