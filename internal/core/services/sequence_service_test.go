package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntryNumber(t *testing.T) {
	date := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "JE-20240115-0001", services.FormatEntryNumber(date, 1))
	assert.Equal(t, "JE-20240115-0042", services.FormatEntryNumber(date, 42))
	assert.Equal(t, "JE-20240115-10000", services.FormatEntryNumber(date, 10000))
}

func TestParseEntryNumber(t *testing.T) {
	date, seq, err := services.ParseEntryNumber("JE-20240115-0007")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, 7, seq)

	for _, bad := range []string{"", "JE-2024-0001", "XX-20240115-0001", "JE-20240115-1", "JE-20240115-0000", "JE-20241315-0001"} {
		_, _, err := services.ParseEntryNumber(bad)
		assert.ErrorIs(t, err, apperrors.ErrValidation, bad)
	}
}
