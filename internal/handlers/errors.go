package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors onto HTTP responses. Client errors carry
// the service message; anything unexpected is logged and answered with fallback.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var unbalanced *apperrors.UnbalancedEntryError
	switch {
	case errors.As(err, &unbalanced):
		logger.Warn("Unbalanced journal entry rejected",
			slog.String("total_debit", unbalanced.TotalDebit.StringFixed(2)),
			slog.String("total_credit", unbalanced.TotalCredit.StringFixed(2)))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       err.Error(),
			"totalDebit":  unbalanced.TotalDebit.StringFixed(2),
			"totalCredit": unbalanced.TotalCredit.StringFixed(2),
		})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrState):
		logger.Warn("Request conflicts with ledger state", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConcurrency):
		logger.Warn("Concurrent modification", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "The ledger is busy, please retry", "retryable": true})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// bindError answers a request whose body or query could not be bound.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
