package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the general ledger and day book.
// Per-account books live under /accounts.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ls)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/general", h.getGeneralLedger)
		ledger.GET("/day-book", h.getDayBook)
	}
}

// getGeneralLedger godoc
// @Summary All entries in a transaction date range, oldest first
// @Tags ledger
// @Produce  json
// @Param   startDate query string false "YYYY-MM-DD"
// @Param   endDate query string false "YYYY-MM-DD"
// @Success 200 {object} map[string][]dto.JournalEntryResponse
// @Security BearerAuth
// @Router /ledger/general [get]
func (h *ledgerHandler) getGeneralLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dateRange, err := dto.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondWithError(c, logger, err, "Invalid date range")
		return
	}

	entries, err := h.ledgerService.GeneralLedger(c.Request.Context(), dateRange)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build general ledger")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": dto.ToJournalEntryResponses(entries)})
}

// getDayBook godoc
// @Summary Entries recorded on a calendar day
// @Tags ledger
// @Produce  json
// @Param   date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} map[string][]dto.JournalEntryResponse
// @Security BearerAuth
// @Router /ledger/day-book [get]
func (h *ledgerHandler) getDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	day, err := dto.ParseDate("date", c.Query("date"))
	if err != nil {
		respondWithError(c, logger, err, "Invalid date")
		return
	}

	entries, err := h.ledgerService.DayBook(c.Request.Context(), day)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build day book")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": dto.ToJournalEntryResponses(entries)})
}
