package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries and postings.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	ledgerService  portssvc.LedgerSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade, ls portssvc.LedgerSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
		ledgerService:  ls,
	}
}

// registerJournalRoutes registers journal entry and posting routes. Write routes
// pass through writeGuard.
func registerJournalRoutes(rg *gin.RouterGroup, js portssvc.JournalSvcFacade, ls portssvc.LedgerSvcFacade, writeGuard gin.HandlerFunc) {
	h := newJournalHandler(js, ls)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", writeGuard, h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:id", h.getJournalEntry)
		entries.POST("/:id/reverse", writeGuard, h.reverseJournalEntry)
	}

	postings := rg.Group("/postings", writeGuard)
	{
		postings.POST("/payments", h.recordPayment)
		postings.POST("/adjustments", h.recordAdjustment)
		postings.POST("/sales", h.recordSale)
		postings.POST("/expenses", h.recordExpense)
	}
}

// actor resolves the authenticated user or answers 401.
func actor(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return userID, ok
}

// createJournalEntry godoc
// @Summary Post a balanced journal entry
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid or unbalanced entry"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Concurrent posting, retry"
// @Failure 422 {object} map[string]string "Inactive account"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := actor(c, logger)
	if !ok {
		return
	}
	domainReq, err := req.ToDomain()
	if err != nil {
		respondWithError(c, logger, err, "Invalid journal entry")
		return
	}

	logger = logger.With(slog.String("user_id", userID), slog.String("transaction_type", string(req.TransactionType)))
	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), domainReq, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getJournalEntry godoc
// @Summary Get a journal entry with its lines
// @Tags journal
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /journal-entries/{id} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entry, err := h.ledgerService.GetJournalEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries, newest first
// @Tags journal
// @Produce  json
// @Param   page query int false "Page number"
// @Param   pageSize query int false "Page size"
// @Param   transactionType query string false "Transaction type filter"
// @Param   startDate query string false "YYYY-MM-DD"
// @Param   endDate query string false "YYYY-MM-DD"
// @Param   accountId query string false "Only entries touching this account"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}
	dateRange, err := dto.ParseDateRange(params.StartDate, params.EndDate)
	if err != nil {
		respondWithError(c, logger, err, "Invalid date range")
		return
	}

	filter := domain.JournalFilter{
		TransactionType: params.TransactionType,
		DateRange:       dateRange,
		AccountID:       params.AccountID,
	}
	page, err := h.ledgerService.ListJournalEntries(c.Request.Context(), filter, params.Page, params.PageSize)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(page))
}

// reverseJournalEntry godoc
// @Summary Post the reversal of an entry
// @Tags journal
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 422 {object} map[string]string "Entry already reversed or is itself a reversal"
// @Security BearerAuth
// @Router /journal-entries/{id}/reverse [post]
func (h *journalHandler) reverseJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := actor(c, logger)
	if !ok {
		return
	}
	entryID := c.Param("id")

	reversal, err := h.journalService.ReverseJournalEntry(c.Request.Context(), entryID, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("entry_id", entryID)), err, "Failed to reverse journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversal))
}

func (h *journalHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := actor(c, logger)
	if !ok {
		return
	}
	domainReq, err := req.ToDomain()
	if err != nil {
		respondWithError(c, logger, err, "Invalid payment")
		return
	}

	entry, err := h.journalService.RecordPayment(c.Request.Context(), domainReq, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) recordAdjustment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := actor(c, logger)
	if !ok {
		return
	}
	domainReq, err := req.ToDomain()
	if err != nil {
		respondWithError(c, logger, err, "Invalid adjustment")
		return
	}

	entry, err := h.journalService.RecordAdjustment(c.Request.Context(), domainReq, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record adjustment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := actor(c, logger)
	if !ok {
		return
	}
	domainReq, err := req.ToDomain()
	if err != nil {
		respondWithError(c, logger, err, "Invalid sale")
		return
	}

	entry, err := h.journalService.RecordSale(c.Request.Context(), domainReq, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("sale_id", req.SaleID)), err, "Failed to record sale")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, ok := actor(c, logger)
	if !ok {
		return
	}
	domainReq, err := req.ToDomain()
	if err != nil {
		respondWithError(c, logger, err, "Invalid expense")
		return
	}

	entry, err := h.journalService.RecordExpense(c.Request.Context(), domainReq, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}
