package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/dto"
	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes for financial reports.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingService) {
	h := newReportingHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
	}
}

// getTrialBalance godoc
// @Summary Get trial balance
// @Description Debit and credit balances of every account as of a date
// @Tags reports
// @Produce  json
// @Param   asOf query string false "YYYY-MM-DD, defaults to now"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOf, err := dto.ParseDate("asOf", c.Query("asOf"))
	if err != nil {
		respondWithError(c, logger, err, "Invalid date")
		return
	}

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate trial balance")
		return
	}
	if !tb.IsBalanced {
		logger.Warn("Trial balance returned unbalanced",
			slog.String("total_debits", tb.TotalDebits.StringFixed(2)),
			slog.String("total_credits", tb.TotalCredits.StringFixed(2)))
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}
