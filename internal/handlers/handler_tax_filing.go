package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

type taxFilingHandler struct {
	taxFilingService portssvc.TaxFilingSvcFacade
}

func registerTaxFilingRoutes(rg *gin.RouterGroup, taxFilingService portssvc.TaxFilingSvcFacade) {
	h := &taxFilingHandler{taxFilingService: taxFilingService}

	filings := rg.Group("/tax-filings")
	{
		filings.POST("", h.createTaxFiling)
		filings.GET("/:filingID", h.getTaxFiling)
		filings.POST("/:filingID/file", h.fileTaxFiling)
		filings.POST("/:filingID/unfile", h.unfileTaxFiling)
	}
}

// createTaxFiling godoc
// @Summary Register a corporate tax period
// @Description Computes the tax due from the net income of the period. Nothing is posted until the filing is filed.
// @Tags tax-filings
// @Accept  json
// @Produce  json
// @Param   filing body dto.CreateTaxFilingRequest true "Period and net income"
// @Success 201 {object} dto.TaxFilingResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Security BearerAuth
// @Router /tax-filings [post]
func (h *taxFilingHandler) createTaxFiling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTaxFilingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTaxFiling", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filing, err := h.taxFilingService.CreateTaxFiling(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create tax filing")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaxFilingResponse(filing, nil))
}

// getTaxFiling godoc
// @Summary Get a corporate tax filing
// @Tags tax-filings
// @Produce  json
// @Param   filingID path string true "Filing ID"
// @Success 200 {object} dto.TaxFilingResponse
// @Failure 404 {object} map[string]string "Filing not found"
// @Security BearerAuth
// @Router /tax-filings/{filingID} [get]
func (h *taxFilingHandler) getTaxFiling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filingID := c.Param("filingID")

	filing, err := h.taxFilingService.GetTaxFiling(c.Request.Context(), filingID)
	if err != nil {
		respondError(c, logger.With(slog.String("filing_id", filingID)), err, "Failed to retrieve tax filing")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxFilingResponse(filing, nil))
}

// fileTaxFiling godoc
// @Summary File a corporate tax return
// @Description Posts D Corporation Tax / C Retained Earnings. A filing that was unfiled is reposted.
// @Tags tax-filings
// @Accept  json
// @Produce  json
// @Param   filingID path string true "Filing ID"
// @Param   request body dto.FileTaxRequest true "Filing date"
// @Success 200 {object} dto.TaxFilingResponse
// @Failure 404 {object} map[string]string "Filing not found"
// @Failure 409 {object} map[string]string "Filing already filed"
// @Security BearerAuth
// @Router /tax-filings/{filingID}/file [post]
func (h *taxFilingHandler) fileTaxFiling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filingID := c.Param("filingID")

	var req dto.FileTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FileTaxFiling", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filing, journal, err := h.taxFilingService.FileTaxFiling(c.Request.Context(), filingID, req.TaxFiledOn, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("filing_id", filingID)), err, "Failed to file tax return")
		return
	}
	logger.Info("Tax return filed", slog.String("filing_id", filingID))
	c.JSON(http.StatusOK, dto.ToTaxFilingResponse(filing, journal))
}

// unfileTaxFiling godoc
// @Summary Unfile a corporate tax return
// @Description Reverses the filing journal with CORPORATE_TAX_REPORT_UNFILED
// @Tags tax-filings
// @Produce  json
// @Param   filingID path string true "Filing ID"
// @Success 200 {object} dto.TaxFilingResponse
// @Failure 404 {object} map[string]string "Filing not found"
// @Failure 409 {object} map[string]string "Filing is not filed"
// @Security BearerAuth
// @Router /tax-filings/{filingID}/unfile [post]
func (h *taxFilingHandler) unfileTaxFiling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filingID := c.Param("filingID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filing, journal, err := h.taxFilingService.UnfileTaxFiling(c.Request.Context(), filingID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("filing_id", filingID)), err, "Failed to unfile tax return")
		return
	}
	logger.Info("Tax return unfiled", slog.String("filing_id", filingID))
	c.JSON(http.StatusOK, dto.ToTaxFilingResponse(filing, journal))
}
