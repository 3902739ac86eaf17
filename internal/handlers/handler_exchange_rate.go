package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("/resolve/:currency", h.resolveRate)
		exchangeRates.GET("/:from/:to", h.getExchangeRate)
	}
}

// asOfParam binds the asOf query parameter, defaulting to today in UTC.
func asOfParam(c *gin.Context) (time.Time, bool) {
	var params dto.RateQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be a date in YYYY-MM-DD format"})
		return time.Time{}, false
	}
	if params.AsOf.IsZero() {
		return time.Now().UTC(), true
	}
	return params.AsOf, true
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Adds a new exchange rate between two currencies for a specific date
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create exchange rate",
		slog.String("from", req.FromCurrencyCode),
		slog.String("to", req.ToCurrencyCode),
		slog.String("rate", req.Rate.String()),
		slog.Time("date_effective", req.DateEffective),
	)

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate created successfully", slog.String("rate_id", createdRate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the latest exchange rate for a currency pair effective on asOf
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   path string true "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   asOf query string false "Effective day, YYYY-MM-DD. Defaults to today."
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := strings.ToUpper(c.Param("from"))
	toCode := strings.ToUpper(c.Param("to"))

	if len(fromCode) != 3 || len(toCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}
	asOf, ok := asOfParam(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("from_code", fromCode), slog.String("to_code", toCode))

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), fromCode, toCode, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// resolveRate godoc
// @Summary Resolve the posting rate of a currency
// @Description Returns the rate the posting engine applies to convert the currency into the base currency. Missing rates resolve to 1.
// @Tags exchange rates
// @Produce  json
// @Param   currency path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   asOf query string false "Effective day, YYYY-MM-DD. Defaults to today."
// @Success 200 {object} dto.ResolvedRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 500 {object} map[string]string "Failed to resolve rate"
// @Security BearerAuth
// @Router /exchange-rates/resolve/{currency} [get]
func (h *exchangeRateHandler) resolveRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(c.Param("currency"))
	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}
	asOf, ok := asOfParam(c)
	if !ok {
		return
	}

	rate, err := h.exchangeRateService.ResolveRate(c.Request.Context(), code, asOf)
	if err != nil {
		respondError(c, logger.With(slog.String("currency", code)), err, "Failed to resolve rate")
		return
	}
	c.JSON(http.StatusOK, dto.ResolvedRateResponse{
		CurrencyCode: code,
		BaseCurrency: h.exchangeRateService.BaseCurrency(),
		AsOf:         asOf,
		Rate:         rate,
	})
}
