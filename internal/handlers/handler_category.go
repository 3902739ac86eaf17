package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
	journalService  portssvc.JournalReaderSvc
}

func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade, journalService portssvc.JournalReaderSvc) {
	h := &categoryHandler{categoryService: categoryService, journalService: journalService}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("/:categoryID", h.getCategory)
		categories.GET("/:categoryID/balance", h.getBalance)
		categories.GET("/:categoryID/closing-balances", h.listClosingBalances)
		categories.GET("/:categoryID/reconcile", h.reconcile)
		categories.GET("/:categoryID/line-items", h.listLineItems)
	}
}

// categoryIDParam parses the :categoryID path parameter, answering 400 when it is not a positive integer.
func categoryIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("categoryID"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categoryID must be a positive integer"})
		return 0, false
	}
	return id, true
}

// createCategory godoc
// @Summary Create a transaction category
// @Description Creates a leaf category under a chart-of-account code. Unknown codes are rejected.
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown chart-of-account code"
// @Failure 409 {object} map[string]string "Code already in use"
// @Failure 500 {object} map[string]string "Failed to create category"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create category")
		return
	}
	offset, _ := accounting.ClassifyOffset(category.ChartOfAccountCode)
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category, offset))
}

// getCategory godoc
// @Summary Get a transaction category
// @Tags categories
// @Produce  json
// @Param   categoryID path int true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /categories/{categoryID} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := categoryIDParam(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve category")
		return
	}
	offset, _ := accounting.ClassifyOffset(category.ChartOfAccountCode)
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category, offset))
}

// getBalance godoc
// @Summary Get the running balance of a category
// @Description Returns the balance record, creating a zero record on first access
// @Tags categories
// @Produce  json
// @Param   categoryID path int true "Category ID"
// @Success 200 {object} dto.CategoryBalanceResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /categories/{categoryID}/balance [get]
func (h *categoryHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := categoryIDParam(c)
	if !ok {
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balance, err := h.categoryService.GetCategoryBalance(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryBalanceResponse(balance))
}

// listClosingBalances godoc
// @Summary List daily closing balances of a category
// @Tags categories
// @Produce  json
// @Param   categoryID path int true "Category ID"
// @Param   from query string false "First day, YYYY-MM-DD"
// @Param   to   query string false "Last day, YYYY-MM-DD"
// @Success 200 {array} dto.ClosingBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Security BearerAuth
// @Router /categories/{categoryID}/closing-balances [get]
func (h *categoryHandler) listClosingBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := categoryIDParam(c)
	if !ok {
		return
	}
	var params dto.ClosingBalancesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	snapshots, err := h.categoryService.ListClosingBalances(c.Request.Context(), id, params.From, params.To)
	if err != nil {
		respondError(c, logger, err, "Failed to list closing balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToClosingBalanceResponses(snapshots))
}

// reconcile godoc
// @Summary Reconcile a category
// @Description Compares the running balance with the sum of active, non-reversal line items
// @Tags categories
// @Produce  json
// @Param   categoryID path int true "Category ID"
// @Success 200 {object} domain.ReconciliationResult
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /categories/{categoryID}/reconcile [get]
func (h *categoryHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := categoryIDParam(c)
	if !ok {
		return
	}

	result, err := h.categoryService.ReconcileCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile category")
		return
	}
	c.JSON(http.StatusOK, result)
}

// listLineItems godoc
// @Summary List line items of a category
// @Description Pages through active line items ordered by journal date. Pass nextToken from the previous page.
// @Tags categories
// @Produce  json
// @Param   categoryID path int true "Category ID"
// @Param   from query string false "First day, YYYY-MM-DD"
// @Param   to   query string false "Last day, YYYY-MM-DD"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListLineItemsResponse
// @Failure 400 {object} map[string]string "Invalid parameters or token"
// @Security BearerAuth
// @Router /categories/{categoryID}/line-items [get]
func (h *categoryHandler) listLineItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := categoryIDParam(c)
	if !ok {
		return
	}
	var params dto.ListLineItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.journalService.ListLineItemsByCategory(c.Request.Context(), id, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list line items")
		return
	}
	c.JSON(http.StatusOK, page)
}
