package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settlementHandler serves customer receipts, supplier payments and contact category links.
type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

func registerSettlementRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade) {
	h := &settlementHandler{settlementService: settlementService}

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.create(domain.SettlementReceipt))
		receipts.PUT("/:settlementID", h.update(domain.SettlementReceipt))
		receipts.DELETE("/:settlementID", h.delete(domain.SettlementReceipt))
	}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.create(domain.SettlementPayment))
		payments.PUT("/:settlementID", h.update(domain.SettlementPayment))
		payments.DELETE("/:settlementID", h.delete(domain.SettlementPayment))
	}

	rg.PUT("/contacts/:contactID/category", h.registerContactCategory)
}

func toTransitionResponse(result *portssvc.TransitionResult) dto.TransitionResponse {
	return dto.TransitionResponse{
		ReferenceType: string(result.Reference.Type),
		ReferenceID:   result.Reference.ID,
		FromState:     string(result.From),
		ToState:       string(result.To),
		Reversal:      dto.ToJournalResponse(result.Reversal),
		Posted:        dto.ToJournalResponse(result.Posted),
	}
}

// create godoc
// @Summary Post a receipt or payment
// @Description Posts the settlement of an invoice, booking a realised exchange gain or loss when the cleared rate differs from the booked rate
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   settlement body dto.SettlementRequest true "Settlement details"
// @Success 201 {object} dto.TransitionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Contact has no registered category"
// @Failure 409 {object} map[string]string "Settlement already posted"
// @Security BearerAuth
// @Router /receipts [post]
// @Router /payments [post]
func (h *settlementHandler) create(kind domain.SettlementKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(kind)))

		var req dto.SettlementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for settlement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}

		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		post := h.settlementService.PostReceipt
		if kind == domain.SettlementPayment {
			post = h.settlementService.PostPayment
		}
		result, err := post(c.Request.Context(), req, userID)
		if err != nil {
			respondError(c, logger.With(slog.String("settlement_id", req.SettlementID)), err, "Failed to post settlement")
			return
		}
		c.JSON(http.StatusCreated, toTransitionResponse(result))
	}
}

// update godoc
// @Summary Update a receipt or payment
// @Description Reverses the settlement journal and posts the new one
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   settlementID path string true "Settlement ID"
// @Param   settlement body dto.SettlementRequest true "Settlement details"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /receipts/{settlementID} [put]
// @Router /payments/{settlementID} [put]
func (h *settlementHandler) update(kind domain.SettlementKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		settlementID := c.Param("settlementID")
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
			slog.String("kind", string(kind)), slog.String("settlement_id", settlementID))

		var req dto.SettlementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for settlement update", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
		if req.SettlementID != settlementID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "settlementID in body does not match the path"})
			return
		}

		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		result, err := h.settlementService.UpdateSettlement(c.Request.Context(), kind, req, userID)
		if err != nil {
			respondError(c, logger, err, "Failed to update settlement")
			return
		}
		c.JSON(http.StatusOK, toTransitionResponse(result))
	}
}

// delete godoc
// @Summary Delete a receipt or payment
// @Description Reverses the settlement journal with its delete variant
// @Tags settlements
// @Produce  json
// @Param   settlementID path string true "Settlement ID"
// @Success 200 {object} dto.TransitionResponse
// @Security BearerAuth
// @Router /receipts/{settlementID} [delete]
// @Router /payments/{settlementID} [delete]
func (h *settlementHandler) delete(kind domain.SettlementKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		settlementID := c.Param("settlementID")
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
			slog.String("kind", string(kind)), slog.String("settlement_id", settlementID))

		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		result, err := h.settlementService.DeleteSettlement(c.Request.Context(), kind, settlementID, userID)
		if err != nil {
			respondError(c, logger, err, "Failed to delete settlement")
			return
		}
		c.JSON(http.StatusOK, toTransitionResponse(result))
	}
}

// registerContactCategory godoc
// @Summary Link a contact to its receivable or payable category
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   contactID path string true "Contact ID"
// @Param   relation body dto.RegisterContactCategoryRequest true "Contact role and category"
// @Success 200 {object} domain.ContactCategoryRelation
// @Failure 400 {object} map[string]string "Invalid input or unknown category"
// @Security BearerAuth
// @Router /contacts/{contactID}/category [put]
func (h *settlementHandler) registerContactCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contactID := c.Param("contactID")

	var req dto.RegisterContactCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	relation, err := h.settlementService.RegisterContactCategory(c.Request.Context(), contactID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("contact_id", contactID)), err, "Failed to register contact category")
		return
	}
	c.JSON(http.StatusOK, relation)
}
