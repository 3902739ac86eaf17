package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/dto"
	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankAccountHandler handles HTTP requests related to bank accounts.
type bankAccountHandler struct {
	bankAccountService portssvc.BankAccountSvcFacade
}

// newBankAccountHandler creates a new bankAccountHandler.
func newBankAccountHandler(bankAccountService portssvc.BankAccountSvcFacade) *bankAccountHandler {
	return &bankAccountHandler{
		bankAccountService: bankAccountService,
	}
}

// registerBankAccountRoutes registers bank account lifecycle routes.
func registerBankAccountRoutes(rg *gin.RouterGroup, bankAccountService portssvc.BankAccountSvcFacade) {
	h := newBankAccountHandler(bankAccountService)

	accounts := rg.Group("/bank-accounts")
	{
		accounts.POST("", h.createBankAccount)
		accounts.GET("/:bankAccountID", h.getBankAccount)
		accounts.PUT("/:bankAccountID", h.updateBankAccount)
		accounts.DELETE("/:bankAccountID", h.deleteBankAccount)
	}
}

// createBankAccount godoc
// @Summary Open a bank account
// @Description Creates the account, its BANK category and, for a positive opening balance, the opening journal
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateBankAccountRequest true "Bank account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create bank account"
// @Security BearerAuth
// @Router /bank-accounts [post]
func (h *bankAccountHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, journal, err := h.bankAccountService.CreateBankAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create bank account")
		return
	}

	logger.Info("Bank account created", slog.String("bank_account_id", account.BankAccountID))
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account, journal))
}

// getBankAccount godoc
// @Summary Get a bank account
// @Tags bank-accounts
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} map[string]string "Bank account not found"
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID} [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("bankAccountID")

	account, err := h.bankAccountService.GetBankAccount(c.Request.Context(), bankAccountID)
	if err != nil {
		respondError(c, logger.With(slog.String("bank_account_id", bankAccountID)), err, "Failed to retrieve bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account, nil))
}

// updateBankAccount godoc
// @Summary Update a bank account
// @Description Changing the opening balance, currency or date reverses and reposts the opening journal
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Param   account body dto.UpdateBankAccountRequest true "Bank account details"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to update bank account"
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID} [put]
func (h *bankAccountHandler) updateBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("bankAccountID")

	var req dto.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, journal, err := h.bankAccountService.UpdateBankAccount(c.Request.Context(), bankAccountID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("bank_account_id", bankAccountID)), err, "Failed to update bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account, journal))
}

// deleteBankAccount godoc
// @Summary Delete a bank account
// @Description Reverses the opening journal with DELETE_BANK_ACCOUNT and removes the account and its category
// @Tags bank-accounts
// @Produce  json
// @Param   bankAccountID path string true "Bank account ID"
// @Success 200 {object} dto.JournalResponse "Reversal journal"
// @Success 204 "Deleted, nothing was posted"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to delete bank account"
// @Security BearerAuth
// @Router /bank-accounts/{bankAccountID} [delete]
func (h *bankAccountHandler) deleteBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("bankAccountID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reversal, err := h.bankAccountService.DeleteBankAccount(c.Request.Context(), bankAccountID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("bank_account_id", bankAccountID)), err, "Failed to delete bank account")
		return
	}

	logger.Info("Bank account deleted", slog.String("bank_account_id", bankAccountID))
	if reversal == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(reversal))
}
