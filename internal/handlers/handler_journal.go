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

// journalHandler handles HTTP requests related to journals and posting references.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// registerJournalRoutes registers journal, preview and reference routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.postManualJournal)
		journals.POST("/preview", h.previewJournal)
		journals.GET("/:journalID", h.getJournal)
	}

	postings := rg.Group("/postings")
	{
		postings.POST("/reverse", h.reverseReference)
		postings.GET("/:referenceType/:referenceID/state", h.getPostingState)
	}
}

// postManualJournal godoc
// @Summary Post a manual journal
// @Description Validates and posts a balanced journal. Resubmitting the same journalID returns the journal on file.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.PostJournalRequest true "Journal with its lines"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid request or unbalanced journal"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to post journal"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) postManualJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostManualJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.journalService.PostManualJournal(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post journal")
		return
	}

	logger.Info("Journal posted", slog.String("journal_id", journal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// getJournal godoc
// @Summary Get a journal
// @Description Retrieves a journal and all of its line items, deleted ones included
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), journalID)
	if err != nil {
		respondError(c, logger.With(slog.String("journal_id", journalID)), err, "Failed to retrieve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// previewJournal godoc
// @Summary Preview the journal of a business event
// @Description Builds the journal exactly one event would post, without writing anything
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   event body dto.PreviewRequest true "Exactly one event"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid event or journal could not be built"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build journal"
// @Security BearerAuth
// @Router /journals/preview [post]
func (h *journalHandler) previewJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.journalService.Preview(c.Request.Context(), req.Event(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to build journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// reverseReference godoc
// @Summary Reverse a posting reference
// @Description Mirrors every active line of a MANUAL, RECEIPT or PAYMENT reference. Returns 204 when there is nothing to reverse.
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   reference body dto.ReverseRequest true "Reference to reverse"
// @Success 200 {object} dto.JournalResponse
// @Success 204 "Nothing to reverse"
// @Failure 400 {object} map[string]string "Reference type cannot be reversed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to reverse reference"
// @Security BearerAuth
// @Router /postings/reverse [post]
func (h *journalHandler) reverseReference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReverseReference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ref := domain.PostingReference{Type: req.ReferenceType, ID: req.ReferenceID}
	reversal, err := h.journalService.ReverseReference(c.Request.Context(), ref, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("reference", ref.String())), err, "Failed to reverse reference")
		return
	}
	if reversal == nil {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Reference reversed", slog.String("reference", ref.String()), slog.String("journal_id", reversal.JournalID))
	c.JSON(http.StatusOK, dto.ToJournalResponse(reversal))
}

// getPostingState godoc
// @Summary Get the posting state of a reference
// @Tags postings
// @Produce  json
// @Param   referenceType path string true "Posting reference type, e.g. RECEIPT"
// @Param   referenceID   path string true "Reference ID"
// @Success 200 {object} dto.PostingStateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to derive state"
// @Security BearerAuth
// @Router /postings/{referenceType}/{referenceID}/state [get]
func (h *journalHandler) getPostingState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref := domain.PostingReference{
		Type: domain.PostingReferenceType(c.Param("referenceType")),
		ID:   c.Param("referenceID"),
	}

	state, err := h.journalService.GetPostingState(c.Request.Context(), ref)
	if err != nil {
		respondError(c, logger, err, "Failed to derive state")
		return
	}
	c.JSON(http.StatusOK, dto.PostingStateResponse{
		ReferenceType: string(ref.Type),
		ReferenceID:   ref.ID,
		State:         string(state),
	})
}
