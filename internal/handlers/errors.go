package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusFor maps a service error onto an HTTP status.
func statusFor(err error) int {
	var appErr *apperrors.AppError
	var classErr *apperrors.CategoryClassificationError
	var postingErr *apperrors.PostingError
	switch {
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	case errors.As(err, &classErr), errors.As(err, &postingErr):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the matching status. Server errors are logged at ERROR and
// answered with internalMsg so that internals do not leak.
func respondError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": internalMsg})
		return
	}
	logger.Warn(internalMsg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}
