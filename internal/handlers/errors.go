package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	"github.com/SscSPs/workly_crm/internal/dto"
	"github.com/SscSPs/workly_crm/internal/middleware"
	"github.com/gin-gonic/gin"
)

// handleServiceError writes the error response for a failed service call.
// Internal failures are logged with their cause and reported generically.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
	} else {
		logger.Warn("Rejected request to "+action, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, dto.ErrorResponse{Error: apperrors.PublicMessage(err)})
}

// bindJSON binds the body and writes a 400 on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// principalOrAbort returns the authenticated caller, writing a 401 if there is none.
func principalOrAbort(c *gin.Context, logger *slog.Logger) (domain.Principal, bool) {
	principal, ok := middleware.PrincipalFromContext(c.Request.Context())
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return domain.Principal{}, false
	}
	return principal, true
}
