package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenVerifier validates an access token and returns the employee id it was issued to.
type TokenVerifier interface {
	VerifyToken(tokenString string) (employeeID string, err error)
}

// PrincipalLoader fetches the current state of the employee behind a token.
type PrincipalLoader interface {
	LoadEmployee(ctx context.Context, employeeID string) (*domain.Employee, error)
}

// AuthMiddleware validates bearer tokens and attaches the caller's principal
// to the request context. Role and tenant always come from the store so a
// demoted or deactivated employee loses access immediately.
func AuthMiddleware(verifier TokenVerifier, loader PrincipalLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		employeeID, err := verifier.VerifyToken(parts[1])
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		employee, err := loader.LoadEmployee(c.Request.Context(), employeeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token subject no longer exists", slog.String("employee_id", employeeID))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Employee not found"})
				return
			}
			logger.Error("Failed to load principal", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if !employee.IsActive {
			logger.Warn("Inactive employee presented a token", slog.String("employee_id", employeeID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account is inactive"})
			return
		}

		principal := employee.Principal()
		enrichedLogger := logger.With(
			slog.String("principal_id", principal.ID),
			slog.String("tenant_id", principal.TenantCode.String()),
		)
		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}
