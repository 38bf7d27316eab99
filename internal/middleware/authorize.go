package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/SscSPs/workly_crm/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// AdminSecretHeader carries the shared secret required by destructive admin routes.
const AdminSecretHeader = "X-Admin-Secret"

// Policy declares who may call a route.
type Policy struct {
	// Roles admitted by the route. Empty admits any authenticated role.
	Roles []domain.Role
	// RequireSharedSecret demands the configured admin secret when one is set.
	RequireSharedSecret bool
}

// AnyRole admits every authenticated employee.
var AnyRole = Policy{}

// AdminOnly admits admins.
var AdminOnly = Policy{Roles: []domain.Role{domain.RoleAdmin}}

// Managers admits admins and managers.
var Managers = Policy{Roles: []domain.Role{domain.RoleAdmin, domain.RoleManager}}

// WithSharedSecret returns a copy of p that also requires the admin secret.
func (p Policy) WithSharedSecret() Policy {
	p.RequireSharedSecret = true
	return p
}

// Authorize enforces policy for routes mounted behind AuthMiddleware.
// An empty sharedSecret turns the secret requirement into a no-op.
func Authorize(policy Policy, sharedSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		principal, ok := PrincipalFromContext(c.Request.Context())
		if !ok {
			logger.Error("Authorize mounted without an authenticated principal")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !principal.Role.In(policy.Roles...) {
			logger.Warn("Role not permitted", slog.String("role", string(principal.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
			return
		}

		if policy.RequireSharedSecret && sharedSecret != "" {
			provided := c.GetHeader(AdminSecretHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(sharedSecret)) != 1 {
				logger.Warn("Admin shared secret missing or wrong")
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid admin secret"})
				return
			}
		}

		c.Next()
	}
}
