package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	"github.com/SscSPs/workly_crm/internal/middleware"
	"github.com/go-playground/validator/v10"
)

// validate checks values that reach services without passing through request binding.
var validate = validator.New()

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock returns the current time. Defaults to time.Now in UTC.
	Clock func() time.Time
}

// Now returns the service's notion of the current time.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireRole rejects principals whose role is not among roles.
func (s *BaseService) RequireRole(ctx context.Context, principal domain.Principal, roles ...domain.Role) error {
	if principal.Role.In(roles...) {
		return nil
	}
	s.GetLogger(ctx).Warn("Action denied for role",
		slog.String("principal_id", principal.ID),
		slog.String("role", string(principal.Role)))
	return apperrors.NewForbiddenError("you do not have permission to perform this action")
}

// RequireOwnTenant rejects a company path parameter that names another tenant.
func (s *BaseService) RequireOwnTenant(principal domain.Principal, companyID string) error {
	if companyID != principal.TenantCode.String() {
		return apperrors.NewForbiddenError("you can only access your own company")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return apperrors.NewValidationFailedError("invalid email address: " + email)
	}
	return nil
}
