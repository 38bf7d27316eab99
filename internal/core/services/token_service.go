package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/workly_crm/internal/core/domain"
	portssvc "github.com/SscSPs/workly_crm/internal/core/ports/services"
	"github.com/SscSPs/workly_crm/internal/platform/config"
	"github.com/SscSPs/workly_crm/internal/utils"
)

// tokenService implements TokenSvc with HS256 JWTs.
type tokenService struct {
	BaseService
	secret string
	expiry time.Duration
	issuer string
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{
		secret: cfg.JWTSecret,
		expiry: cfg.JWTExpiryDuration,
		issuer: cfg.JWTIssuer,
	}
}

var _ portssvc.TokenSvc = (*tokenService)(nil)

// IssueToken creates a new JWT access token for the given employee.
func (s *tokenService) IssueToken(employee *domain.Employee) (string, time.Time, error) {
	now := s.Now()
	token, err := utils.GenerateJWT(employee.ID, employee.TenantCode.String(), string(employee.Role), s.secret, s.expiry, s.issuer, now)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, now.Add(s.expiry), nil
}

// VerifyToken returns the subject of a valid token. Tenant and role claims are
// informational; callers reload them from the store.
func (s *tokenService) VerifyToken(tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.secret, s.issuer)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
