package services

import (
	"time"

	"github.com/SscSPs/workly_crm/internal/core/domain"
)

// TokenSvc issues and verifies access tokens.
type TokenSvc interface {
	// IssueToken signs a token for the employee and returns it with its expiry.
	IssueToken(employee *domain.Employee) (string, time.Time, error)

	// VerifyToken validates a token and returns the employee id it was issued to.
	VerifyToken(tokenString string) (string, error)
}
