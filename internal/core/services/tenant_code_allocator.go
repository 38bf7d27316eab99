package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
	"github.com/SscSPs/workly_crm/internal/utils"
)

// randomSuffixFunc returns a candidate suffix in [min, max].
type randomSuffixFunc func(min, max int) (int, error)

// tenantCodeAllocator picks unused COMP-#### codes at random with a bounded
// number of attempts.
type tenantCodeAllocator struct {
	BaseService
	maxAttempts int
	random      randomSuffixFunc
}

func newTenantCodeAllocator(maxAttempts int) *tenantCodeAllocator {
	return &tenantCodeAllocator{maxAttempts: maxAttempts, random: utils.SecureRandomIntInRange}
}

// Allocate returns a code that is not in use. A concurrent registration
// can still claim the same code; the store's unique index rejects the loser.
func (a *tenantCodeAllocator) Allocate(ctx context.Context, companies portsrepo.CompanyReader) (domain.TenantCode, error) {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		suffix, err := a.random(domain.MinTenantCodeSuffix, domain.MaxTenantCodeSuffix)
		if err != nil {
			return "", apperrors.NewInternalError("failed to generate company code", err)
		}
		code, err := domain.NewTenantCode(suffix)
		if err != nil {
			return "", apperrors.NewInternalError("failed to generate company code", err)
		}
		taken, err := companies.TenantCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("checking company code %s: %w", code, err)
		}
		if !taken {
			return code, nil
		}
		a.LogDebug(ctx, "Company code collision", slog.String("code", code.String()), slog.Int("attempt", attempt))
	}
	a.GetLogger(ctx).Error("Company code space exhausted", slog.Int("attempts", a.maxAttempts))
	return "", apperrors.NewInternalError("could not allocate a unique company code",
		fmt.Errorf("no free code after %d attempts", a.maxAttempts))
}
