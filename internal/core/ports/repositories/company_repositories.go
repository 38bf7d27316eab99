package repositories

import (
	"context"

	"github.com/SscSPs/workly_crm/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByTenantCode retrieves a company by its tenant code.
	FindCompanyByTenantCode(ctx context.Context, code domain.TenantCode) (*domain.Company, error)

	// FindCompanyByEmail retrieves a company by its globally unique email.
	FindCompanyByEmail(ctx context.Context, email string) (*domain.Company, error)

	// FindCompanyByNameAndCode retrieves a company matching both name and tenant code exactly.
	FindCompanyByNameAndCode(ctx context.Context, name string, code domain.TenantCode) (*domain.Company, error)

	// TenantCodeExists reports whether the code is in use by a company or by
	// records a deleted company left behind.
	TenantCodeExists(ctx context.Context, code domain.TenantCode) (bool, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company. Duplicate code or email is a conflict.
	SaveCompany(ctx context.Context, company domain.Company) error

	// UpdateCompany overwrites the mutable fields of an existing company.
	UpdateCompany(ctx context.Context, company domain.Company) error

	// DeleteCompany removes the company with the given tenant code.
	DeleteCompany(ctx context.Context, code domain.TenantCode) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
