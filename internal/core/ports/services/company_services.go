package services

import (
	"context"

	"github.com/SscSPs/workly_crm/internal/core/domain"
	"github.com/SscSPs/workly_crm/internal/dto"
)

// Registration is the outcome of registering a company.
type Registration struct {
	Company domain.Company
	Admin   domain.Employee
	Token   string
}

// CompanyAuthSvc covers the public, unauthenticated company operations.
type CompanyAuthSvc interface {
	// RegisterCompany creates a tenant and its first admin atomically.
	RegisterCompany(ctx context.Context, req dto.RegisterCompanyRequest) (*Registration, error)

	// LoginCompany resolves a tenant by name and code and returns its roster.
	LoginCompany(ctx context.Context, req dto.CompanyLoginRequest) (*domain.Company, []domain.Employee, error)
}

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// GetCompany returns the caller's company when companyID names it, by id or tenant code.
	GetCompany(ctx context.Context, principal domain.Principal, companyID string) (*domain.Company, error)

	// ListCompanies returns the companies visible to the caller, which is only their own.
	ListCompanies(ctx context.Context, principal domain.Principal) ([]domain.Company, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	UpdateCompany(ctx context.Context, principal domain.Principal, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error)

	// DeleteCompany removes the caller's company and all of its employees.
	DeleteCompany(ctx context.Context, principal domain.Principal, companyID string) error
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyAuthSvc
	CompanyReaderSvc
	CompanyWriterSvc
}
