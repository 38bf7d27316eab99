package services

import (
	"context"
	"time"

	"github.com/SscSPs/workly_crm/internal/core/domain"
	"github.com/SscSPs/workly_crm/internal/dto"
)

// EmployeeAuthSvc covers employee sign-in and principal loading.
type EmployeeAuthSvc interface {
	// LoginEmployee checks credentials within a tenant and issues a token.
	LoginEmployee(ctx context.Context, req dto.EmployeeLoginRequest) (*domain.Employee, string, time.Time, error)

	// LoadEmployee fetches the current record behind a token subject.
	LoadEmployee(ctx context.Context, employeeID string) (*domain.Employee, error)
}

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	ListEmployees(ctx context.Context, principal domain.Principal, limit, offset int) ([]domain.Employee, error)

	// GetEmployee is allowed for admins and for the employee themself.
	GetEmployee(ctx context.Context, principal domain.Principal, employeeID string) (*domain.Employee, error)

	// ListEmployeesByCompany returns the roster of the caller's own company.
	ListEmployeesByCompany(ctx context.Context, principal domain.Principal, companyID string) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	CreateEmployee(ctx context.Context, principal domain.Principal, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, principal domain.Principal, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, principal domain.Principal, employeeID string) error
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeAuthSvc
	EmployeeReaderSvc
	EmployeeWriterSvc
}
