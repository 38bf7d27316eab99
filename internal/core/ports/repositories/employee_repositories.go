package repositories

import (
	"context"

	"github.com/SscSPs/workly_crm/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by id regardless of tenant.
	// Only the request authenticator uses this lookup.
	FindEmployeeByID(ctx context.Context, id string) (*domain.Employee, error)

	// FindEmployee retrieves an employee by id within one tenant.
	FindEmployee(ctx context.Context, code domain.TenantCode, id string) (*domain.Employee, error)

	// FindEmployeeByEmail retrieves an employee by email within one tenant.
	FindEmployeeByEmail(ctx context.Context, code domain.TenantCode, email string) (*domain.Employee, error)

	// FindEmployeesByIDs returns the tenant's employees among ids, keyed by id.
	FindEmployeesByIDs(ctx context.Context, code domain.TenantCode, ids []string) (map[string]domain.Employee, error)

	// ListEmployees retrieves a page of a tenant's employees. A non-positive limit returns all.
	ListEmployees(ctx context.Context, code domain.TenantCode, limit, offset int) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee. A duplicate (tenant, email) is a conflict.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee overwrites the mutable fields of an existing employee.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeleteEmployee removes one employee of the tenant.
	DeleteEmployee(ctx context.Context, code domain.TenantCode, id string) error

	// DeleteEmployeesByTenant removes every employee of the tenant and returns how many went.
	DeleteEmployeesByTenant(ctx context.Context, code domain.TenantCode) (int64, error)
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
