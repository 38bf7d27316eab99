package dto

import (
	"time"

	"github.com/SscSPs/workly_crm/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to add an employee to the caller's company.
type CreateEmployeeRequest struct {
	Name     string           `json:"name"`
	Email    string           `json:"email" binding:"omitempty,email"`
	Password string           `json:"password"`
	Role     string           `json:"role" binding:"omitempty,oneof=admin manager employee"`
	Salary   *decimal.Decimal `json:"salary"`
	Bonus    *decimal.Decimal `json:"bonus"`
	Position *string          `json:"position"`
	Phone    *string          `json:"phone"`
	JoinedAt *time.Time       `json:"joinedAt"`
}

// UpdateEmployeeRequest defines the fields an admin may change.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateEmployeeRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email" binding:"omitempty,email"`
	Password *string          `json:"password"`
	Role     *string          `json:"role" binding:"omitempty,oneof=admin manager employee"`
	Salary   *decimal.Decimal `json:"salary"`
	Bonus    *decimal.Decimal `json:"bonus"`
	Position *string          `json:"position"`
	Phone    *string          `json:"phone"`
	IsActive *bool            `json:"isActive"`
}

// EmployeeLoginRequest is step two of the two-step login.
type EmployeeLoginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	CompanyID string `json:"companyId"`
}

// EmployeeLoginResponse carries the access token for the employee.
type EmployeeLoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Employee  EmployeeResponse `json:"employee"`
}

// ListEmployeesParams defines query parameters for listing employees.
// A zero limit returns every employee.
type ListEmployeesParams struct {
	Limit  int `form:"limit,default=0" binding:"min=0,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// EmployeeResponse is the public view of an employee. It never carries the password hash.
type EmployeeResponse struct {
	ID        string            `json:"id"`
	CompanyID domain.TenantCode `json:"companyId"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Role      domain.Role       `json:"role"`
	Salary    decimal.Decimal   `json:"salary"`
	Bonus     decimal.Decimal   `json:"bonus"`
	Position  *string           `json:"position,omitempty"`
	Phone     *string           `json:"phone,omitempty"`
	JoinedAt  time.Time         `json:"joinedAt"`
	IsActive  bool              `json:"isActive"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// EmployeesByCompanyResponse is the tenant roster with its size.
type EmployeesByCompanyResponse struct {
	Count     int                `json:"count"`
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to its public view.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		CompanyID: e.TenantCode,
		Name:      e.Name,
		Email:     e.Email,
		Role:      e.Role,
		Salary:    e.Salary,
		Bonus:     e.Bonus,
		Position:  e.Position,
		Phone:     e.Phone,
		JoinedAt:  e.JoinedAt,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToListEmployeesResponse converts employees to their public views.
func ToListEmployeesResponse(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(employees))
	for i := range employees {
		out[i] = ToEmployeeResponse(&employees[i])
	}
	return out
}

// ToEmployeesByCompanyResponse wraps the roster with its count.
func ToEmployeesByCompanyResponse(employees []domain.Employee) EmployeesByCompanyResponse {
	return EmployeesByCompanyResponse{
		Count:     len(employees),
		Employees: ToListEmployeesResponse(employees),
	}
}
