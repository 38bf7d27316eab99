package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a member of a company and the only kind of principal that can log in.
type Employee struct {
	ID           string          `json:"id"`
	TenantCode   TenantCode      `json:"companyId"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Role         Role            `json:"role"`
	Salary       decimal.Decimal `json:"salary"`
	Bonus        decimal.Decimal `json:"bonus"`
	Position     *string         `json:"position,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	JoinedAt     time.Time       `json:"joinedAt"`
	IsActive     bool            `json:"isActive"`
	Timestamps
}

// Principal returns the identity used to authorize the employee's requests.
func (e Employee) Principal() Principal {
	return Principal{ID: e.ID, TenantCode: e.TenantCode, Role: e.Role}
}

// EmployeeRef is the public summary embedded in task and meeting responses.
type EmployeeRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Ref returns the public summary of the employee.
func (e Employee) Ref() EmployeeRef {
	return EmployeeRef{ID: e.ID, Name: e.Name, Email: e.Email}
}
