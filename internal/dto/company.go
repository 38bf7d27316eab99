package dto

import (
	"time"

	"github.com/SscSPs/workly_crm/internal/core/domain"
)

// AdminDetails describes the first administrator created with a company.
type AdminDetails struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
}

// RegisterCompanyRequest defines the data needed to register a company.
// Admin details may be nested under admin or given as flat adminName/adminEmail.
type RegisterCompanyRequest struct {
	Name       string        `json:"name"`
	Email      string        `json:"email" binding:"omitempty,email"`
	Code       string        `json:"code" binding:"omitempty,tenantcode"`
	Password   string        `json:"password"`
	AdminName  string        `json:"adminName"`
	AdminEmail string        `json:"adminEmail" binding:"omitempty,email"`
	Admin      *AdminDetails `json:"admin"`
	LogoURL    *string       `json:"logoUrl" binding:"omitempty,url"`
}

// RegisterCompanyResponse is returned after a successful registration.
type RegisterCompanyResponse struct {
	Message string           `json:"message"`
	Company CompanyResponse  `json:"company"`
	Admin   EmployeeResponse `json:"admin"`
	Token   string           `json:"token"`
}

// CompanyLoginRequest is step one of the two-step login.
type CompanyLoginRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// RosterEntry is one employee offered for step two of the login.
type RosterEntry struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// CompanyLoginResponse returns the tenant code and the roster to pick from.
type CompanyLoginResponse struct {
	CompanyID   domain.TenantCode `json:"companyId"`
	CompanyName string            `json:"companyName"`
	Employees   []RosterEntry     `json:"employees"`
}

// UpdateCompanyRequest defines the fields an admin may change.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateCompanyRequest struct {
	Name               *string    `json:"name"`
	Email              *string    `json:"email" binding:"omitempty,email"`
	Password           *string    `json:"password"`
	SubscriptionPlan   *string    `json:"subscriptionPlan" binding:"omitempty,oneof=free basic premium"`
	SubscriptionStatus *string    `json:"subscriptionStatus" binding:"omitempty,oneof=active inactive"`
	SubscriptionExpiry *time.Time `json:"subscriptionExpiry"`
	LogoURL            *string    `json:"logoUrl"`
}

// CompanyResponse is the public view of a company. It never carries the password hash.
type CompanyResponse struct {
	ID                 string                    `json:"id"`
	CompanyID          domain.TenantCode         `json:"companyId"`
	Name               string                    `json:"name"`
	Email              string                    `json:"email"`
	SubscriptionPlan   domain.SubscriptionPlan   `json:"subscriptionPlan"`
	SubscriptionStatus domain.SubscriptionStatus `json:"subscriptionStatus"`
	SubscriptionExpiry *time.Time                `json:"subscriptionExpiry,omitempty"`
	MaxEmployees       int                       `json:"maxEmployees"`
	MaxTasks           int                       `json:"maxTasks"`
	MaxMeetings        int                       `json:"maxMeetings"`
	EmployeeCount      int                       `json:"employeeCount"`
	TaskCount          int                       `json:"taskCount"`
	MeetingCount       int                       `json:"meetingCount"`
	LogoURL            *string                   `json:"logoUrl,omitempty"`
	CreatedAt          time.Time                 `json:"createdAt"`
	UpdatedAt          time.Time                 `json:"updatedAt"`
}

// ToCompanyResponse converts a domain.Company to its public view.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:                 c.ID,
		CompanyID:          c.TenantCode,
		Name:               c.Name,
		Email:              c.Email,
		SubscriptionPlan:   c.SubscriptionPlan,
		SubscriptionStatus: c.SubscriptionStatus,
		SubscriptionExpiry: c.SubscriptionExpiry,
		MaxEmployees:       c.MaxEmployees,
		MaxTasks:           c.MaxTasks,
		MaxMeetings:        c.MaxMeetings,
		EmployeeCount:      c.EmployeeCount,
		TaskCount:          c.TaskCount,
		MeetingCount:       c.MeetingCount,
		LogoURL:            c.LogoURL,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// ToListCompaniesResponse converts companies to their public views.
func ToListCompaniesResponse(companies []domain.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(companies))
	for i := range companies {
		out[i] = ToCompanyResponse(&companies[i])
	}
	return out
}

// ToCompanyLoginResponse builds the step-one login response.
func ToCompanyLoginResponse(c *domain.Company, roster []domain.Employee) CompanyLoginResponse {
	entries := make([]RosterEntry, len(roster))
	for i, e := range roster {
		entries[i] = RosterEntry{ID: e.ID, Name: e.Name, Email: e.Email, Role: e.Role}
	}
	return CompanyLoginResponse{
		CompanyID:   c.TenantCode,
		CompanyName: c.Name,
		Employees:   entries,
	}
}
