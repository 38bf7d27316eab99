package domain

import "time"

// SubscriptionPlan is the billing tier of a company.
type SubscriptionPlan string

const (
	PlanFree    SubscriptionPlan = "free"
	PlanBasic   SubscriptionPlan = "basic"
	PlanPremium SubscriptionPlan = "premium"
)

func (p SubscriptionPlan) IsValid() bool {
	return p == PlanFree || p == PlanBasic || p == PlanPremium
}

// SubscriptionStatus tells whether the subscription is paid up.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

func (s SubscriptionStatus) IsValid() bool {
	return s == SubscriptionActive || s == SubscriptionInactive
}

// Default plan limits assigned at registration. They are informational only.
const (
	DefaultMaxEmployees = 5
	DefaultMaxTasks     = 20
	DefaultMaxMeetings  = 10
)

// Company is a tenant. Every employee, task and meeting belongs to exactly one company.
type Company struct {
	ID                 string             `json:"id"`
	TenantCode         TenantCode         `json:"companyId"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	PasswordHash       *string            `json:"-"`
	SubscriptionPlan   SubscriptionPlan   `json:"subscriptionPlan"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
	SubscriptionExpiry *time.Time         `json:"subscriptionExpiry,omitempty"`
	MaxEmployees       int                `json:"maxEmployees"`
	MaxTasks           int                `json:"maxTasks"`
	MaxMeetings        int                `json:"maxMeetings"`
	EmployeeCount      int                `json:"employeeCount"`
	TaskCount          int                `json:"taskCount"`
	MeetingCount       int                `json:"meetingCount"`
	LogoURL            *string            `json:"logoUrl,omitempty"`
	Timestamps
}
