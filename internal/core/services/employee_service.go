package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workly_crm/internal/core/ports/services"
	"github.com/SscSPs/workly_crm/internal/dto"
	"github.com/SscSPs/workly_crm/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// employeeService implements the employee related service interfaces.
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	tokens       portssvc.TokenSvc
	metrics      portssvc.AuthMetrics
}

// NewEmployeeService creates a new instance of employeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, tokens portssvc.TokenSvc, metrics portssvc.AuthMetrics) portssvc.EmployeeSvcFacade {
	if metrics == nil {
		metrics = noopAuthMetrics{}
	}
	return &employeeService{
		employeeRepo: employeeRepo,
		tokens:       tokens,
		metrics:      metrics,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// LoginEmployee is step two of the two-step login.
func (s *employeeService) LoginEmployee(ctx context.Context, req dto.EmployeeLoginRequest) (*domain.Employee, string, time.Time, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" || strings.TrimSpace(req.CompanyID) == "" {
		s.metrics.LoginFailed(loginStepEmployee, "validation")
		return nil, "", time.Time{}, apperrors.NewValidationFailedError("email, password and companyId are required")
	}

	code, err := domain.ParseTenantCode(strings.TrimSpace(req.CompanyID))
	if err != nil {
		s.metrics.LoginFailed(loginStepEmployee, "not_found")
		return nil, "", time.Time{}, apperrors.NewNotFoundError("employee not found")
	}
	employee, err := s.employeeRepo.FindEmployeeByEmail(ctx, code, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.metrics.LoginFailed(loginStepEmployee, "not_found")
			return nil, "", time.Time{}, apperrors.NewNotFoundError("employee not found")
		}
		return nil, "", time.Time{}, fmt.Errorf("looking up employee: %w", err)
	}
	if !employee.IsActive {
		s.metrics.LoginFailed(loginStepEmployee, "inactive")
		return nil, "", time.Time{}, apperrors.NewUnauthorizedError("account is inactive")
	}
	if !utils.CheckPasswordHash(req.Password, employee.PasswordHash) {
		s.metrics.LoginFailed(loginStepEmployee, "bad_password")
		return nil, "", time.Time{}, apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresAt, err := s.tokens.IssueToken(employee)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError("failed to issue token", err)
	}
	s.metrics.LoginSucceeded(loginStepEmployee)
	s.LogInfo(ctx, "Employee logged in", slog.String("employee_id", employee.ID), slog.String("tenant_id", code.String()))
	return employee, token, expiresAt, nil
}

// LoadEmployee fetches the employee behind a token subject.
func (s *employeeService) LoadEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

func (s *employeeService) ListEmployees(ctx context.Context, principal domain.Principal, limit, offset int) ([]domain.Employee, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.employeeRepo.ListEmployees(ctx, principal.TenantCode, limit, offset)
}

func (s *employeeService) GetEmployee(ctx context.Context, principal domain.Principal, employeeID string) (*domain.Employee, error) {
	if !principal.IsAdmin() && principal.ID != employeeID {
		return nil, apperrors.NewForbiddenError("you can only view your own profile")
	}
	return s.employeeRepo.FindEmployee(ctx, principal.TenantCode, employeeID)
}

func (s *employeeService) ListEmployeesByCompany(ctx context.Context, principal domain.Principal, companyID string) ([]domain.Employee, error) {
	if err := s.RequireOwnTenant(principal, companyID); err != nil {
		return nil, err
	}
	return s.employeeRepo.ListEmployees(ctx, principal.TenantCode, 0, 0)
}

// CreateEmployee adds an employee to the caller's company.
func (s *employeeService) CreateEmployee(ctx context.Context, principal domain.Principal, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, apperrors.NewValidationFailedError("name, email and password are required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	role := domain.RoleEmployee
	if req.Role != "" {
		role = domain.Role(req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationFailedError("invalid role: " + req.Role)
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	now := s.Now()
	employee := domain.Employee{
		ID:           uuid.NewString(),
		TenantCode:   principal.TenantCode,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Salary:       decimal.Zero,
		Bonus:        decimal.Zero,
		Position:     req.Position,
		Phone:        req.Phone,
		JoinedAt:     now,
		IsActive:     true,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	if req.Bonus != nil {
		employee.Bonus = *req.Bonus
	}
	if req.JoinedAt != nil {
		employee.JoinedAt = req.JoinedAt.UTC()
	}
	if employee.Salary.IsNegative() || employee.Bonus.IsNegative() {
		return nil, apperrors.NewValidationFailedError("salary and bonus cannot be negative")
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to create employee", slog.String("tenant_id", principal.TenantCode.String()))
		return nil, err
	}
	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.ID), slog.String("role", string(role)))
	return &employee, nil
}

// UpdateEmployee applies a partial update to an employee of the caller's company.
func (s *employeeService) UpdateEmployee(ctx context.Context, principal domain.Principal, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	employee, err := s.employeeRepo.FindEmployee(ctx, principal.TenantCode, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationFailedError("name cannot be empty")
		}
		employee.Name = name
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		employee.Email = email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to hash password", err)
		}
		employee.PasswordHash = hash
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationFailedError("invalid role: " + *req.Role)
		}
		employee.Role = role
	}
	if req.Salary != nil {
		if req.Salary.IsNegative() {
			return nil, apperrors.NewValidationFailedError("salary cannot be negative")
		}
		employee.Salary = *req.Salary
	}
	if req.Bonus != nil {
		if req.Bonus.IsNegative() {
			return nil, apperrors.NewValidationFailedError("bonus cannot be negative")
		}
		employee.Bonus = *req.Bonus
	}
	if req.Position != nil {
		employee.Position = req.Position
	}
	if req.Phone != nil {
		employee.Phone = req.Phone
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	employee.UpdatedAt = s.Now()

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, principal domain.Principal, employeeID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.employeeRepo.DeleteEmployee(ctx, principal.TenantCode, employeeID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}
