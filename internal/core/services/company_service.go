package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workly_crm/internal/core/ports/services"
	"github.com/SscSPs/workly_crm/internal/dto"
	"github.com/SscSPs/workly_crm/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultAdminName = "Admin User"

	loginStepCompany  = "company"
	loginStepEmployee = "employee"
)

// companyService implements the company related service interfaces.
type companyService struct {
	BaseService
	store     portsrepo.Store
	tokens    portssvc.TokenSvc
	allocator *tenantCodeAllocator
	metrics   portssvc.AuthMetrics
}

// NewCompanyService creates a new instance of companyService.
// maxCodeAttempts bounds the random tenant code search.
func NewCompanyService(store portsrepo.Store, tokens portssvc.TokenSvc, maxCodeAttempts int, metrics portssvc.AuthMetrics) portssvc.CompanySvcFacade {
	if metrics == nil {
		metrics = noopAuthMetrics{}
	}
	return &companyService{
		store:     store,
		tokens:    tokens,
		allocator: newTenantCodeAllocator(maxCodeAttempts),
		metrics:   metrics,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// adminFields resolves the first administrator from the nested or flat request shape.
func adminFields(req dto.RegisterCompanyRequest) (name, email, password string) {
	if req.Admin != nil {
		name, email, password = req.Admin.Name, req.Admin.Email, req.Admin.Password
	}
	if name == "" {
		name = req.AdminName
	}
	if email == "" {
		email = req.AdminEmail
	}
	if password == "" {
		password = req.Password
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultAdminName
	}
	email = normalizeEmail(email)
	if email == "" {
		email = "admin@" + emailDomainLabel(req.Name) + ".com"
	}
	return name, email, password
}

// emailDomainLabel reduces a company name to the ASCII letters and digits
// usable as a host label.
func emailDomainLabel(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, name)
}

// RegisterCompany creates the company and its first admin in one unit of work.
func (s *companyService) RegisterCompany(ctx context.Context, req dto.RegisterCompanyRequest) (*portssvc.Registration, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" {
		return nil, apperrors.NewValidationFailedError("company name and email are required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	var requestedCode domain.TenantCode
	if req.Code != "" {
		code, err := domain.ParseTenantCode(req.Code)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		requestedCode = code
	}

	adminName, adminEmail, adminPassword := adminFields(req)
	if adminPassword == "" {
		return nil, apperrors.NewValidationFailedError("an admin password is required")
	}
	if err := validateEmail(adminEmail); err != nil {
		return nil, err
	}

	// bcrypt runs outside the transaction so the store is held only for the writes.
	adminHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}
	var companyHash *string
	if req.Password != "" {
		h, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to hash password", err)
		}
		companyHash = &h
	}

	now := s.Now()
	company := domain.Company{
		ID:                 uuid.NewString(),
		Name:               name,
		Email:              email,
		PasswordHash:       companyHash,
		SubscriptionPlan:   domain.PlanFree,
		SubscriptionStatus: domain.SubscriptionInactive,
		MaxEmployees:       domain.DefaultMaxEmployees,
		MaxTasks:           domain.DefaultMaxTasks,
		MaxMeetings:        domain.DefaultMaxMeetings,
		LogoURL:            req.LogoURL,
		Timestamps:         domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	admin := domain.Employee{
		ID:           uuid.NewString(),
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: adminHash,
		Role:         domain.RoleAdmin,
		Salary:       decimal.Zero,
		Bonus:        decimal.Zero,
		JoinedAt:     now,
		IsActive:     true,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	err = s.store.UnitOfWork.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		if _, err := tx.CompanyRepo.FindCompanyByEmail(ctx, email); err == nil {
			return apperrors.NewConflictError("company with this email already exists")
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("checking company email: %w", err)
		}

		code := requestedCode
		if code != "" {
			taken, err := tx.CompanyRepo.TenantCodeExists(ctx, code)
			if err != nil {
				return fmt.Errorf("checking company code: %w", err)
			}
			if taken {
				return apperrors.NewConflictError(fmt.Sprintf("company code %s already exists", code))
			}
		} else {
			allocated, err := s.allocator.Allocate(ctx, tx.CompanyRepo)
			if err != nil {
				return err
			}
			code = allocated
		}
		company.TenantCode = code
		admin.TenantCode = code

		if err := tx.CompanyRepo.SaveCompany(ctx, company); err != nil {
			return err
		}
		return tx.EmployeeRepo.SaveEmployee(ctx, admin)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to register company", slog.String("company_email", email))
		return nil, err
	}

	token, _, err := s.tokens.IssueToken(&admin)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to issue token", err)
	}

	s.metrics.CompanyRegistered()
	s.LogInfo(ctx, "Company registered",
		slog.String("tenant_id", company.TenantCode.String()),
		slog.String("admin_id", admin.ID))
	return &portssvc.Registration{Company: company, Admin: admin, Token: token}, nil
}

// LoginCompany is step one of the two-step login: it returns the roster to pick an employee from.
func (s *companyService) LoginCompany(ctx context.Context, req dto.CompanyLoginRequest) (*domain.Company, []domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	rawCode := strings.TrimSpace(req.Code)
	if name == "" || rawCode == "" {
		s.metrics.LoginFailed(loginStepCompany, "validation")
		return nil, nil, apperrors.NewValidationFailedError("company name and code are required")
	}

	code, err := domain.ParseTenantCode(rawCode)
	if err != nil {
		s.metrics.LoginFailed(loginStepCompany, "not_found")
		return nil, nil, apperrors.NewNotFoundError("invalid company name or code")
	}
	company, err := s.store.CompanyRepo.FindCompanyByNameAndCode(ctx, name, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.metrics.LoginFailed(loginStepCompany, "not_found")
			return nil, nil, apperrors.NewNotFoundError("invalid company name or code")
		}
		return nil, nil, fmt.Errorf("looking up company: %w", err)
	}

	roster, err := s.store.EmployeeRepo.ListEmployees(ctx, code, 0, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("listing company roster: %w", err)
	}
	if len(roster) == 0 {
		s.metrics.LoginFailed(loginStepCompany, "empty_roster")
		return nil, nil, apperrors.NewNotFoundError("no employees found for this company")
	}

	s.metrics.LoginSucceeded(loginStepCompany)
	s.LogDebug(ctx, "Company login", slog.String("tenant_id", code.String()), slog.Int("roster_size", len(roster)))
	return company, roster, nil
}

// ownCompany loads the principal's company when companyID names it by id or tenant code.
func (s *companyService) ownCompany(ctx context.Context, principal domain.Principal, companyID string) (*domain.Company, error) {
	company, err := s.store.CompanyRepo.FindCompanyByTenantCode(ctx, principal.TenantCode)
	if err != nil {
		return nil, err
	}
	if companyID != company.ID && companyID != company.TenantCode.String() {
		return nil, apperrors.NewNotFoundError("company not found")
	}
	return company, nil
}

// GetCompany returns the caller's company.
func (s *companyService) GetCompany(ctx context.Context, principal domain.Principal, companyID string) (*domain.Company, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.ownCompany(ctx, principal, companyID)
}

// ListCompanies returns a single-element list holding the caller's company.
func (s *companyService) ListCompanies(ctx context.Context, principal domain.Principal) ([]domain.Company, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	company, err := s.store.CompanyRepo.FindCompanyByTenantCode(ctx, principal.TenantCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Company{}, nil
		}
		return nil, err
	}
	return []domain.Company{*company}, nil
}

// UpdateCompany applies a partial update to the caller's company.
func (s *companyService) UpdateCompany(ctx context.Context, principal domain.Principal, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return nil, err
	}
	company, err := s.ownCompany(ctx, principal, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationFailedError("company name cannot be empty")
		}
		company.Name = name
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		if email != company.Email {
			existing, err := s.store.CompanyRepo.FindCompanyByEmail(ctx, email)
			if err == nil && existing.ID != company.ID {
				return nil, apperrors.NewConflictError("company with this email already exists")
			}
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("checking company email: %w", err)
			}
		}
		company.Email = email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to hash password", err)
		}
		company.PasswordHash = &hash
	}
	if req.SubscriptionPlan != nil {
		plan := domain.SubscriptionPlan(*req.SubscriptionPlan)
		if !plan.IsValid() {
			return nil, apperrors.NewValidationFailedError("invalid subscription plan")
		}
		company.SubscriptionPlan = plan
	}
	if req.SubscriptionStatus != nil {
		status := domain.SubscriptionStatus(*req.SubscriptionStatus)
		if !status.IsValid() {
			return nil, apperrors.NewValidationFailedError("invalid subscription status")
		}
		company.SubscriptionStatus = status
	}
	if req.SubscriptionExpiry != nil {
		expiry := req.SubscriptionExpiry.UTC()
		company.SubscriptionExpiry = &expiry
	}
	if req.LogoURL != nil {
		company.LogoURL = req.LogoURL
	}
	company.UpdatedAt = s.Now()

	if err := s.store.CompanyRepo.UpdateCompany(ctx, *company); err != nil {
		s.LogError(ctx, err, "Failed to update company", slog.String("tenant_id", company.TenantCode.String()))
		return nil, err
	}
	return company, nil
}

// DeleteCompany removes the caller's company and its employees. Tasks and
// meetings of the tenant are left in place.
func (s *companyService) DeleteCompany(ctx context.Context, principal domain.Principal, companyID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin); err != nil {
		return err
	}
	company, err := s.ownCompany(ctx, principal, companyID)
	if err != nil {
		return err
	}

	var removed int64
	err = s.store.UnitOfWork.RunInTx(ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		n, err := tx.EmployeeRepo.DeleteEmployeesByTenant(ctx, company.TenantCode)
		if err != nil {
			return err
		}
		removed = n
		return tx.CompanyRepo.DeleteCompany(ctx, company.TenantCode)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete company", slog.String("tenant_id", company.TenantCode.String()))
		return err
	}
	s.LogInfo(ctx, "Company deleted",
		slog.String("tenant_id", company.TenantCode.String()),
		slog.Int64("employees_removed", removed))
	return nil
}
