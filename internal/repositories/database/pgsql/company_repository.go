package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(db dbtx) *PgxCompanyRepository {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companySelect = `
SELECT
	c.id, c.tenant_code, c.name, c.email, c.password_hash,
	c.subscription_plan, c.subscription_status, c.subscription_expiry,
	c.max_employees, c.max_tasks, c.max_meetings,
	c.employee_count, c.task_count, c.meeting_count, c.logo_url,
	c.created_at, c.updated_at
FROM companies c
`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.TenantCode, &c.Name, &c.Email, &c.PasswordHash,
		&c.SubscriptionPlan, &c.SubscriptionStatus, &c.SubscriptionExpiry,
		&c.MaxEmployees, &c.MaxTasks, &c.MaxMeetings,
		&c.EmployeeCount, &c.TaskCount, &c.MeetingCount, &c.LogoURL,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCompanyRepository) findOne(ctx context.Context, filter string, args ...any) (*domain.Company, error) {
	c, err := scanCompany(r.DB.QueryRow(ctx, companySelect+filter, args...))
	if err != nil {
		return nil, notFoundOr(err, "company")
	}
	return c, nil
}

func (r *PgxCompanyRepository) FindCompanyByTenantCode(ctx context.Context, code domain.TenantCode) (*domain.Company, error) {
	return r.findOne(ctx, `WHERE c.tenant_code = $1`, code)
}

func (r *PgxCompanyRepository) FindCompanyByEmail(ctx context.Context, email string) (*domain.Company, error) {
	return r.findOne(ctx, `WHERE lower(c.email) = lower($1)`, email)
}

func (r *PgxCompanyRepository) FindCompanyByNameAndCode(ctx context.Context, name string, code domain.TenantCode) (*domain.Company, error) {
	return r.findOne(ctx, `WHERE c.name = $1 AND c.tenant_code = $2`, name, code)
}

func (r *PgxCompanyRepository) TenantCodeExists(ctx context.Context, code domain.TenantCode) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (SELECT 1 FROM companies WHERE tenant_code = $1)
			OR EXISTS (SELECT 1 FROM employees WHERE tenant_code = $1)
			OR EXISTS (SELECT 1 FROM tasks WHERE tenant_code = $1)
			OR EXISTS (SELECT 1 FROM meetings WHERE tenant_code = $1);
	`
	err := r.DB.QueryRow(ctx, query, code).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to probe company code", err)
	}
	return exists, nil
}

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, c domain.Company) error {
	query := `
		INSERT INTO companies (
			id, tenant_code, name, email, password_hash,
			subscription_plan, subscription_status, subscription_expiry,
			max_employees, max_tasks, max_meetings,
			employee_count, task_count, meeting_count, logo_url,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.DB.Exec(ctx, query,
		c.ID, c.TenantCode, c.Name, c.Email, c.PasswordHash,
		c.SubscriptionPlan, c.SubscriptionStatus, c.SubscriptionExpiry,
		c.MaxEmployees, c.MaxTasks, c.MaxMeetings,
		c.EmployeeCount, c.TaskCount, c.MeetingCount, c.LogoURL,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "company")
	}
	return nil
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, c domain.Company) error {
	query := `
		UPDATE companies
		SET name = $1, email = $2, password_hash = $3,
			subscription_plan = $4, subscription_status = $5, subscription_expiry = $6,
			logo_url = $7, updated_at = $8
		WHERE tenant_code = $9;
	`
	tag, err := r.DB.Exec(ctx, query,
		c.Name, c.Email, c.PasswordHash,
		c.SubscriptionPlan, c.SubscriptionStatus, c.SubscriptionExpiry,
		c.LogoURL, c.UpdatedAt, c.TenantCode,
	)
	if err != nil {
		return mapWriteError(err, "company")
	}
	return requireAffected(tag, "company")
}

func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, code domain.TenantCode) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM companies WHERE tenant_code = $1`, code)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete company", err)
	}
	return requireAffected(tag, "company")
}
