package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db dbtx) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeSelect = `
SELECT
	e.id, e.tenant_code, e.name, e.email, e.password_hash, e.role,
	e.salary, e.bonus, e.position, e.phone, e.joined_at, e.is_active,
	e.created_at, e.updated_at
FROM employees e
`

func scanEmployee(row pgx.Row) (domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID, &e.TenantCode, &e.Name, &e.Email, &e.PasswordHash, &e.Role,
		&e.Salary, &e.Bonus, &e.Position, &e.Phone, &e.JoinedAt, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *PgxEmployeeRepository) findOne(ctx context.Context, filter string, args ...any) (*domain.Employee, error) {
	e, err := scanEmployee(r.DB.QueryRow(ctx, employeeSelect+filter, args...))
	if err != nil {
		return nil, notFoundOr(err, "employee")
	}
	return &e, nil
}

func (r *PgxEmployeeRepository) findMany(ctx context.Context, filter string, args ...any) ([]domain.Employee, error) {
	rows, err := r.DB.Query(ctx, employeeSelect+filter, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query employees", err)
	}
	employees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Employee, error) {
		return scanEmployee(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect employee rows", err)
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, id string) (*domain.Employee, error) {
	return r.findOne(ctx, `WHERE e.id = $1`, id)
}

func (r *PgxEmployeeRepository) FindEmployee(ctx context.Context, code domain.TenantCode, id string) (*domain.Employee, error) {
	return r.findOne(ctx, `WHERE e.tenant_code = $1 AND e.id = $2`, code, id)
}

func (r *PgxEmployeeRepository) FindEmployeeByEmail(ctx context.Context, code domain.TenantCode, email string) (*domain.Employee, error) {
	return r.findOne(ctx, `WHERE e.tenant_code = $1 AND lower(e.email) = lower($2)`, code, email)
}

func (r *PgxEmployeeRepository) FindEmployeesByIDs(ctx context.Context, code domain.TenantCode, ids []string) (map[string]domain.Employee, error) {
	result := make(map[string]domain.Employee, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	employees, err := r.findMany(ctx, `WHERE e.tenant_code = $1 AND e.id = ANY($2)`, code, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		result[e.ID] = e
	}
	return result, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, code domain.TenantCode, limit, offset int) ([]domain.Employee, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		return r.findMany(ctx, `WHERE e.tenant_code = $1 ORDER BY e.created_at, e.id OFFSET $2`, code, offset)
	}
	return r.findMany(ctx, `WHERE e.tenant_code = $1 ORDER BY e.created_at, e.id LIMIT $2 OFFSET $3`, code, limit, offset)
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, e domain.Employee) error {
	query := `
		INSERT INTO employees (
			id, tenant_code, name, email, password_hash, role,
			salary, bonus, position, phone, joined_at, is_active,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.DB.Exec(ctx, query,
		e.ID, e.TenantCode, e.Name, e.Email, e.PasswordHash, e.Role,
		e.Salary, e.Bonus, e.Position, e.Phone, e.JoinedAt, e.IsActive,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "employee")
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, e domain.Employee) error {
	query := `
		UPDATE employees
		SET name = $1, email = $2, password_hash = $3, role = $4,
			salary = $5, bonus = $6, position = $7, phone = $8,
			is_active = $9, updated_at = $10
		WHERE tenant_code = $11 AND id = $12;
	`
	tag, err := r.DB.Exec(ctx, query,
		e.Name, e.Email, e.PasswordHash, e.Role,
		e.Salary, e.Bonus, e.Position, e.Phone,
		e.IsActive, e.UpdatedAt, e.TenantCode, e.ID,
	)
	if err != nil {
		return mapWriteError(err, "employee")
	}
	return requireAffected(tag, "employee")
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, code domain.TenantCode, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM employees WHERE tenant_code = $1 AND id = $2`, code, id)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete employee", err)
	}
	return requireAffected(tag, "employee")
}

func (r *PgxEmployeeRepository) DeleteEmployeesByTenant(ctx context.Context, code domain.TenantCode) (int64, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM employees WHERE tenant_code = $1`, code)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to delete company employees", err)
	}
	return tag.RowsAffected(), nil
}
