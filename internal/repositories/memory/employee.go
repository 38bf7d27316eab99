package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
)

type employeeRepository struct {
	acc accessor
}

var _ portsrepo.EmployeeRepositoryFacade = (*employeeRepository)(nil)

func errEmployeeNotFound() error {
	return apperrors.NewNotFoundError("employee not found")
}

func (r *employeeRepository) FindEmployeeByID(ctx context.Context, id string) (*domain.Employee, error) {
	var found *domain.Employee
	err := r.acc.read(ctx, func(d *dataset) error {
		e, ok := d.employees[id]
		if !ok {
			return errEmployeeNotFound()
		}
		found = &e
		return nil
	})
	return found, err
}

func (r *employeeRepository) FindEmployee(ctx context.Context, code domain.TenantCode, id string) (*domain.Employee, error) {
	var found *domain.Employee
	err := r.acc.read(ctx, func(d *dataset) error {
		e, ok := d.employees[id]
		if !ok || e.TenantCode != code {
			return errEmployeeNotFound()
		}
		found = &e
		return nil
	})
	return found, err
}

func (r *employeeRepository) FindEmployeeByEmail(ctx context.Context, code domain.TenantCode, email string) (*domain.Employee, error) {
	var found *domain.Employee
	err := r.acc.read(ctx, func(d *dataset) error {
		for _, e := range d.employees {
			if e.TenantCode == code && strings.EqualFold(e.Email, email) {
				found = &e
				return nil
			}
		}
		return errEmployeeNotFound()
	})
	return found, err
}

func (r *employeeRepository) FindEmployeesByIDs(ctx context.Context, code domain.TenantCode, ids []string) (map[string]domain.Employee, error) {
	result := make(map[string]domain.Employee, len(ids))
	err := r.acc.read(ctx, func(d *dataset) error {
		for _, id := range ids {
			if e, ok := d.employees[id]; ok && e.TenantCode == code {
				result[id] = e
			}
		}
		return nil
	})
	return result, err
}

func (r *employeeRepository) ListEmployees(ctx context.Context, code domain.TenantCode, limit, offset int) ([]domain.Employee, error) {
	list := []domain.Employee{}
	err := r.acc.read(ctx, func(d *dataset) error {
		for _, e := range d.employees {
			if e.TenantCode == code {
				list = append(list, e)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return paginate(list, limit, offset), nil
}

func (r *employeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	return r.acc.write(ctx, func(d *dataset) error {
		if _, ok := d.employees[employee.ID]; ok {
			return apperrors.NewConflictError("employee " + employee.ID + " already exists")
		}
		if emailTaken(d, employee) {
			return apperrors.NewConflictError("employee with this email already exists in the company")
		}
		d.employees[employee.ID] = employee
		return nil
	})
}

func (r *employeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	return r.acc.write(ctx, func(d *dataset) error {
		existing, ok := d.employees[employee.ID]
		if !ok || existing.TenantCode != employee.TenantCode {
			return errEmployeeNotFound()
		}
		if emailTaken(d, employee) {
			return apperrors.NewConflictError("employee with this email already exists in the company")
		}
		d.employees[employee.ID] = employee
		return nil
	})
}

func (r *employeeRepository) DeleteEmployee(ctx context.Context, code domain.TenantCode, id string) error {
	return r.acc.write(ctx, func(d *dataset) error {
		e, ok := d.employees[id]
		if !ok || e.TenantCode != code {
			return errEmployeeNotFound()
		}
		delete(d.employees, id)
		return nil
	})
}

func (r *employeeRepository) DeleteEmployeesByTenant(ctx context.Context, code domain.TenantCode) (int64, error) {
	var removed int64
	err := r.acc.write(ctx, func(d *dataset) error {
		for id, e := range d.employees {
			if e.TenantCode == code {
				delete(d.employees, id)
				removed++
			}
		}
		return nil
	})
	return removed, err
}

func emailTaken(d *dataset, employee domain.Employee) bool {
	for id, e := range d.employees {
		if id != employee.ID && e.TenantCode == employee.TenantCode && strings.EqualFold(e.Email, employee.Email) {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
