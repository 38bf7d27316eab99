package memory

import (
	"context"
	"strings"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
)

type companyRepository struct {
	acc accessor
}

var _ portsrepo.CompanyRepositoryFacade = (*companyRepository)(nil)

func (r *companyRepository) FindCompanyByTenantCode(ctx context.Context, code domain.TenantCode) (*domain.Company, error) {
	var found *domain.Company
	err := r.acc.read(ctx, func(d *dataset) error {
		c, ok := d.companies[code]
		if !ok {
			return apperrors.NewNotFoundError("company not found")
		}
		found = &c
		return nil
	})
	return found, err
}

func (r *companyRepository) FindCompanyByEmail(ctx context.Context, email string) (*domain.Company, error) {
	var found *domain.Company
	err := r.acc.read(ctx, func(d *dataset) error {
		for _, c := range d.companies {
			if strings.EqualFold(c.Email, email) {
				found = &c
				return nil
			}
		}
		return apperrors.NewNotFoundError("company not found")
	})
	return found, err
}

func (r *companyRepository) FindCompanyByNameAndCode(ctx context.Context, name string, code domain.TenantCode) (*domain.Company, error) {
	var found *domain.Company
	err := r.acc.read(ctx, func(d *dataset) error {
		c, ok := d.companies[code]
		if !ok || c.Name != name {
			return apperrors.NewNotFoundError("company not found")
		}
		found = &c
		return nil
	})
	return found, err
}

func (r *companyRepository) TenantCodeExists(ctx context.Context, code domain.TenantCode) (bool, error) {
	var exists bool
	err := r.acc.read(ctx, func(d *dataset) error {
		if _, exists = d.companies[code]; exists {
			return nil
		}
		// records left behind by a deleted company keep the code retired
		for _, t := range d.tasks {
			if t.TenantCode == code {
				exists = true
				return nil
			}
		}
		for _, m := range d.meetings {
			if m.TenantCode == code {
				exists = true
				return nil
			}
		}
		for _, e := range d.employees {
			if e.TenantCode == code {
				exists = true
				return nil
			}
		}
		return nil
	})
	return exists, err
}

func (r *companyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	return r.acc.write(ctx, func(d *dataset) error {
		if _, ok := d.companies[company.TenantCode]; ok {
			return apperrors.NewConflictError("company code " + company.TenantCode.String() + " already exists")
		}
		for _, c := range d.companies {
			if strings.EqualFold(c.Email, company.Email) {
				return apperrors.NewConflictError("company with this email already exists")
			}
		}
		d.companies[company.TenantCode] = company
		return nil
	})
}

func (r *companyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	return r.acc.write(ctx, func(d *dataset) error {
		if _, ok := d.companies[company.TenantCode]; !ok {
			return apperrors.NewNotFoundError("company not found")
		}
		for code, c := range d.companies {
			if code != company.TenantCode && strings.EqualFold(c.Email, company.Email) {
				return apperrors.NewConflictError("company with this email already exists")
			}
		}
		d.companies[company.TenantCode] = company
		return nil
	})
}

func (r *companyRepository) DeleteCompany(ctx context.Context, code domain.TenantCode) error {
	return r.acc.write(ctx, func(d *dataset) error {
		if _, ok := d.companies[code]; !ok {
			return apperrors.NewNotFoundError("company not found")
		}
		delete(d.companies, code)
		return nil
	})
}
