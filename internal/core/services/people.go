package services

import (
	"context"

	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
)

// employeeDirectory resolves employee ids to public summaries within one tenant.
type employeeDirectory struct {
	employees portsrepo.EmployeeReader
}

func (d employeeDirectory) lookup(ctx context.Context, code domain.TenantCode, ids []string) (map[string]domain.EmployeeRef, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id != "" && !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	found, err := d.employees.FindEmployeesByIDs(ctx, code, unique)
	if err != nil {
		return nil, err
	}
	refs := make(map[string]domain.EmployeeRef, len(found))
	for id, e := range found {
		refs[id] = e.Ref()
	}
	return refs, nil
}

// missing returns the ids that do not belong to the tenant.
func (d employeeDirectory) missing(ctx context.Context, code domain.TenantCode, ids []string) ([]string, error) {
	refs, err := d.lookup(ctx, code, ids)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, id := range ids {
		if _, ok := refs[id]; !ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func refPtr(refs map[string]domain.EmployeeRef, id string) *domain.EmployeeRef {
	if ref, ok := refs[id]; ok {
		return &ref
	}
	return nil
}
