package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
)

type taskRepository struct {
	acc accessor
}

var _ portsrepo.TaskRepositoryFacade = (*taskRepository)(nil)

func (r *taskRepository) FindTask(ctx context.Context, code domain.TenantCode, id string) (*domain.Task, error) {
	var found *domain.Task
	err := r.acc.read(ctx, func(d *dataset) error {
		t, ok := d.tasks[id]
		if !ok || t.TenantCode != code {
			return apperrors.NewNotFoundError("task not found")
		}
		found = &t
		return nil
	})
	return found, err
}

func (r *taskRepository) ListTasks(ctx context.Context, code domain.TenantCode, filter domain.TaskFilter) ([]domain.Task, error) {
	list := []domain.Task{}
	err := r.acc.read(ctx, func(d *dataset) error {
		for _, t := range d.tasks {
			if t.TenantCode != code {
				continue
			}
			if filter.AssignedTo != "" && t.AssignedTo != filter.AssignedTo {
				continue
			}
			list = append(list, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *taskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	return r.acc.write(ctx, func(d *dataset) error {
		if _, ok := d.tasks[task.ID]; ok {
			return apperrors.NewConflictError("task " + task.ID + " already exists")
		}
		d.tasks[task.ID] = task
		return nil
	})
}

func (r *taskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	return r.acc.write(ctx, func(d *dataset) error {
		existing, ok := d.tasks[task.ID]
		if !ok || existing.TenantCode != task.TenantCode {
			return apperrors.NewNotFoundError("task not found")
		}
		d.tasks[task.ID] = task
		return nil
	})
}

func (r *taskRepository) DeleteTask(ctx context.Context, code domain.TenantCode, id string) error {
	return r.acc.write(ctx, func(d *dataset) error {
		t, ok := d.tasks[id]
		if !ok || t.TenantCode != code {
			return apperrors.NewNotFoundError("task not found")
		}
		delete(d.tasks, id)
		return nil
	})
}
