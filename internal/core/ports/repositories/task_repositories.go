package repositories

import (
	"context"

	"github.com/SscSPs/workly_crm/internal/core/domain"
)

// TaskReader defines read operations for task data
type TaskReader interface {
	// FindTask retrieves a task by id within one tenant.
	FindTask(ctx context.Context, code domain.TenantCode, id string) (*domain.Task, error)

	// ListTasks retrieves a tenant's tasks, newest first, narrowed by filter.
	ListTasks(ctx context.Context, code domain.TenantCode, filter domain.TaskFilter) ([]domain.Task, error)
}

// TaskWriter defines write operations for task data
type TaskWriter interface {
	SaveTask(ctx context.Context, task domain.Task) error
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, code domain.TenantCode, id string) error
}

// TaskRepositoryFacade combines all task-related repository interfaces
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
