package services

import (
	"context"

	"github.com/SscSPs/workly_crm/internal/core/domain"
	"github.com/SscSPs/workly_crm/internal/dto"
)

// TaskReaderSvc defines read operations for task data
type TaskReaderSvc interface {
	ListTasks(ctx context.Context, principal domain.Principal, filter domain.TaskFilter) ([]domain.TaskDetails, error)
	GetTask(ctx context.Context, principal domain.Principal, taskID string) (*domain.TaskDetails, error)
	ListTasksByEmployee(ctx context.Context, principal domain.Principal, employeeID string) ([]domain.TaskDetails, error)

	// TaskStatsByCompany counts the caller's company tasks by status.
	TaskStatsByCompany(ctx context.Context, principal domain.Principal, companyID string) (domain.TaskStats, []domain.TaskDetails, error)
}

// TaskWriterSvc defines write operations for task data
type TaskWriterSvc interface {
	CreateTask(ctx context.Context, principal domain.Principal, req dto.CreateTaskRequest) (*domain.TaskDetails, error)

	// UpdateTask applies a full patch for admins and managers; an assignee may
	// only change the status when self-service is enabled.
	UpdateTask(ctx context.Context, principal domain.Principal, taskID string, req dto.UpdateTaskRequest) (*domain.TaskDetails, error)

	DeleteTask(ctx context.Context, principal domain.Principal, taskID string) error
}

// TaskSvcFacade combines all task-related service interfaces
type TaskSvcFacade interface {
	TaskReaderSvc
	TaskWriterSvc
}
