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
	"github.com/google/uuid"
)

// taskService implements the task related service interfaces.
type taskService struct {
	BaseService
	taskRepo    portsrepo.TaskRepositoryFacade
	directory   employeeDirectory
	selfService bool
}

// NewTaskService creates a new instance of taskService. When selfService is
// set, an assignee may change the status of their own task.
func NewTaskService(taskRepo portsrepo.TaskRepositoryFacade, employeeRepo portsrepo.EmployeeReader, selfService bool) portssvc.TaskSvcFacade {
	return &taskService{
		taskRepo:    taskRepo,
		directory:   employeeDirectory{employees: employeeRepo},
		selfService: selfService,
	}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) withAssignees(ctx context.Context, code domain.TenantCode, tasks []domain.Task) ([]domain.TaskDetails, error) {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.AssignedTo
	}
	refs, err := s.directory.lookup(ctx, code, ids)
	if err != nil {
		return nil, fmt.Errorf("resolving task assignees: %w", err)
	}
	out := make([]domain.TaskDetails, len(tasks))
	for i, t := range tasks {
		out[i] = domain.TaskDetails{Task: t, Assignee: refPtr(refs, t.AssignedTo)}
	}
	return out, nil
}

func (s *taskService) detail(ctx context.Context, task *domain.Task) (*domain.TaskDetails, error) {
	details, err := s.withAssignees(ctx, task.TenantCode, []domain.Task{*task})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// requireAssignee checks that the employee belongs to the tenant.
func (s *taskService) requireAssignee(ctx context.Context, code domain.TenantCode, employeeID string) error {
	missing, err := s.directory.missing(ctx, code, []string{employeeID})
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return apperrors.NewValidationFailedError("assigned employee not found in this company")
	}
	return nil
}

func (s *taskService) ListTasks(ctx context.Context, principal domain.Principal, filter domain.TaskFilter) ([]domain.TaskDetails, error) {
	tasks, err := s.taskRepo.ListTasks(ctx, principal.TenantCode, filter)
	if err != nil {
		return nil, err
	}
	return s.withAssignees(ctx, principal.TenantCode, tasks)
}

func (s *taskService) GetTask(ctx context.Context, principal domain.Principal, taskID string) (*domain.TaskDetails, error) {
	task, err := s.taskRepo.FindTask(ctx, principal.TenantCode, taskID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, task)
}

func (s *taskService) ListTasksByEmployee(ctx context.Context, principal domain.Principal, employeeID string) ([]domain.TaskDetails, error) {
	return s.ListTasks(ctx, principal, domain.TaskFilter{AssignedTo: employeeID})
}

func (s *taskService) TaskStatsByCompany(ctx context.Context, principal domain.Principal, companyID string) (domain.TaskStats, []domain.TaskDetails, error) {
	if err := s.RequireOwnTenant(principal, companyID); err != nil {
		return domain.TaskStats{}, nil, err
	}
	tasks, err := s.taskRepo.ListTasks(ctx, principal.TenantCode, domain.TaskFilter{})
	if err != nil {
		return domain.TaskStats{}, nil, err
	}
	details, err := s.withAssignees(ctx, principal.TenantCode, tasks)
	if err != nil {
		return domain.TaskStats{}, nil, err
	}
	return domain.CountTasks(tasks), details, nil
}

func (s *taskService) CreateTask(ctx context.Context, principal domain.Principal, req dto.CreateTaskRequest) (*domain.TaskDetails, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin, domain.RoleManager); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" || req.AssignedTo == "" {
		return nil, apperrors.NewValidationFailedError("title and assignedTo are required")
	}
	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.TaskPriority(req.Priority)
	}
	status := domain.TaskPending
	if req.Status != "" {
		status = domain.TaskStatus(req.Status)
	}
	if !priority.IsValid() || !status.IsValid() {
		return nil, apperrors.NewValidationFailedError("invalid task priority or status")
	}
	if err := s.requireAssignee(ctx, principal.TenantCode, req.AssignedTo); err != nil {
		return nil, err
	}

	now := s.Now()
	task := domain.Task{
		ID:          uuid.NewString(),
		TenantCode:  principal.TenantCode,
		Title:       title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   principal.ID,
		DueDate:     req.DueDate,
		Priority:    priority,
		Status:      status,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to create task")
		return nil, err
	}
	s.LogInfo(ctx, "Task created", slog.String("task_id", task.ID), slog.String("assigned_to", task.AssignedTo))
	return s.detail(ctx, &task)
}

func (s *taskService) UpdateTask(ctx context.Context, principal domain.Principal, taskID string, req dto.UpdateTaskRequest) (*domain.TaskDetails, error) {
	task, err := s.taskRepo.FindTask(ctx, principal.TenantCode, taskID)
	if err != nil {
		return nil, err
	}

	if !principal.CanManage() {
		if !s.selfService || task.AssignedTo != principal.ID {
			return nil, apperrors.NewForbiddenError("you do not have permission to update this task")
		}
		if !req.OnlyStatus() {
			return nil, apperrors.NewForbiddenError("you can only update the status of your own task")
		}
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewValidationFailedError("title cannot be empty")
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssignedTo != nil && *req.AssignedTo != task.AssignedTo {
		if err := s.requireAssignee(ctx, principal.TenantCode, *req.AssignedTo); err != nil {
			return nil, err
		}
		task.AssignedTo = *req.AssignedTo
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.NewValidationFailedError("invalid task priority")
		}
		task.Priority = priority
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationFailedError("invalid task status")
		}
		task.Status = status
	}
	task.UpdatedAt = s.Now()

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update task", slog.String("task_id", taskID))
		}
		return nil, err
	}
	return s.detail(ctx, task)
}

func (s *taskService) DeleteTask(ctx context.Context, principal domain.Principal, taskID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin, domain.RoleManager); err != nil {
		return err
	}
	return s.taskRepo.DeleteTask(ctx, principal.TenantCode, taskID)
}
