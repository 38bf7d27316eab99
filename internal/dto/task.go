package dto

import (
	"time"

	"github.com/SscSPs/workly_crm/internal/core/domain"
)

// CreateTaskRequest defines the data needed to create a task.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  string     `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=Low Medium High Critical"`
	Status      string     `json:"status" binding:"omitempty,oneof=Pending 'In Progress' Completed 'On Hold'"`
}

// UpdateTaskRequest is a partial update. Only Status may be sent by an assignee
// who is not an admin or manager.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AssignedTo  *string    `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=Low Medium High Critical"`
	Status      *string    `json:"status" binding:"omitempty,oneof=Pending 'In Progress' Completed 'On Hold'"`
}

// OnlyStatus reports whether the request touches nothing but the status.
func (r UpdateTaskRequest) OnlyStatus() bool {
	return r.Status != nil && r.Title == nil && r.Description == nil &&
		r.AssignedTo == nil && r.DueDate == nil && r.Priority == nil
}

// ListTasksParams defines query parameters for listing tasks.
type ListTasksParams struct {
	AssignedTo string `form:"assignedTo"`
}

// TaskResponse is the public view of a task with its assignee embedded.
type TaskResponse struct {
	ID          string              `json:"id"`
	CompanyID   domain.TenantCode   `json:"companyId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	AssignedTo  EmployeeRefResponse `json:"assignedTo"`
	CreatedBy   string              `json:"createdBy"`
	DueDate     *time.Time          `json:"dueDate,omitempty"`
	Priority    domain.TaskPriority `json:"priority"`
	Status      domain.TaskStatus   `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// TaskStatsResponse counts a tenant's tasks by status and lists them.
type TaskStatsResponse struct {
	Count      int            `json:"count"`
	Pending    int            `json:"pending"`
	InProgress int            `json:"inProgress"`
	Completed  int            `json:"completed"`
	OnHold     int            `json:"onHold"`
	Tasks      []TaskResponse `json:"tasks"`
}

// ToTaskResponse converts a task with its resolved assignee to its public view.
func ToTaskResponse(t *domain.TaskDetails) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		CompanyID:   t.TenantCode,
		Title:       t.Title,
		Description: t.Description,
		AssignedTo:  refOrID(t.Assignee, t.AssignedTo),
		CreatedBy:   t.CreatedBy,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToListTasksResponse converts tasks to their public views.
func ToListTasksResponse(tasks []domain.TaskDetails) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = ToTaskResponse(&tasks[i])
	}
	return out
}

// ToTaskStatsResponse combines status counts with the task list.
func ToTaskStatsResponse(stats domain.TaskStats, tasks []domain.TaskDetails) TaskStatsResponse {
	return TaskStatsResponse{
		Count:      stats.Count,
		Pending:    stats.Pending,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
		OnHold:     stats.OnHold,
		Tasks:      ToListTasksResponse(tasks),
	}
}
