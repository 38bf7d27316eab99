package domain

import "time"

// TaskPriority ranks tasks.
type TaskPriority string

const (
	PriorityLow      TaskPriority = "Low"
	PriorityMedium   TaskPriority = "Medium"
	PriorityHigh     TaskPriority = "High"
	PriorityCritical TaskPriority = "Critical"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// TaskStatus is free-form within its value set. There are no transition rules.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskOnHold     TaskStatus = "On Hold"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskOnHold:
		return true
	}
	return false
}

// Task is a unit of work assigned to one employee of the tenant.
type Task struct {
	ID          string       `json:"id"`
	TenantCode  TenantCode   `json:"companyId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AssignedTo  string       `json:"assignedTo"`
	CreatedBy   string       `json:"createdBy"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	Timestamps
}

// TaskFilter narrows a task listing. Empty fields do not filter.
type TaskFilter struct {
	AssignedTo string
}

// TaskStats counts tasks of a tenant by status.
type TaskStats struct {
	Count      int `json:"count"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	OnHold     int `json:"onHold"`
}

// CountTasks tallies tasks per status.
func CountTasks(tasks []Task) TaskStats {
	stats := TaskStats{Count: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case TaskPending:
			stats.Pending++
		case TaskInProgress:
			stats.InProgress++
		case TaskCompleted:
			stats.Completed++
		case TaskOnHold:
			stats.OnHold++
		}
	}
	return stats
}

// TaskDetails is a task with its assignee resolved. Assignee is nil when the
// employee no longer exists.
type TaskDetails struct {
	Task
	Assignee *EmployeeRef
}
