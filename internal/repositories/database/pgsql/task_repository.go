package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxTaskRepository struct {
	BaseRepository
}

func newPgxTaskRepository(db dbtx) *PgxTaskRepository {
	return &PgxTaskRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

const taskSelect = `
SELECT
	t.id, t.tenant_code, t.title, t.description, t.assigned_to, t.created_by,
	t.due_date, t.priority, t.status, t.created_at, t.updated_at
FROM tasks t
`

func scanTask(row pgx.Row) (domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID, &t.TenantCode, &t.Title, &t.Description, &t.AssignedTo, &t.CreatedBy,
		&t.DueDate, &t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PgxTaskRepository) FindTask(ctx context.Context, code domain.TenantCode, id string) (*domain.Task, error) {
	t, err := scanTask(r.DB.QueryRow(ctx, taskSelect+`WHERE t.tenant_code = $1 AND t.id = $2`, code, id))
	if err != nil {
		return nil, notFoundOr(err, "task")
	}
	return &t, nil
}

func (r *PgxTaskRepository) ListTasks(ctx context.Context, code domain.TenantCode, filter domain.TaskFilter) ([]domain.Task, error) {
	query := taskSelect + `WHERE t.tenant_code = $1`
	args := []any{code}
	if filter.AssignedTo != "" {
		query += ` AND t.assigned_to = $2`
		args = append(args, filter.AssignedTo)
	}
	query += ` ORDER BY t.created_at DESC, t.id DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query tasks", err)
	}
	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Task, error) {
		return scanTask(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect task rows", err)
	}
	return tasks, nil
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, t domain.Task) error {
	query := `
		INSERT INTO tasks (
			id, tenant_code, title, description, assigned_to, created_by,
			due_date, priority, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.DB.Exec(ctx, query,
		t.ID, t.TenantCode, t.Title, t.Description, t.AssignedTo, t.CreatedBy,
		t.DueDate, t.Priority, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "task")
	}
	return nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, t domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, assigned_to = $3, due_date = $4,
			priority = $5, status = $6, updated_at = $7
		WHERE tenant_code = $8 AND id = $9;
	`
	tag, err := r.DB.Exec(ctx, query,
		t.Title, t.Description, t.AssignedTo, t.DueDate,
		t.Priority, t.Status, t.UpdatedAt, t.TenantCode, t.ID,
	)
	if err != nil {
		return mapWriteError(err, "task")
	}
	return requireAffected(tag, "task")
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, code domain.TenantCode, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM tasks WHERE tenant_code = $1 AND id = $2`, code, id)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete task", err)
	}
	return requireAffected(tag, "task")
}
