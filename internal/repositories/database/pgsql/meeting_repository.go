package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxMeetingRepository struct {
	BaseRepository
}

func newPgxMeetingRepository(db dbtx) *PgxMeetingRepository {
	return &PgxMeetingRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.MeetingRepositoryFacade = (*PgxMeetingRepository)(nil)

const meetingSelect = `
SELECT
	m.id, m.tenant_code, m.title, m.description, m.scheduled_at, m.created_by,
	m.participants, m.location, m.status, m.created_at, m.updated_at
FROM meetings m
`

func scanMeeting(row pgx.Row) (domain.Meeting, error) {
	var m domain.Meeting
	err := row.Scan(
		&m.ID, &m.TenantCode, &m.Title, &m.Description, &m.ScheduledAt, &m.CreatedBy,
		&m.Participants, &m.Location, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if m.Participants == nil {
		m.Participants = []string{}
	}
	return m, err
}

func (r *PgxMeetingRepository) FindMeeting(ctx context.Context, code domain.TenantCode, id string) (*domain.Meeting, error) {
	m, err := scanMeeting(r.DB.QueryRow(ctx, meetingSelect+`WHERE m.tenant_code = $1 AND m.id = $2`, code, id))
	if err != nil {
		return nil, notFoundOr(err, "meeting")
	}
	return &m, nil
}

func (r *PgxMeetingRepository) ListMeetings(ctx context.Context, code domain.TenantCode) ([]domain.Meeting, error) {
	rows, err := r.DB.Query(ctx, meetingSelect+`WHERE m.tenant_code = $1 ORDER BY m.scheduled_at DESC, m.id DESC`, code)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query meetings", err)
	}
	meetings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Meeting, error) {
		return scanMeeting(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect meeting rows", err)
	}
	return meetings, nil
}

func (r *PgxMeetingRepository) SaveMeeting(ctx context.Context, m domain.Meeting) error {
	query := `
		INSERT INTO meetings (
			id, tenant_code, title, description, scheduled_at, created_by,
			participants, location, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.DB.Exec(ctx, query,
		m.ID, m.TenantCode, m.Title, m.Description, m.ScheduledAt, m.CreatedBy,
		m.Participants, m.Location, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "meeting")
	}
	return nil
}

func (r *PgxMeetingRepository) UpdateMeeting(ctx context.Context, m domain.Meeting) error {
	query := `
		UPDATE meetings
		SET title = $1, description = $2, scheduled_at = $3, participants = $4,
			location = $5, status = $6, updated_at = $7
		WHERE tenant_code = $8 AND id = $9;
	`
	tag, err := r.DB.Exec(ctx, query,
		m.Title, m.Description, m.ScheduledAt, m.Participants,
		m.Location, m.Status, m.UpdatedAt, m.TenantCode, m.ID,
	)
	if err != nil {
		return mapWriteError(err, "meeting")
	}
	return requireAffected(tag, "meeting")
}

func (r *PgxMeetingRepository) DeleteMeeting(ctx context.Context, code domain.TenantCode, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM meetings WHERE tenant_code = $1 AND id = $2`, code, id)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete meeting", err)
	}
	return requireAffected(tag, "meeting")
}
